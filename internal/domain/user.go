package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SubscriptionStatus string

const (
	SubscriptionStatusTrial     SubscriptionStatus = "trial"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// User é o assinante, identificado pelo customer id do Stripe
type User struct {
	ID               int                `json:"id"`
	StripeCustomerID string             `json:"stripe_customer_id"`
	SubscriptionID   *string            `json:"subscription_id"`
	PlanID           *string            `json:"plan_id"`
	Status           SubscriptionStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
