package domain

type CheckoutRequest struct {
	PriceID string `json:"priceId"`
	PlanID  string `json:"planId"`
}

type CheckoutSession struct {
	ID                string `json:"id"`
	URL               string `json:"url"`
	ClientReferenceID string `json:"client_reference_id"`
}

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
}

// SubscriptionUpdate é o estado aplicado a um usuário a partir de um evento do Stripe
type SubscriptionUpdate struct {
	StripeCustomerID string
	SubscriptionID   string
	PlanID           string
	Status           SubscriptionStatus
}
