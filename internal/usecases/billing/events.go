package billing

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/stripe/stripe-go/v82"
	"github.com/vfg2006/company-intel-api/infrastructure/integrator/payment"
	paymentdomain "github.com/vfg2006/company-intel-api/infrastructure/integrator/payment/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WebhookEvent é o conjunto fechado de eventos tratados pelo webhook
type WebhookEvent interface {
	EventID() string
	EventType() string
	webhookEvent()
}

type eventHeader struct {
	ID   string
	Type string
}

func (h eventHeader) EventID() string   { return h.ID }
func (h eventHeader) EventType() string { return h.Type }
func (eventHeader) webhookEvent()       {}

type CheckoutCompleted struct {
	eventHeader
	CustomerID     string
	SubscriptionID string
	PlanID         string
}

type SubscriptionDeleted struct {
	eventHeader
	SubscriptionID string
}

// IgnoredEvent é qualquer tipo de evento sem tratamento
type IgnoredEvent struct {
	eventHeader
}

func parseEvent(event stripe.Event) (WebhookEvent, error) {
	header := eventHeader{ID: event.ID, Type: string(event.Type)}

	var raw []byte
	if event.Data != nil {
		raw = event.Data.Raw
	}

	switch header.Type {
	case paymentdomain.EventCheckoutSessionCompleted:
		var object paymentdomain.CheckoutSessionObject
		if err := json.Unmarshal(raw, &object); err != nil {
			return nil, fmt.Errorf("erro ao decodificar sessão de checkout: %w", err)
		}
		return CheckoutCompleted{
			eventHeader:    header,
			CustomerID:     object.Customer,
			SubscriptionID: object.Subscription,
			PlanID:         object.Metadata[payment.PlanIDMetadataKey],
		}, nil

	case paymentdomain.EventCustomerSubscriptionDeleted:
		var object paymentdomain.SubscriptionObject
		if err := json.Unmarshal(raw, &object); err != nil {
			return nil, fmt.Errorf("erro ao decodificar assinatura: %w", err)
		}
		return SubscriptionDeleted{
			eventHeader:    header,
			SubscriptionID: object.ID,
		}, nil

	default:
		return IgnoredEvent{eventHeader: header}, nil
	}
}
