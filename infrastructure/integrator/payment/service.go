package payment

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/vfg2006/company-intel-api/internal/config"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

const PlanIDMetadataKey = "planId"

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, priceID, planID string) (*domain.CheckoutSession, error)
	ConstructEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}

type sessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

type StripeService struct {
	webhookSecret string
	frontendURL   string
	newSession    sessionCreator
}

func NewStripeService(cfg *config.Config) Gateway {
	stripe.Key = cfg.Stripe.SecretKey

	return &StripeService{
		webhookSecret: cfg.Stripe.WebhookSecret,
		frontendURL:   strings.TrimRight(cfg.Frontend.URL, "/"),
		newSession:    session.New,
	}
}

// CreateCheckoutSession cria uma sessão de checkout de assinatura com um único item
func (s *StripeService) CreateCheckoutSession(ctx context.Context, priceID, planID string) (*domain.CheckoutSession, error) {
	reference, err := utils.GenerateReferenceID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar client_reference_id")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.frontendURL + "/dashboard?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(s.frontendURL + "/pricing"),
		ClientReferenceID: stripe.String(reference),
	}
	params.Context = ctx
	params.AddMetadata(PlanIDMetadataKey, planID)

	checkoutSession, err := s.newSession(params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client_reference_id": reference,
			"price_id":            priceID,
		}).WithError(err).Error("Erro ao criar sessão de checkout no Stripe")

		return nil, errors.Wrapf(ErrUpstream, "stripe: %s", stripeErrorDetail(err))
	}

	return &domain.CheckoutSession{
		ID:                checkoutSession.ID,
		URL:               checkoutSession.URL,
		ClientReferenceID: reference,
	}, nil
}

// ConstructEvent valida a assinatura sobre os bytes brutos do corpo
func (s *StripeService) ConstructEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	if s.webhookSecret == "" {
		return stripe.Event{}, errors.Wrap(ErrInvalidSignature, "segredo do webhook não configurado")
	}

	if signatureHeader == "" {
		return stripe.Event{}, errors.Wrap(ErrInvalidSignature, "cabeçalho Stripe-Signature ausente")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, errors.Wrap(ErrInvalidSignature, err.Error())
	}

	return event, nil
}

func stripeErrorDetail(err error) string {
	var stripeErr *stripe.Error
	if stderrors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}

	return err.Error()
}
