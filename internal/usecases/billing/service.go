package billing

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/infrastructure/integrator/payment"
	"github.com/vfg2006/company-intel-api/infrastructure/repository"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
)

type BillingService interface {
	CreateCheckoutSession(ctx context.Context, request *domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type Service struct {
	gateway  payment.Gateway
	userRepo repository.UserRepository
}

func NewService(gateway payment.Gateway, userRepo repository.UserRepository) BillingService {
	return &Service{
		gateway:  gateway,
		userRepo: userRepo,
	}
}

func (s *Service) CreateCheckoutSession(ctx context.Context, request *domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if request == nil || strings.TrimSpace(request.PriceID) == "" {
		return nil, NewBillingError(ErrPriceIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, request.PriceID, request.PlanID)
	if err != nil {
		return nil, NewBillingError(ErrCheckoutFailed, apiErrors.ErrExternalService, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"session_id":          session.ID,
		"client_reference_id": session.ClientReferenceID,
		"plan_id":             request.PlanID,
	}).Info("Sessão de checkout criada")

	return &domain.CheckoutResponse{SessionID: session.ID}, nil
}

// HandleWebhook só retorna erro quando a assinatura é inválida. Falhas ao
// aplicar o evento são registradas em log e o evento é confirmado mesmo assim.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ConstructEvent(payload, signature)
	if err != nil {
		logrus.WithError(err).Warn("Webhook rejeitado por assinatura inválida")
		return NewBillingError(ErrInvalidSignature, apiErrors.ErrInvalidRequest, err.Error())
	}

	logger := logrus.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	})

	parsed, err := parseEvent(event)
	if err != nil {
		logger.WithError(err).Error("Erro ao decodificar evento do Stripe")
		return nil
	}

	switch e := parsed.(type) {
	case CheckoutCompleted:
		s.applyCheckoutCompleted(ctx, logger, e)
	case SubscriptionDeleted:
		s.applySubscriptionDeleted(ctx, logger, e)
	case IgnoredEvent:
		logger.Info("Evento do Stripe sem tratamento, ignorado")
	default:
		logger.Warnf("Evento do Stripe com variante desconhecida: %T", parsed)
	}

	return nil
}

func (s *Service) applyCheckoutCompleted(ctx context.Context, logger *logrus.Entry, event CheckoutCompleted) {
	if event.CustomerID == "" {
		logger.Warn("Checkout concluído sem customer, nada a atualizar")
		return
	}

	err := s.userRepo.UpsertSubscription(ctx, domain.SubscriptionUpdate{
		StripeCustomerID: event.CustomerID,
		SubscriptionID:   event.SubscriptionID,
		PlanID:           event.PlanID,
		Status:           domain.SubscriptionStatusActive,
	})
	if err != nil {
		logger.WithError(err).WithField("customer", event.CustomerID).Error("Erro ao ativar assinatura")
		return
	}

	logger.WithFields(logrus.Fields{
		"customer":     event.CustomerID,
		"subscription": event.SubscriptionID,
		"plan_id":      event.PlanID,
	}).Info("Assinatura ativada")
}

func (s *Service) applySubscriptionDeleted(ctx context.Context, logger *logrus.Entry, event SubscriptionDeleted) {
	affected, err := s.userRepo.CancelSubscription(ctx, event.SubscriptionID)
	if err != nil {
		logger.WithError(err).WithField("subscription", event.SubscriptionID).Error("Erro ao cancelar assinatura")
		return
	}

	logger.WithFields(logrus.Fields{
		"subscription": event.SubscriptionID,
		"affected":     affected,
	}).Info("Assinatura cancelada")
}
