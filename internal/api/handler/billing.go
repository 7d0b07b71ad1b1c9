package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/internal/usecases/billing"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

const (
	// Mesmo limite recomendado pelo Stripe para payloads de webhook
	maxWebhookBodyBytes = 65536
	maxJSONBodyBytes    = 1 << 20

	stripeSignatureHeader = "Stripe-Signature"
)

// CreateCheckoutSession cria a sessão de checkout do Stripe para o plano escolhido
func CreateCheckoutSession(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CheckoutRequest
		if err := utils.DecodeJSON(w, r, maxJSONBodyBytes, &request); err != nil {
			logrus.WithError(err).Warn("Requisição de checkout inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response, err := service.CreateCheckoutSession(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar sessão de checkout")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// StripeWebhook recebe os eventos do Stripe. O corpo precisa ser lido cru
// para a verificação da assinatura.
func StripeWebhook(service billing.BillingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeWebhookError(w, "payload excede o tamanho máximo")
				return
			}
			writeWebhookError(w, "erro ao ler o corpo da requisição")
			return
		}

		if err := service.HandleWebhook(r.Context(), payload, r.Header.Get(stripeSignatureHeader)); err != nil {
			message := "erro ao processar webhook"
			var billingErr *billing.BillingError
			if errors.As(err, &billingErr) {
				message = billingErr.Details
				if message == "" {
					message = billingErr.Err.Error()
				}
			}
			writeWebhookError(w, message)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	}
}

func writeWebhookError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	if _, err := io.WriteString(w, "Webhook Error: "+message); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta do webhook")
	}
}
