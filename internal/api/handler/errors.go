package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/usecases/billing"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

// writeServiceError traduz os erros dos casos de uso para a resposta da API.
// Erros de servidor saem com a mensagem genérica, o detalhe fica só no log.
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	code := apiErrors.ErrInternalServer
	message := fallbackMessage

	var (
		companyErr *company.CompanyError
		billingErr *billing.BillingError
	)
	switch {
	case errors.As(err, &companyErr):
		code = companyErr.Code
		message = companyErr.Err.Error()
	case errors.As(err, &billingErr):
		code = billingErr.Code
		message = billingErr.Err.Error()
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logrus.WithError(err).Error(fallbackMessage)
		message = fallbackMessage
	}

	apiErrors.WriteError(w, code, message, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if err := utils.WriteJSON(w, status, v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
