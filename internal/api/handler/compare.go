package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

// CompareCompanies compara empresas lado a lado e gera os insights textuais
func CompareCompanies(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CompareRequest
		if err := utils.DecodeJSON(w, r, maxJSONBodyBytes, &request); err != nil {
			logrus.WithError(err).Warn("Requisição de comparação inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		response, err := service.CompareCompanies(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao comparar empresas")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}
