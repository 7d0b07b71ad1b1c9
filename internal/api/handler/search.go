package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

// SearchCompanies faz a busca textual com filtros opcionais
func SearchCompanies(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.SearchRequest
		if err := utils.DecodeJSON(w, r, maxJSONBodyBytes, &request); err != nil {
			logrus.WithError(err).Warn("Requisição de busca inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		results, err := service.SearchCompanies(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar empresas")
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}
