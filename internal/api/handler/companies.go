package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

// ListCompanies lista empresas com filtros de setor e busca por nome ou ticker
func ListCompanies(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit, err := utils.ParseUint(query.Get("limit"), domain.DefaultCompanyListLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}

		offset, err := utils.ParseUint(query.Get("offset"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro offset inválido", nil)
			return
		}

		companies, err := service.ListCompanies(r.Context(), domain.CompanyFilters{
			Industry: query.Get("industry"),
			Search:   query.Get("search"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar empresas")
			return
		}

		if companies == nil {
			companies = []domain.Company{}
		}

		writeJSON(w, http.StatusOK, companies)
	}
}

// GetCompany retorna a empresa com suas métricas e dados de mercado mais recentes
func GetCompany(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

		id, err := utils.ParseID(idStr)
		if err != nil {
			logrus.WithError(err).Debug("ID de empresa inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da empresa inválido", nil)
			return
		}

		detail, err := service.GetCompanyDetail(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar dados da empresa")
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}
