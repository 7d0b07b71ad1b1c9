package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
)

// GetIndustryAnalysis retorna os agregados do setor, ou {} quando o código não existe
func GetIndustryAnalysis(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := httprouter.ParamsFromContext(r.Context()).ByName("code")

		analysis, err := service.GetIndustryAnalysis(r.Context(), code)
		if err != nil {
			writeServiceError(w, err, "Erro ao analisar setor")
			return
		}

		if analysis == nil {
			writeJSON(w, http.StatusOK, struct{}{})
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}
