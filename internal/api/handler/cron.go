package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/scheduler"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"github.com/vfg2006/company-intel-api/pkg/middleware"
)

// DataCollector é a parte do agendador exposta para administração manual
type DataCollector interface {
	TriggerManualSync(jobType scheduler.JobType) error
	GetStatus() map[string]any
}

// RunCronJob dispara manualmente uma coleta de dados
func RunCronJob(collector DataCollector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if err := collector.TriggerManualSync(scheduler.JobType(cronType)); err != nil {
			if errors.Is(err, scheduler.ErrUnknownJob) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de cron job inválido", []scheduler.JobType{
					scheduler.JobFinancialData, scheduler.JobMarketData, scheduler.JobNewsSentiment, scheduler.JobAll,
				})
				return
			}
			logrus.WithError(err).Error("Erro ao disparar cron job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar cron job", nil)
			return
		}

		fields := logrus.Fields{"type": cronType}
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			fields["subject"] = claims.Subject
		}
		logrus.WithFields(fields).Info("Cron job disparado manualmente")

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(collector DataCollector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, collector.GetStatus())
	}
}
