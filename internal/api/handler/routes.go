package handler

import (
	"net/http"

	"github.com/vfg2006/company-intel-api/internal/api/handler/router"
	"github.com/vfg2006/company-intel-api/internal/usecases/authenticating"
	"github.com/vfg2006/company-intel-api/internal/usecases/billing"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
	"github.com/vfg2006/company-intel-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metrics *middleware.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Billing(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/create-checkout-session",
			Method:  http.MethodPost,
			Handler: CreateCheckoutSession(service),
		},
		{
			Path:    "/api/stripe-webhook",
			Method:  http.MethodPost,
			Handler: StripeWebhook(service),
		},
	}
}

func Companies(service company.CompanyService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/companies",
			Method:  http.MethodGet,
			Handler: ListCompanies(service),
		},
		{
			Path:    "/api/companies/:id",
			Method:  http.MethodGet,
			Handler: GetCompany(service),
		},
		{
			Path:    "/api/industries/:code/analysis",
			Method:  http.MethodGet,
			Handler: GetIndustryAnalysis(service),
		},
		{
			Path:    "/api/compare",
			Method:  http.MethodPost,
			Handler: CompareCompanies(service),
		},
		{
			Path:    "/api/search",
			Method:  http.MethodPost,
			Handler: SearchCompanies(service),
		},
	}
}

// CronJobs exige token de administrador em todas as rotas
func CronJobs(collector DataCollector, authenticator authenticating.Authenticator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authenticator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:        "/api/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(collector),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(collector),
			Middlewares: adminOnly,
		},
	}
}
