package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
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

func Dashboard(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(service),
		},
		{
			Path:    "/v1/cards",
			Method:  http.MethodGet,
			Handler: GetCardData(service),
		},
		{
			Path:    "/v1/invoices",
			Method:  http.MethodGet,
			Handler: GetFilteredInvoices(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodGet,
			Handler: invoiceRoutes(service),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: GetCustomers(service),
		},
		{
			Path:    "/v1/customers/table",
			Method:  http.MethodGet,
			Handler: GetFilteredCustomers(service),
		},
	}
}

// invoiceRoutes resolve os segmentos fixos que dividem o prefixo com /v1/invoices/:id
func invoiceRoutes(service dashboard.Dashboard) http.Handler {
	latest := GetLatestInvoices(service)
	pages := GetInvoicesPages(service)
	byID := GetInvoiceByID(service)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/invoices/latest":
			latest(w, r)
		case "/v1/invoices/pages":
			pages(w, r)
		default:
			byID(w, r)
		}
	})
}

func Seed(seeder seeding.Seeder) []router.Route {
	return []router.Route{
		{
			Path:    "/seed",
			Method:  http.MethodGet,
			Handler: SeedDatabase(seeder),
		},
	}
}

func SeedReset(resetScheduler SeedResetScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/seed/reset/run",
			Method:  http.MethodPost,
			Handler: RunSeedReset(resetScheduler),
		},
		{
			Path:    "/v1/seed/reset/status",
			Method:  http.MethodGet,
			Handler: GetSeedResetStatus(resetScheduler),
		},
	}
}
