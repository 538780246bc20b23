package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-api/pkg/apiErrors"
)

type InvoicesPagesResponse struct {
	TotalPages int `json:"total_pages"`
}

func GetRevenue(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenue, err := service.FetchRevenue(r.Context())
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, revenue)
	}
}

func GetLatestInvoices(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoices, err := service.FetchLatestInvoices(r.Context())
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, invoices)
	}
}

func GetCardData(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := service.FetchCardData(r.Context())
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, cards)
	}
}

// GetFilteredInvoices aceita ?query= e ?page=, página ausente é a primeira
func GetFilteredInvoices(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")

		page := 1
		if pageParam := r.URL.Query().Get("page"); pageParam != "" {
			parsed, err := strconv.Atoi(pageParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page deve ser um número inteiro", nil)
				return
			}
			page = parsed
		}

		invoices, err := service.FetchFilteredInvoices(r.Context(), query, page)
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, invoices)
	}
}

func GetInvoicesPages(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totalPages, err := service.FetchInvoicesPages(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, InvoicesPagesResponse{TotalPages: totalPages})
	}
}

func GetInvoiceByID(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não especificado", nil)
			return
		}

		id, err := strconv.Atoi(idParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da fatura deve ser um número inteiro", nil)
			return
		}

		invoice, err := service.FetchInvoiceByID(r.Context(), id)
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		if invoice == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada", nil)
			return
		}

		respondJSON(w, http.StatusOK, invoice)
	}
}

func GetCustomers(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.FetchCustomers(r.Context())
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, customers)
	}
}

func GetFilteredCustomers(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.FetchFilteredCustomers(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			respondDashboardError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, customers)
	}
}
