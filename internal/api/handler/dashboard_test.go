package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"github.com/vfg2006/dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(t *testing.T) (router.Router, *mocks.MockDashboard) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboard(ctrl)

	return router.New(router.WithRoutes(Dashboard(service)...)), service
}

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetRevenue(t *testing.T) {
	rt, service := newDashboardRouter(t)

	service.EXPECT().
		FetchRevenue(gomock.Any()).
		Return([]domain.Revenue{{Month: "Jan", Revenue: 2000}}, nil)

	rec := serve(rt, http.MethodGet, "/v1/revenue")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"month":"Jan","revenue":2000}]`, rec.Body.String())
}

func TestGetRevenue_DatabaseError(t *testing.T) {
	rt, service := newDashboardRouter(t)

	service.EXPECT().
		FetchRevenue(gomock.Any()).
		Return(nil, dashboard.NewDashboardError(dashboard.ErrFetchRevenue, apiErrors.ErrDataFetch, ""))

	rec := serve(rt, http.MethodGet, "/v1/revenue")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeAPIError(t, rec)
	assert.Equal(t, apiErrors.ErrDataFetch, body.Code)
	assert.Equal(t, "failed to fetch revenue data", body.Message)
}

func TestGetCardData_UnexpectedError(t *testing.T) {
	rt, service := newDashboardRouter(t)

	service.EXPECT().
		FetchCardData(gomock.Any()).
		Return(nil, errors.New("boom"))

	rec := serve(rt, http.MethodGet, "/v1/cards")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
}

func TestGetCardData(t *testing.T) {
	rt, service := newDashboardRouter(t)

	service.EXPECT().
		FetchCardData(gomock.Any()).
		Return(&domain.CardData{
			NumberOfCustomers:    6,
			NumberOfInvoices:     13,
			TotalPaidInvoices:    "$1,006.26",
			TotalPendingInvoices: "$1,256.32",
		}, nil)

	rec := serve(rt, http.MethodGet, "/v1/cards")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"number_of_customers": 6,
		"number_of_invoices": 13,
		"total_paid_invoices": "$1,006.26",
		"total_pending_invoices": "$1,256.32"
	}`, rec.Body.String())
}

func TestGetFilteredInvoices(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(service *mocks.MockDashboard)
		wantStatus int
	}{
		{
			name:   "sem parâmetros usa a primeira página",
			target: "/v1/invoices",
			setup: func(service *mocks.MockDashboard) {
				service.EXPECT().FetchFilteredInvoices(gomock.Any(), "", 1).Return([]domain.InvoicesTable{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "busca e página",
			target: "/v1/invoices?query=lee&page=2",
			setup: func(service *mocks.MockDashboard) {
				service.EXPECT().FetchFilteredInvoices(gomock.Any(), "lee", 2).Return([]domain.InvoicesTable{{ID: 3}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "página inválida",
			target:     "/v1/invoices?page=abc",
			setup:      func(service *mocks.MockDashboard) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, service := newDashboardRouter(t)
			tt.setup(service)

			rec := serve(rt, http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInvoiceRoutes(t *testing.T) {
	t.Run("últimas faturas", func(t *testing.T) {
		rt, service := newDashboardRouter(t)
		service.EXPECT().
			FetchLatestInvoices(gomock.Any()).
			Return([]domain.LatestInvoice{{ID: 1, Name: "Lee Robinson", Amount: "$200.00"}}, nil)

		rec := serve(rt, http.MethodGet, "/v1/invoices/latest")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount":"$200.00"`)
	})

	t.Run("total de páginas", func(t *testing.T) {
		rt, service := newDashboardRouter(t)
		service.EXPECT().FetchInvoicesPages(gomock.Any(), "paid").Return(2, nil)

		rec := serve(rt, http.MethodGet, "/v1/invoices/pages?query=paid")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total_pages":2}`, rec.Body.String())
	})

	t.Run("fatura por id", func(t *testing.T) {
		rt, service := newDashboardRouter(t)
		service.EXPECT().
			FetchInvoiceByID(gomock.Any(), 7).
			Return(&domain.InvoiceForm{ID: 7, CustomerID: 2, Amount: 547.95, Status: domain.InvoiceStatusPaid}, nil)

		rec := serve(rt, http.MethodGet, "/v1/invoices/7")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"customer_id":2,"amount":547.95,"status":"paid"}`, rec.Body.String())
	})

	t.Run("fatura inexistente", func(t *testing.T) {
		rt, service := newDashboardRouter(t)
		service.EXPECT().FetchInvoiceByID(gomock.Any(), 999).Return(nil, nil)

		rec := serve(rt, http.MethodGet, "/v1/invoices/999")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrInvoiceNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("id inválido", func(t *testing.T) {
		rt, _ := newDashboardRouter(t)

		rec := serve(rt, http.MethodGet, "/v1/invoices/abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestCustomers(t *testing.T) {
	rt, service := newDashboardRouter(t)

	service.EXPECT().
		FetchCustomers(gomock.Any()).
		Return([]domain.CustomerField{{ID: 1, Name: "Amy Burns"}}, nil)
	service.EXPECT().
		FetchFilteredCustomers(gomock.Any(), "amy").
		Return(nil, dashboard.NewDashboardError(dashboard.ErrFetchCustomersTable, apiErrors.ErrDataFetch, ""))

	rec := serve(rt, http.MethodGet, "/v1/customers")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Amy Burns"}]`, rec.Body.String())

	rec = serve(rt, http.MethodGet, "/v1/customers/table?query=amy")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to fetch customer table", decodeAPIError(t, rec).Message)
}
