package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dashboard-api/pkg/apiErrors"
)

func TestRouter_AddRoutes(t *testing.T) {
	called := false
	rt := New(WithRoutes(Route{
		Path:   "/v1/invoices/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Equal(t, "7", httprouter.ParamsFromContext(r.Context()).ByName("id"))
		}),
	}))

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/invoices/7", nil))

	assert.True(t, called)
}

func TestRouter_Fallbacks(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/revenue",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/revenue", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
