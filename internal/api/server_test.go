package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-api/internal/config"
	"github.com/vfg2006/dashboard-api/internal/domain"
	dashboardmocks "github.com/vfg2006/dashboard-api/internal/usecases/dashboard/mocks"
	seedingmocks "github.com/vfg2006/dashboard-api/internal/usecases/seeding/mocks"
	"go.uber.org/mock/gomock"
)

type stubResetScheduler struct{}

func (stubResetScheduler) TriggerManualReset() bool  { return true }
func (stubResetScheduler) GetStatus() map[string]any { return map[string]any{} }

func TestServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboardService := dashboardmocks.NewMockDashboard(ctrl)
	seeder := seedingmocks.NewMockSeeder(ctrl)

	cfg := &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "8000",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	srv, err := New(cfg, dashboardService, seeder, stubResetScheduler{})
	require.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)

	dashboardService.EXPECT().
		FetchRevenue(gomock.Any()).
		Return([]domain.Revenue{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/revenue", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}
