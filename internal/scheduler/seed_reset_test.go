package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-api/internal/config"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, enabled bool) (*SeedResetService, *mocks.MockSeeder) {
	ctrl := gomock.NewController(t)
	seeder := mocks.NewMockSeeder(ctrl)

	cfg := &config.Config{Seed: config.Seed{CronSchedule: "0 0 * * *", Enabled: enabled}}

	return NewSeedResetService(seeder, cfg), seeder
}

func TestSeedResetService_ResetDemoData(t *testing.T) {
	service, seeder := newTestService(t, false)

	seeder.EXPECT().
		Seed(gomock.Any()).
		Return(&domain.SeedResult{
			Users:     []domain.User{{ID: 1}},
			Customers: 6,
			Invoices:  make([]domain.Invoice, 13),
			Revenue:   make([]domain.Revenue, 12),
		}, nil)

	require.NoError(t, service.ResetDemoData(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "", status["last_error"])
	assert.Equal(t, map[string]int{"users": 1, "customers": 6, "invoices": 13, "revenue": 12}, status["last_result"])
	assert.False(t, status["last_completed_at"].(time.Time).IsZero())
}

func TestSeedResetService_ResetDemoData_Error(t *testing.T) {
	service, seeder := newTestService(t, false)

	seedErr := errors.New("failed to seed invoices")
	seeder.EXPECT().
		Seed(gomock.Any()).
		Return(&domain.SeedResult{Customers: 6}, seedErr)

	err := service.ResetDemoData(context.Background())
	assert.ErrorIs(t, err, seedErr)

	status := service.GetStatus()
	assert.Equal(t, "failed to seed invoices", status["last_error"])
	assert.Equal(t, 6, status["last_result"].(map[string]int)["customers"])
}

func TestSeedResetService_IgnoresConcurrentRun(t *testing.T) {
	service, _ := newTestService(t, false)
	service.resetRunning = true

	// Nenhuma chamada ao seeder é esperada
	assert.NoError(t, service.ResetDemoData(context.Background()))
	assert.False(t, service.TriggerManualReset())
}

func TestSeedResetService_TriggerManualReset(t *testing.T) {
	service, seeder := newTestService(t, false)

	done := make(chan struct{})
	seeder.EXPECT().
		Seed(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.SeedResult, error) {
			defer close(done)
			return &domain.SeedResult{}, nil
		})

	assert.True(t, service.TriggerManualReset())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset manual não executado")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestSeedResetService_TriggerManualReset_SecondTriggerRejected(t *testing.T) {
	service, seeder := newTestService(t, false)

	release := make(chan struct{})
	finished := make(chan struct{})
	seeder.EXPECT().
		Seed(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.SeedResult, error) {
			defer close(finished)
			<-release
			return &domain.SeedResult{}, nil
		}).
		Times(1)

	assert.True(t, service.TriggerManualReset())
	assert.False(t, service.TriggerManualReset())
	assert.NoError(t, service.ResetDemoData(context.Background()))
	assert.Equal(t, true, service.GetStatus()["running"])

	close(release)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("reset manual não executado")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestSeedResetService_Start(t *testing.T) {
	t.Run("desabilitado", func(t *testing.T) {
		service, _ := newTestService(t, false)
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("cron inválida", func(t *testing.T) {
		service, _ := newTestService(t, true)
		service.config.CronSchedule = "não é cron"
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("habilitado", func(t *testing.T) {
		service, _ := newTestService(t, true)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
	})
}
