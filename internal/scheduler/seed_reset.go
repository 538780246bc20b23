// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-api/internal/config"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
)

type SeedResetConfig struct {
	CronSchedule string
	Enabled      bool
}

// SeedResetService repopula periodicamente os dados de demonstração
type SeedResetService struct {
	scheduler        *gocron.Scheduler
	seeder           seeding.Seeder
	config           SeedResetConfig
	resetRunning     bool
	resetMutex       sync.Mutex
	lastStartedAt    time.Time
	lastCompletedAt  time.Time
	lastError        string
	lastResultCounts map[string]int
}

func NewSeedResetService(seeder seeding.Seeder, cfg *config.Config) *SeedResetService {
	resetConfig := SeedResetConfig{
		CronSchedule: cfg.Seed.CronSchedule,
		Enabled:      cfg.Seed.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": resetConfig.CronSchedule,
		"enabled":       resetConfig.Enabled,
	}).Info("Configuração do agendador de reset dos dados carregada")

	return &SeedResetService{
		scheduler: gocron.NewScheduler(time.Local),
		seeder:    seeder,
		config:    resetConfig,
	}
}

func (s *SeedResetService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de reset dos dados de demonstração desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reset dos dados de demonstração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ResetDemoData(ctx); err != nil {
			logrus.WithError(err).Error("Erro no reset dos dados de demonstração")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reset dos dados de demonstração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reset dos dados de demonstração")
		s.scheduler.Stop()
	}()

	return nil
}

// ResetDemoData roda todas as etapas do seed. Execuções concorrentes são ignoradas.
func (s *SeedResetService) ResetDemoData(ctx context.Context) error {
	if !s.tryStart() {
		logrus.Warn("Reset dos dados de demonstração já está em execução")
		return nil
	}

	return s.runReset(ctx)
}

// TriggerManualReset dispara o reset em background
func (s *SeedResetService) TriggerManualReset() bool {
	if !s.tryStart() {
		logrus.Info("Reset dos dados já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando reset manual dos dados de demonstração")
	go func() {
		if err := s.runReset(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no reset manual dos dados de demonstração")
		}
	}()

	return true
}

// tryStart marca o reset como em execução sob o lock
func (s *SeedResetService) tryStart() bool {
	s.resetMutex.Lock()
	defer s.resetMutex.Unlock()

	if s.resetRunning {
		return false
	}
	s.resetRunning = true
	s.lastStartedAt = time.Now()

	return true
}

// runReset supõe resetRunning já marcado por tryStart
func (s *SeedResetService) runReset(ctx context.Context) error {
	logrus.Info("Iniciando reset dos dados de demonstração")

	result, err := s.seeder.Seed(ctx)

	s.resetMutex.Lock()
	defer s.resetMutex.Unlock()

	s.resetRunning = false
	s.lastCompletedAt = time.Now()
	s.lastResultCounts = resultCounts(result)

	if err != nil {
		s.lastError = err.Error()
		return err
	}
	s.lastError = ""

	logrus.WithFields(logrus.Fields{
		"users":     s.lastResultCounts["users"],
		"customers": s.lastResultCounts["customers"],
		"invoices":  s.lastResultCounts["invoices"],
		"revenue":   s.lastResultCounts["revenue"],
	}).Info("Reset dos dados de demonstração concluído")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SeedResetService) GetStatus() map[string]any {
	s.resetMutex.Lock()
	defer s.resetMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.resetRunning,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_result":       s.lastResultCounts,
	}
}

func resultCounts(result *domain.SeedResult) map[string]int {
	if result == nil {
		return nil
	}

	return map[string]int{
		"users":     len(result.Users),
		"customers": result.Customers,
		"invoices":  len(result.Invoices),
		"revenue":   len(result.Revenue),
	}
}
