package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-api/pkg/log"
)

// SeedResetScheduler expõe o reset agendado dos dados de demonstração
type SeedResetScheduler interface {
	TriggerManualReset() bool
	GetStatus() map[string]any
}

// SeedDatabase roda todas as etapas do seed de forma síncrona
func SeedDatabase(seeder seeding.Seeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - SeedDatabase")

		if _, err := seeder.Seed(r.Context()); err != nil {
			logrus.WithError(err).Error("Erro ao popular o banco de dados")
			apiErrors.WriteError(w, apiErrors.ErrSeedFailed, "failed to seed database", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"message": "Database seeded successfully"})
	}
}

// RunSeedReset dispara manualmente o reset agendado
func RunSeedReset(resetScheduler SeedResetScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunSeedReset")

		if !resetScheduler.TriggerManualReset() {
			respondJSON(w, http.StatusConflict, map[string]any{
				"message": "Reset dos dados já está em andamento",
				"started": false,
			})
			return
		}

		respondJSON(w, http.StatusAccepted, map[string]any{
			"message": "Reset dos dados iniciado com sucesso",
			"started": true,
		})
	}
}

func GetSeedResetStatus(resetScheduler SeedResetScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resetScheduler.GetStatus())
	}
}
