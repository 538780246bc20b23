package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// respondDashboardError traduz o erro da camada de dados para o envelope da API
func respondDashboardError(w http.ResponseWriter, err error) {
	var dashboardErr *dashboard.DashboardError
	if errors.As(err, &dashboardErr) {
		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no dashboard")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
