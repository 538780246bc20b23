package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-api/internal/api"
	"github.com/vfg2006/dashboard-api/internal/config"
	"github.com/vfg2006/dashboard-api/internal/scheduler"
	"github.com/vfg2006/dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	invoiceRepo := repository.NewInvoiceRepository(conn)
	customerRepo := repository.NewCustomerRepository(conn)
	revenueRepo := repository.NewRevenueRepository(conn)
	seedRepo := repository.NewSeedRepository(conn)

	dashboardService := dashboard.NewService(invoiceRepo, customerRepo, revenueRepo)
	seeder := seeding.NewService(seedRepo, seeding.PlaceholderData())

	seedResetService := scheduler.NewSeedResetService(seeder, cfg)
	if err := seedResetService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reset dos dados de demonstração")
	} else {
		logrus.Info("Agendador de reset dos dados de demonstração iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, seeder, seedResetService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs sem alterar o diretório de trabalho
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn abre a conexão com o banco configurado em DATABASE_DRIVER
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
