package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-api/internal/config"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
)

var only []string

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Popula o banco com os dados de demonstração",
	Long: `Cria as tabelas users, customers, invoices e revenue, apaga as linhas
existentes e insere os dados de demonstração. Cada etapa roda na sua própria
transação; uma falha interrompe as etapas seguintes sem desfazer as anteriores.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := seeding.ParseSteps(only)
		if err != nil {
			return err
		}

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("erro ao carregar configuração: %w", err)
		}

		if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
			logrus.SetLevel(level)
		}

		conn, err := database.NewConnection(cmd.Context(), cfg.Database)
		if err != nil {
			return fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
		}
		defer conn.Close()

		seeder := seeding.NewService(repository.NewSeedRepository(conn), seeding.PlaceholderData())

		result, err := seeder.SeedSteps(cmd.Context(), steps...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Database seeded successfully")
		fmt.Fprintf(out, "  users:     %d\n", len(result.Users))
		fmt.Fprintf(out, "  customers: %d\n", result.Customers)
		fmt.Fprintf(out, "  invoices:  %d\n", len(result.Invoices))
		fmt.Fprintf(out, "  revenue:   %d\n", len(result.Revenue))
		return nil
	},
}

func init() {
	rootCmd.Flags().StringSliceVar(&only, "only", nil, "etapas a executar (users,customers,invoices,revenue)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
