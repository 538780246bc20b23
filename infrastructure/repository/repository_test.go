package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-api/internal/config"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
)

// newTestConnection abre um SQLite em memória exclusivo para o teste
func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := database.NewConnection(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		DSN:    "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

// seededConnection devolve uma conexão já populada com os dados de demonstração
func seededConnection(t *testing.T) (*database.Connection, *domain.SeedResult) {
	t.Helper()

	conn := newTestConnection(t)
	seeder := seeding.NewService(repository.NewSeedRepository(conn), seeding.PlaceholderData())

	result, err := seeder.Seed(context.Background())
	require.NoError(t, err)

	return conn, result
}
