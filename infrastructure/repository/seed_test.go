package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-api/internal/domain"
	"github.com/vfg2006/dashboard-api/internal/usecases/seeding"
)

func countRows(t *testing.T, conn *database.Connection, table string) int {
	t.Helper()

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}

func TestSeed_IsIdempotent(t *testing.T) {
	conn, first := seededConnection(t)

	assert.Len(t, first.Users, 1)
	assert.Equal(t, 6, first.Customers)
	assert.Len(t, first.Invoices, 13)
	assert.Len(t, first.Revenue, 12)

	seeder := seeding.NewService(repository.NewSeedRepository(conn), seeding.PlaceholderData())
	_, err := seeder.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, conn, "users"))
	assert.Equal(t, 6, countRows(t, conn, "customers"))
	assert.Equal(t, 13, countRows(t, conn, "invoices"))
	assert.Equal(t, 12, countRows(t, conn, "revenue"))
}

func TestSeed_InvoicesReferenceCustomers(t *testing.T) {
	conn, _ := seededConnection(t)

	var orphans int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM invoices
		LEFT JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.id IS NULL`).Scan(&orphans)

	require.NoError(t, err)
	assert.Zero(t, orphans)
}

func TestSeed_UserPasswordIsHashed(t *testing.T) {
	conn, seeded := seededConnection(t)

	var stored string
	require.NoError(t, conn.QueryRow("SELECT password FROM users WHERE email = ?", "user@nextmail.com").Scan(&stored))

	assert.Equal(t, seeded.Users[0].PasswordHash, stored)
	assert.NotEqual(t, "123456", stored)
}

func TestSeedRepository_InsertInvoice_UnknownCustomer(t *testing.T) {
	conn, _ := seededConnection(t)
	repo := repository.NewSeedRepository(conn)

	_, err := repo.InsertInvoice(context.Background(), conn, domain.SeedInvoice{
		CustomerEmail: "ghost@nowhere.com",
		Amount:        100,
		Status:        domain.InvoiceStatusPaid,
		Date:          "2024-01-01",
	})

	assert.Error(t, err)
	assert.Equal(t, 13, countRows(t, conn, "invoices"))
}

func TestSeedRepository_RunInTransaction_RollsBack(t *testing.T) {
	conn, _ := seededConnection(t)
	repo := repository.NewSeedRepository(conn)
	ctx := context.Background()

	err := repo.RunInTransaction(ctx, func(q database.Queryer) error {
		if err := repo.DeleteRevenue(ctx, q); err != nil {
			return err
		}
		_, err := repo.InsertRevenue(ctx, q, domain.Revenue{Month: "Jan", Revenue: 1})
		if err != nil {
			return err
		}
		// mês duplicado viola a constraint UNIQUE
		_, err = repo.InsertRevenue(ctx, q, domain.Revenue{Month: "Jan", Revenue: 2})
		return err
	})

	assert.Error(t, err)
	assert.Equal(t, 12, countRows(t, conn, "revenue"))
}
