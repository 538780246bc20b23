package database

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dashboard-api/internal/config"
)

// Dialect agrupa o que muda entre os bancos suportados
type Dialect struct {
	Name        string
	Placeholder squirrel.PlaceholderFormat

	CreateUsersTable     string
	CreateCustomersTable string
	CreateInvoicesTable  string
	CreateRevenueTable   string
}

var Postgres = Dialect{
	Name:        config.DriverPostgres,
	Placeholder: squirrel.Dollar,
	CreateUsersTable: `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
	CreateCustomersTable: `
		CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		)`,
	CreateInvoicesTable: `
		CREATE TABLE IF NOT EXISTS invoices (
			id SERIAL PRIMARY KEY,
			customer_id INT NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL
		)`,
	CreateRevenueTable: `
		CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		)`,
}

var SQLite = Dialect{
	Name:        config.DriverSQLite,
	Placeholder: squirrel.Question,
	CreateUsersTable: `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
	CreateCustomersTable: `
		CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			image_url TEXT NOT NULL
		)`,
	CreateInvoicesTable: `
		CREATE TABLE IF NOT EXISTS invoices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL,
			amount INTEGER NOT NULL,
			status TEXT NOT NULL,
			date TEXT NOT NULL
		)`,
	CreateRevenueTable: `
		CREATE TABLE IF NOT EXISTS revenue (
			month TEXT NOT NULL UNIQUE,
			revenue INTEGER NOT NULL
		)`,
}

func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return Postgres, nil
	case config.DriverSQLite:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("dialeto não suportado: %s", driver)
	}
}
