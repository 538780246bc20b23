package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/internal/domain"
)

const usersTable = "users"

// SeedRepository executa o DDL e as escritas do seed. Os métodos recebem o
// Queryer da transação aberta por RunInTransaction.
type SeedRepository interface {
	RunInTransaction(ctx context.Context, fn func(q database.Queryer) error) error

	CreateUsersTable(ctx context.Context, q database.Queryer) error
	DeleteUsers(ctx context.Context, q database.Queryer) error
	InsertUser(ctx context.Context, q database.Queryer, user domain.User) (*domain.User, error)

	CreateCustomersTable(ctx context.Context, q database.Queryer) error
	DeleteCustomers(ctx context.Context, q database.Queryer) error
	InsertCustomer(ctx context.Context, q database.Queryer, customer domain.Customer) (*domain.Customer, error)

	CreateInvoicesTable(ctx context.Context, q database.Queryer) error
	DeleteInvoices(ctx context.Context, q database.Queryer) error
	InsertInvoice(ctx context.Context, q database.Queryer, invoice domain.SeedInvoice) (*domain.Invoice, error)

	CreateRevenueTable(ctx context.Context, q database.Queryer) error
	DeleteRevenue(ctx context.Context, q database.Queryer) error
	InsertRevenue(ctx context.Context, q database.Queryer, revenue domain.Revenue) (*domain.Revenue, error)
}

type seedRepository struct {
	conn database.Conn
}

func NewSeedRepository(conn database.Conn) SeedRepository {
	return &seedRepository{
		conn: conn,
	}
}

func (r *seedRepository) RunInTransaction(ctx context.Context, fn func(q database.Queryer) error) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return fn(tx)
	})
}

func (r *seedRepository) exec(ctx context.Context, q database.Queryer, statement string) error {
	_, err := q.ExecContext(ctx, statement)
	return err
}

func (r *seedRepository) deleteAll(ctx context.Context, q database.Queryer, table string) error {
	query, args, err := r.conn.StatementBuilder().Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao limpar tabela %s: %w", table, err)
	}

	return nil
}

func (r *seedRepository) CreateUsersTable(ctx context.Context, q database.Queryer) error {
	if err := r.exec(ctx, q, r.conn.Dialect().CreateUsersTable); err != nil {
		return fmt.Errorf("erro ao criar tabela users: %w", err)
	}
	return nil
}

func (r *seedRepository) DeleteUsers(ctx context.Context, q database.Queryer) error {
	return r.deleteAll(ctx, q, usersTable)
}

func (r *seedRepository) InsertUser(ctx context.Context, q database.Queryer, user domain.User) (*domain.User, error) {
	query, args, err := r.conn.StatementBuilder().
		Insert(usersTable).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir usuário %s: %w", user.Email, err)
	}

	return &user, nil
}

func (r *seedRepository) CreateCustomersTable(ctx context.Context, q database.Queryer) error {
	if err := r.exec(ctx, q, r.conn.Dialect().CreateCustomersTable); err != nil {
		return fmt.Errorf("erro ao criar tabela customers: %w", err)
	}
	return nil
}

func (r *seedRepository) DeleteCustomers(ctx context.Context, q database.Queryer) error {
	return r.deleteAll(ctx, q, customersTable)
}

func (r *seedRepository) InsertCustomer(ctx context.Context, q database.Queryer, customer domain.Customer) (*domain.Customer, error) {
	query, args, err := r.conn.StatementBuilder().
		Insert(customersTable).
		Columns("name", "email", "image_url").
		Values(customer.Name, customer.Email, customer.ImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&customer.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir cliente %s: %w", customer.Email, err)
	}

	return &customer, nil
}

func (r *seedRepository) CreateInvoicesTable(ctx context.Context, q database.Queryer) error {
	if err := r.exec(ctx, q, r.conn.Dialect().CreateInvoicesTable); err != nil {
		return fmt.Errorf("erro ao criar tabela invoices: %w", err)
	}
	return nil
}

func (r *seedRepository) DeleteInvoices(ctx context.Context, q database.Queryer) error {
	return r.deleteAll(ctx, q, invoicesTable)
}

// InsertInvoice resolve o customer_id pelo email do cliente
func (r *seedRepository) InsertInvoice(ctx context.Context, q database.Queryer, invoice domain.SeedInvoice) (*domain.Invoice, error) {
	query, args, err := r.conn.StatementBuilder().
		Insert(invoicesTable).
		Columns("customer_id", "amount", "status", "date").
		Values(
			squirrel.Expr("(SELECT id FROM customers WHERE email = ?)", invoice.CustomerEmail),
			invoice.Amount,
			string(invoice.Status),
			invoice.Date,
		).
		Suffix("RETURNING id, customer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	inserted := domain.Invoice{
		Amount: invoice.Amount,
		Status: invoice.Status,
		Date:   invoice.Date,
	}
	if err := q.QueryRowContext(ctx, query, args...).Scan(&inserted.ID, &inserted.CustomerID); err != nil {
		return nil, fmt.Errorf("erro ao inserir fatura de %s: %w", invoice.CustomerEmail, err)
	}

	return &inserted, nil
}

func (r *seedRepository) CreateRevenueTable(ctx context.Context, q database.Queryer) error {
	if err := r.exec(ctx, q, r.conn.Dialect().CreateRevenueTable); err != nil {
		return fmt.Errorf("erro ao criar tabela revenue: %w", err)
	}
	return nil
}

func (r *seedRepository) DeleteRevenue(ctx context.Context, q database.Queryer) error {
	return r.deleteAll(ctx, q, revenueTable)
}

func (r *seedRepository) InsertRevenue(ctx context.Context, q database.Queryer, revenue domain.Revenue) (*domain.Revenue, error) {
	query, args, err := r.conn.StatementBuilder().
		Insert(revenueTable).
		Columns("month", "revenue").
		Values(revenue.Month, revenue.Revenue).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir receita de %s: %w", revenue.Month, err)
	}

	return &revenue, nil
}
