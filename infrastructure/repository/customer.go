package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/internal/domain"
)

type CustomerRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	ListCustomers(ctx context.Context) ([]domain.CustomerField, error)
	ListFilteredCustomers(ctx context.Context, pattern string) ([]domain.CustomersTableRaw, error)
}

type customerRepository struct {
	conn database.Conn
}

func NewCustomerRepository(conn database.Conn) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CountCustomers(ctx context.Context) (int64, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("COUNT(*)").
		From(customersTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]domain.CustomerField, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("id", "name").
		From(customersTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.CustomerField, 0)
	for rows.Next() {
		var customer domain.CustomerField
		if err := rows.Scan(&customer.ID, &customer.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) ListFilteredCustomers(ctx context.Context, pattern string) ([]domain.CustomersTableRaw, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(
			"customers.id",
			"customers.name",
			"customers.email",
			"customers.image_url",
			"COUNT(invoices.id) AS total_invoices",
			"COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending",
			"COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid",
		).
		From(customersTable).
		LeftJoin("invoices ON customers.id = invoices.customer_id").
		Where(squirrel.Or{
			squirrel.Expr("UPPER(customers.name) LIKE ?", pattern),
			squirrel.Expr("UPPER(customers.email) LIKE ?", pattern),
		}).
		GroupBy("customers.id", "customers.name", "customers.email", "customers.image_url").
		OrderBy("customers.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.CustomersTableRaw, 0)
	for rows.Next() {
		var customer domain.CustomersTableRaw
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.ImageURL,
			&customer.TotalInvoices,
			&customer.TotalPending,
			&customer.TotalPaid,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}
