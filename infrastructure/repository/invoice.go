package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/internal/domain"
)

const (
	invoicesTable  = "invoices"
	customersTable = "customers"

	invoicesCustomersJoin = "customers ON invoices.customer_id = customers.id"
)

type InvoiceRepository interface {
	ListLatestInvoices(ctx context.Context, limit uint64) ([]domain.LatestInvoiceRaw, error)
	CountInvoices(ctx context.Context) (int64, error)
	SumInvoiceAmountsByStatus(ctx context.Context) (*domain.InvoiceTotals, error)
	ListFilteredInvoices(ctx context.Context, pattern string, limit, offset uint64) ([]domain.InvoicesTable, error)
	CountFilteredInvoices(ctx context.Context, pattern string) (int64, error)
	GetInvoiceByID(ctx context.Context, id int) (*domain.Invoice, error)
}

type invoiceRepository struct {
	conn database.Conn
}

func NewInvoiceRepository(conn database.Conn) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// invoiceSearch aplica o padrão a todas as colunas pesquisáveis, valores e datas como texto
func invoiceSearch(pattern string) squirrel.Or {
	return squirrel.Or{
		squirrel.Expr("UPPER(customers.name) LIKE ?", pattern),
		squirrel.Expr("UPPER(customers.email) LIKE ?", pattern),
		squirrel.Expr("UPPER(CAST(invoices.amount AS TEXT)) LIKE ?", pattern),
		squirrel.Expr("UPPER(CAST(invoices.date AS TEXT)) LIKE ?", pattern),
		squirrel.Expr("UPPER(invoices.status) LIKE ?", pattern),
	}
}

func (r *invoiceRepository) ListLatestInvoices(ctx context.Context, limit uint64) ([]domain.LatestInvoiceRaw, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(
			"invoices.amount",
			"customers.name",
			"customers.image_url",
			"customers.email",
			"invoices.id",
		).
		From(invoicesTable).
		Join(invoicesCustomersJoin).
		OrderBy("invoices.date DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.LatestInvoiceRaw, 0)
	for rows.Next() {
		var invoice domain.LatestInvoiceRaw
		if err := rows.Scan(
			&invoice.Amount,
			&invoice.Name,
			&invoice.ImageURL,
			&invoice.Email,
			&invoice.ID,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("COUNT(*)").
		From(invoicesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas: %w", err)
	}

	return count, nil
}

func (r *invoiceRepository) SumInvoiceAmountsByStatus(ctx context.Context) (*domain.InvoiceTotals, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(
			"COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid",
			"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending",
		).
		From(invoicesTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.InvoiceTotals{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Paid, &totals.Pending); err != nil {
		return nil, fmt.Errorf("erro ao somar faturas por status: %w", err)
	}

	return totals, nil
}

func (r *invoiceRepository) ListFilteredInvoices(ctx context.Context, pattern string, limit, offset uint64) ([]domain.InvoicesTable, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(
			"invoices.id",
			"invoices.customer_id",
			"invoices.amount",
			"CAST(invoices.date AS TEXT) AS date",
			"invoices.status",
			"customers.name",
			"customers.email",
			"customers.image_url",
		).
		From(invoicesTable).
		Join(invoicesCustomersJoin).
		Where(invoiceSearch(pattern)).
		OrderBy("invoices.date DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.InvoicesTable, 0)
	for rows.Next() {
		var invoice domain.InvoicesTable
		if err := rows.Scan(
			&invoice.ID,
			&invoice.CustomerID,
			&invoice.Amount,
			&invoice.Date,
			&invoice.Status,
			&invoice.Name,
			&invoice.Email,
			&invoice.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) CountFilteredInvoices(ctx context.Context, pattern string) (int64, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("COUNT(*)").
		From(invoicesTable).
		Join(invoicesCustomersJoin).
		Where(invoiceSearch(pattern)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas filtradas: %w", err)
	}

	return count, nil
}

func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, id int) (*domain.Invoice, error) {
	query, args, err := r.conn.StatementBuilder().
		Select(
			"invoices.id",
			"invoices.customer_id",
			"invoices.amount",
			"invoices.status",
		).
		From(invoicesTable).
		Where(squirrel.Eq{"invoices.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var invoice domain.Invoice
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.Amount,
		&invoice.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fatura %d: %w", id, err)
	}

	return &invoice, nil
}
