package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/dashboard-api/infrastructure/database"
	"github.com/vfg2006/dashboard-api/internal/domain"
)

const revenueTable = "revenue"

type RevenueRepository interface {
	ListRevenue(ctx context.Context) ([]domain.Revenue, error)
}

type revenueRepository struct {
	conn database.Conn
}

func NewRevenueRepository(conn database.Conn) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) ListRevenue(ctx context.Context) ([]domain.Revenue, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("month", "revenue").
		From(revenueTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	revenue := make([]domain.Revenue, 0)
	for rows.Next() {
		var item domain.Revenue
		if err := rows.Scan(&item.Month, &item.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita: %w", err)
		}
		revenue = append(revenue, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenue, nil
}
