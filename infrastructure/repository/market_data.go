package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

type MarketDataRepository interface {
	ListRecentByCompany(ctx context.Context, companyID int, limit uint64) ([]domain.MarketData, error)
}

type marketDataRepository struct {
	conn postgres.Queryer
}

func NewMarketDataRepository(conn postgres.Queryer) MarketDataRepository {
	return &marketDataRepository{
		conn: conn,
	}
}

func (r *marketDataRepository) ListRecentByCompany(ctx context.Context, companyID int, limit uint64) ([]domain.MarketData, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "company_id", "price", "volume", "market_cap", "measured_at").
		From("market_data").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("measured_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	data := make([]domain.MarketData, 0)
	for rows.Next() {
		var item domain.MarketData
		if err := rows.Scan(
			&item.ID,
			&item.CompanyID,
			&item.Price,
			&item.Volume,
			&item.MarketCap,
			&item.MeasuredAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear dados de mercado: %w", err)
		}
		data = append(data, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return data, nil
}
