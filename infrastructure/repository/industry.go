package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

type IndustryRepository interface {
	GetIndustryAnalysis(ctx context.Context, code string) (*domain.IndustryAnalysis, error)
}

type industryRepository struct {
	conn postgres.Queryer
}

func NewIndustryRepository(conn postgres.Queryer) IndustryRepository {
	return &industryRepository{
		conn: conn,
	}
}

// GetIndustryAnalysis agrega as empresas do setor. Retorna nil quando o
// código não existe na tabela industries.
func (r *industryRepository) GetIndustryAnalysis(ctx context.Context, code string) (*domain.IndustryAnalysis, error) {
	// a média de market cap vem de subconsulta porque o join com
	// financial_metrics repete a empresa uma vez por métrica
	sqlQuery, args, err := squirrel.
		Select(
			"i.code",
			"i.name",
			"COUNT(DISTINCT c.id) AS company_count",
			"(SELECT AVG(c2.market_cap) FROM companies c2 WHERE c2.industry_code = i.code) AS avg_market_cap",
			"AVG(fm.value) AS avg_revenue_growth",
		).
		From("industries i").
		LeftJoin("companies c ON c.industry_code = i.code").
		LeftJoin("financial_metrics fm ON fm.company_id = c.id AND fm.metric_type = ?", domain.MetricTypeRevenueGrowth).
		Where(squirrel.Eq{"i.code": code}).
		GroupBy("i.code", "i.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var analysis domain.IndustryAnalysis
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&analysis.IndustryCode,
		&analysis.IndustryName,
		&analysis.CompanyCount,
		&analysis.AvgMarketCap,
		&analysis.AvgRevenueGrowth,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar análise do setor: %w", err)
	}

	return &analysis, nil
}
