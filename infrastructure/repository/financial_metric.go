package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

type FinancialMetricRepository interface {
	ListRecentByCompany(ctx context.Context, companyID int, limit uint64) ([]domain.FinancialMetric, error)
	AverageMetrics(ctx context.Context, companyIDs []int, metricTypes []string) (map[int]map[string]decimal.Decimal, error)
}

type financialMetricRepository struct {
	conn postgres.Queryer
}

func NewFinancialMetricRepository(conn postgres.Queryer) FinancialMetricRepository {
	return &financialMetricRepository{
		conn: conn,
	}
}

func (r *financialMetricRepository) ListRecentByCompany(ctx context.Context, companyID int, limit uint64) ([]domain.FinancialMetric, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "company_id", "metric_type", "value", "unit", "period_type", "period_date", "source", "created_at").
		From("financial_metrics").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("period_date DESC NULLS LAST", "id DESC").
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

	metrics := make([]domain.FinancialMetric, 0)
	for rows.Next() {
		var metric domain.FinancialMetric
		if err := rows.Scan(
			&metric.ID,
			&metric.CompanyID,
			&metric.MetricType,
			&metric.Value,
			&metric.Unit,
			&metric.PeriodType,
			&metric.PeriodDate,
			&metric.Source,
			&metric.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica financeira: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

// AverageMetrics retorna, por empresa, a média de cada tipo de métrica pedido.
// Tipos sem valor algum ficam fora do mapa.
func (r *financialMetricRepository) AverageMetrics(
	ctx context.Context,
	companyIDs []int,
	metricTypes []string,
) (map[int]map[string]decimal.Decimal, error) {
	result := make(map[int]map[string]decimal.Decimal)
	if len(companyIDs) == 0 || len(metricTypes) == 0 {
		return result, nil
	}

	sqlQuery, args, err := squirrel.
		Select("company_id", "metric_type", "AVG(value)").
		From("financial_metrics").
		Where(squirrel.Eq{"company_id": companyIDs}).
		Where(squirrel.Eq{"metric_type": metricTypes}).
		GroupBy("company_id", "metric_type").
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

	for rows.Next() {
		var (
			companyID  int
			metricType string
			average    decimal.NullDecimal
		)
		if err := rows.Scan(&companyID, &metricType, &average); err != nil {
			return nil, fmt.Errorf("erro ao escanear média de métrica: %w", err)
		}
		if !average.Valid {
			continue
		}
		if result[companyID] == nil {
			result[companyID] = make(map[string]decimal.Decimal)
		}
		result[companyID][metricType] = average.Decimal
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
