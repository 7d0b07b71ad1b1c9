package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

const (
	companiesTable = "companies"

	// searchDocument precisa ser idêntico à expressão do índice idx_companies_search
	searchDocument = "to_tsvector('english', name || ' ' || coalesce(description, ''))"
)

var companyColumns = []string{
	"id",
	"name",
	"ticker",
	"industry_code",
	"naics_code",
	"sic_code",
	"market_cap",
	"headquarters_country",
	"founded_date",
	"employee_count",
	"website",
	"description",
	"created_at",
	"updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type CompanyRepository interface {
	ListCompanies(ctx context.Context, filters domain.CompanyFilters) ([]domain.Company, error)
	GetCompanyByID(ctx context.Context, id int) (*domain.Company, error)
	SearchCompanies(ctx context.Context, query string, filters *domain.SearchFilters, limit uint64) ([]domain.SearchResult, error)
	CompareCompanies(ctx context.Context, ids []int) ([]domain.CompanyComparison, error)
}

type companyRepository struct {
	conn postgres.Queryer
}

func NewCompanyRepository(conn postgres.Queryer) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) ListCompanies(ctx context.Context, filters domain.CompanyFilters) ([]domain.Company, error) {
	queryBuilder := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		OrderBy("market_cap DESC NULLS LAST", "id ASC").
		Limit(filters.Limit).
		Offset(filters.Offset).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Industry != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"industry_code": filters.Industry})
	}

	if filters.Search != "" {
		pattern := "%" + likeEscaper.Replace(filters.Search) + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"ticker": pattern},
		})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(companyScanFields(&company)...); err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

// GetCompanyByID retorna nil quando a empresa não existe
func (r *companyRepository) GetCompanyByID(ctx context.Context, id int) (*domain.Company, error) {
	sqlQuery, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var company domain.Company
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(companyScanFields(&company)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return &company, nil
}

func (r *companyRepository) SearchCompanies(
	ctx context.Context,
	query string,
	filters *domain.SearchFilters,
	limit uint64,
) ([]domain.SearchResult, error) {
	queryBuilder := squirrel.
		Select(companyColumns...).
		Column(squirrel.Expr("ts_rank("+searchDocument+", plainto_tsquery('english', ?)) AS rank", query)).
		From(companiesTable).
		Where(squirrel.Expr(searchDocument+" @@ plainto_tsquery('english', ?)", query)).
		OrderBy("rank DESC", "market_cap DESC NULLS LAST").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Industry != nil && *filters.Industry != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"industry_code": *filters.Industry})
		}
		if filters.Country != nil && *filters.Country != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"headquarters_country": *filters.Country})
		}
		if filters.MinMarketCap != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"market_cap": *filters.MinMarketCap})
		}
		if filters.MaxMarketCap != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"market_cap": *filters.MaxMarketCap})
		}
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.SearchResult, 0)
	for rows.Next() {
		var result domain.SearchResult
		fields := append(companyScanFields(&result.Company), &result.Rank)
		if err := rows.Scan(fields...); err != nil {
			return nil, fmt.Errorf("erro ao escanear resultado da busca: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

// CompareCompanies calcula as médias de receita, crescimento e sentimento
// de cada empresa. As subconsultas evitam que os joins multipliquem linhas.
func (r *companyRepository) CompareCompanies(ctx context.Context, ids []int) ([]domain.CompanyComparison, error) {
	sentimentColumn := fmt.Sprintf(
		"(SELECT AVG(ns.sentiment_score) FROM news_sentiment ns WHERE ns.company_id = c.id AND ns.published_at >= NOW() - INTERVAL '%d days') AS avg_sentiment",
		domain.SentimentWindowDays,
	)

	sqlQuery, args, err := squirrel.
		Select("c.id", "c.name", "c.ticker", "c.market_cap").
		Column("(SELECT AVG(fm.value) FROM financial_metrics fm WHERE fm.company_id = c.id AND fm.metric_type = ?) AS avg_revenue", domain.MetricTypeRevenue).
		Column("(SELECT AVG(fm.value) FROM financial_metrics fm WHERE fm.company_id = c.id AND fm.metric_type = ?) AS growth_rate", domain.MetricTypeRevenueGrowth).
		Column(sentimentColumn).
		From(companiesTable + " c").
		Where(squirrel.Eq{"c.id": ids}).
		OrderBy("c.id ASC").
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

	comparisons := make([]domain.CompanyComparison, 0, len(ids))
	for rows.Next() {
		var item domain.CompanyComparison
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Ticker,
			&item.MarketCap,
			&item.AvgRevenue,
			&item.GrowthRate,
			&item.AvgSentiment,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear comparação: %w", err)
		}
		comparisons = append(comparisons, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return comparisons, nil
}

func companyScanFields(company *domain.Company) []any {
	return []any{
		&company.ID,
		&company.Name,
		&company.Ticker,
		&company.IndustryCode,
		&company.NAICSCode,
		&company.SICCode,
		&company.MarketCap,
		&company.HeadquartersCountry,
		&company.FoundedDate,
		&company.EmployeeCount,
		&company.Website,
		&company.Description,
		&company.CreatedAt,
		&company.UpdatedAt,
	}
}
