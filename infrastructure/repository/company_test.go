package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

func companyRow(rows *sqlmock.Rows, id int, name string, marketCap any) *sqlmock.Rows {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(id, name, "TCK", "TECH", nil, nil, marketCap, "US", nil, nil, nil, nil, now, now)
}

func TestCompanyRepository_ListCompanies(t *testing.T) {
	t.Run("Aplica filtros e paginação com parâmetros vinculados", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := companyRow(sqlmock.NewRows(companyColumns), 7, "Apple Inc.", "2900000000000")
		mock.ExpectQuery(`FROM companies WHERE industry_code = \$1 AND \(name ILIKE \$2 OR ticker ILIKE \$3\) ORDER BY market_cap DESC NULLS LAST, id ASC LIMIT 10 OFFSET 20`).
			WithArgs("TECH", "%app%", "%app%").
			WillReturnRows(rows)

		repo := NewCompanyRepository(db)
		companies, err := repo.ListCompanies(context.Background(), domain.CompanyFilters{
			Industry: "TECH",
			Search:   "app",
			Limit:    10,
			Offset:   20,
		})

		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, 7, companies[0].ID)
		assert.True(t, companies[0].MarketCap.Valid)
		assert.True(t, decimal.RequireFromString("2900000000000").Equal(companies[0].MarketCap.Decimal))
		assert.Equal(t, "TECH", *companies[0].IndustryCode)
		assert.Nil(t, companies[0].Website)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Escapa curingas do termo de busca", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM companies WHERE \(name ILIKE \$1 OR ticker ILIKE \$2\)`).
			WithArgs(`%50\%\_off%`, `%50\%\_off%`).
			WillReturnRows(sqlmock.NewRows(companyColumns))

		repo := NewCompanyRepository(db)
		_, err = repo.ListCompanies(context.Background(), domain.CompanyFilters{Search: "50%_off", Limit: 50})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Retorna lista vazia quando não há empresas", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM companies ORDER BY market_cap DESC NULLS LAST, id ASC LIMIT 50 OFFSET 0`).
			WillReturnRows(sqlmock.NewRows(companyColumns))

		repo := NewCompanyRepository(db)
		companies, err := repo.ListCompanies(context.Background(), domain.CompanyFilters{Limit: 50})

		require.NoError(t, err)
		assert.NotNil(t, companies)
		assert.Empty(t, companies)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Propaga erro do banco", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM companies`).WillReturnError(errors.New("connection refused"))

		repo := NewCompanyRepository(db)
		companies, err := repo.ListCompanies(context.Background(), domain.CompanyFilters{Limit: 50})

		assert.Error(t, err)
		assert.Nil(t, companies)
	})
}

func TestCompanyRepository_GetCompanyByID(t *testing.T) {
	t.Run("Retorna a empresa encontrada", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM companies WHERE id = \$1`).
			WithArgs(3).
			WillReturnRows(companyRow(sqlmock.NewRows(companyColumns), 3, "Microsoft", nil))

		repo := NewCompanyRepository(db)
		company, err := repo.GetCompanyByID(context.Background(), 3)

		require.NoError(t, err)
		require.NotNil(t, company)
		assert.Equal(t, "Microsoft", company.Name)
		assert.False(t, company.MarketCap.Valid)
	})

	t.Run("Retorna nil quando a empresa não existe", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM companies WHERE id = \$1`).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows(companyColumns))

		repo := NewCompanyRepository(db)
		company, err := repo.GetCompanyByID(context.Background(), 999)

		assert.NoError(t, err)
		assert.Nil(t, company)
	})
}

func TestCompanyRepository_SearchCompanies(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := append(append([]string{}, companyColumns...), "rank")
	now := time.Now()
	rows := sqlmock.NewRows(columns).
		AddRow(1, "Cloud Corp", nil, "TECH", nil, nil, "5000000000", "US", nil, nil, nil, "cloud software", now, now, 0.42)

	industry := "TECH"
	minCap := decimal.NewFromInt(1000000)
	mock.ExpectQuery(`plainto_tsquery\('english', \$1\)\) AS rank FROM companies WHERE .+ @@ plainto_tsquery\('english', \$2\) AND industry_code = \$3 AND market_cap >= \$4 ORDER BY rank DESC, market_cap DESC NULLS LAST LIMIT 20`).
		WithArgs("cloud software", "cloud software", "TECH", "1000000").
		WillReturnRows(rows)

	repo := NewCompanyRepository(db)
	results, err := repo.SearchCompanies(context.Background(), "cloud software", &domain.SearchFilters{
		Industry:     &industry,
		MinMarketCap: &minCap,
	}, domain.SearchResultsLimit)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cloud Corp", results[0].Name)
	assert.InDelta(t, 0.42, results[0].Rank, 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_CompareCompanies(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "ticker", "market_cap", "avg_revenue", "growth_rate", "avg_sentiment"}).
		AddRow(1, "A", "AAA", "5000000000", "100", "12.5", "0.7").
		AddRow(2, "B", nil, "3000000000", nil, nil, nil)

	mock.ExpectQuery(`INTERVAL '30 days'\) AS avg_sentiment FROM companies c WHERE c.id IN \(\$3,\$4\) ORDER BY c.id ASC`).
		WithArgs(domain.MetricTypeRevenue, domain.MetricTypeRevenueGrowth, 1, 2).
		WillReturnRows(rows)

	repo := NewCompanyRepository(db)
	comparisons, err := repo.CompareCompanies(context.Background(), []int{1, 2})

	require.NoError(t, err)
	require.Len(t, comparisons, 2)
	assert.True(t, comparisons[0].GrowthRate.Valid)
	assert.False(t, comparisons[1].GrowthRate.Valid)
	assert.False(t, comparisons[1].AvgSentiment.Valid)
	assert.Nil(t, comparisons[1].Ticker)
	assert.NoError(t, mock.ExpectationsWereMet())
}
