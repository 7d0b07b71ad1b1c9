package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const industryAnalysisQuery = `FROM industries i LEFT JOIN companies c ON c.industry_code = i.code LEFT JOIN financial_metrics fm ON fm.company_id = c.id AND fm.metric_type = \$1 WHERE i.code = \$2 GROUP BY i.code, i.name`

func TestIndustryRepository_GetIndustryAnalysis(t *testing.T) {
	columns := []string{"code", "name", "company_count", "avg_market_cap", "avg_revenue_growth"}

	t.Run("Agrega as empresas do setor", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(industryAnalysisQuery).
			WithArgs("revenue_growth", "TECH").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("TECH", "Technology", 3, "2500000000", "8.25"))

		repo := NewIndustryRepository(db)
		analysis, err := repo.GetIndustryAnalysis(context.Background(), "TECH")

		require.NoError(t, err)
		require.NotNil(t, analysis)
		assert.Equal(t, "Technology", analysis.IndustryName)
		assert.Equal(t, 3, analysis.CompanyCount)
		assert.Equal(t, "8.25", analysis.AvgRevenueGrowth.Decimal.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Setor sem empresas tem médias nulas", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(industryAnalysisQuery).
			WithArgs("revenue_growth", "EMPTY").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("EMPTY", "Empty", 0, nil, nil))

		repo := NewIndustryRepository(db)
		analysis, err := repo.GetIndustryAnalysis(context.Background(), "EMPTY")

		require.NoError(t, err)
		require.NotNil(t, analysis)
		assert.Zero(t, analysis.CompanyCount)
		assert.False(t, analysis.AvgMarketCap.Valid)
		assert.False(t, analysis.AvgRevenueGrowth.Valid)
	})

	t.Run("Código desconhecido retorna nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(industryAnalysisQuery).
			WithArgs("revenue_growth", "NOPE").
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewIndustryRepository(db)
		analysis, err := repo.GetIndustryAnalysis(context.Background(), "NOPE")

		assert.NoError(t, err)
		assert.Nil(t, analysis)
	})
}
