package company

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/company-intel-api/infrastructure/cache"
	cacheMocks "github.com/vfg2006/company-intel-api/infrastructure/cache/mocks"
	repositoryMocks "github.com/vfg2006/company-intel-api/infrastructure/repository/mocks"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	companyRepo    *repositoryMocks.MockCompanyRepository
	metricRepo     *repositoryMocks.MockFinancialMetricRepository
	marketDataRepo *repositoryMocks.MockMarketDataRepository
	industryRepo   *repositoryMocks.MockIndustryRepository
	cache          *cacheMocks.MockCache
}

func setupService(t *testing.T, withCache bool) (CompanyService, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		companyRepo:    repositoryMocks.NewMockCompanyRepository(ctrl),
		metricRepo:     repositoryMocks.NewMockFinancialMetricRepository(ctrl),
		marketDataRepo: repositoryMocks.NewMockMarketDataRepository(ctrl),
		industryRepo:   repositoryMocks.NewMockIndustryRepository(ctrl),
		cache:          cacheMocks.NewMockCache(ctrl),
	}

	var responseCache cache.Cache
	if withCache {
		responseCache = m.cache
	}

	return NewService(m.companyRepo, m.metricRepo, m.marketDataRepo, m.industryRepo, responseCache), m
}

func assertCompanyError(t *testing.T, err error, expected error, code string) {
	t.Helper()

	assert.ErrorIs(t, err, expected)

	var companyErr *CompanyError
	require.True(t, errors.As(err, &companyErr))
	assert.Equal(t, code, companyErr.Code)
}

func TestService_ListCompanies(t *testing.T) {
	tests := []struct {
		name          string
		filters       domain.CompanyFilters
		expectedLimit uint64
	}{
		{"Aplica limite padrão", domain.CompanyFilters{}, domain.DefaultCompanyListLimit},
		{"Respeita limite informado", domain.CompanyFilters{Limit: 10, Offset: 20}, 10},
		{"Limita ao máximo permitido", domain.CompanyFilters{Limit: 5000}, domain.MaxCompanyListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := setupService(t, false)

			expectedFilters := tt.filters
			expectedFilters.Limit = tt.expectedLimit
			m.companyRepo.EXPECT().
				ListCompanies(gomock.Any(), expectedFilters).
				Return([]domain.Company{}, nil)

			companies, err := service.ListCompanies(context.Background(), tt.filters)

			require.NoError(t, err)
			assert.NotNil(t, companies)
		})
	}

	t.Run("Erro do banco vira erro de operação", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().ListCompanies(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.ListCompanies(context.Background(), domain.CompanyFilters{})

		assertCompanyError(t, err, ErrFetchCompanies, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_GetCompanyDetail(t *testing.T) {
	t.Run("Retorna empresa, métricas e dados de mercado", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().GetCompanyByID(gomock.Any(), 1).Return(&domain.Company{ID: 1, Name: "Alpha"}, nil)
		m.metricRepo.EXPECT().
			ListRecentByCompany(gomock.Any(), 1, uint64(domain.CompanyDetailRowsLimit)).
			Return([]domain.FinancialMetric{{ID: 10, CompanyID: 1, MetricType: "revenue"}}, nil)
		m.marketDataRepo.EXPECT().
			ListRecentByCompany(gomock.Any(), 1, uint64(domain.CompanyDetailRowsLimit)).
			Return(nil, nil)

		detail, err := service.GetCompanyDetail(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "Alpha", detail.Company.Name)
		assert.Len(t, detail.FinancialMetrics, 1)
		assert.NotNil(t, detail.MarketData)
		assert.Empty(t, detail.MarketData)
	})

	t.Run("Empresa inexistente retorna não encontrado", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().GetCompanyByID(gomock.Any(), 99).Return(nil, nil)
		m.metricRepo.EXPECT().ListRecentByCompany(gomock.Any(), 99, gomock.Any()).Return([]domain.FinancialMetric{}, nil)
		m.marketDataRepo.EXPECT().ListRecentByCompany(gomock.Any(), 99, gomock.Any()).Return([]domain.MarketData{}, nil)

		detail, err := service.GetCompanyDetail(context.Background(), 99)

		assert.Nil(t, detail)
		assertCompanyError(t, err, ErrCompanyNotFound, apiErrors.ErrResourceNotFound)
	})

	t.Run("Falha em uma consulta falha a requisição", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().GetCompanyByID(gomock.Any(), 2).Return(&domain.Company{ID: 2}, nil).MaxTimes(1)
		m.metricRepo.EXPECT().ListRecentByCompany(gomock.Any(), 2, gomock.Any()).Return(nil, errors.New("conn reset"))
		m.marketDataRepo.EXPECT().ListRecentByCompany(gomock.Any(), 2, gomock.Any()).Return(nil, nil).MaxTimes(1)

		detail, err := service.GetCompanyDetail(context.Background(), 2)

		assert.Nil(t, detail)
		assertCompanyError(t, err, ErrFetchCompanies, apiErrors.ErrDatabaseOperation)
	})

	t.Run("Id inválido não consulta o banco", func(t *testing.T) {
		service, _ := setupService(t, false)

		_, err := service.GetCompanyDetail(context.Background(), 0)

		assertCompanyError(t, err, ErrInvalidCompanyID, apiErrors.ErrInvalidFormat)
	})
}

func TestService_GetIndustryAnalysis(t *testing.T) {
	t.Run("Cache vazio consulta o banco e grava o resultado", func(t *testing.T) {
		service, m := setupService(t, true)
		analysis := &domain.IndustryAnalysis{IndustryCode: "TECH", IndustryName: "Technology", CompanyCount: 2}

		m.cache.EXPECT().Get(gomock.Any(), "industry:TECH", gomock.Any()).Return(cache.ErrMiss)
		m.industryRepo.EXPECT().GetIndustryAnalysis(gomock.Any(), "TECH").Return(analysis, nil)
		m.cache.EXPECT().Set(gomock.Any(), "industry:TECH", analysis).Return(nil)

		got, err := service.GetIndustryAnalysis(context.Background(), "TECH")

		require.NoError(t, err)
		assert.Equal(t, analysis, got)
	})

	t.Run("Cache preenchido não consulta o banco", func(t *testing.T) {
		service, m := setupService(t, true)

		m.cache.EXPECT().
			Get(gomock.Any(), "industry:TECH", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*(dest.(**domain.IndustryAnalysis)) = &domain.IndustryAnalysis{IndustryCode: "TECH", CompanyCount: 5}
				return nil
			})

		got, err := service.GetIndustryAnalysis(context.Background(), "TECH")

		require.NoError(t, err)
		assert.Equal(t, 5, got.CompanyCount)
	})

	t.Run("Falha do cache não falha a requisição", func(t *testing.T) {
		service, m := setupService(t, true)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		m.industryRepo.EXPECT().GetIndustryAnalysis(gomock.Any(), "TECH").Return(&domain.IndustryAnalysis{IndustryCode: "TECH"}, nil)
		m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		got, err := service.GetIndustryAnalysis(context.Background(), "TECH")

		require.NoError(t, err)
		assert.Equal(t, "TECH", got.IndustryCode)
	})

	t.Run("Setor desconhecido retorna nil", func(t *testing.T) {
		service, m := setupService(t, false)
		m.industryRepo.EXPECT().GetIndustryAnalysis(gomock.Any(), "NOPE").Return(nil, nil)

		got, err := service.GetIndustryAnalysis(context.Background(), "NOPE")

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestService_CompareCompanies(t *testing.T) {
	t.Run("Menos de duas empresas é inválido", func(t *testing.T) {
		tests := []struct {
			name string
			ids  []int
		}{
			{"Lista vazia", nil},
			{"Uma empresa", []int{1}},
			{"Ids repetidos", []int{3, 3}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, _ := setupService(t, false)

				_, err := service.CompareCompanies(context.Background(), &domain.CompareRequest{CompanyIDs: tt.ids})

				assertCompanyError(t, err, ErrNotEnoughCompanies, apiErrors.ErrInvalidRequest)
			})
		}
	})

	t.Run("Compara e gera insights", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().
			CompareCompanies(gomock.Any(), []int{1, 2}).
			Return([]domain.CompanyComparison{
				{ID: 1, Name: "Alpha", MarketCap: decimal.NewNullDecimal(decimal.NewFromInt(5_000_000_000))},
				{ID: 2, Name: "Beta", MarketCap: decimal.NewNullDecimal(decimal.NewFromInt(2_000_000_000))},
			}, nil)

		response, err := service.CompareCompanies(context.Background(), &domain.CompareRequest{CompanyIDs: []int{1, 2, 1}})

		require.NoError(t, err)
		require.Len(t, response.Companies, 2)
		require.Len(t, response.Insights, 3)
		assert.Contains(t, response.Insights[0], "Alpha")
		assert.Contains(t, response.Insights[0], "$5.0B")
	})

	t.Run("Métricas extras são anexadas por empresa", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().
			CompareCompanies(gomock.Any(), []int{1, 2}).
			Return([]domain.CompanyComparison{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}, nil)
		m.metricRepo.EXPECT().
			AverageMetrics(gomock.Any(), []int{1, 2}, []string{"ebitda"}).
			Return(map[int]map[string]decimal.Decimal{1: {"ebitda": decimal.NewFromInt(10)}}, nil)

		response, err := service.CompareCompanies(context.Background(), &domain.CompareRequest{
			CompanyIDs: []int{1, 2},
			Metrics:    []string{"ebitda", " ebitda ", ""},
		})

		require.NoError(t, err)
		assert.Equal(t, "10", response.Companies[0].Metrics["ebitda"].String())
		assert.Nil(t, response.Companies[1].Metrics)
	})

	t.Run("Id negativo é inválido", func(t *testing.T) {
		service, _ := setupService(t, false)

		_, err := service.CompareCompanies(context.Background(), &domain.CompareRequest{CompanyIDs: []int{1, -2}})

		assertCompanyError(t, err, ErrInvalidCompanyID, apiErrors.ErrInvalidFormat)
	})
}

func TestService_SearchCompanies(t *testing.T) {
	t.Run("Query vazia é inválida", func(t *testing.T) {
		service, _ := setupService(t, false)

		_, err := service.SearchCompanies(context.Background(), &domain.SearchRequest{Query: "   "})

		assertCompanyError(t, err, ErrSearchQueryRequired, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Faixa de valor de mercado invertida é inválida", func(t *testing.T) {
		service, _ := setupService(t, false)
		minCap := decimal.NewFromInt(10)
		maxCap := decimal.NewFromInt(5)

		_, err := service.SearchCompanies(context.Background(), &domain.SearchRequest{
			Query:   "cloud",
			Filters: &domain.SearchFilters{MinMarketCap: &minCap, MaxMarketCap: &maxCap},
		})

		assertCompanyError(t, err, ErrInvalidMarketCapRange, apiErrors.ErrInvalidFormat)
	})

	t.Run("Busca com limite fixo", func(t *testing.T) {
		service, m := setupService(t, false)
		m.companyRepo.EXPECT().
			SearchCompanies(gomock.Any(), "cloud software", nil, uint64(domain.SearchResultsLimit)).
			Return(nil, nil)

		results, err := service.SearchCompanies(context.Background(), &domain.SearchRequest{Query: " cloud software "})

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("Mesma busca usa a mesma chave de cache", func(t *testing.T) {
		first, err := searchCacheKey("Cloud", nil)
		require.NoError(t, err)
		second, err := searchCacheKey("cloud", nil)
		require.NoError(t, err)

		country := "US"
		third, err := searchCacheKey("cloud", &domain.SearchFilters{Country: &country})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, first, third)
	})
}
