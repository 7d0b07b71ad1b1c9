package company

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/infrastructure/cache"
	"github.com/vfg2006/company-intel-api/infrastructure/repository"
	"github.com/vfg2006/company-intel-api/internal/domain"
	"github.com/vfg2006/company-intel-api/pkg/apiErrors"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CompanyService interface {
	ListCompanies(ctx context.Context, filters domain.CompanyFilters) ([]domain.Company, error)
	GetCompanyDetail(ctx context.Context, id int) (*domain.CompanyDetail, error)
	GetIndustryAnalysis(ctx context.Context, code string) (*domain.IndustryAnalysis, error)
	CompareCompanies(ctx context.Context, request *domain.CompareRequest) (*domain.CompareResponse, error)
	SearchCompanies(ctx context.Context, request *domain.SearchRequest) ([]domain.SearchResult, error)
}

type Service struct {
	companyRepo    repository.CompanyRepository
	metricRepo     repository.FinancialMetricRepository
	marketDataRepo repository.MarketDataRepository
	industryRepo   repository.IndustryRepository
	cache          cache.Cache
}

func NewService(
	companyRepo repository.CompanyRepository,
	metricRepo repository.FinancialMetricRepository,
	marketDataRepo repository.MarketDataRepository,
	industryRepo repository.IndustryRepository,
	responseCache cache.Cache,
) CompanyService {
	if responseCache == nil {
		responseCache = cache.NewNoopCache()
	}

	return &Service{
		companyRepo:    companyRepo,
		metricRepo:     metricRepo,
		marketDataRepo: marketDataRepo,
		industryRepo:   industryRepo,
		cache:          responseCache,
	}
}

// ListCompanies aplica o limite padrão quando ausente e o teto de MaxCompanyListLimit
func (s *Service) ListCompanies(ctx context.Context, filters domain.CompanyFilters) ([]domain.Company, error) {
	if filters.Limit == 0 {
		filters.Limit = domain.DefaultCompanyListLimit
	}
	if filters.Limit > domain.MaxCompanyListLimit {
		filters.Limit = domain.MaxCompanyListLimit
	}
	filters.Industry = strings.TrimSpace(filters.Industry)
	filters.Search = strings.TrimSpace(filters.Search)

	companies, err := s.companyRepo.ListCompanies(ctx, filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empresas")
		return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return companies, nil
}

// GetCompanyDetail busca a empresa, as métricas e os dados de mercado em paralelo.
// Qualquer falha cancela as demais consultas.
func (s *Service) GetCompanyDetail(ctx context.Context, id int) (*domain.CompanyDetail, error) {
	if id <= 0 {
		return nil, NewCompanyErrorWithID(ErrInvalidCompanyID, apiErrors.ErrInvalidFormat, id, "")
	}

	var (
		company    *domain.Company
		metrics    []domain.FinancialMetric
		marketData []domain.MarketData
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		company, err = s.companyRepo.GetCompanyByID(gctx, id)
		return err
	})

	g.Go(func() error {
		var err error
		metrics, err = s.metricRepo.ListRecentByCompany(gctx, id, domain.CompanyDetailRowsLimit)
		return err
	})

	g.Go(func() error {
		var err error
		marketData, err = s.marketDataRepo.ListRecentByCompany(gctx, id, domain.CompanyDetailRowsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("company_id", id).Error("Erro ao buscar detalhes da empresa")
		return nil, NewCompanyErrorWithID(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	if company == nil {
		return nil, NewCompanyErrorWithID(ErrCompanyNotFound, apiErrors.ErrResourceNotFound, id, "")
	}

	if metrics == nil {
		metrics = []domain.FinancialMetric{}
	}
	if marketData == nil {
		marketData = []domain.MarketData{}
	}

	return &domain.CompanyDetail{
		Company:          company,
		FinancialMetrics: metrics,
		MarketData:       marketData,
	}, nil
}

// GetIndustryAnalysis retorna nil quando o setor não existe
func (s *Service) GetIndustryAnalysis(ctx context.Context, code string) (*domain.IndustryAnalysis, error) {
	code = strings.TrimSpace(code)

	analysis, err := readThrough(ctx, s.cache, "industry:"+code, func() (*domain.IndustryAnalysis, error) {
		return s.industryRepo.GetIndustryAnalysis(ctx, code)
	})
	if err != nil {
		logrus.WithError(err).WithField("industry", code).Error("Erro ao analisar setor")
		return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return analysis, nil
}

func (s *Service) CompareCompanies(ctx context.Context, request *domain.CompareRequest) (*domain.CompareResponse, error) {
	if request == nil {
		return nil, NewCompanyError(ErrNotEnoughCompanies, apiErrors.ErrInvalidRequest, "")
	}

	ids := make([]int, 0, len(request.CompanyIDs))
	seen := make(map[int]bool, len(request.CompanyIDs))
	for _, id := range request.CompanyIDs {
		if id <= 0 {
			return nil, NewCompanyErrorWithID(ErrInvalidCompanyID, apiErrors.ErrInvalidFormat, id, "")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) < 2 {
		return nil, NewCompanyError(ErrNotEnoughCompanies, apiErrors.ErrInvalidRequest, "")
	}

	companies, err := s.companyRepo.CompareCompanies(ctx, ids)
	if err != nil {
		logrus.WithError(err).WithField("company_ids", ids).Error("Erro ao comparar empresas")
		return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if metricTypes := normalizeMetricTypes(request.Metrics); len(metricTypes) > 0 {
		averages, err := s.metricRepo.AverageMetrics(ctx, ids, metricTypes)
		if err != nil {
			logrus.WithError(err).WithField("metrics", metricTypes).Error("Erro ao calcular métricas extras")
			return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, err.Error())
		}

		for i := range companies {
			companies[i].Metrics = averages[companies[i].ID]
		}
	}

	return &domain.CompareResponse{
		Companies: companies,
		Insights:  GenerateInsights(companies),
	}, nil
}

func (s *Service) SearchCompanies(ctx context.Context, request *domain.SearchRequest) ([]domain.SearchResult, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, NewCompanyError(ErrSearchQueryRequired, apiErrors.ErrMissingRequiredData, "")
	}

	query := strings.TrimSpace(request.Query)
	filters := request.Filters
	if filters != nil && filters.MinMarketCap != nil && filters.MaxMarketCap != nil &&
		filters.MinMarketCap.GreaterThan(*filters.MaxMarketCap) {
		return nil, NewCompanyError(ErrInvalidMarketCapRange, apiErrors.ErrInvalidFormat, "")
	}

	key, err := searchCacheKey(query, filters)
	if err != nil {
		return nil, NewCompanyError(ErrSearchQueryRequired, apiErrors.ErrInvalidFormat, err.Error())
	}

	results, err := readThrough(ctx, s.cache, key, func() ([]domain.SearchResult, error) {
		return s.companyRepo.SearchCompanies(ctx, query, filters, domain.SearchResultsLimit)
	})
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Erro ao buscar empresas")
		return nil, NewCompanyError(ErrFetchCompanies, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if results == nil {
		results = []domain.SearchResult{}
	}

	return results, nil
}

func normalizeMetricTypes(metrics []string) []string {
	result := make([]string, 0, len(metrics))
	seen := make(map[string]bool, len(metrics))
	for _, metric := range metrics {
		metric = strings.TrimSpace(metric)
		if metric == "" || seen[metric] {
			continue
		}
		seen[metric] = true
		result = append(result, metric)
	}
	return result
}

func searchCacheKey(query string, filters *domain.SearchFilters) (string, error) {
	raw, err := json.Marshal(domain.SearchRequest{Query: strings.ToLower(query), Filters: filters})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(raw)
	return "search:" + hex.EncodeToString(sum[:]), nil
}

// readThrough consulta o cache antes de carregar. Falhas do cache só geram log.
func readThrough[T any](ctx context.Context, c cache.Cache, key string, load func() (T, error)) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao ler do cache")
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Erro ao gravar no cache")
	}

	return value, nil
}
