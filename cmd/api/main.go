package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/infrastructure/cache"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/infrastructure/integrator/payment"
	"github.com/vfg2006/company-intel-api/infrastructure/migration"
	"github.com/vfg2006/company-intel-api/infrastructure/repository"
	"github.com/vfg2006/company-intel-api/internal/api"
	"github.com/vfg2006/company-intel-api/internal/config"
	"github.com/vfg2006/company-intel-api/internal/scheduler"
	"github.com/vfg2006/company-intel-api/internal/usecases/authenticating"
	"github.com/vfg2006/company-intel-api/internal/usecases/billing"
	"github.com/vfg2006/company-intel-api/internal/usecases/company"
	applog "github.com/vfg2006/company-intel-api/pkg/log"
	"github.com/vfg2006/company-intel-api/pkg/middleware"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o formato e o nível de log com base na configuração
	applog.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	if err := migration.Run(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	responseCache, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache")
		responseCache = cache.NewNoopCache()
	}

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	metricRepo := repository.NewFinancialMetricRepository(pgConn)
	marketDataRepo := repository.NewMarketDataRepository(pgConn)
	industryRepo := repository.NewIndustryRepository(pgConn)

	paymentGateway := payment.NewStripeService(cfg)

	billingService := billing.NewService(paymentGateway, userRepo)
	companyService := company.NewService(companyRepo, metricRepo, marketDataRepo, industryRepo, responseCache)
	authenticator := authenticating.NewService(cfg)

	dataCollectionService := scheduler.NewDataCollectionService(cfg)
	if err := dataCollectionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de dados")
	} else {
		logrus.Info("Agendador de coleta de dados iniciado com sucesso")
	}

	metrics := middleware.NewMetrics()
	if err := metrics.RegisterDB(pgConn.DB, "company_intel"); err != nil {
		logrus.WithError(err).Warn("Erro ao registrar métricas do pool de conexões")
	}

	server, err := api.New(
		cfg,
		billingService,
		companyService,
		authenticator,
		dataCollectionService,
		metrics,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown(pgConn.Close)
	server.OnShutdown(responseCache.Close)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria o pool de conexões com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithFields(logrus.Fields{
		"max_open_conns": dbConfig.MaxOpenConns,
		"max_idle_conns": dbConfig.MaxIdleConns,
	}).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
