package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/internal/config"
)

type JobType string

const (
	JobFinancialData JobType = "financial-data"
	JobMarketData    JobType = "market-data"
	JobNewsSentiment JobType = "news-sentiment"
	JobAll           JobType = "all"
)

var ErrUnknownJob = errors.New("tipo de coleta desconhecido")

type collectFunc func(ctx context.Context) error

type collectionJob struct {
	jobType         JobType
	interval        time.Duration
	collect         collectFunc
	running         bool
	runs            int
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

// DataCollectionService agenda as rotinas de coleta de dados financeiros,
// de mercado e de sentimento de notícias
type DataCollectionService struct {
	scheduler *gocron.Scheduler
	enabled   bool
	sources   config.DataSources
	jobs      map[JobType]*collectionJob
	order     []JobType
	mu        sync.Mutex
}

func NewDataCollectionService(appConfig *config.Config) *DataCollectionService {
	s := &DataCollectionService{
		scheduler: gocron.NewScheduler(time.Local),
		enabled:   appConfig.DataCollection.Enabled,
		sources:   appConfig.DataSources,
		jobs:      make(map[JobType]*collectionJob),
	}

	s.register(JobFinancialData, appConfig.DataCollection.FinancialDataInterval, s.collectFinancialData)
	s.register(JobMarketData, appConfig.DataCollection.MarketDataInterval, s.collectMarketData)
	s.register(JobNewsSentiment, appConfig.DataCollection.NewsSentimentInterval, s.collectNewsSentiment)

	logrus.WithFields(logrus.Fields{
		"enabled":                 s.enabled,
		"financial_data_interval": appConfig.DataCollection.FinancialDataInterval,
		"market_data_interval":    appConfig.DataCollection.MarketDataInterval,
		"news_sentiment_interval": appConfig.DataCollection.NewsSentimentInterval,
	}).Info("Configuração do agendador de coleta de dados carregada")

	return s
}

func (s *DataCollectionService) register(jobType JobType, interval time.Duration, collect collectFunc) {
	s.jobs[jobType] = &collectionJob{
		jobType:  jobType,
		interval: interval,
		collect:  collect,
	}
	s.order = append(s.order, jobType)
}

// Start inicia o agendador
func (s *DataCollectionService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Coleta de dados desabilitada por configuração")
		return nil
	}

	for _, jobType := range s.order {
		job := s.jobs[jobType]
		if job.interval <= 0 {
			return fmt.Errorf("intervalo inválido para a coleta %s: %s", jobType, job.interval)
		}

		_, err := s.scheduler.Every(job.interval).WaitForSchedule().Do(func() {
			s.run(ctx, job)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar coleta %s: %w", jobType, err)
		}

		logrus.WithFields(logrus.Fields{
			"job":      jobType,
			"interval": job.interval,
		}).Info("Coleta agendada")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a coleta em segundo plano. JobAll dispara todas.
func (s *DataCollectionService) TriggerManualSync(jobType JobType) error {
	if jobType == JobAll {
		for _, t := range s.order {
			logrus.WithField("job", t).Info("Iniciando coleta manual")
			go s.run(context.Background(), s.jobs[t])
		}
		return nil
	}

	job, ok := s.jobs[jobType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, jobType)
	}

	logrus.WithField("job", jobType).Info("Iniciando coleta manual")
	go s.run(context.Background(), job)

	return nil
}

func (s *DataCollectionService) run(ctx context.Context, job *collectionJob) {
	s.mu.Lock()
	if job.running {
		s.mu.Unlock()
		logrus.WithField("job", job.jobType).Info("Coleta já em andamento, ignorando")
		return
	}
	job.running = true
	job.lastStartedAt = time.Now()
	s.mu.Unlock()

	err := job.collect(ctx)

	s.mu.Lock()
	job.running = false
	job.runs++
	job.lastCompletedAt = time.Now()
	job.lastError = ""
	if err != nil {
		job.lastError = err.Error()
	}
	duration := job.lastCompletedAt.Sub(job.lastStartedAt)
	s.mu.Unlock()

	logger := logrus.WithFields(logrus.Fields{
		"job":      job.jobType,
		"duration": duration,
	})
	if err != nil {
		logger.WithError(err).Error("Erro na coleta de dados")
		return
	}
	logger.Info("Coleta de dados concluída")
}

// GetStatus retorna o status atual do agendador
func (s *DataCollectionService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make(map[string]any, len(s.jobs))
	for _, jobType := range s.order {
		job := s.jobs[jobType]
		jobs[string(jobType)] = map[string]any{
			"interval":          job.interval.String(),
			"running":           job.running,
			"runs":              job.runs,
			"last_started_at":   job.lastStartedAt,
			"last_completed_at": job.lastCompletedAt,
			"last_error":        job.lastError,
		}
	}

	return map[string]any{
		"enabled": s.enabled,
		"jobs":    jobs,
	}
}

// As rotinas abaixo ainda não buscam dados nos provedores externos

func (s *DataCollectionService) collectFinancialData(ctx context.Context) error {
	logrus.WithField("alpha_vantage_configured", s.sources.AlphaVantageAPIKey != "").
		Info("Coleta de dados financeiros ainda não implementada")
	return ctx.Err()
}

func (s *DataCollectionService) collectMarketData(ctx context.Context) error {
	logrus.WithField("finnhub_configured", s.sources.FinnhubAPIKey != "").
		Info("Coleta de dados de mercado ainda não implementada")
	return ctx.Err()
}

func (s *DataCollectionService) collectNewsSentiment(ctx context.Context) error {
	logrus.WithFields(logrus.Fields{
		"news_api_configured": s.sources.NewsAPIKey != "",
		"openai_configured":   s.sources.OpenAIAPIKey != "",
	}).Info("Coleta de sentimento de notícias ainda não implementada")
	return ctx.Err()
}
