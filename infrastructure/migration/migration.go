// Package migration cria as tabelas e índices usados pela API. Todos os
// comandos são idempotentes e rodam uma vez na inicialização do processo.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
)

// Statements é a lista ordenada de DDL aplicada por Run
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS industries (
		code VARCHAR(20) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		stripe_customer_id VARCHAR(255) UNIQUE NOT NULL,
		subscription_id VARCHAR(255),
		plan_id VARCHAR(100),
		status VARCHAR(20) NOT NULL DEFAULT 'trial' CHECK (status IN ('trial', 'active', 'cancelled')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		ticker VARCHAR(20),
		industry_code VARCHAR(20),
		naics_code VARCHAR(10),
		sic_code VARCHAR(10),
		market_cap NUMERIC(20, 2),
		headquarters_country VARCHAR(100),
		founded_date DATE,
		employee_count INTEGER,
		website VARCHAR(255),
		description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS financial_metrics (
		id SERIAL PRIMARY KEY,
		company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		metric_type VARCHAR(50) NOT NULL,
		value NUMERIC(20, 4),
		unit VARCHAR(20),
		period_type VARCHAR(20),
		period_date DATE,
		source VARCHAR(100),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS market_data (
		id SERIAL PRIMARY KEY,
		company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		price NUMERIC(20, 4),
		volume BIGINT,
		market_cap NUMERIC(20, 2),
		measured_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS news_sentiment (
		id SERIAL PRIMARY KEY,
		company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		headline TEXT NOT NULL,
		sentiment_score NUMERIC(5, 4),
		published_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_industry ON companies(industry_code)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_market_cap ON companies(market_cap DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_search ON companies USING GIN (to_tsvector('english', name || ' ' || coalesce(description, '')))`,
	`CREATE INDEX IF NOT EXISTS idx_financial_metrics_lookup ON financial_metrics(company_id, metric_type)`,
	`CREATE INDEX IF NOT EXISTS idx_market_data_company_date ON market_data(company_id, measured_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_news_sentiment_company_date ON news_sentiment(company_id, published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_users_subscription ON users(subscription_id)`,
}

// Run aplica todos os comandos de Statements em uma única transação
func Run(ctx context.Context, conn postgres.Conn) error {
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range Statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar migração %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"statements": len(Statements),
		"duration":   time.Since(startTime).String(),
	}).Info("Migrações aplicadas com sucesso")

	return nil
}
