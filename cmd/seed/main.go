// Command seed popula o banco com um conjunto pequeno de dados para
// desenvolvimento local. Rodar mais de uma vez não duplica registros.
package main

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/company-intel-api/infrastructure/database/postgres"
	"github.com/vfg2006/company-intel-api/infrastructure/migration"
	"github.com/vfg2006/company-intel-api/internal/config"
	applog "github.com/vfg2006/company-intel-api/pkg/log"
	"github.com/vfg2006/company-intel-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	applog.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := migration.Run(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar migrações")
	}

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertIndustries(ctx, tx, industries); err != nil {
			return err
		}
		return insertCompanies(ctx, tx, companies)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao popular o banco, nada foi gravado")
	}

	logrus.Infof("Seed concluído em %v", time.Since(startTime))
}

func insertIndustries(ctx context.Context, tx *sql.Tx, list []Industry) error {
	logrus.Infof("Iniciando inserção de %d setores...", len(list))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO industries (code, name, description) VALUES ($1, $2, $3) ON CONFLICT (code) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	inserted := 0
	for _, industry := range list {
		result, err := stmt.ExecContext(ctx, industry.Code, industry.Name, industry.Description)
		if err != nil {
			return err
		}
		if rows, _ := result.RowsAffected(); rows > 0 {
			inserted++
		}
	}

	logrus.Infof("Setores inseridos: %d, já existentes: %d", inserted, len(list)-inserted)
	return nil
}

// insertCompanies usa o ticker como chave natural. Empresas já existentes são
// mantidas como estão, junto com suas métricas.
func insertCompanies(ctx context.Context, tx *sql.Tx, list []Company) error {
	logrus.Infof("Iniciando inserção de %d empresas...", len(list))

	skipped := 0
	for i, company := range list {
		var existingID int
		err := tx.QueryRowContext(ctx, `SELECT id FROM companies WHERE ticker = $1`, company.Ticker).Scan(&existingID)
		if err == nil {
			logrus.WithField("ticker", company.Ticker).Debug("Empresa já existe, ignorando")
			skipped++
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		founded, err := utils.ParseDate(company.FoundedDate)
		if err != nil {
			return err
		}

		var id int
		err = tx.QueryRowContext(ctx, `
			INSERT INTO companies (name, ticker, industry_code, naics_code, sic_code, market_cap,
				headquarters_country, founded_date, employee_count, website, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			company.Name, company.Ticker, company.IndustryCode, company.NAICSCode, company.SICCode,
			company.MarketCap, company.Country, founded, company.Employees, company.Website, company.Description,
		).Scan(&id)
		if err != nil {
			return err
		}

		if err := insertCompanyRows(ctx, tx, id, company); err != nil {
			return err
		}

		logrus.Infof("Progresso: %d/%d empresas processadas", i+1, len(list))
	}

	logrus.Infof("Empresas inseridas: %d, já existentes: %d", len(list)-skipped, skipped)
	return nil
}

func insertCompanyRows(ctx context.Context, tx *sql.Tx, companyID int, company Company) error {
	for _, metric := range company.Metrics {
		periodDate, err := utils.ParseDate(metric.PeriodDate)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO financial_metrics (company_id, metric_type, value, unit, period_type, period_date, source)
			VALUES ($1, $2, $3, $4, $5, $6, 'seed')`,
			companyID, metric.Type, metric.Value, metric.Unit, metric.PeriodType, periodDate,
		)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC()

	for _, quote := range company.Quotes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO market_data (company_id, price, volume, market_cap, measured_at)
			VALUES ($1, $2, $3, $4, $5)`,
			companyID, quote.Price, quote.Volume, quote.MarketCap, now.AddDate(0, 0, -quote.DaysAgo),
		)
		if err != nil {
			return err
		}
	}

	for _, headline := range company.Headlines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO news_sentiment (company_id, headline, sentiment_score, published_at)
			VALUES ($1, $2, $3, $4)`,
			companyID, headline.Text, headline.Score, now.AddDate(0, 0, -headline.DaysAgo),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
