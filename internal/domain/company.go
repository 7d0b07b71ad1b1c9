// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Valores decimais saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	DefaultCompanyListLimit = 50
	MaxCompanyListLimit     = 500
	CompanyDetailRowsLimit  = 20
	SearchResultsLimit      = 20
)

type Company struct {
	ID                  int                 `json:"id"`
	Name                string              `json:"name"`
	Ticker              *string             `json:"ticker"`
	IndustryCode        *string             `json:"industry_code"`
	NAICSCode           *string             `json:"naics_code"`
	SICCode             *string             `json:"sic_code"`
	MarketCap           decimal.NullDecimal `json:"market_cap"`
	HeadquartersCountry *string             `json:"headquarters_country"`
	FoundedDate         *time.Time          `json:"founded_date"`
	EmployeeCount       *int                `json:"employee_count"`
	Website             *string             `json:"website"`
	Description         *string             `json:"description"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// CompanyFilters são os filtros aceitos pela listagem de empresas
type CompanyFilters struct {
	Industry string
	Search   string
	Limit    uint64
	Offset   uint64
}

// CompanyDetail agrupa a empresa com suas métricas e dados de mercado mais recentes
type CompanyDetail struct {
	Company          *Company          `json:"company"`
	FinancialMetrics []FinancialMetric `json:"financialMetrics"`
	MarketData       []MarketData      `json:"marketData"`
}
