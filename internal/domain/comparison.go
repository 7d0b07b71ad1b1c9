package domain

import "github.com/shopspring/decimal"

// SentimentWindowDays é a janela usada na média de sentimento das comparações
const SentimentWindowDays = 30

type CompareRequest struct {
	CompanyIDs []int    `json:"companyIds"`
	Metrics    []string `json:"metrics"`
}

type CompanyComparison struct {
	ID           int                        `json:"id"`
	Name         string                     `json:"name"`
	Ticker       *string                    `json:"ticker"`
	MarketCap    decimal.NullDecimal        `json:"market_cap"`
	AvgRevenue   decimal.NullDecimal        `json:"avg_revenue"`
	GrowthRate   decimal.NullDecimal        `json:"growth_rate"`
	AvgSentiment decimal.NullDecimal        `json:"avg_sentiment"`
	Metrics      map[string]decimal.Decimal `json:"metrics,omitempty"`
}

type CompareResponse struct {
	Companies []CompanyComparison `json:"companies"`
	Insights  []string            `json:"insights"`
}
