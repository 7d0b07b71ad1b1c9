package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MarketData struct {
	ID         int                 `json:"id"`
	CompanyID  int                 `json:"company_id"`
	Price      decimal.NullDecimal `json:"price"`
	Volume     *int64              `json:"volume"`
	MarketCap  decimal.NullDecimal `json:"market_cap"`
	MeasuredAt time.Time           `json:"measured_at"`
}

type NewsSentiment struct {
	ID             int                 `json:"id"`
	CompanyID      int                 `json:"company_id"`
	Headline       string              `json:"headline"`
	SentimentScore decimal.NullDecimal `json:"sentiment_score"`
	PublishedAt    time.Time           `json:"published_at"`
}
