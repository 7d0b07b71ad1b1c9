package domain

import "github.com/shopspring/decimal"

type SearchRequest struct {
	Query   string         `json:"query"`
	Filters *SearchFilters `json:"filters"`
}

type SearchFilters struct {
	Industry     *string          `json:"industry"`
	Country      *string          `json:"country"`
	MinMarketCap *decimal.Decimal `json:"minMarketCap"`
	MaxMarketCap *decimal.Decimal `json:"maxMarketCap"`
}

type SearchResult struct {
	Company
	Rank float64 `json:"rank"`
}
