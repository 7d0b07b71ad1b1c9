package domain

import "github.com/shopspring/decimal"

type Industry struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// IndustryAnalysis contém os agregados de uma indústria. Indústrias sem
// empresas retornam contagem zero e médias nulas.
type IndustryAnalysis struct {
	IndustryCode     string              `json:"industry_code"`
	IndustryName     string              `json:"industry_name"`
	CompanyCount     int                 `json:"company_count"`
	AvgMarketCap     decimal.NullDecimal `json:"avg_market_cap"`
	AvgRevenueGrowth decimal.NullDecimal `json:"avg_revenue_growth"`
}
