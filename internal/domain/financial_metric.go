package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de métrica usados nas agregações
const (
	MetricTypeRevenue       = "revenue"
	MetricTypeRevenueGrowth = "revenue_growth"
)

type FinancialMetric struct {
	ID         int                 `json:"id"`
	CompanyID  int                 `json:"company_id"`
	MetricType string              `json:"metric_type"`
	Value      decimal.NullDecimal `json:"value"`
	Unit       *string             `json:"unit"`
	PeriodType *string             `json:"period_type"`
	PeriodDate *time.Time          `json:"period_date"`
	Source     *string             `json:"source"`
	CreatedAt  time.Time           `json:"created_at"`
}
