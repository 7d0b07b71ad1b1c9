package company

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/company-intel-api/internal/domain"
)

const notAvailable = "N/A"

var (
	billion           = decimal.NewFromInt(1_000_000_000)
	positiveThreshold = decimal.RequireFromString("0.6")
	neutralThreshold  = decimal.RequireFromString("0.4")
)

// GenerateInsights resume a comparação em três frases: maior valor de
// mercado, maior crescimento de receita e sentimento médio. O resultado não
// depende da ordem de entrada; empates ficam com o menor id.
func GenerateInsights(companies []domain.CompanyComparison) []string {
	return []string{
		marketCapInsight(companies),
		growthInsight(companies),
		sentimentInsight(companies),
	}
}

func marketCapInsight(companies []domain.CompanyComparison) string {
	leader, ok := leaderBy(companies, func(c domain.CompanyComparison) decimal.NullDecimal { return c.MarketCap })
	if !ok {
		return "Maior valor de mercado: " + notAvailable
	}

	return fmt.Sprintf("Maior valor de mercado: %s ($%sB)",
		leader.Name, leader.MarketCap.Decimal.Div(billion).StringFixed(1))
}

func growthInsight(companies []domain.CompanyComparison) string {
	leader, ok := leaderBy(companies, func(c domain.CompanyComparison) decimal.NullDecimal { return c.GrowthRate })
	if !ok {
		return "Maior crescimento de receita: " + notAvailable
	}

	return fmt.Sprintf("Maior crescimento de receita: %s (%s%%)",
		leader.Name, leader.GrowthRate.Decimal.StringFixed(1))
}

func sentimentInsight(companies []domain.CompanyComparison) string {
	if len(companies) == 0 {
		return "Sentimento médio do mercado: " + notAvailable
	}

	sum := decimal.Zero
	for _, c := range companies {
		if c.AvgSentiment.Valid {
			sum = sum.Add(c.AvgSentiment.Decimal)
		}
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(companies))))

	return fmt.Sprintf("Sentimento médio do mercado: %s (%s)", classifySentiment(mean), mean.StringFixed(2))
}

func classifySentiment(score decimal.Decimal) string {
	switch {
	case score.GreaterThan(positiveThreshold):
		return "positive"
	case score.GreaterThan(neutralThreshold):
		return "neutral"
	default:
		return "negative"
	}
}

// leaderBy ignora valores nulos
func leaderBy(
	companies []domain.CompanyComparison,
	value func(domain.CompanyComparison) decimal.NullDecimal,
) (domain.CompanyComparison, bool) {
	var (
		leader domain.CompanyComparison
		found  bool
	)

	for _, c := range companies {
		v := value(c)
		if !v.Valid {
			continue
		}

		if !found {
			leader, found = c, true
			continue
		}

		best := value(leader).Decimal
		if v.Decimal.GreaterThan(best) || (v.Decimal.Equal(best) && c.ID < leader.ID) {
			leader = c
		}
	}

	return leader, found
}
