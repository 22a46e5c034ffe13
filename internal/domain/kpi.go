package domain

import (
	"math"

	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

// SafeDivide retorna 0 quando o denominador é zero ou o resultado não é finito
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}

// Percent multiplica a razão por 100 sem deixar o resultado estourar para infinito
func Percent(numerator, denominator float64) float64 {
	result := SafeDivide(numerator, denominator) * 100
	if math.IsInf(result, 0) {
		return 0
	}
	return result
}

// CTR = clicks / impressions * 100
func CTR(clicks, impressions float64) float64 {
	return Percent(clicks, impressions)
}

// CPC = spend / clicks
func CPC(spend, clicks float64) float64 {
	return SafeDivide(spend, clicks)
}

// CPM = spend / (impressions / 1000)
func CPM(spend, impressions float64) float64 {
	return SafeDivide(spend, impressions/1000)
}

// ROAS = attributed revenue / spend
func ROAS(attributedRevenue, spend float64) float64 {
	return SafeDivide(attributedRevenue, spend)
}

// AOV = revenue / orders
func AOV(revenue, orders float64) float64 {
	return SafeDivide(revenue, orders)
}

// ProfitMargin = profit / revenue * 100
func ProfitMargin(profit, revenue float64) float64 {
	return Percent(profit, revenue)
}

// NewCustomerRate = new customers / orders * 100
func NewCustomerRate(newCustomers, orders float64) float64 {
	return Percent(newCustomers, orders)
}

// AttributionGap = (business revenue - attributed revenue) / business revenue * 100
func AttributionGap(businessRevenue, attributedRevenue float64) float64 {
	if businessRevenue <= 0 {
		return 0
	}
	return Percent(businessRevenue-attributedRevenue, businessRevenue)
}

type MarketingKPIs struct {
	CTR  float64 `json:"ctr"`
	CPC  float64 `json:"cpc"`
	CPM  float64 `json:"cpm"`
	ROAS float64 `json:"roas"`
}

type BusinessKPIs struct {
	AOV             float64 `json:"aov"`
	ProfitMargin    float64 `json:"profit_margin"`
	NewCustomerRate float64 `json:"new_customer_rate"`
}

// CalculateMarketingKPIs calcula os KPIs de uma linha de marketing, arredondados em duas casas
func CalculateMarketingKPIs(m MarketingMetrics) MarketingKPIs {
	return MarketingKPIs{
		CTR:  utils.RoundWithTwoDecimalPlace(CTR(m.Clicks, m.Impressions)),
		CPC:  utils.RoundWithTwoDecimalPlace(CPC(m.Spend, m.Clicks)),
		CPM:  utils.RoundWithTwoDecimalPlace(CPM(m.Spend, m.Impressions)),
		ROAS: utils.RoundWithTwoDecimalPlace(ROAS(m.AttributedRevenue, m.Spend)),
	}
}

// CalculateBusinessKPIs calcula os KPIs de negócio de um dia, arredondados em duas casas
func CalculateBusinessKPIs(b BusinessRecord) BusinessKPIs {
	return BusinessKPIs{
		AOV:             utils.RoundWithTwoDecimalPlace(AOV(b.TotalRevenue, b.Orders)),
		ProfitMargin:    utils.RoundWithTwoDecimalPlace(ProfitMargin(b.GrossProfit, b.TotalRevenue)),
		NewCustomerRate: utils.RoundWithTwoDecimalPlace(NewCustomerRate(b.NewCustomers, b.Orders)),
	}
}
