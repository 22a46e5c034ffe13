package domain

import (
	"fmt"
	"time"
)

// PlatformDay agrega as linhas de uma plataforma em um dia.
// Métricas brutas são somadas e os KPIs são a média dos KPIs por linha.
type PlatformDay struct {
	MarketingMetrics
	MarketingKPIs
	Rows int `json:"rows"`
}

// CombinedRecord é uma linha da série diária: negócio + cada plataforma
type CombinedRecord struct {
	BusinessDay
	Platforms map[Platform]PlatformDay `json:"platforms"`
}

// Platform retorna os dados da plataforma no dia, zerados quando ausentes
func (r CombinedRecord) Platform(p Platform) PlatformDay {
	if r.Platforms == nil {
		return PlatformDay{}
	}
	return r.Platforms[p]
}

// Spend soma o investimento das plataformas informadas
func (r CombinedRecord) Spend(platforms []Platform) float64 {
	total := 0.0
	for _, p := range platforms {
		total += r.Platform(p).Spend
	}
	return total
}

// AttributedRevenue soma a receita atribuída das plataformas informadas
func (r CombinedRecord) AttributedRevenue(platforms []Platform) float64 {
	total := 0.0
	for _, p := range platforms {
		total += r.Platform(p).AttributedRevenue
	}
	return total
}

// AttributionGap é a receita do negócio não atribuída às plataformas informadas
func (r CombinedRecord) AttributionGap(platforms []Platform) float64 {
	return r.TotalRevenue - r.AttributedRevenue(platforms)
}

// AttributionGapPct é o gap de atribuição em porcentagem da receita do dia
func (r CombinedRecord) AttributionGapPct(platforms []Platform) float64 {
	return Percent(r.AttributionGap(platforms), r.TotalRevenue)
}

// Colunas achatadas no formato <Plataforma>_<métrica>
const (
	ColumnSuffixImpressions       = "impression"
	ColumnSuffixClicks            = "clicks"
	ColumnSuffixSpend             = "spend"
	ColumnSuffixAttributedRevenue = "attributed revenue"
	ColumnSuffixCTR               = "ctr"
	ColumnSuffixCPC               = "cpc"
	ColumnSuffixCPM               = "cpm"
	ColumnSuffixROAS              = "roas"
)

var platformColumnSuffixes = []string{
	ColumnSuffixImpressions,
	ColumnSuffixClicks,
	ColumnSuffixSpend,
	ColumnSuffixAttributedRevenue,
	ColumnSuffixCTR,
	ColumnSuffixCPC,
	ColumnSuffixCPM,
	ColumnSuffixROAS,
}

// PlatformColumn monta o nome de coluna achatado, ex.: "Facebook_spend"
func PlatformColumn(p Platform, suffix string) string {
	return fmt.Sprintf("%s_%s", p, suffix)
}

// CombinedColumns retorna o cabeçalho da tabela combinada para as plataformas informadas
func CombinedColumns(platforms []Platform) []string {
	columns := []string{
		BusinessColumnDate,
		BusinessColumnOrders,
		BusinessColumnNewOrders,
		BusinessColumnNewCustomers,
		BusinessColumnRevenue,
		BusinessColumnProfit,
		"aov",
		"profit_margin",
		"new_customer_rate",
	}
	for _, p := range platforms {
		for _, suffix := range platformColumnSuffixes {
			columns = append(columns, PlatformColumn(p, suffix))
		}
	}
	return columns
}

// Values retorna os valores da linha na mesma ordem de CombinedColumns (exceto a data)
func (r CombinedRecord) Values(platforms []Platform) []float64 {
	values := []float64{
		r.Orders,
		r.NewOrders,
		r.NewCustomers,
		r.TotalRevenue,
		r.GrossProfit,
		r.AOV,
		r.ProfitMargin,
		r.NewCustomerRate,
	}
	for _, p := range platforms {
		day := r.Platform(p)
		values = append(values,
			day.Impressions,
			day.Clicks,
			day.Spend,
			day.AttributedRevenue,
			day.CTR,
			day.CPC,
			day.CPM,
			day.ROAS,
		)
	}
	return values
}

// DailyGap é um ponto da série diária de atribuição
type DailyGap struct {
	Date              time.Time `json:"date"`
	BusinessRevenue   float64   `json:"business_revenue"`
	AttributedRevenue float64   `json:"attributed_revenue"`
	AttributionGap    float64   `json:"attribution_gap"`
	AttributionGapPct float64   `json:"attribution_gap_pct"`
}
