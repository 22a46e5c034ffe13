package domain

import "time"

// SummaryStats resume o período filtrado para os cards de KPI e para o chat
type SummaryStats struct {
	TotalSpend             float64   `json:"total_spend"`
	TotalAttributedRevenue float64   `json:"total_attributed_revenue"`
	TotalBusinessRevenue   float64   `json:"total_business_revenue"`
	OverallROAS            float64   `json:"overall_roas"`
	AttributionGap         float64   `json:"attribution_gap"`
	DateRange              string    `json:"date_range"`
	StartDate              time.Time `json:"-"`
	EndDate                time.Time `json:"-"`
	Days                   int       `json:"days"`
}

// PlatformPerformance são as métricas de uma plataforma no período, recalculadas a partir das somas
type PlatformPerformance struct {
	Platform    Platform `json:"platform"`
	Spend       float64  `json:"spend"`
	Revenue     float64  `json:"revenue"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	ROAS        float64  `json:"roas"`
	CTR         float64  `json:"ctr"`
	CPC         float64  `json:"cpc"`
}

type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color"`
}

type DashboardSummary struct {
	Filters *DashboardFilters `json:"filters"`
	Summary SummaryStats      `json:"summary"`
	Cards   []KPICard         `json:"cards"`
}

type DailyReport struct {
	Filters *DashboardFilters `json:"filters"`
	Columns []string          `json:"columns"`
	Rows    []CombinedRecord  `json:"rows"`
	Gaps    []DailyGap        `json:"gaps"`
}
