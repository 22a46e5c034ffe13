package domain

import "time"

// Colunas fixas dos CSVs de plataformas
const (
	MarketingColumnDate              = "date"
	MarketingColumnTactic            = "tactic"
	MarketingColumnState             = "state"
	MarketingColumnCampaign          = "campaign"
	MarketingColumnImpressions       = "impression"
	MarketingColumnClicks            = "clicks"
	MarketingColumnSpend             = "spend"
	MarketingColumnAttributedRevenue = "attributed revenue"
)

// MarketingNumericColumns lista as colunas numéricas dos CSVs de plataformas
var MarketingNumericColumns = []string{
	MarketingColumnImpressions,
	MarketingColumnClicks,
	MarketingColumnSpend,
	MarketingColumnAttributedRevenue,
}

type MarketingMetrics struct {
	Impressions       float64 `json:"impression"`
	Clicks            float64 `json:"clicks"`
	Spend             float64 `json:"spend"`
	AttributedRevenue float64 `json:"attributed_revenue"`
}

// Add soma as métricas brutas de outra linha
func (m *MarketingMetrics) Add(other MarketingMetrics) {
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Spend += other.Spend
	m.AttributedRevenue += other.AttributedRevenue
}

// MarketingRecord representa uma linha de um CSV de plataforma
type MarketingRecord struct {
	Date     time.Time `json:"date"`
	Platform Platform  `json:"platform"`
	Tactic   string    `json:"tactic,omitempty"`
	State    string    `json:"state,omitempty"`
	Campaign string    `json:"campaign,omitempty"`
	MarketingMetrics
}

// MarketingRow é uma linha de marketing com os KPIs calculados
type MarketingRow struct {
	MarketingRecord
	MarketingKPIs
}
