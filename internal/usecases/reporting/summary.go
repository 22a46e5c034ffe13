package reporting

import (
	"fmt"
	"math"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

// Summarize soma o período filtrado considerando só as plataformas selecionadas
func Summarize(rows []domain.CombinedRecord, platforms []domain.Platform) domain.SummaryStats {
	stats := domain.SummaryStats{Days: len(rows)}

	for i, row := range rows {
		stats.TotalSpend += row.Spend(platforms)
		stats.TotalAttributedRevenue += row.AttributedRevenue(platforms)
		stats.TotalBusinessRevenue += row.TotalRevenue

		if i == 0 || row.Date.Before(stats.StartDate) {
			stats.StartDate = row.Date
		}
		if i == 0 || row.Date.After(stats.EndDate) {
			stats.EndDate = row.Date
		}
	}

	stats.OverallROAS = domain.ROAS(stats.TotalAttributedRevenue, stats.TotalSpend)
	stats.AttributionGap = domain.AttributionGap(stats.TotalBusinessRevenue, stats.TotalAttributedRevenue)

	if len(rows) > 0 {
		stats.DateRange = fmt.Sprintf("%s to %s", utils.FormatDate(stats.StartDate), utils.FormatDate(stats.EndDate))
	}

	return stats
}

// PlatformPerformances recalcula ROAS, CTR e CPC a partir das somas do período
func PlatformPerformances(rows []domain.CombinedRecord, platforms []domain.Platform) []domain.PlatformPerformance {
	performances := make([]domain.PlatformPerformance, 0, len(platforms))

	for _, platform := range platforms {
		var totals domain.MarketingMetrics
		for _, row := range rows {
			totals.Add(row.Platform(platform).MarketingMetrics)
		}

		performances = append(performances, domain.PlatformPerformance{
			Platform:    platform,
			Spend:       totals.Spend,
			Revenue:     totals.AttributedRevenue,
			Clicks:      totals.Clicks,
			Impressions: totals.Impressions,
			ROAS:        domain.ROAS(totals.AttributedRevenue, totals.Spend),
			CTR:         domain.CTR(totals.Clicks, totals.Impressions),
			CPC:         domain.CPC(totals.Spend, totals.Clicks),
		})
	}

	return performances
}

// DailyGaps monta a série diária de receita atribuída e gap
func DailyGaps(rows []domain.CombinedRecord, platforms []domain.Platform) []domain.DailyGap {
	gaps := make([]domain.DailyGap, len(rows))
	for i, row := range rows {
		gaps[i] = domain.DailyGap{
			Date:              row.Date,
			BusinessRevenue:   row.TotalRevenue,
			AttributedRevenue: row.AttributedRevenue(platforms),
			AttributionGap:    row.AttributionGap(platforms),
			AttributionGapPct: row.AttributionGapPct(platforms),
		}
	}
	return gaps
}

// Cores dos cards na ordem em que aparecem
const (
	colorPrimary   = "#1f77b4"
	colorSecondary = "#ff7f0e"
	colorSuccess   = "#2ca02c"
	colorDanger    = "#d62728"
	colorWarning   = "#9467bd"
)

func KPICards(stats domain.SummaryStats) []domain.KPICard {
	return []domain.KPICard{
		{Label: "Total Spend", Value: FormatCurrency(stats.TotalSpend), Color: colorPrimary},
		{Label: "Attributed Revenue", Value: FormatCurrency(stats.TotalAttributedRevenue), Color: colorSecondary},
		{Label: "Business Revenue", Value: FormatCurrency(stats.TotalBusinessRevenue), Color: colorSuccess},
		{Label: "Overall ROAS", Value: fmt.Sprintf("%.2fx", stats.OverallROAS), Color: colorDanger},
		{Label: "Attribution Gap", Value: fmt.Sprintf("%.1f%%", stats.AttributionGap), Color: colorWarning},
	}
}

// FormatCurrency abrevia valores: $1.2M, $3.4K, $999
func FormatCurrency(value float64) string {
	switch abs := math.Abs(value); {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", value/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", value/1_000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
