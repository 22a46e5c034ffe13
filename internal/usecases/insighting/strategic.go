package insighting

import (
	"fmt"
	"sort"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

// rankByROAS ordena por ROAS decrescente apenas as plataformas com investimento
func rankByROAS(performances []domain.PlatformPerformance, onlyWithSpend bool) []domain.PlatformPerformance {
	ranked := make([]domain.PlatformPerformance, 0, len(performances))
	for _, p := range performances {
		if onlyWithSpend && p.Spend <= 0 {
			continue
		}
		ranked = append(ranked, p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ROAS > ranked[j].ROAS
	})
	return ranked
}

// StrategicInsights gera os insights e recomendações da aba estratégica
func StrategicInsights(stats domain.SummaryStats, performances []domain.PlatformPerformance) domain.StrategicInsights {
	return domain.StrategicInsights{
		Insights:        strategicInsights(stats, performances),
		Recommendations: strategicRecommendations(performances),
	}
}

func strategicInsights(stats domain.SummaryStats, performances []domain.PlatformPerformance) []string {
	var insights []string

	switch {
	case stats.OverallROAS > 3:
		insights = append(insights, "Strong ROAS: Overall ROAS is above 3x, indicating efficient marketing spend.")
	case stats.OverallROAS > 2:
		insights = append(insights, "Moderate ROAS: Overall ROAS is between 2-3x. Consider optimizing underperforming campaigns.")
	default:
		insights = append(insights, "Low ROAS: Overall ROAS is below 2x. Immediate optimization is needed.")
	}

	switch {
	case stats.AttributionGap > 50:
		insights = append(insights, "High Attribution Gap: More than 50% of revenue is unattributed. Improving tracking should be a priority.")
	case stats.AttributionGap > 25:
		insights = append(insights, "Moderate Attribution Gap: A gap of 25-50% suggests a review of your attribution model is needed.")
	default:
		insights = append(insights, "Good Attribution: Your attribution gap is less than 25%, indicating healthy tracking.")
	}

	ranked := rankByROAS(performances, true)
	if len(ranked) == 0 {
		return insights
	}

	best, worst := ranked[0], ranked[len(ranked)-1]
	if best.ROAS > worst.ROAS+0.5 {
		insights = append(insights, fmt.Sprintf("Top Performer: %s is leading with a ROAS of %.2fx.", best.Platform, best.ROAS))
	}
	if worst.ROAS < 2.0 {
		insights = append(insights, fmt.Sprintf("Optimization Opportunity: %s shows the lowest ROAS at %.2fx.", worst.Platform, worst.ROAS))
	}

	return insights
}

func strategicRecommendations(performances []domain.PlatformPerformance) []string {
	var recommendations []string

	if ranked := rankByROAS(performances, true); len(ranked) > 0 {
		best, worst := ranked[0], ranked[len(ranked)-1]

		if best.ROAS > 3.0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Scale Up %s: With a strong ROAS of %.2fx, consider increasing its budget.", best.Platform, best.ROAS))
		}

		if worst.ROAS < 2.0 && best.ROAS > worst.ROAS+1 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Re-evaluate %s: This platform's ROAS is low at %.2fx. Audit its campaigns or reallocate budget.", worst.Platform, worst.ROAS))
		} else {
			recommendations = append(recommendations, fmt.Sprintf(
				"Optimize %s: Review creatives for %s to improve its ROAS of %.2fx.", worst.Platform, worst.Platform, worst.ROAS))
		}
	}

	return append(recommendations, "A/B Test Creatives: Continuously test new ad creatives across all platforms.")
}
