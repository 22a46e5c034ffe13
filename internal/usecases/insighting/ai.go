package insighting

import (
	"fmt"
	"strings"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

const noPlatformData = "No platform data to generate recommendations."

// AIInsights monta a análise narrativa por regras. Não depende do modelo de linguagem.
func AIInsights(stats domain.SummaryStats, performances []domain.PlatformPerformance) domain.AIInsights {
	return domain.AIInsights{
		Performance:         performanceInsight(stats),
		Recommendations:     aiRecommendations(stats, performances),
		Trends:              trendInsight(stats),
		Attribution:         attributionInsight(stats),
		ExecutiveSummary:    ExecutiveSummary(stats),
		PlatformPerformance: performances,
	}
}

func performanceInsight(stats domain.SummaryStats) string {
	var b strings.Builder
	roas, gap := stats.OverallROAS, stats.AttributionGap

	switch {
	case roas > 3.5:
		fmt.Fprintf(&b, "- Excellent Marketing ROI: Your overall ROAS of %.2fx is exceptional, indicating highly efficient marketing spend and strong profitability.\n", roas)
	case roas > 2.5:
		fmt.Fprintf(&b, "- Good Marketing Performance: Your ROAS of %.2fx is solid. There is a clear opportunity to optimize specific channels to boost this further.\n", roas)
	default:
		fmt.Fprintf(&b, "- ROAS Requires Attention: At %.2fx, your overall ROAS is below the optimal 2.5x threshold. A strategic review of spend allocation is recommended.\n", roas)
	}

	switch {
	case gap > 50:
		fmt.Fprintf(&b, "- Critical Attribution Gap: A high attribution gap of %.1f%% suggests more than half of your revenue is not being tracked back to marketing. This should be a top priority to fix.", gap)
	case gap > 30:
		fmt.Fprintf(&b, "- Moderate Attribution Gap: The attribution gap of %.1f%% is considerable. Improving tracking would provide a much clearer picture of marketing effectiveness.", gap)
	default:
		fmt.Fprintf(&b, "- Healthy Attribution: Your attribution gap of %.1f%% is within a healthy range, showing effective tracking.", gap)
	}

	return b.String()
}

func aiRecommendations(stats domain.SummaryStats, performances []domain.PlatformPerformance) []string {
	if len(performances) == 0 {
		return []string{noPlatformData}
	}

	ranked := rankByROAS(performances, false)
	best, worst := ranked[0], ranked[len(ranked)-1]

	var recommendations []string
	if best.ROAS > 3.0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Capitalize on %s: With a stellar ROAS of %.2fx, consider scaling up your budget here. Explore lookalike audiences based on your top-performing campaigns on this platform.",
			best.Platform, best.ROAS))
	}

	if worst.ROAS < 2.0 && len(ranked) > 1 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Optimize %s: This platform's ROAS is low at %.2fx. Conduct a creative audit and refine audience targeting. If performance doesn't improve, consider reallocating this budget.",
			worst.Platform, worst.ROAS))
	}

	if stats.AttributionGap > 40 {
		recommendations = append(recommendations, "Enhance Tracking Precision: Your significant attribution gap may be hiding the true performance of some channels. Prioritize implementing server-side tagging or a Customer Data Platform (CDP) for more accurate data.")
	} else {
		recommendations = append(recommendations, "Continuous A/B Testing: Your tracking is solid. Now is a good time to aggressively A/B test ad copy, visuals, and landing pages to find new winning combinations.")
	}

	return recommendations
}

func trendInsight(stats domain.SummaryStats) string {
	contribution := domain.Percent(stats.TotalAttributedRevenue, stats.TotalBusinessRevenue)
	return fmt.Sprintf("Marketing Impact: Your marketing efforts account for %.1f%% of total revenue.", contribution)
}

func attributionInsight(stats domain.SummaryStats) string {
	if stats.AttributionGap < 20 {
		return fmt.Sprintf("Excellent Attribution: Only %.1f%% unattributed revenue indicates strong tracking.", stats.AttributionGap)
	}
	return fmt.Sprintf("Attribution Gap: %.1f%% of revenue is unattributed, indicating a need for improved tracking.", stats.AttributionGap)
}

// ExecutiveSummary devolve o resumo executivo em markdown
func ExecutiveSummary(stats domain.SummaryStats) string {
	strength := "moderate"
	if stats.OverallROAS > 3 {
		strength = "strong"
	}

	return fmt.Sprintf(`## Executive Summary
**Key Metrics:**
- **Overall ROAS**: %.2fx
- **Attribution Gap**: %.1f%%

**Strategic Insight:**
Marketing performance shows %s ROI with clear optimization opportunities.
`, stats.OverallROAS, stats.AttributionGap, strength)
}
