package insighting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/insighting/mocks"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	processingmocks "github.com/Sensei3747/Market-Intelligence/internal/usecases/processing/mocks"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func perf(platform domain.Platform, spend, roas float64) domain.PlatformPerformance {
	return domain.PlatformPerformance{Platform: platform, Spend: spend, Revenue: spend * roas, ROAS: roas}
}

func TestStrategicInsights(t *testing.T) {
	tests := []struct {
		name            string
		stats           domain.SummaryStats
		performances    []domain.PlatformPerformance
		insights        []string
		recommendations []string
	}{
		{
			name:  "strong roas with spread",
			stats: domain.SummaryStats{OverallROAS: 3.2, AttributionGap: 60},
			performances: []domain.PlatformPerformance{
				perf(domain.PlatformFacebook, 100, 1.5),
				perf(domain.PlatformGoogle, 100, 4),
				perf(domain.PlatformTikTok, 0, 0),
			},
			insights: []string{
				"Strong ROAS",
				"High Attribution Gap",
				"Top Performer: Google is leading with a ROAS of 4.00x.",
				"Optimization Opportunity: Facebook shows the lowest ROAS at 1.50x.",
			},
			recommendations: []string{
				"Scale Up Google",
				"Re-evaluate Facebook",
				"A/B Test Creatives",
			},
		},
		{
			name:         "single platform",
			stats:        domain.SummaryStats{OverallROAS: 2.5, AttributionGap: 30},
			performances: []domain.PlatformPerformance{perf(domain.PlatformTikTok, 10, 2.5)},
			insights:     []string{"Moderate ROAS", "Moderate Attribution Gap"},
			recommendations: []string{
				"Optimize TikTok: Review creatives for TikTok to improve its ROAS of 2.50x.",
				"A/B Test Creatives",
			},
		},
		{
			name:            "no spend",
			stats:           domain.SummaryStats{},
			performances:    []domain.PlatformPerformance{perf(domain.PlatformGoogle, 0, 0)},
			insights:        []string{"Low ROAS", "Good Attribution"},
			recommendations: []string{"A/B Test Creatives"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StrategicInsights(tt.stats, tt.performances)

			require.Len(t, result.Insights, len(tt.insights))
			for i, prefix := range tt.insights {
				assert.True(t, strings.HasPrefix(result.Insights[i], prefix), "%q does not start with %q", result.Insights[i], prefix)
			}

			require.Len(t, result.Recommendations, len(tt.recommendations))
			for i, prefix := range tt.recommendations {
				assert.True(t, strings.HasPrefix(result.Recommendations[i], prefix), "%q does not start with %q", result.Recommendations[i], prefix)
			}
		})
	}
}

func TestAIInsights(t *testing.T) {
	stats := domain.SummaryStats{
		OverallROAS:            3.6,
		AttributionGap:         45,
		TotalAttributedRevenue: 550,
		TotalBusinessRevenue:   1000,
	}
	performances := []domain.PlatformPerformance{
		perf(domain.PlatformFacebook, 100, 3.5),
		perf(domain.PlatformGoogle, 100, 1.2),
	}

	insights := AIInsights(stats, performances)

	assert.Contains(t, insights.Performance, "Excellent Marketing ROI: Your overall ROAS of 3.60x")
	assert.Contains(t, insights.Performance, "Moderate Attribution Gap: The attribution gap of 45.0%")
	require.Len(t, insights.Recommendations, 3)
	assert.True(t, strings.HasPrefix(insights.Recommendations[0], "Capitalize on Facebook"))
	assert.True(t, strings.HasPrefix(insights.Recommendations[1], "Optimize Google"))
	assert.True(t, strings.HasPrefix(insights.Recommendations[2], "Enhance Tracking Precision"))
	assert.Equal(t, "Marketing Impact: Your marketing efforts account for 55.0% of total revenue.", insights.Trends)
	assert.Equal(t, "Attribution Gap: 45.0% of revenue is unattributed, indicating a need for improved tracking.", insights.Attribution)
	assert.Contains(t, insights.ExecutiveSummary, "shows strong ROI")
	assert.Len(t, insights.PlatformPerformance, 2)
}

func TestAIInsights_EmptyAndHealthy(t *testing.T) {
	insights := AIInsights(domain.SummaryStats{OverallROAS: 2, AttributionGap: 10}, nil)

	assert.Equal(t, []string{noPlatformData}, insights.Recommendations)
	assert.Contains(t, insights.Performance, "ROAS Requires Attention")
	assert.Contains(t, insights.Performance, "Healthy Attribution")
	assert.Contains(t, insights.Attribution, "Excellent Attribution: Only 10.0%")
	assert.Contains(t, insights.Trends, "0.0%")
	assert.Contains(t, insights.ExecutiveSummary, "shows moderate ROI")

	single := AIInsights(domain.SummaryStats{AttributionGap: 10}, []domain.PlatformPerformance{perf(domain.PlatformGoogle, 10, 1)})
	require.Len(t, single.Recommendations, 1)
	assert.True(t, strings.HasPrefix(single.Recommendations[0], "Continuous A/B Testing"))
}

func TestChatPrompt(t *testing.T) {
	prompt := ChatPrompt("Which platform is best?", domain.SummaryStats{TotalSpend: 42}, []domain.PlatformPerformance{perf(domain.PlatformGoogle, 10, 2)})

	assert.Contains(t, prompt, `User Query: "Which platform is best?"`)
	assert.Contains(t, prompt, `"total_spend": 42`)
	assert.Contains(t, prompt, `"platform": "Google"`)
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		reply, err := Answer(ctx, nil, "hi", domain.SummaryStats{}, nil)
		require.NoError(t, err)
		assert.Equal(t, ChatNotConfiguredReply, reply)
	})

	t.Run("model reply", func(t *testing.T) {
		generator := mocks.NewMockTextGenerator(gomock.NewController(t))
		generator.EXPECT().Generate(ctx, gomock.Any()).Return("Google leads.", nil)

		reply, err := Answer(ctx, generator, "hi", domain.SummaryStats{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Google leads.", reply)
	})

	t.Run("model error becomes reply", func(t *testing.T) {
		generator := mocks.NewMockTextGenerator(gomock.NewController(t))
		generator.EXPECT().Generate(ctx, gomock.Any()).Return("", errors.New("quota exceeded"))

		reply, err := Answer(ctx, generator, "hi", domain.SummaryStats{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "An error occurred while communicating with the AI: quota exceeded", reply)
	})

	t.Run("rate limited", func(t *testing.T) {
		generator := mocks.NewMockTextGenerator(gomock.NewController(t))
		generator.EXPECT().Generate(ctx, gomock.Any()).Return("", domain.ErrChatRateLimited)

		_, err := Answer(ctx, generator, "hi", domain.SummaryStats{}, nil)
		assert.ErrorIs(t, err, domain.ErrChatRateLimited)
	})
}

func TestService_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := processingmocks.NewMockDatasetProvider(ctrl)
	generator := mocks.NewMockTextGenerator(ctrl)

	provider.EXPECT().Current().Return(&domain.Dataset{}, nil)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "How is TikTok doing?")
		return "Fine.", nil
	})

	service := NewService(reporting.NewService(provider), generator)
	reply, err := service.Ask(context.Background(), reporting.FilterQuery{Platforms: "tiktok"}, "How is TikTok doing?")

	require.NoError(t, err)
	assert.Equal(t, "Fine.", reply)
}
