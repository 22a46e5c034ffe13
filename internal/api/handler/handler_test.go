package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sensei3747/Market-Intelligence/internal/api/handler/mocks"
	"github.com/Sensei3747/Market-Intelligence/internal/api/handler/router"
	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/scheduler"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/charting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/chatting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/processing"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	"github.com/Sensei3747/Market-Intelligence/pkg/apiErrors"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func serve(t *testing.T, routes []router.Route, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func sampleRows() []domain.CombinedRecord {
	return []domain.CombinedRecord{
		{
			BusinessDay: domain.BusinessDay{BusinessRecord: domain.BusinessRecord{
				Date:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
				Orders:       10,
				TotalRevenue: 1000,
			}},
			Platforms: map[domain.Platform]domain.PlatformDay{
				domain.PlatformFacebook: {MarketingMetrics: domain.MarketingMetrics{Spend: 100, AttributedRevenue: 300}},
			},
		},
	}
}

func TestGetDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	expectedQuery := reporting.FilterQuery{Preset: "last_7_days", Platforms: "Facebook,TikTok"}
	reporter.EXPECT().Summary(expectedQuery).Return(&domain.DashboardSummary{
		Summary: domain.SummaryStats{TotalSpend: 150, Days: 7},
		Cards:   []domain.KPICard{{Label: "Total Spend", Value: "$150", Color: "1f77b4"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary?preset=last_7_days&platforms=Facebook,TikTok", nil)
	rec := serve(t, Dashboard(reporter), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body domain.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 150.0, body.Summary.TotalSpend)
	assert.Equal(t, "$150", body.Cards[0].Value)
}

func TestDashboardErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"dataset not loaded", processing.ErrDatasetNotLoaded, http.StatusServiceUnavailable, apiErrors.ErrDatasetNotLoaded},
		{"invalid filter", errors.Join(reporting.ErrInvalidFilter, errors.New("bad preset")), http.StatusBadRequest, apiErrors.ErrInvalidFilter},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := mocks.NewMockReporter(ctrl)
			reporter.EXPECT().Platforms(gomock.Any()).Return(nil, tt.err)

			rec := serve(t, Dashboard(reporter), httptest.NewRequest(http.MethodGet, "/v1/dashboard/platforms", nil))

			assert.Equal(t, tt.status, rec.Code)
			apiErr := decodeError(t, rec)
			assert.Equal(t, tt.code, apiErr.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, apiErr.Message, "boom")
			}
		})
	}
}

func TestGetDashboardSummary_UnencodableBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Summary(gomock.Any()).Return(&domain.DashboardSummary{
		Summary: domain.SummaryStats{TotalSpend: math.Inf(1), Days: 7},
	}, nil)

	rec := serve(t, Dashboard(reporter), httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
}

func TestGetDailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Daily(reporting.FilterQuery{StartDate: "2025-05-01", EndDate: "2025-05-31"}).Return(&domain.DailyReport{
		Columns: []string{"date"},
		Rows:    sampleRows(),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/daily?start_date=2025-05-01&end_date=2025-05-31", nil)
	rec := serve(t, Dashboard(reporter), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"columns":["date"]`)
}

func TestExportReport(t *testing.T) {
	t.Run("csv by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().Slice(gomock.Any()).Return(&reporting.Slice{
			Filters: &domain.DashboardFilters{Platforms: []domain.Platform{domain.PlatformFacebook}},
			Rows:    sampleRows(),
		}, nil)

		rec := serve(t, Dashboard(reporter), httptest.NewRequest(http.MethodGet, "/v1/dashboard/export", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="marketing_report.csv"`, rec.Header().Get("Content-Disposition"))

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "date,"))
		assert.True(t, strings.HasPrefix(lines[1], "2025-05-01,10,"))
	})

	t.Run("xlsx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)
		reporter.EXPECT().Slice(gomock.Any()).Return(&reporting.Slice{
			Filters: &domain.DashboardFilters{Platforms: domain.Platforms},
			Rows:    sampleRows(),
		}, nil)

		rec := serve(t, Dashboard(reporter), httptest.NewRequest(http.MethodGet, "/v1/dashboard/export?format=xlsx", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
		// arquivos xlsx são zip
		assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
	})

	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := mocks.NewMockReporter(ctrl)

		rec := serve(t, Dashboard(reporter), httptest.NewRequest(http.MethodGet, "/v1/dashboard/export?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestGetChart(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := mocks.NewMockChartRenderer(ctrl)
		renderer.EXPECT().Render("platform-comparison", reporting.FilterQuery{}, "ctr").Return([]byte("\x89PNG"), nil)

		rec := serve(t, Charts(renderer), httptest.NewRequest(http.MethodGet, "/v1/charts/platform-comparison?metric=ctr", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown chart", charting.ErrUnknownChart, http.StatusNotFound, apiErrors.ErrNotFound},
		{"unknown metric", charting.ErrUnknownMetric, http.StatusBadRequest, apiErrors.ErrInvalidRequest},
		{"no data", charting.ErrNotEnoughData, http.StatusNotFound, apiErrors.ErrNoDataForFilter},
		{"render failure", errors.New("font"), http.StatusInternalServerError, apiErrors.ErrRendering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			renderer := mocks.NewMockChartRenderer(ctrl)
			renderer.EXPECT().Render("pie", gomock.Any(), "").Return(nil, tt.err)

			rec := serve(t, Charts(renderer), httptest.NewRequest(http.MethodGet, "/v1/charts/pie", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	insighter := mocks.NewMockInsighter(ctrl)
	insighter.EXPECT().Strategic(gomock.Any()).Return(&domain.StrategicInsights{
		Insights:        []string{"strong"},
		Recommendations: []string{"A/B Test Creatives"},
	}, nil)
	insighter.EXPECT().AI(gomock.Any()).Return(&domain.AIInsights{ExecutiveSummary: "## Summary"}, nil)

	rec := serve(t, Insights(insighter), httptest.NewRequest(http.MethodGet, "/v1/insights", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A/B Test Creatives")

	rec = serve(t, Insights(insighter), httptest.NewRequest(http.MethodGet, "/v1/insights/ai", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"executive_summary":"## Summary"`)
}

func TestSendChatMessage(t *testing.T) {
	t.Run("answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chatter := mocks.NewMockChatter(ctrl)
		chatter.EXPECT().
			Send(gomock.Any(), domain.ChatRequest{Message: "Which platform is best?"}, reporting.FilterQuery{Preset: "last_30_days"}).
			Return(&domain.ChatResponse{
				ConversationID: "abc123",
				Reply:          domain.ChatMessage{Role: domain.ChatRoleAssistant, Content: "Google"},
			}, nil)

		body := strings.NewReader(`{"message":"  Which platform is best?  "}`)
		rec := serve(t, Chat(chatter), httptest.NewRequest(http.MethodPost, "/v1/chat?preset=last_30_days", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		var response domain.ChatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "abc123", response.ConversationID)
		assert.Equal(t, "Google", response.Reply.Content)
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := serve(t, Chat(mocks.NewMockChatter(ctrl)), httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("blank message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rec := serve(t, Chat(mocks.NewMockChatter(ctrl)), httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"message":"   "}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		assert.Equal(t, map[string]any{"message": "required"}, apiErr.Details)
	})

	errorsByStatus := []struct {
		name   string
		err    error
		status int
	}{
		{"rate limited", domain.ErrChatRateLimited, http.StatusTooManyRequests},
		{"conversation full", chatting.ErrConversationFull, http.StatusUnprocessableEntity},
		{"conversation missing", chatting.ErrConversationNotFound, http.StatusNotFound},
	}
	for _, tt := range errorsByStatus {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chatter := mocks.NewMockChatter(ctrl)
			chatter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := serve(t, Chat(chatter), httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"conversation_id":"x","message":"hi"}`)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatter := mocks.NewMockChatter(ctrl)
	chatter.EXPECT().Conversation("abc").Return(&domain.Conversation{ID: "abc", Messages: []domain.ChatMessage{{Role: domain.ChatRoleUser, Content: "hi"}}}, nil)
	chatter.EXPECT().Conversation("missing").Return(nil, chatting.ErrConversationNotFound)

	rec := serve(t, Chat(chatter), httptest.NewRequest(http.MethodGet, "/v1/chat/abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content":"hi"`)

	rec = serve(t, Chat(chatter), httptest.NewRequest(http.MethodGet, "/v1/chat/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDatasetRoutes(t *testing.T) {
	loadedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dataset := &domain.Dataset{Combined: sampleRows(), LoadedAt: loadedAt}
	dataset.Report.AddMissing("business", "orders")

	t.Run("reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockDatasetReloader(ctrl)
		reloader.EXPECT().TriggerManualReload(gomock.Any()).Return(dataset, nil)

		rec := serve(t, Dataset(reloader, mocks.NewMockDatasetProvider(ctrl)), httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rows":1`)
		assert.Contains(t, rec.Body.String(), `"missing_values_total":1`)
	})

	t.Run("reload in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockDatasetReloader(ctrl)
		reloader.EXPECT().TriggerManualReload(gomock.Any()).Return(nil, scheduler.ErrReloadInProgress)

		rec := serve(t, Dataset(reloader, mocks.NewMockDatasetProvider(ctrl)), httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrReloadInProgress, decodeError(t, rec).Code)
	})

	t.Run("reload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockDatasetReloader(ctrl)
		reloader.EXPECT().TriggerManualReload(gomock.Any()).DoAndReturn(func(context.Context) (*domain.Dataset, error) {
			return nil, errors.New("dataset/business.csv: dataset file not found")
		})

		rec := serve(t, Dataset(reloader, mocks.NewMockDatasetProvider(ctrl)), httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatasetLoad, decodeError(t, rec).Code)
	})

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockDatasetReloader(ctrl)
		provider := mocks.NewMockDatasetProvider(ctrl)
		reloader.EXPECT().GetStatus().Return(scheduler.ReloadStatus{Enabled: true, Cron: "*/30 * * * *", LastRows: 1})
		provider.EXPECT().Current().Return(dataset, nil)

		rec := serve(t, Dataset(reloader, provider), httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cron":"*/30 * * * *"`)
		assert.Contains(t, rec.Body.String(), `"loaded_at":"2025-06-01T12:00:00Z"`)
	})

	t.Run("status before first load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockDatasetReloader(ctrl)
		provider := mocks.NewMockDatasetProvider(ctrl)
		reloader.EXPECT().GetStatus().Return(scheduler.ReloadStatus{LastError: "missing file"})
		provider.EXPECT().Current().Return(nil, processing.ErrDatasetNotLoaded)

		rec := serve(t, Dataset(reloader, provider), httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dataset":null`)
		assert.Contains(t, rec.Body.String(), `"last_error":"missing file"`)
	})
}

func TestRouterFallbacks(t *testing.T) {
	rec := serve(t, Healthcheck(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = serve(t, Healthcheck(), httptest.NewRequest(http.MethodPost, "/healthcheck", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = serve(t, Healthcheck(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}
