package handler

import (
	"net/http"

	"github.com/Sensei3747/Market-Intelligence/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Dashboard(service Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/v1/dashboard/daily",
			Method:  http.MethodGet,
			Handler: GetDailyReport(service),
		},
		{
			Path:    "/v1/dashboard/platforms",
			Method:  http.MethodGet,
			Handler: GetPlatformPerformance(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
	}
}

func Charts(service ChartRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/:name",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
	}
}

func Insights(service Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetStrategicInsights(service),
		},
		{
			Path:    "/v1/insights/ai",
			Method:  http.MethodGet,
			Handler: GetAIInsights(service),
		},
	}
}

func Chat(service Chatter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/chat",
			Method:  http.MethodPost,
			Handler: SendChatMessage(service),
		},
		{
			Path:    "/v1/chat/:id",
			Method:  http.MethodGet,
			Handler: GetConversation(service),
		},
	}
}

func Dataset(reloader DatasetReloader, provider DatasetProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(reloader),
		},
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(reloader, provider),
		},
	}
}
