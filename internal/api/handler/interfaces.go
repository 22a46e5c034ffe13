package handler

import (
	"context"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/scheduler"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

type Reporter interface {
	Slice(query reporting.FilterQuery) (*reporting.Slice, error)
	Summary(query reporting.FilterQuery) (*domain.DashboardSummary, error)
	Daily(query reporting.FilterQuery) (*domain.DailyReport, error)
	Platforms(query reporting.FilterQuery) ([]domain.PlatformPerformance, error)
}

type ChartRenderer interface {
	Render(name string, query reporting.FilterQuery, metric string) ([]byte, error)
}

type Insighter interface {
	Strategic(query reporting.FilterQuery) (*domain.StrategicInsights, error)
	AI(query reporting.FilterQuery) (*domain.AIInsights, error)
}

type Chatter interface {
	Send(ctx context.Context, request domain.ChatRequest, query reporting.FilterQuery) (*domain.ChatResponse, error)
	Conversation(id string) (*domain.Conversation, error)
}

// DatasetReloader é implementado pelo agendador de recarga
type DatasetReloader interface {
	TriggerManualReload(ctx context.Context) (*domain.Dataset, error)
	GetStatus() scheduler.ReloadStatus
}

type DatasetProvider interface {
	Current() (*domain.Dataset, error)
}
