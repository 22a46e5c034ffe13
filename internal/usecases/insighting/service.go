package insighting

import (
	"context"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
)

type Service struct {
	reports   *reporting.Service
	generator TextGenerator
}

// NewService aceita generator nil quando não há chave do modelo configurada
func NewService(reports *reporting.Service, generator TextGenerator) *Service {
	return &Service{reports: reports, generator: generator}
}

func (s *Service) analyse(query reporting.FilterQuery) (domain.SummaryStats, []domain.PlatformPerformance, error) {
	slice, err := s.reports.Slice(query)
	if err != nil {
		return domain.SummaryStats{}, nil, err
	}

	stats := reporting.Summarize(slice.Rows, slice.Filters.Platforms)
	return stats, reporting.PlatformPerformances(slice.Rows, slice.Filters.Platforms), nil
}

func (s *Service) Strategic(query reporting.FilterQuery) (*domain.StrategicInsights, error) {
	stats, performances, err := s.analyse(query)
	if err != nil {
		return nil, err
	}

	insights := StrategicInsights(stats, performances)
	return &insights, nil
}

func (s *Service) AI(query reporting.FilterQuery) (*domain.AIInsights, error) {
	stats, performances, err := s.analyse(query)
	if err != nil {
		return nil, err
	}

	insights := AIInsights(stats, performances)
	return &insights, nil
}

// Ask responde uma pergunta livre sobre o período filtrado
func (s *Service) Ask(ctx context.Context, query reporting.FilterQuery, question string) (string, error) {
	stats, performances, err := s.analyse(query)
	if err != nil {
		return "", err
	}

	return Answer(ctx, s.generator, question, stats, performances)
}
