package reporting

import (
	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/processing"
)

// Slice é o recorte filtrado do dataset que alimenta tabelas, gráficos e insights
type Slice struct {
	Filters *domain.DashboardFilters
	Rows    []domain.CombinedRecord
}

type Service struct {
	provider processing.DatasetProvider
}

func NewService(provider processing.DatasetProvider) *Service {
	return &Service{provider: provider}
}

// Slice aplica os filtros sobre o dataset atual
func (s *Service) Slice(query FilterQuery) (*Slice, error) {
	dataset, err := s.provider.Current()
	if err != nil {
		return nil, err
	}

	minDate, maxDate, _ := dataset.DateBounds()
	filters, err := ResolveFilters(query, minDate, maxDate)
	if err != nil {
		return nil, err
	}

	return &Slice{Filters: filters, Rows: Filter(dataset.Combined, filters)}, nil
}

func (s *Service) Summary(query FilterQuery) (*domain.DashboardSummary, error) {
	slice, err := s.Slice(query)
	if err != nil {
		return nil, err
	}

	stats := Summarize(slice.Rows, slice.Filters.Platforms)
	return &domain.DashboardSummary{
		Filters: slice.Filters,
		Summary: stats,
		Cards:   KPICards(stats),
	}, nil
}

func (s *Service) Daily(query FilterQuery) (*domain.DailyReport, error) {
	slice, err := s.Slice(query)
	if err != nil {
		return nil, err
	}

	return &domain.DailyReport{
		Filters: slice.Filters,
		Columns: domain.CombinedColumns(slice.Filters.Platforms),
		Rows:    slice.Rows,
		Gaps:    DailyGaps(slice.Rows, slice.Filters.Platforms),
	}, nil
}

func (s *Service) Platforms(query FilterQuery) ([]domain.PlatformPerformance, error) {
	slice, err := s.Slice(query)
	if err != nil {
		return nil, err
	}
	return PlatformPerformances(slice.Rows, slice.Filters.Platforms), nil
}

