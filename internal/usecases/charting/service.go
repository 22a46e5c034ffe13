package charting

import (
	"bytes"

	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
)

type Service struct {
	reports *reporting.Service
}

func NewService(reports *reporting.Service) *Service {
	return &Service{reports: reports}
}

// Render gera o PNG do gráfico pedido sobre o recorte filtrado. O buffer só é
// devolvido se a renderização terminar sem erro.
func (s *Service) Render(name string, query reporting.FilterQuery, metric string) ([]byte, error) {
	slice, err := s.reports.Slice(query)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	platforms := slice.Filters.Platforms

	switch name {
	case ChartRevenueTrend:
		err = RevenueTrend(&buf, slice.Rows, platforms)
	case ChartAttributionGap:
		err = AttributionGap(&buf, slice.Rows, platforms)
	case ChartPlatformComparison:
		err = PlatformComparison(&buf, reporting.PlatformPerformances(slice.Rows, platforms), metric)
	case ChartSpendVsRevenue:
		err = SpendVsRevenue(&buf, slice.Rows, platforms)
	default:
		return nil, ErrUnknownChart
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
