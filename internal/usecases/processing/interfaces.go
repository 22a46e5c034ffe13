package processing

import (
	"context"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// DatasetLoader lê os CSVs brutos
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.RawDataset, error)
}

// DatasetProvider expõe o dataset memoizado para os demais casos de uso
type DatasetProvider interface {
	Current() (*domain.Dataset, error)
}
