package processing

import (
	"context"
	"sync"
	"time"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

// Service mantém em memória o último dataset processado com sucesso
type Service struct {
	loader DatasetLoader
	now    func() time.Time

	loadMutex sync.Mutex
	mu        sync.RWMutex
	dataset   *domain.Dataset
}

func NewService(loader DatasetLoader) *Service {
	return &Service{
		loader: loader,
		now:    time.Now,
	}
}

// Load executa leitura, limpeza, cálculo de KPIs e combinação. Em caso de erro
// o dataset anterior continua disponível.
func (s *Service) Load(ctx context.Context) (*domain.Dataset, error) {
	s.loadMutex.Lock()
	defer s.loadMutex.Unlock()

	logger := log.ForContext(ctx)

	raw, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("processing: failed to read dataset files")
		return nil, err
	}

	dataset, err := Process(raw)
	if err != nil {
		logger.WithError(err).Error("processing: failed to clean dataset")
		return nil, err
	}
	dataset.LoadedAt = s.now()

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"rows":                   len(dataset.Combined),
		"dataset_missing_values": dataset.Report.TotalMissing(),
		"dataset_marketing_rows": dataset.Report.MarketingRows,
	}).Info("processing: dataset loaded")

	return dataset, nil
}

// Current devolve o dataset memoizado ou ErrDatasetNotLoaded antes da primeira carga
func (s *Service) Current() (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return nil, ErrDatasetNotLoaded
	}
	return s.dataset, nil
}

// Process é o pipeline puro sobre o dataset bruto
func Process(raw *domain.RawDataset) (*domain.Dataset, error) {
	business, marketing, report, err := Clean(raw)
	if err != nil {
		return nil, err
	}

	combined := Combine(ComputeBusinessKPIs(business), ComputeMarketingKPIs(marketing))

	return &domain.Dataset{
		Combined: combined,
		Report:   report,
	}, nil
}
