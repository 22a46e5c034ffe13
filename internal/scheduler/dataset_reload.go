package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Sensei3747/Market-Intelligence/internal/config"
	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

var ErrReloadInProgress = errors.New("dataset reload already in progress")

//go:generate mockgen -source=dataset_reload.go -destination=mocks/dataset_reload.go -package=mocks

// DatasetReloader executa o pipeline completo de carga
type DatasetReloader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// ReloadStatus é o estado exposto em /v1/dataset/status
type ReloadStatus struct {
	Enabled         bool      `json:"enabled"`
	Cron            string    `json:"cron"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
	LastRows        int       `json:"last_rows"`
	Reloads         int       `json:"reloads"`
	Failures        int       `json:"failures"`
}

// DatasetReloadService agenda a recarga periódica dos CSVs e permite disparo manual
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	config    config.DatasetReload
	reloader  DatasetReloader
	now       func() time.Time

	syncMutex   sync.Mutex
	syncRunning bool
	status      ReloadStatus

	reloads  *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewDatasetReloadService(reloader DatasetReloader, cfg config.DatasetReload, registerer prometheus.Registerer) *DatasetReloadService {
	s := &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		reloader:  reloader,
		now:       time.Now,
		status:    ReloadStatus{Enabled: cfg.Enabled, Cron: cfg.CronSchedule},
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marketing_intelligence",
			Name:      "dataset_reloads_total",
			Help:      "Recargas do dataset por resultado.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "marketing_intelligence",
			Name:      "dataset_reload_duration_seconds",
			Help:      "Duração da leitura e processamento dos CSVs.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	if registerer != nil {
		registerer.MustRegister(s.reloads, s.duration)
	}

	log.L.WithFields(log.Fields{
		"dataset_reload_cron":    cfg.CronSchedule,
		"dataset_reload_enabled": cfg.Enabled,
	}).Info("scheduler: dataset reload configured")

	return s
}

// Start agenda a recarga se habilitada e para o agendador quando o contexto é cancelado
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("scheduler: dataset reload disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.reload(ctx); err != nil && !errors.Is(err, ErrReloadInProgress) {
			log.L.WithError(err).Error("scheduler: scheduled dataset reload failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling dataset reload: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping dataset reload")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualReload recarrega de forma síncrona. Devolve ErrReloadInProgress se já houver uma carga rodando.
func (s *DatasetReloadService) TriggerManualReload(ctx context.Context) (*domain.Dataset, error) {
	log.ForContext(ctx).Info("scheduler: manual dataset reload requested")
	return s.run(ctx)
}

func (s *DatasetReloadService) reload(ctx context.Context) error {
	_, err := s.run(ctx)
	return err
}

func (s *DatasetReloadService) run(ctx context.Context) (*domain.Dataset, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrReloadInProgress
	}
	s.syncRunning = true
	s.status.Running = true
	s.status.LastStartedAt = s.now()
	s.syncMutex.Unlock()

	started := time.Now()
	dataset, err := s.reloader.Load(ctx)
	s.duration.Observe(time.Since(started).Seconds())

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.status.Running = false
	s.status.LastCompletedAt = s.now()
	s.status.Reloads++

	if err != nil {
		s.status.Failures++
		s.status.LastError = err.Error()
		s.reloads.WithLabelValues("failure").Inc()
		return nil, err
	}

	s.status.LastError = ""
	s.status.LastRows = len(dataset.Combined)
	s.reloads.WithLabelValues("success").Inc()

	return dataset, nil
}

// GetStatus retorna uma cópia do estado atual
func (s *DatasetReloadService) GetStatus() ReloadStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.status
}
