package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/scheduler"
	"github.com/Sensei3747/Market-Intelligence/pkg/apiErrors"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

type datasetInfo struct {
	LoadedAt time.Time             `json:"loaded_at"`
	Rows     int                   `json:"rows"`
	Missing  int                   `json:"missing_values_total"`
	Report   domain.CleaningReport `json:"report"`
}

func newDatasetInfo(dataset *domain.Dataset) *datasetInfo {
	return &datasetInfo{
		LoadedAt: dataset.LoadedAt,
		Rows:     len(dataset.Combined),
		Missing:  dataset.Report.TotalMissing(),
		Report:   dataset.Report,
	}
}

// ReloadDataset relê os CSVs de forma síncrona
func ReloadDataset(service DatasetReloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataset, err := service.TriggerManualReload(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrReloadInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("dataset: manual reload failed")
			apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, "dataset reload failed", err.Error())
			return
		}

		logger.WithField("rows", len(dataset.Combined)).Info("dataset: manual reload completed")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "dataset reloaded",
			"dataset": newDatasetInfo(dataset),
		})
	})
}

// GetDatasetStatus junta o estado do agendador ao dataset em memória, se houver
func GetDatasetStatus(reloader DatasetReloader, provider DatasetProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"reload":  reloader.GetStatus(),
			"dataset": nil,
		}

		if dataset, err := provider.Current(); err == nil {
			response["dataset"] = newDatasetInfo(dataset)
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
