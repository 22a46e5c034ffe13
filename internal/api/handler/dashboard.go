package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Sensei3747/Market-Intelligence/infrastructure/exporter"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

// GetDashboardSummary retorna os totais do período e os cartões de KPI
func GetDashboardSummary(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "dashboard", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"rows": summary.Summary.Days,
		}).Debug("dashboard: summary generated")

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// GetDailyReport retorna a tabela combinada filtrada com a série de gap diário
func GetDailyReport(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Daily(filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "dashboard", err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetPlatformPerformance(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		performances, err := service.Platforms(filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "dashboard", err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{"platforms": performances})
	})
}

// ExportReport devolve o recorte filtrado como anexo CSV ou XLSX
func ExportReport(service Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format, err := exporter.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			writeUsecaseError(w, r, "export", err)
			return
		}

		slice, err := service.Slice(filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "export", err)
			return
		}

		platforms := slice.Filters.Platforms
		report := exporter.Report{
			Platforms:    platforms,
			Rows:         slice.Rows,
			Summary:      reporting.Summarize(slice.Rows, platforms),
			Performances: reporting.PlatformPerformances(slice.Rows, platforms),
		}

		// gera tudo em memória para ainda poder responder com erro JSON
		var buf bytes.Buffer
		if err := exporter.Write(&buf, format, report); err != nil {
			logger.WithError(err).Error("export: error writing report")
			writeRenderingError(w)
			return
		}

		logger.WithFields(log.Fields{
			"rows":   len(slice.Rows),
			"format": format,
		}).Info("export: report generated")

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName()))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("export: error writing response")
		}
	})
}
