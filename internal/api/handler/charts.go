package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Sensei3747/Market-Intelligence/internal/usecases/charting"
	"github.com/Sensei3747/Market-Intelligence/pkg/apiErrors"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

func GetChart(service ChartRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "chart name is required", nil)
			return
		}

		image, err := service.Render(name, filterQuery(r), r.URL.Query().Get("metric"))
		if err != nil {
			if errors.Is(err, charting.ErrUnknownChart) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), map[string]any{"available": charting.Charts})
				return
			}
			if codeFor(err) == apiErrors.ErrInternalServer {
				log.ForContext(r.Context()).WithError(err).WithField("chart", name).Error("charts: error rendering chart")
				writeRenderingError(w)
				return
			}
			writeUsecaseError(w, r, "charts", err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(image); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("charts: error writing response")
		}
	})
}

func writeRenderingError(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrRendering, "could not render the requested output", nil)
}
