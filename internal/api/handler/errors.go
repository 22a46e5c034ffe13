package handler

import (
	"bytes"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Sensei3747/Market-Intelligence/infrastructure/exporter"
	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/scheduler"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/charting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/chatting"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/processing"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	"github.com/Sensei3747/Market-Intelligence/pkg/apiErrors"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errorCodes mapeia os erros dos casos de uso para o catálogo da API
var errorCodes = []struct {
	err  error
	code string
}{
	{processing.ErrDatasetNotLoaded, apiErrors.ErrDatasetNotLoaded},
	{reporting.ErrInvalidFilter, apiErrors.ErrInvalidFilter},
	{charting.ErrUnknownChart, apiErrors.ErrNotFound},
	{charting.ErrUnknownMetric, apiErrors.ErrInvalidRequest},
	{charting.ErrNotEnoughData, apiErrors.ErrNoDataForFilter},
	{chatting.ErrConversationNotFound, apiErrors.ErrNotFound},
	{chatting.ErrConversationFull, apiErrors.ErrConversationLimits},
	{domain.ErrChatRateLimited, apiErrors.ErrTooManyRequests},
	{scheduler.ErrReloadInProgress, apiErrors.ErrReloadInProgress},
	{exporter.ErrUnsupportedFormat, apiErrors.ErrInvalidFormat},
}

func codeFor(err error) string {
	for _, candidate := range errorCodes {
		if errors.Is(err, candidate.err) {
			return candidate.code
		}
	}
	return apiErrors.ErrInternalServer
}

// writeUsecaseError traduz o erro e registra no log; erros internos não expõem a mensagem original
func writeUsecaseError(w http.ResponseWriter, r *http.Request, component string, err error) {
	code := codeFor(err)
	logger := log.ForContext(r.Context()).WithError(err)

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(component + ": request failed")
		apiErrors.WriteError(w, code, "internal error", nil)
		return
	}

	logger.Warn(component + ": request rejected")
	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// writeJSON serializa o corpo antes de escrever o status, assim uma falha de encoding vira 500
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: error encoding response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal error", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: error writing response")
	}
}

// filterQuery lê os parâmetros comuns de filtro da query string
func filterQuery(r *http.Request) reporting.FilterQuery {
	values := r.URL.Query()
	return reporting.FilterQuery{
		Preset:    values.Get("preset"),
		StartDate: values.Get("start_date"),
		EndDate:   values.Get("end_date"),
		Platforms: values.Get("platforms"),
	}
}
