package handler

import (
	"net/http"
)

// GetStrategicInsights retorna os insights e recomendações baseados em regras
func GetStrategicInsights(service Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights, err := service.Strategic(filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "insights", err)
			return
		}

		writeJSON(w, r, http.StatusOK, insights)
	})
}

func GetAIInsights(service Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights, err := service.AI(filterQuery(r))
		if err != nil {
			writeUsecaseError(w, r, "insights", err)
			return
		}

		writeJSON(w, r, http.StatusOK, insights)
	})
}
