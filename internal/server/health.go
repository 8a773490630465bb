package server

import (
	"log/slog"
	"net/http"
)

// HealthResponse is the response for GET /healthz.
type HealthResponse struct {
	Store string `json:"store"`
}

func handleHealth(logger *slog.Logger, store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Store: "ok"}
		status := http.StatusOK

		if err := store.Ping(); err != nil {
			logger.Error("health check failed", "name", "store", "error", err)
			resp.Store = "error"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, resp)
	}
}
