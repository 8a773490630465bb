package server

import "net/http"

// handleGetConfig serves the game config blob (clue definitions, hint
// unlock delays). The server never looks inside it.
func handleGetConfig(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := store.Config()
		if cfg == nil {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(cfg)
	}
}
