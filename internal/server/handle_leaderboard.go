package server

import (
	"net/http"
	"strings"
)

// ScoreRequest is the request body for POST /api/leaderboard. Duration
// is the run length in milliseconds.
type ScoreRequest struct {
	Name       string `json:"name"`
	Duration   int64  `json:"duration"`
	CluesFound int    `json:"cluesFound"`
}

// ScoreResponse is the response for POST /api/leaderboard.
type ScoreResponse struct {
	Success bool             `json:"success"`
	Entry   LeaderboardEntry `json:"entry"`
}

func handleSubmitScore(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScoreRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		entry := store.SubmitScore(req.Name, req.Duration, req.CluesFound)
		writeJSON(w, http.StatusOK, ScoreResponse{Success: true, Entry: entry})
	}
}

func handleGetLeaderboard(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Leaderboard())
	}
}
