package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// AwardRequest is the request body for POST /api/doubloons. Negative
// amounts are allowed and reduce the total.
type AwardRequest struct {
	PlayerName string `json:"playerName"`
	Amount     int    `json:"amount"`
	Reason     string `json:"reason"`
}

// AwardResponse is the response for POST /api/doubloons.
type AwardResponse struct {
	Success   bool            `json:"success"`
	Doubloons DoubloonAccount `json:"doubloons"`
}

func handleAwardDoubloons(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AwardRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerName = strings.TrimSpace(req.PlayerName)
		if req.PlayerName == "" {
			writeError(w, http.StatusBadRequest, "playerName is required")
			return
		}

		acct := store.AwardDoubloons(req.PlayerName, req.Amount, req.Reason)
		writeJSON(w, http.StatusOK, AwardResponse{Success: true, Doubloons: acct})
	}
}

func handleGetDoubloons(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		writeJSON(w, http.StatusOK, store.DoubloonsFor(name))
	}
}

func handleAllDoubloons(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.AllDoubloons())
	}
}
