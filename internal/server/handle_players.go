package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// PlayerRequest is the request body for POST /api/players. Clients sync
// their whole local progress blob; omitted fields keep the server's
// previous values.
type PlayerRequest struct {
	Name           string   `json:"name"`
	FoundCodes     []string `json:"foundCodes"`
	CompletedCodes []string `json:"completedCodes"`
	StartTime      string   `json:"startTime"`
	CompletionTime *string  `json:"completionTime"`
	Completed      *bool    `json:"completed"`
}

// PlayerResponse is the response for POST /api/players.
type PlayerResponse struct {
	Success bool   `json:"success"`
	Player  Player `json:"player"`
}

func handleUpsertPlayer(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		player := store.UpsertPlayer(PlayerUpdate{
			Name:           req.Name,
			FoundCodes:     req.FoundCodes,
			CompletedCodes: req.CompletedCodes,
			StartTime:      req.StartTime,
			CompletionTime: req.CompletionTime,
			Completed:      req.Completed,
		})

		writeJSON(w, http.StatusOK, PlayerResponse{Success: true, Player: player})
	}
}

func handleGetPlayer(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		player, err := store.GetPlayer(name)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}

		writeJSON(w, http.StatusOK, player)
	}
}

func handleListPlayers(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.ListPlayers())
	}
}

func handleActivePlayers(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.ListActivePlayers())
	}
}
