package server

import (
	"net/http"
	"strings"
)

// ApproveMainQuestRequest is the request body for
// POST /api/admin/approve-main-quest.
type ApproveMainQuestRequest struct {
	PlayerName string `json:"playerName"`
	ClueCode   string `json:"clueCode"`
	Reward     int    `json:"reward"`
	Title      string `json:"title"`
}

// MessageResponse is the response for admin actions.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func handleApproveMainQuest(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ApproveMainQuestRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.PlayerName = strings.TrimSpace(req.PlayerName)
		if req.PlayerName == "" || req.ClueCode == "" {
			writeError(w, http.StatusBadRequest, "Missing playerName or clueCode")
			return
		}

		store.ApproveMainQuest(req.PlayerName, req.ClueCode, req.Title, req.Reward)
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Main quest completion approved"})
	}
}

func handleReset(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Reset()
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "All data cleared"})
	}
}

func handleClearLeaderboard(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ClearLeaderboard()
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Leaderboard cleared"})
	}
}
