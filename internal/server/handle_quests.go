package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CreateQuestRequest is the request body for POST /api/quests.
type CreateQuestRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Reward           int    `json:"reward"`
	Code             string `json:"code"`
	QuestType        string `json:"questType"`
	RequiresApproval bool   `json:"requiresApproval"`
}

// UpdateQuestRequest is the request body for PUT /api/quests/{id}.
// Action is one of discover, approve, deactivate; the first two carry
// the acting player's name.
type UpdateQuestRequest struct {
	Action     string `json:"action"`
	PlayerName string `json:"playerName"`
}

// QuestResponse is the response for quest mutations.
type QuestResponse struct {
	Success bool  `json:"success"`
	Quest   Quest `json:"quest"`
}

func handleCreateQuest(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuestRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}

		quest := store.CreateQuest(QuestParams{
			Title:            req.Title,
			Description:      req.Description,
			Reward:           req.Reward,
			Code:             req.Code,
			QuestType:        req.QuestType,
			RequiresApproval: req.RequiresApproval,
		})

		writeJSON(w, http.StatusOK, QuestResponse{Success: true, Quest: quest})
	}
}

func handleUpdateQuest(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateQuestRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var (
			quest Quest
			err   error
		)

		// Unknown actions, and discover/approve without a player, fall
		// through to a plain read: still a success, nothing changed.
		switch {
		case req.Action == "discover" && req.PlayerName != "":
			quest, err = store.DiscoverQuest(id, req.PlayerName)
		case req.Action == "approve" && req.PlayerName != "":
			quest, err = store.ApproveQuest(id, req.PlayerName)
		case req.Action == "deactivate":
			quest, err = store.DeactivateQuest(id)
		default:
			quest, err = store.GetQuest(id)
		}

		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quest not found")
			return
		}

		writeJSON(w, http.StatusOK, QuestResponse{Success: true, Quest: quest})
	}
}

func handleListQuests(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.ListQuests())
	}
}
