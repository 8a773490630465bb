package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Treasure Hunt API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the pirate treasure hunt party game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Reports whether the game snapshot can be persisted.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/config
	getConfig, _ := r.NewOperationContext(http.MethodGet, "/api/config")
	getConfig.SetSummary("Game config")
	getConfig.SetDescription("Returns the game configuration blob: clue definitions, hint unlock delays.")
	getConfig.AddRespStructure(map[string]any{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getConfig)

	// GET /api/players
	listPlayers, _ := r.NewOperationContext(http.MethodGet, "/api/players")
	listPlayers.SetSummary("List players")
	listPlayers.SetDescription("Returns every registered player's synced progress.")
	listPlayers.AddRespStructure([]Player{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listPlayers)

	// POST /api/players
	upsertPlayer, _ := r.NewOperationContext(http.MethodPost, "/api/players")
	upsertPlayer.SetSummary("Sync player progress")
	upsertPlayer.SetDescription("Registers a player on first sync; merges progress on later syncs.")
	upsertPlayer.AddReqStructure(PlayerRequest{})
	upsertPlayer.AddRespStructure(PlayerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	upsertPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(upsertPlayer)

	// GET /api/players/active
	activePlayers, _ := r.NewOperationContext(http.MethodGet, "/api/players/active")
	activePlayers.SetSummary("Active players")
	activePlayers.SetDescription("Returns players still on the hunt, for the live board.")
	activePlayers.AddRespStructure([]ActivePlayer{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(activePlayers)

	// GET /api/players/{name}
	getPlayer, _ := r.NewOperationContext(http.MethodGet, "/api/players/{name}")
	getPlayer.SetSummary("Get player")
	getPlayer.SetDescription("Returns one player's synced progress.")
	getPlayer.AddRespStructure(Player{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlayer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPlayer)

	// GET /api/leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getBoard.SetSummary("Leaderboard")
	getBoard.SetDescription("Returns finished runs, fastest first, top 50.")
	getBoard.AddRespStructure([]LeaderboardEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// POST /api/leaderboard
	submitScore, _ := r.NewOperationContext(http.MethodPost, "/api/leaderboard")
	submitScore.SetSummary("Submit run")
	submitScore.SetDescription("Records a finished run on the leaderboard.")
	submitScore.AddReqStructure(ScoreRequest{})
	submitScore.AddRespStructure(ScoreResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	submitScore.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(submitScore)

	// GET /api/quests
	listQuests, _ := r.NewOperationContext(http.MethodGet, "/api/quests")
	listQuests.SetSummary("List quests")
	listQuests.SetDescription("Returns all quests, active and deactivated; clients filter.")
	listQuests.AddRespStructure([]Quest{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listQuests)

	// POST /api/quests
	createQuest, _ := r.NewOperationContext(http.MethodPost, "/api/quests")
	createQuest.SetSummary("Create quest")
	createQuest.SetDescription("Adds an active quest to the board.")
	createQuest.AddReqStructure(CreateQuestRequest{})
	createQuest.AddRespStructure(QuestResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	createQuest.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(createQuest)

	// PUT /api/quests/{id}
	updateQuest, _ := r.NewOperationContext(http.MethodPut, "/api/quests/{id}")
	updateQuest.SetSummary("Update quest")
	updateQuest.SetDescription("Applies a quest action: discover, approve, or deactivate.")
	updateQuest.AddReqStructure(UpdateQuestRequest{})
	updateQuest.AddRespStructure(QuestResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	updateQuest.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(updateQuest)

	// GET /api/doubloons
	allDoubloons, _ := r.NewOperationContext(http.MethodGet, "/api/doubloons")
	allDoubloons.SetSummary("All doubloon accounts")
	allDoubloons.SetDescription("Returns every player's doubloon account, keyed by name.")
	allDoubloons.AddRespStructure(map[string]DoubloonAccount{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(allDoubloons)

	// GET /api/doubloons/{name}
	getDoubloons, _ := r.NewOperationContext(http.MethodGet, "/api/doubloons/{name}")
	getDoubloons.SetSummary("Player doubloons")
	getDoubloons.SetDescription("Returns one player's doubloon account; empty for unknown players.")
	getDoubloons.AddRespStructure(DoubloonAccount{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDoubloons)

	// POST /api/doubloons
	award, _ := r.NewOperationContext(http.MethodPost, "/api/doubloons")
	award.SetSummary("Award doubloons")
	award.SetDescription("Credits doubloons to a player. Negative amounts confiscate.")
	award.AddReqStructure(AwardRequest{})
	award.AddRespStructure(AwardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	award.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(award)

	// POST /api/admin/approve-main-quest
	approveMain, _ := r.NewOperationContext(http.MethodPost, "/api/admin/approve-main-quest")
	approveMain.SetSummary("Approve main quest")
	approveMain.SetDescription("Credits the reward for a main-hunt clue. Requires X-Admin-Password header.")
	approveMain.AddReqStructure(ApproveMainQuestRequest{})
	approveMain.AddRespStructure(MessageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	approveMain.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	approveMain.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(approveMain)

	// POST /api/admin/reset
	reset, _ := r.NewOperationContext(http.MethodPost, "/api/admin/reset")
	reset.SetSummary("Reset game")
	reset.SetDescription("Wipes players, quests, doubloons, and leaderboard. Config survives. Requires X-Admin-Password header.")
	reset.AddRespStructure(MessageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	reset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(reset)

	// POST /api/admin/clear-leaderboard
	clearBoard, _ := r.NewOperationContext(http.MethodPost, "/api/admin/clear-leaderboard")
	clearBoard.SetSummary("Clear leaderboard")
	clearBoard.SetDescription("Empties the leaderboard and the active-player board. Requires X-Admin-Password header.")
	clearBoard.AddRespStructure(MessageResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	clearBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(clearBoard)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
