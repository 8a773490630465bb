package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store *Store, adminPassword, staticDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Treasure Hunt API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, store))

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", handleGetConfig(store))

		r.Get("/players", handleListPlayers(store))
		r.Post("/players", handleUpsertPlayer(store))
		r.Get("/players/active", handleActivePlayers(store))
		r.Get("/players/{name}", handleGetPlayer(store))

		r.Get("/leaderboard", handleGetLeaderboard(store))
		r.Post("/leaderboard", handleSubmitScore(store))

		r.Get("/quests", handleListQuests(store))
		r.Post("/quests", handleCreateQuest(store))
		r.Put("/quests/{id}", handleUpdateQuest(store))

		r.Get("/doubloons", handleAllDoubloons(store))
		r.Post("/doubloons", handleAwardDoubloons(store))
		r.Get("/doubloons/{name}", handleGetDoubloons(store))

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminAuthMiddleware(adminPassword))
			r.Post("/approve-main-quest", handleApproveMainQuest(store))
			r.Post("/reset", handleReset(store))
			r.Post("/clear-leaderboard", handleClearLeaderboard(store))
		})
	})

	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			logger.Info("serving static site", "dir", staticDir)
			r.NotFound(handleStatic(staticDir))
		}
	}
}
