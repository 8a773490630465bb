package server

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestUpsertAndGetPlayer(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/players", PlayerRequest{
		Name:       "Jack",
		FoundCodes: []string{"PARROT"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("upsert status = %d: %s", w.Code, w.Body.String())
	}

	var resp PlayerResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Success || resp.Player.Name != "Jack" {
		t.Fatalf("response = %+v", resp)
	}

	w = doJSON(t, r, http.MethodGet, "/api/players/Jack", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	var p Player
	json.NewDecoder(w.Body).Decode(&p)
	if len(p.FoundCodes) != 1 || p.FoundCodes[0] != "PARROT" {
		t.Errorf("foundCodes = %v", p.FoundCodes)
	}
}

func TestGetPlayerNotFoundHTTP(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/players/Nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpsertPlayerRequiresName(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/players", PlayerRequest{Name: "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestActivePlayersEndpoint(t *testing.T) {
	r, store := testRouter(t)
	store.UpsertPlayer(PlayerUpdate{Name: "Jack", FoundCodes: []string{"PARROT"}})
	store.UpsertPlayer(PlayerUpdate{Name: "Anne", FoundCodes: []string{"PARROT", "ANCHOR"}})

	w := doJSON(t, r, http.MethodGet, "/api/players/active", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var active []ActivePlayer
	json.NewDecoder(w.Body).Decode(&active)
	if len(active) != 2 {
		t.Errorf("active = %d, want 2", len(active))
	}
}
