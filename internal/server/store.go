package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"
)

var ErrNotFound = errors.New("not found")

// Player is a treasure hunter's synced hunt progress. The client owns its
// own local copy and pushes it up opportunistically; the server keeps the
// last write.
type Player struct {
	Name           string   `json:"name"`
	FoundCodes     []string `json:"foundCodes"`
	CompletedCodes []string `json:"completedCodes"`
	StartTime      string   `json:"startTime"`
	CompletionTime *string  `json:"completionTime"`
	Completed      bool     `json:"completed"`
	LastUpdated    string   `json:"lastUpdated"`
}

// ActivePlayer is the live-board summary of a player still on the hunt.
// Entries are removed once the player finishes.
type ActivePlayer struct {
	Name        string `json:"name"`
	CluesFound  int    `json:"cluesFound"`
	StartTime   string `json:"startTime"`
	LastUpdated string `json:"lastUpdated"`
}

// Quest is a side (or main) objective. discoveredBy/completedBy are
// order-of-arrival lists; a player appears at most once in each.
type Quest struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Reward           int      `json:"reward"`
	Code             string   `json:"code"`
	QuestType        string   `json:"questType"`
	RequiresApproval bool     `json:"requiresApproval"`
	Active           bool     `json:"active"`
	CreatedAt        string   `json:"createdAt"`
	DiscoveredBy     []string `json:"discoveredBy"`
	CompletedBy      []string `json:"completedBy"`
}

// DoubloonAccount holds a player's running total plus the append-only
// transaction history behind it.
type DoubloonAccount struct {
	Total        int                   `json:"total"`
	Transactions []DoubloonTransaction `json:"transactions"`
}

type DoubloonTransaction struct {
	Amount    int    `json:"amount"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

// LeaderboardEntry is one finished run. Duration is milliseconds.
type LeaderboardEntry struct {
	Name       string `json:"name"`
	Duration   int64  `json:"duration"`
	CluesFound int    `json:"cluesFound"`
	Date       string `json:"date"`
}

// GameState is the whole game: the single unit of persistence. It is
// serialized wholesale to one JSON file after every mutation.
type GameState struct {
	Players       []Player                    `json:"players"`
	ActivePlayers []ActivePlayer              `json:"activePlayers"`
	Quests        []Quest                     `json:"quests"`
	Doubloons     map[string]*DoubloonAccount `json:"doubloons"`
	Leaderboard   []LeaderboardEntry          `json:"leaderboard"`
	Config        json.RawMessage             `json:"config"`
}

func newGameState() *GameState {
	return &GameState{
		Players:       []Player{},
		ActivePlayers: []ActivePlayer{},
		Quests:        []Quest{},
		Doubloons:     map[string]*DoubloonAccount{},
		Leaderboard:   []LeaderboardEntry{},
	}
}

// Store owns the game state. A single mutex serializes every
// mutate-then-persist, so concurrent requests can never interleave their
// writes; the party-sized load makes anything fancier unnecessary.
//
// Persistence is deliberately best-effort: a failed save is logged and
// swallowed, keeping the in-memory state authoritative.
type Store struct {
	mu     sync.Mutex
	path   string
	state  *GameState
	logger *slog.Logger
}

// OpenStore loads the snapshot at path if one exists, otherwise starts
// from an empty game. The game config (clues, hints, timings) is read
// separately from configPath and carried opaquely in the state; a reset
// wipes everything except it.
func OpenStore(path, configPath string, logger *slog.Logger) *Store {
	s := &Store{path: path, state: newGameState(), logger: logger}

	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, s.state); err != nil {
			logger.Error("game data corrupt, starting fresh", "path", path, "error", err)
			s.state = newGameState()
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		logger.Error("reading game data, starting fresh", "path", path, "error", err)
	}
	// Snapshots from older runs may omit collections; clients expect
	// arrays, not null.
	if s.state.Players == nil {
		s.state.Players = []Player{}
	}
	if s.state.ActivePlayers == nil {
		s.state.ActivePlayers = []ActivePlayer{}
	}
	if s.state.Quests == nil {
		s.state.Quests = []Quest{}
	}
	if s.state.Doubloons == nil {
		s.state.Doubloons = map[string]*DoubloonAccount{}
	}
	if s.state.Leaderboard == nil {
		s.state.Leaderboard = []LeaderboardEntry{}
	}

	if configPath != "" {
		cfg, err := os.ReadFile(configPath)
		if err != nil {
			logger.Error("loading game config", "path", configPath, "error", err)
		} else {
			s.state.Config = cfg
		}
	}

	return s
}

// save flushes the whole aggregate to disk. A failed save is logged and
// swallowed; the in-memory state stays authoritative. Callers must hold mu.
func (s *Store) save() {
	if err := s.flush(); err != nil {
		s.logger.Error("saving game data", "path", s.path, "error", err)
	}
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Ping reports whether the snapshot can actually be written, for the
// health endpoint.
func (s *Store) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

// Config returns the opaque game config blob loaded at startup.
func (s *Store) Config() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Config
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
