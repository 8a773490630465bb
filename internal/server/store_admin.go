package server

// Reset wipes every player, quest, doubloon account and leaderboard
// entry. The game config survives so the hunt can restart immediately.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.state.Config
	s.state = newGameState()
	s.state.Config = cfg
	s.save()
}

// ClearLeaderboard empties the leaderboard and the active-player board.
// Both feed the same wall display, so they are cleared together.
func (s *Store) ClearLeaderboard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Leaderboard = []LeaderboardEntry{}
	s.state.ActivePlayers = []ActivePlayer{}
	s.save()
}

// ApproveMainQuest credits the reward for a main-hunt clue an admin has
// signed off on. Main clues live in the config blob, not the quest
// board, so there is no completedBy bookkeeping here, just the ledger
// entry.
func (s *Store) ApproveMainQuest(playerName, clueCode, title string, reward int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reward > 0 {
		label := title
		if label == "" {
			label = clueCode
		}
		s.credit(playerName, reward, "Main quest approved: "+label)
	}
	s.save()
}
