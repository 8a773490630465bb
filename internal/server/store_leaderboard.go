package server

import (
	"cmp"
	"slices"
)

const leaderboardSize = 50

// SubmitScore appends a finished run and re-ranks the board: ascending
// by duration, top 50 kept. Names are not deduplicated; a player who
// runs the hunt twice appears twice.
func (s *Store) SubmitScore(name string, duration int64, cluesFound int) LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := LeaderboardEntry{
		Name:       name,
		Duration:   duration,
		CluesFound: cluesFound,
		Date:       nowISO(),
	}

	s.state.Leaderboard = append(s.state.Leaderboard, entry)
	slices.SortStableFunc(s.state.Leaderboard, func(a, b LeaderboardEntry) int {
		return cmp.Compare(a.Duration, b.Duration)
	})
	if len(s.state.Leaderboard) > leaderboardSize {
		s.state.Leaderboard = s.state.Leaderboard[:leaderboardSize]
	}

	s.save()
	return entry
}

func (s *Store) Leaderboard() []LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Leaderboard)
}
