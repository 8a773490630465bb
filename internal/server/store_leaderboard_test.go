package server

import (
	"cmp"
	"fmt"
	"slices"
	"testing"
)

func TestLeaderboardSortedAscending(t *testing.T) {
	s := newTestStore(t)

	s.SubmitScore("Jack", 90000, 5)
	s.SubmitScore("Anne", 45000, 5)
	s.SubmitScore("Mary", 60000, 4)

	board := s.Leaderboard()
	if len(board) != 3 {
		t.Fatalf("entries = %d, want 3", len(board))
	}

	got := []string{board[0].Name, board[1].Name, board[2].Name}
	if !slices.Equal(got, []string{"Anne", "Mary", "Jack"}) {
		t.Errorf("order = %v", got)
	}
	if !slices.IsSortedFunc(board, func(a, b LeaderboardEntry) int {
		return cmp.Compare(a.Duration, b.Duration)
	}) {
		t.Error("board not sorted by duration")
	}
}

func TestLeaderboardTruncatesToTop50(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 60; i++ {
		s.SubmitScore(fmt.Sprintf("Pirate %d", i), int64(100000-i*1000), 5)
	}

	board := s.Leaderboard()
	if len(board) != 50 {
		t.Fatalf("entries = %d, want 50", len(board))
	}

	// The slowest runs fell off the bottom.
	for _, e := range board {
		if e.Duration > 90000 {
			t.Errorf("entry %q with duration %d should have been truncated", e.Name, e.Duration)
		}
	}
}

// The same name can appear more than once; runs are ranked, not players.
func TestLeaderboardAllowsDuplicateNames(t *testing.T) {
	s := newTestStore(t)

	s.SubmitScore("Jack", 90000, 5)
	s.SubmitScore("Jack", 45000, 5)

	if got := len(s.Leaderboard()); got != 2 {
		t.Errorf("entries = %d, want 2", got)
	}
}
