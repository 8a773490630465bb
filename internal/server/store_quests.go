package server

import (
	"slices"

	"github.com/google/uuid"
)

// QuestParams are the admin-supplied fields for a new quest.
type QuestParams struct {
	Title            string
	Description      string
	Reward           int
	Code             string
	QuestType        string
	RequiresApproval bool
}

// CreateQuest adds an active quest to the board. IDs are UUIDs rather
// than creation timestamps so two quests created back to back can never
// collide.
func (s *Store) CreateQuest(p QuestParams) Quest {
	s.mu.Lock()
	defer s.mu.Unlock()

	questType := p.QuestType
	if questType == "" {
		questType = "side"
	}

	q := Quest{
		ID:               uuid.NewString(),
		Title:            p.Title,
		Description:      p.Description,
		Reward:           p.Reward,
		Code:             p.Code,
		QuestType:        questType,
		RequiresApproval: p.RequiresApproval,
		Active:           true,
		CreatedAt:        nowISO(),
		DiscoveredBy:     []string{},
		CompletedBy:      []string{},
	}

	s.state.Quests = append(s.state.Quests, q)
	s.save()
	return cloneQuest(q)
}

// DiscoverQuest records that a player found the quest. Discovery is
// idempotent. Quests that don't require approval complete immediately:
// the player is added to completedBy and the reward is credited once.
//
// Discovery still works on deactivated quests; the board hides them but
// the server never froze them, and the party relies on that for late
// hand-ins.
func (s *Store) DiscoverQuest(id, playerName string) (Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuest(id)
	if q == nil {
		return Quest{}, ErrNotFound
	}

	if !slices.Contains(q.DiscoveredBy, playerName) {
		q.DiscoveredBy = append(q.DiscoveredBy, playerName)
	}

	if !q.RequiresApproval && !slices.Contains(q.CompletedBy, playerName) {
		s.completeQuest(q, playerName)
	}

	s.save()
	return cloneQuest(*q), nil
}

// ApproveQuest marks a discovered quest as completed for the player and
// credits the reward. A player who never discovered the quest, or was
// already approved, is left untouched; the caller still sees the quest.
func (s *Store) ApproveQuest(id, playerName string) (Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuest(id)
	if q == nil {
		return Quest{}, ErrNotFound
	}

	if slices.Contains(q.DiscoveredBy, playerName) && !slices.Contains(q.CompletedBy, playerName) {
		s.completeQuest(q, playerName)
	}

	s.save()
	return cloneQuest(*q), nil
}

// DeactivateQuest hides the quest from the player board. It stays in
// history and, deliberately, still accepts discover/approve.
func (s *Store) DeactivateQuest(id string) (Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuest(id)
	if q == nil {
		return Quest{}, ErrNotFound
	}

	q.Active = false
	s.save()
	return cloneQuest(*q), nil
}

func (s *Store) GetQuest(id string) (Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.findQuest(id)
	if q == nil {
		return Quest{}, ErrNotFound
	}
	return cloneQuest(*q), nil
}

func (s *Store) ListQuests() []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Quest, len(s.state.Quests))
	for i, q := range s.state.Quests {
		out[i] = cloneQuest(q)
	}
	return out
}

// completeQuest appends the player to completedBy and credits the
// reward. Zero-reward quests record no transaction. Callers must hold mu
// and have checked the player is not already in completedBy.
func (s *Store) completeQuest(q *Quest, playerName string) {
	q.CompletedBy = append(q.CompletedBy, playerName)
	if q.Reward > 0 {
		s.credit(playerName, q.Reward, "Completed: "+q.Title)
	}
}

func (s *Store) findQuest(id string) *Quest {
	for i := range s.state.Quests {
		if s.state.Quests[i].ID == id {
			return &s.state.Quests[i]
		}
	}
	return nil
}

func cloneQuest(q Quest) Quest {
	q.DiscoveredBy = slices.Clone(q.DiscoveredBy)
	q.CompletedBy = slices.Clone(q.CompletedBy)
	return q
}
