package server

import "slices"

// PlayerUpdate carries one progress sync from a client. Nil fields were
// absent from the request and keep the server's previous value.
type PlayerUpdate struct {
	Name           string
	FoundCodes     []string
	CompletedCodes []string
	StartTime      string
	CompletionTime *string
	Completed      *bool
}

// UpsertPlayer registers a player on first sync and merges subsequent
// syncs field by field. It also maintains the active-player board: a
// player with found clues stays on it until their sync reports the hunt
// completed.
func (s *Store) UpsertPlayer(u PlayerUpdate) Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := nowISO()
	i := slices.IndexFunc(s.state.Players, func(p Player) bool { return p.Name == u.Name })

	if i >= 0 {
		p := &s.state.Players[i]
		if u.FoundCodes != nil {
			p.FoundCodes = u.FoundCodes
		}
		if u.CompletedCodes != nil {
			p.CompletedCodes = u.CompletedCodes
		}
		if u.StartTime != "" {
			p.StartTime = u.StartTime
		}
		if u.CompletionTime != nil {
			p.CompletionTime = u.CompletionTime
		}
		if u.Completed != nil {
			p.Completed = *u.Completed
		}
		p.LastUpdated = now
	} else {
		p := Player{
			Name:           u.Name,
			FoundCodes:     []string{},
			CompletedCodes: []string{},
			StartTime:      u.StartTime,
			CompletionTime: u.CompletionTime,
			LastUpdated:    now,
		}
		if u.FoundCodes != nil {
			p.FoundCodes = u.FoundCodes
		}
		if u.CompletedCodes != nil {
			p.CompletedCodes = u.CompletedCodes
		}
		if p.StartTime == "" {
			p.StartTime = now
		}
		if u.Completed != nil {
			p.Completed = *u.Completed
		}
		s.state.Players = append(s.state.Players, p)
		i = len(s.state.Players) - 1
	}

	completed := u.Completed != nil && *u.Completed

	if !completed && len(u.FoundCodes) > 0 {
		j := slices.IndexFunc(s.state.ActivePlayers, func(a ActivePlayer) bool { return a.Name == u.Name })
		if j >= 0 {
			s.state.ActivePlayers[j].CluesFound = len(u.FoundCodes)
			s.state.ActivePlayers[j].LastUpdated = now
		} else {
			startTime := u.StartTime
			if startTime == "" {
				startTime = now
			}
			s.state.ActivePlayers = append(s.state.ActivePlayers, ActivePlayer{
				Name:        u.Name,
				CluesFound:  len(u.FoundCodes),
				StartTime:   startTime,
				LastUpdated: now,
			})
		}
	}

	if completed {
		s.state.ActivePlayers = slices.DeleteFunc(s.state.ActivePlayers, func(a ActivePlayer) bool {
			return a.Name == u.Name
		})
	}

	s.save()
	return clonePlayer(s.state.Players[i])
}

func (s *Store) GetPlayer(name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.state.Players {
		if p.Name == name {
			return clonePlayer(p), nil
		}
	}
	return Player{}, ErrNotFound
}

func (s *Store) ListPlayers() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Player, len(s.state.Players))
	for i, p := range s.state.Players {
		out[i] = clonePlayer(p)
	}
	return out
}

func (s *Store) ListActivePlayers() []ActivePlayer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.ActivePlayers)
}

func clonePlayer(p Player) Player {
	p.FoundCodes = slices.Clone(p.FoundCodes)
	p.CompletedCodes = slices.Clone(p.CompletedCodes)
	return p
}
