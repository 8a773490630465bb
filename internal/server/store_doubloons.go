package server

import "slices"

// AwardDoubloons credits (or, with a negative amount, confiscates)
// doubloons. The account is created on first use. Amounts are taken as
// given: sign checks would break the confiscation path the admin panel
// relies on.
func (s *Store) AwardDoubloons(playerName string, amount int, reason string) DoubloonAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reason == "" {
		reason = "Award"
	}
	s.credit(playerName, amount, reason)
	s.save()
	return cloneAccount(s.state.Doubloons[playerName])
}

// DoubloonsFor returns the player's account, or an empty one for players
// who have never been awarded anything.
func (s *Store) DoubloonsFor(playerName string) DoubloonAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, ok := s.state.Doubloons[playerName]
	if !ok {
		return DoubloonAccount{Transactions: []DoubloonTransaction{}}
	}
	return cloneAccount(acct)
}

func (s *Store) AllDoubloons() map[string]DoubloonAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]DoubloonAccount, len(s.state.Doubloons))
	for name, acct := range s.state.Doubloons {
		out[name] = cloneAccount(acct)
	}
	return out
}

// credit appends a transaction and bumps the running total. Callers must
// hold mu and arrange persistence.
func (s *Store) credit(playerName string, amount int, reason string) {
	acct, ok := s.state.Doubloons[playerName]
	if !ok {
		acct = &DoubloonAccount{Transactions: []DoubloonTransaction{}}
		s.state.Doubloons[playerName] = acct
	}
	acct.Total += amount
	acct.Transactions = append(acct.Transactions, DoubloonTransaction{
		Amount:    amount,
		Reason:    reason,
		Timestamp: nowISO(),
	})
}

func cloneAccount(acct *DoubloonAccount) DoubloonAccount {
	return DoubloonAccount{
		Total:        acct.Total,
		Transactions: slices.Clone(acct.Transactions),
	}
}
