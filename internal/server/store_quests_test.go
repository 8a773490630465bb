package server

import (
	"slices"
	"testing"
)

func sumTransactions(acct DoubloonAccount) int {
	sum := 0
	for _, tx := range acct.Transactions {
		sum += tx.Amount
	}
	return sum
}

func TestDiscoverAutoCompletes(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Find the Rum", Reward: 15})

	got, err := s.DiscoverQuest(q.ID, "Jack")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	if !slices.Equal(got.DiscoveredBy, []string{"Jack"}) {
		t.Errorf("discoveredBy = %v", got.DiscoveredBy)
	}
	if !slices.Equal(got.CompletedBy, []string{"Jack"}) {
		t.Errorf("completedBy = %v", got.CompletedBy)
	}

	acct := s.DoubloonsFor("Jack")
	if acct.Total != 15 {
		t.Errorf("total = %d, want 15", acct.Total)
	}
	if len(acct.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(acct.Transactions))
	}
	if tx := acct.Transactions[0]; tx.Amount != 15 || tx.Reason != "Completed: Find the Rum" {
		t.Errorf("transaction = %+v", tx)
	}
}

func TestDiscoverWithApprovalHoldsReward(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Swab the Deck", Reward: 20, RequiresApproval: true})

	got, err := s.DiscoverQuest(q.ID, "Anne")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}

	if !slices.Equal(got.DiscoveredBy, []string{"Anne"}) {
		t.Errorf("discoveredBy = %v", got.DiscoveredBy)
	}
	if len(got.CompletedBy) != 0 {
		t.Errorf("completedBy = %v, want empty before approval", got.CompletedBy)
	}
	if total := s.DoubloonsFor("Anne").Total; total != 0 {
		t.Errorf("total before approval = %d, want 0", total)
	}

	approved, err := s.ApproveQuest(q.ID, "Anne")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !slices.Equal(approved.CompletedBy, []string{"Anne"}) {
		t.Errorf("completedBy after approval = %v", approved.CompletedBy)
	}

	acct := s.DoubloonsFor("Anne")
	if acct.Total != 20 {
		t.Errorf("total after approval = %d, want 20", acct.Total)
	}
	if len(acct.Transactions) != 1 {
		t.Errorf("transactions = %d, want exactly 1", len(acct.Transactions))
	}
}

func TestDiscoverIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Parley", Reward: 10})

	for i := 0; i < 3; i++ {
		if _, err := s.DiscoverQuest(q.ID, "Jack"); err != nil {
			t.Fatalf("discover: %v", err)
		}
	}

	got, _ := s.GetQuest(q.ID)
	if !slices.Equal(got.DiscoveredBy, []string{"Jack"}) {
		t.Errorf("discoveredBy = %v, want Jack once", got.DiscoveredBy)
	}
	if !slices.Equal(got.CompletedBy, []string{"Jack"}) {
		t.Errorf("completedBy = %v, want Jack once", got.CompletedBy)
	}

	acct := s.DoubloonsFor("Jack")
	if len(acct.Transactions) != 1 || acct.Total != 10 {
		t.Errorf("repeated discovers credited %d over %d transactions, want 10 over 1",
			acct.Total, len(acct.Transactions))
	}
}

func TestApproveRequiresPriorDiscovery(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Mutiny", Reward: 30, RequiresApproval: true})

	// Approving someone who never discovered the quest is a silent no-op.
	got, err := s.ApproveQuest(q.ID, "Anne")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if len(got.CompletedBy) != 0 {
		t.Errorf("completedBy = %v, want empty", got.CompletedBy)
	}
	if total := s.DoubloonsFor("Anne").Total; total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}

func TestApproveTwiceCreditsOnce(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Kraken Watch", Reward: 25, RequiresApproval: true})

	s.DiscoverQuest(q.ID, "Anne")
	s.ApproveQuest(q.ID, "Anne")
	s.ApproveQuest(q.ID, "Anne")

	acct := s.DoubloonsFor("Anne")
	if acct.Total != 25 || len(acct.Transactions) != 1 {
		t.Errorf("double approval credited %d over %d transactions, want 25 over 1",
			acct.Total, len(acct.Transactions))
	}
}

func TestZeroRewardQuestRecordsNoTransaction(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Bragging Rights"})

	s.DiscoverQuest(q.ID, "Jack")

	acct := s.DoubloonsFor("Jack")
	if len(acct.Transactions) != 0 {
		t.Errorf("transactions = %d, want 0 for zero-reward quest", len(acct.Transactions))
	}
}

// Deactivation hides a quest from the board but does not freeze it:
// discover and approve still work. Longstanding behavior the party's
// late hand-ins depend on; change deliberately or not at all.
func TestDiscoverDeactivatedQuest(t *testing.T) {
	s := newTestStore(t)
	q := s.CreateQuest(QuestParams{Title: "Buried Gold", Reward: 40})

	if _, err := s.DeactivateQuest(q.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	got, err := s.DiscoverQuest(q.ID, "Jack")
	if err != nil {
		t.Fatalf("discover after deactivate: %v", err)
	}
	if got.Active {
		t.Error("quest should remain inactive")
	}
	if !slices.Equal(got.CompletedBy, []string{"Jack"}) {
		t.Errorf("completedBy = %v, want Jack", got.CompletedBy)
	}
	if total := s.DoubloonsFor("Jack").Total; total != 40 {
		t.Errorf("total = %d, want 40", total)
	}
}

func TestQuestNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.DiscoverQuest("nope", "Jack"); err != ErrNotFound {
		t.Errorf("discover err = %v, want ErrNotFound", err)
	}
	if _, err := s.ApproveQuest("nope", "Jack"); err != ErrNotFound {
		t.Errorf("approve err = %v, want ErrNotFound", err)
	}
	if _, err := s.DeactivateQuest("nope"); err != ErrNotFound {
		t.Errorf("deactivate err = %v, want ErrNotFound", err)
	}
}

func TestCreateQuestDefaults(t *testing.T) {
	s := newTestStore(t)

	q := s.CreateQuest(QuestParams{Title: "No Frills"})

	if q.ID == "" {
		t.Error("quest id is empty")
	}
	if q.QuestType != "side" {
		t.Errorf("questType = %q, want side", q.QuestType)
	}
	if !q.Active {
		t.Error("new quest should be active")
	}

	q2 := s.CreateQuest(QuestParams{Title: "Also No Frills"})
	if q.ID == q2.ID {
		t.Error("quest ids collide")
	}
}

func TestTotalsMatchTransactionSums(t *testing.T) {
	s := newTestStore(t)

	q1 := s.CreateQuest(QuestParams{Title: "One", Reward: 5})
	q2 := s.CreateQuest(QuestParams{Title: "Two", Reward: 7, RequiresApproval: true})

	s.DiscoverQuest(q1.ID, "Jack")
	s.DiscoverQuest(q2.ID, "Jack")
	s.ApproveQuest(q2.ID, "Jack")
	s.AwardDoubloons("Jack", -3, "Broke a mug")

	acct := s.DoubloonsFor("Jack")
	if acct.Total != sumTransactions(acct) {
		t.Errorf("total = %d, sum of transactions = %d", acct.Total, sumTransactions(acct))
	}
	if acct.Total != 9 {
		t.Errorf("total = %d, want 9", acct.Total)
	}
}
