package store

import (
	"path/filepath"
	"testing"
	"time"

	"paisa/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "paisa.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadFreshDatabase(t *testing.T) {
	s := openTestStore(t)

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Transactions) != 0 {
		t.Errorf("fresh db has %d transactions, want 0", len(snap.Transactions))
	}
	if snap.Budget != model.DefaultBudgetPolicy() {
		t.Errorf("fresh db policy = %+v, want defaults", snap.Budget)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	date := time.Date(2025, 9, 17, 14, 30, 0, 0, time.Local)
	want := model.Snapshot{
		Transactions: []model.Transaction{
			{
				ID:       "a1b2c3",
				Amount:   120.50,
				Category: model.CategoryMess,
				Method:   model.MethodUPI,
				Date:     date,
				Note:     "thali + chai",
			},
		},
		Budget: model.BudgetPolicy{MonthlyLimit: 20000, WeeklyAllowance: 3500},
	}

	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(got.Transactions))
	}

	gt, wt := got.Transactions[0], want.Transactions[0]
	if gt.ID != wt.ID || gt.Amount != wt.Amount || gt.Category != wt.Category ||
		gt.Method != wt.Method || gt.Note != wt.Note {
		t.Errorf("transaction = %+v, want %+v", gt, wt)
	}
	if !gt.Date.Equal(wt.Date) {
		t.Errorf("date = %v, want %v", gt.Date, wt.Date)
	}
	if got.Budget != want.Budget {
		t.Errorf("budget = %+v, want %+v", got.Budget, want.Budget)
	}
}

func TestSaveOverwritesWholeSnapshot(t *testing.T) {
	s := openTestStore(t)

	first := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "one", Amount: 100, Category: model.CategoryMess, Method: model.MethodCash, Date: time.Now()},
			{ID: "two", Amount: 200, Category: model.CategoryMisc, Method: model.MethodUPI, Date: time.Now()},
		},
		Budget: model.DefaultBudgetPolicy(),
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	second := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "three", Amount: 50, Category: model.CategoryMetro, Method: model.MethodCard, Date: time.Now()},
		},
		Budget: model.DefaultBudgetPolicy(),
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Transactions) != 1 || got.Transactions[0].ID != "three" {
		t.Errorf("snapshot = %+v, want only tx 'three' (save must overwrite)", got.Transactions)
	}
}

func TestLoadSkipsCorruptRows(t *testing.T) {
	s := openTestStore(t)

	snap := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "good-1", Amount: 45, Category: model.CategoryMess, Method: model.MethodUPI, Date: time.Now()},
			{ID: "good-2", Amount: 90, Category: model.CategoryMetro, Method: model.MethodCash, Date: time.Now()},
		},
		Budget: model.DefaultBudgetPolicy(),
	}
	if err := s.Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A row with an undecodable date, as a crashed writer might leave behind
	_, err := s.db.Exec(`INSERT INTO transactions (id, amount, category, method, date, note)
		VALUES ('bad', 10, 'misc', 'upi', 'not-a-date', '')`)
	if err != nil {
		t.Fatalf("inserting corrupt row: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load should survive a corrupt row, got error: %v", err)
	}
	if len(got.Transactions) != 2 {
		t.Fatalf("got %d transactions, want the 2 intact ones", len(got.Transactions))
	}
	for _, tx := range got.Transactions {
		if tx.ID == "bad" {
			t.Errorf("corrupt row leaked into the snapshot: %+v", tx)
		}
	}
}

func TestResetClearsState(t *testing.T) {
	s := openTestStore(t)

	snap := model.Snapshot{
		Transactions: []model.Transaction{
			{ID: "x", Amount: 10, Category: model.CategoryMisc, Method: model.MethodCash, Date: time.Now()},
		},
		Budget: model.BudgetPolicy{MonthlyLimit: 1, WeeklyAllowance: 1},
	}
	if err := s.Save(snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Transactions) != 0 {
		t.Errorf("after reset: %d transactions, want 0", len(got.Transactions))
	}
	if got.Budget != model.DefaultBudgetPolicy() {
		t.Errorf("after reset: policy = %+v, want defaults", got.Budget)
	}
}

func TestTransactionCount(t *testing.T) {
	s := openTestStore(t)

	n, err := s.TransactionCount()
	if err != nil {
		t.Fatalf("TransactionCount: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}
