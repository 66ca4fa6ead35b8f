package snapshot

import (
	"strings"
	"testing"
	"time"

	"paisa/internal/model"
)

func TestRoundTrip(t *testing.T) {
	date := time.Date(2025, 9, 17, 19, 45, 12, 0, time.FixedZone("IST", 5*3600+1800))
	orig := model.Snapshot{
		Transactions: []model.Transaction{
			{
				ID:       "8c5f2a",
				Amount:   45,
				Category: model.CategoryMisc,
				Method:   model.MethodUPI,
				Date:     date,
				Note:     "cutting chai x3",
			},
			{
				ID:       "9d6e3b",
				Amount:   5500,
				Category: model.CategoryRent,
				Method:   model.MethodCard,
				Date:     date.AddDate(0, 0, -2),
			},
		},
		Budget: model.BudgetPolicy{MonthlyLimit: 18000, WeeklyAllowance: 3000},
	}

	data, err := Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(got.Transactions) != len(orig.Transactions) {
		t.Fatalf("got %d transactions, want %d", len(got.Transactions), len(orig.Transactions))
	}
	for i, w := range orig.Transactions {
		g := got.Transactions[i]
		if g.ID != w.ID || g.Amount != w.Amount || g.Category != w.Category ||
			g.Method != w.Method || g.Note != w.Note {
			t.Errorf("transaction %d = %+v, want %+v", i, g, w)
		}
		if !g.Date.Equal(w.Date) {
			t.Errorf("transaction %d date = %v, want same instant as %v", i, g.Date, w.Date)
		}
	}
	if got.Budget != orig.Budget {
		t.Errorf("budget = %+v, want %+v", got.Budget, orig.Budget)
	}
}

func TestMarshalEmptyLedger(t *testing.T) {
	data, err := Marshal(model.Snapshot{Budget: model.DefaultBudgetPolicy()})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"transactions": []`) {
		t.Errorf("empty ledger should serialize transactions as [], got:\n%s", data)
	}
}

func TestUnmarshalWireShape(t *testing.T) {
	raw := `{
	  "transactions": [
	    {"id": "t1", "amount": 120, "category": "mess", "method": "upi",
	     "date": "2025-09-17T08:30:00+05:30", "note": "breakfast"}
	  ],
	  "budget": {"monthlyLimit": 25000, "weeklyAllowance": 4000}
	}`

	snap, err := Unmarshal([]byte(raw))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(snap.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(snap.Transactions))
	}
	tx := snap.Transactions[0]
	if tx.Category != model.CategoryMess || tx.Method != model.MethodUPI || tx.Amount != 120 {
		t.Errorf("decoded transaction = %+v", tx)
	}
	if snap.Budget.WeeklyAllowance != 4000 {
		t.Errorf("weekly allowance = %v, want 4000", snap.Budget.WeeklyAllowance)
	}
}

func TestUnmarshalMissingBudgetFallsBack(t *testing.T) {
	snap, err := Unmarshal([]byte(`{"transactions": []}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if snap.Budget != model.DefaultBudgetPolicy() {
		t.Errorf("budget = %+v, want defaults", snap.Budget)
	}
}

func TestUnmarshalRejectsBadContent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"bad date", `{"transactions":[{"id":"a","amount":1,"category":"mess","method":"upi","date":"yesterday","note":""}]}`},
		{"bad category", `{"transactions":[{"id":"a","amount":1,"category":"gold","method":"upi","date":"2025-09-17T08:30:00Z","note":""}]}`},
		{"bad method", `{"transactions":[{"id":"a","amount":1,"category":"mess","method":"cheque","date":"2025-09-17T08:30:00Z","note":""}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(c.raw)); err == nil {
				t.Error("Unmarshal succeeded, want error")
			}
		})
	}
}
