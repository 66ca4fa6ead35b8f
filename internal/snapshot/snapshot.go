// Package snapshot encodes the full app state as JSON for export/import.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"paisa/internal/model"
)

type wireSnapshot struct {
	Transactions []wireTransaction `json:"transactions"`
	Budget       wireBudget        `json:"budget"`
}

type wireTransaction struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Method   string  `json:"method"`
	Date     string  `json:"date"` // RFC 3339
	Note     string  `json:"note"`
}

type wireBudget struct {
	MonthlyLimit    float64 `json:"monthlyLimit"`
	WeeklyAllowance float64 `json:"weeklyAllowance"`
}

// Marshal serializes a snapshot to indented JSON.
func Marshal(snap model.Snapshot) ([]byte, error) {
	w := wireSnapshot{
		// Empty list, not null, for an empty ledger.
		Transactions: make([]wireTransaction, 0, len(snap.Transactions)),
		Budget: wireBudget{
			MonthlyLimit:    snap.Budget.MonthlyLimit,
			WeeklyAllowance: snap.Budget.WeeklyAllowance,
		},
	}
	for _, t := range snap.Transactions {
		w.Transactions = append(w.Transactions, wireTransaction{
			ID:       t.ID,
			Amount:   t.Amount,
			Category: string(t.Category),
			Method:   string(t.Method),
			Date:     t.Date.Format(time.RFC3339),
			Note:     t.Note,
		})
	}
	return json.MarshalIndent(w, "", "  ")
}

// Unmarshal parses a JSON snapshot. Transactions with a bad date,
// category, or method are rejected so a corrupt file can't smuggle
// malformed state into the ledger. A missing budget section falls back
// to the default policy.
func Unmarshal(data []byte) (model.Snapshot, error) {
	var w wireSnapshot
	if err := json.Unmarshal(data, &w); err != nil {
		return model.Snapshot{}, fmt.Errorf("parsing snapshot: %w", err)
	}

	snap := model.Snapshot{Budget: model.DefaultBudgetPolicy()}
	if w.Budget.MonthlyLimit > 0 {
		snap.Budget.MonthlyLimit = w.Budget.MonthlyLimit
	}
	if w.Budget.WeeklyAllowance > 0 {
		snap.Budget.WeeklyAllowance = w.Budget.WeeklyAllowance
	}

	for i, wt := range w.Transactions {
		date, err := time.Parse(time.RFC3339, wt.Date)
		if err != nil {
			return model.Snapshot{}, fmt.Errorf("transaction %d: bad date %q", i, wt.Date)
		}
		cat := model.Category(wt.Category)
		if !cat.Valid() {
			return model.Snapshot{}, fmt.Errorf("transaction %d: bad category %q", i, wt.Category)
		}
		method := model.Method(wt.Method)
		if !method.Valid() {
			return model.Snapshot{}, fmt.Errorf("transaction %d: bad method %q", i, wt.Method)
		}
		snap.Transactions = append(snap.Transactions, model.Transaction{
			ID:       wt.ID,
			Amount:   wt.Amount,
			Category: cat,
			Method:   method,
			Date:     date,
			Note:     wt.Note,
		})
	}

	return snap, nil
}
