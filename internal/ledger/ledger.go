// Package ledger owns the in-memory application state: the transaction
// list and the budget policy. Every mutation re-persists the full
// snapshot through the store.
package ledger

import (
	"fmt"

	"paisa/internal/model"
	"paisa/internal/store"
)

// Ledger is the single owner of session state. Not safe for concurrent
// use; paisa is a single-threaded, event-driven program.
type Ledger struct {
	txs    []model.Transaction
	policy model.BudgetPolicy
	store  *store.Store
}

// Open loads the persisted snapshot into a new Ledger. A missing or
// empty store yields an empty list and the default policy.
func Open(st *store.Store) (*Ledger, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return &Ledger{
		txs:    snap.Transactions,
		policy: snap.Budget,
		store:  st,
	}, nil
}

// Transactions returns the current transaction list. Callers must not
// mutate the returned slice.
func (l *Ledger) Transactions() []model.Transaction {
	return l.txs
}

// Policy returns the current budget policy.
func (l *Ledger) Policy() model.BudgetPolicy {
	return l.policy
}

// Add appends a transaction and persists the new snapshot. On a failed
// write the in-memory state is rolled back so memory and disk agree.
func (l *Ledger) Add(tx model.Transaction) error {
	l.txs = append(l.txs, tx)
	if err := l.persist(); err != nil {
		l.txs = l.txs[:len(l.txs)-1]
		return err
	}
	return nil
}

// SetPolicy replaces the budget policy and persists.
func (l *Ledger) SetPolicy(p model.BudgetPolicy) error {
	old := l.policy
	l.policy = p
	if err := l.persist(); err != nil {
		l.policy = old
		return err
	}
	return nil
}

// ReplaceAll swaps in a whole new snapshot (used by import) and persists.
func (l *Ledger) ReplaceAll(snap model.Snapshot) error {
	oldTxs, oldPolicy := l.txs, l.policy
	l.txs = snap.Transactions
	l.policy = snap.Budget
	if err := l.persist(); err != nil {
		l.txs, l.policy = oldTxs, oldPolicy
		return err
	}
	return nil
}

// Reset wipes all state back to an empty ledger with default policy.
func (l *Ledger) Reset() error {
	if err := l.store.Reset(); err != nil {
		return err
	}
	l.txs = nil
	l.policy = model.DefaultBudgetPolicy()
	return nil
}

// Snapshot returns a copy of the current state.
func (l *Ledger) Snapshot() model.Snapshot {
	txs := make([]model.Transaction, len(l.txs))
	copy(txs, l.txs)
	return model.Snapshot{Transactions: txs, Budget: l.policy}
}

func (l *Ledger) persist() error {
	if err := l.store.Save(l.Snapshot()); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
