// Package store persists the paisa snapshot to a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"paisa/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the persistence adapter. Saves are whole-snapshot overwrites:
// one transaction deletes and reinserts everything, so a failed write
// leaves the previous snapshot intact.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save overwrites the entire stored snapshot with the given state.
func (s *Store) Save(snap model.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}

	for _, t := range snap.Transactions {
		_, err := tx.Exec(`INSERT INTO transactions (id, amount, category, method, date, note)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Amount, string(t.Category), string(t.Method),
			t.Date.Format(time.RFC3339), t.Note,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO budget (id, monthly_limit, weekly_allowance)
		VALUES (1, ?, ?)`,
		snap.Budget.MonthlyLimit, snap.Budget.WeeklyAllowance,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Load reads the stored snapshot. A fresh or empty database yields an
// empty transaction list and the default policy; rows that fail to
// decode are skipped rather than failing the load.
func (s *Store) Load() (model.Snapshot, error) {
	snap := model.Snapshot{Budget: model.DefaultBudgetPolicy()}

	rows, err := s.db.Query(`SELECT id, amount, category, method, date, note
		FROM transactions ORDER BY date`)
	if err != nil {
		return snap, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t model.Transaction
		var cat, method, dateStr string
		if err := rows.Scan(&t.ID, &t.Amount, &cat, &method, &dateStr, &t.Note); err != nil {
			return snap, err
		}

		date, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			continue
		}
		t.Category = model.Category(cat)
		t.Method = model.Method(method)
		t.Date = date
		snap.Transactions = append(snap.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	var monthly, weekly float64
	err = s.db.QueryRow("SELECT monthly_limit, weekly_allowance FROM budget WHERE id = 1").
		Scan(&monthly, &weekly)
	switch {
	case err == sql.ErrNoRows:
		// No policy stored yet, keep defaults.
	case err != nil:
		return snap, err
	default:
		snap.Budget = model.BudgetPolicy{MonthlyLimit: monthly, WeeklyAllowance: weekly}
	}

	return snap, nil
}

// Reset deletes all stored state. The next Load returns defaults.
func (s *Store) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM budget"); err != nil {
		return err
	}
	return tx.Commit()
}

// TransactionCount returns the number of stored transactions.
func (s *Store) TransactionCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}
