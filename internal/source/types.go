// Package source discovers and parses SMS inbox exports: plain text files
// holding one bank SMS per line, as produced by phone backup tools.
package source

import "paisa/internal/model"

// DiscoveredFile is one inbox export found during a scan.
type DiscoveredFile struct {
	Path string
	Name string
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	Transactions []model.Transaction
	Skipped      int // lines that were not recognizable debit messages
	Files        int
}
