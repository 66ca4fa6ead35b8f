package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"paisa/internal/model"
	"paisa/internal/sms"
)

// maxLineBytes caps a single SMS line; bank messages are short, but backup
// tools occasionally concatenate garbage.
const maxLineBytes = 64 * 1024

// ParseFile reads one inbox export and converts every recognizable debit
// message into a transaction. Blank lines and comment lines starting with #
// are ignored; anything else that fails to parse counts as skipped.
func ParseFile(path string) ([]model.Transaction, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening inbox file: %w", err)
	}
	defer f.Close()

	var (
		txs     []model.Transaction
		skipped int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		payment, err := sms.ParseUPIMessage(line)
		if err != nil {
			skipped++
			continue
		}
		tx, err := payment.ToTransaction()
		if err != nil {
			skipped++
			continue
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading inbox file: %w", err)
	}

	return txs, skipped, nil
}

// ImportDir scans an inbox directory and parses every export file in it.
func ImportDir(inboxDir string) (ImportResult, error) {
	files, err := ScanDir(inboxDir)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, df := range files {
		txs, skipped, err := ParseFile(df.Path)
		if err != nil {
			return ImportResult{}, fmt.Errorf("%s: %w", df.Name, err)
		}
		result.Transactions = append(result.Transactions, txs...)
		result.Skipped += skipped
		result.Files++
	}

	return result, nil
}
