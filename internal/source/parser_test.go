package source

import (
	"os"
	"path/filepath"
	"testing"

	"paisa/internal/model"
)

func writeInbox(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeInbox(t, dir, "inbox.txt", `# exported 2025-09-20
Rs.45.00 debited from A/c XX1234 to VPA chaiwala@paytm on 15-09-25. UPI Ref No 525169001234
INR 120.00 sent to swiggy@icici on 16-09-25 Ref 525169005678

OTP for your login is 482910. Do not share it with anyone.
Rs 3000 paid to Hostel Mess Services on 17-09-25
`)

	txs, skipped, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("parsed %d transactions, want 3", len(txs))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1 (the OTP line)", skipped)
	}

	if txs[0].Amount != 45 {
		t.Errorf("first amount = %v, want 45", txs[0].Amount)
	}
	if txs[0].Category != model.CategoryMess {
		t.Errorf("chaiwala should guess as mess, got %s", txs[0].Category)
	}
	if txs[2].Amount != 3000 {
		t.Errorf("third amount = %v, want 3000", txs[2].Amount)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, _, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeInbox(t, dir, "b.txt", "")
	writeInbox(t, dir, "a.txt", "")
	writeInbox(t, dir, "notes.md", "")

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2 (.txt only)", len(files))
	}
	if files[0].Name != "a.txt" || files[1].Name != "b.txt" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestScanDirMissing(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("ScanDir on missing dir: %v", err)
	}
	if files != nil {
		t.Errorf("expected nil for missing dir, got %v", files)
	}
}

func TestImportDir(t *testing.T) {
	dir := t.TempDir()
	writeInbox(t, dir, "jan.txt", "Rs.99 debited to VPA jio@upi on 05-01-25\n")
	writeInbox(t, dir, "feb.txt", "Rs.60 paid to Campus Xerox Centre on 03-02-25\nnot an sms\n")

	result, err := ImportDir(dir)
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if result.Files != 2 {
		t.Errorf("Files = %d, want 2", result.Files)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("parsed %d transactions, want 2", len(result.Transactions))
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
}
