package cmd

import (
	"fmt"
	"os"

	"paisa/internal/snapshot"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full snapshot as JSON",
	Long:  "Writes every transaction plus the budget policy as a JSON snapshot, to stdout or the given file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all state from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	data, err := snapshot.Marshal(l.Snapshot())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	fmt.Printf("  Exported to %s\n", args[0])
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		return err
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := l.ReplaceAll(snap); err != nil {
		return err
	}

	fmt.Printf("  Imported %d transactions. Previous state replaced.\n", len(snap.Transactions))
	return nil
}
