// Package cmd implements the paisa CLI commands.
package cmd

import (
	"os"

	"paisa/internal/config"
	"paisa/internal/ledger"
	"paisa/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "paisa",
	Short: "Pocket-money tracker for students",
	Long:  "Track daily spending against a weekly allowance: safe-to-spend, category breakdowns, and the Chai-Index.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
}

// openLedger is the shared startup path: load config, open the store,
// and hydrate the ledger from the persisted snapshot.
func openLedger() (*ledger.Ledger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, nil, err
	}

	l, err := ledger.Open(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	return l, func() { _ = st.Close() }, nil
}
