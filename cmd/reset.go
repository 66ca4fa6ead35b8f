package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagResetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all transactions and restore default budget",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	n := len(l.Transactions())
	if !flagResetForce {
		fmt.Printf("  This deletes %d transactions and resets the budget. Type 'yes' to continue: ", n)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	if err := l.Reset(); err != nil {
		return err
	}

	fmt.Println("  All state cleared.")
	return nil
}
