package cmd

import (
	"fmt"
	"strings"

	"paisa/internal/cli"
	"paisa/internal/sms"
	"paisa/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagSMSDryRun bool
	flagSMSInbox  string
)

var smsCmd = &cobra.Command{
	Use:   "sms <message>",
	Short: "Record an expense from a pasted bank SMS",
	Long: `Parses a UPI debit SMS and records the payment as a transaction.
The category is guessed from the payee name; edit afterwards if the
guess is wrong. This is an offline convenience — nothing reads your
actual messages.

With --inbox, bulk-imports a phone backup export instead: a .txt file
(or a directory of them) holding one message per line.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSMS,
}

func init() {
	smsCmd.Flags().BoolVar(&flagSMSDryRun, "dry-run", false, "Parse and show the result without recording it")
	smsCmd.Flags().StringVar(&flagSMSInbox, "inbox", "", "Import all messages from a .txt export file or directory")
	rootCmd.AddCommand(smsCmd)
}

func runSMS(cmd *cobra.Command, args []string) error {
	if flagSMSInbox != "" {
		return runSMSInbox()
	}
	if len(args) == 0 {
		return cmd.Usage()
	}

	msg := strings.Join(args, " ")

	p, err := sms.ParseUPIMessage(msg)
	if err != nil {
		return err
	}

	tx, err := p.ToTransaction()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Amount:   %s\n", cli.FormatRupees(tx.Amount))
	fmt.Printf("  Payee:    %s\n", p.Payee)
	fmt.Printf("  Category: %s (guessed)\n", tx.Category.Label())
	fmt.Printf("  Date:     %s\n", tx.Date.Format("Mon, 2 Jan 2006"))
	if p.RefID != "" {
		fmt.Printf("  UPI Ref:  %s\n", p.RefID)
	}

	if flagSMSDryRun {
		fmt.Println("\n  Dry run — nothing recorded.")
		fmt.Println()
		return nil
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := l.Add(tx); err != nil {
		return err
	}

	fmt.Println("\n  Recorded.")
	fmt.Println()
	return nil
}

func runSMSInbox() error {
	result, err := source.ImportDir(flagSMSInbox)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Scanned %s, parsed %s",
		cli.FormatCount(result.Files, "file"),
		cli.FormatCount(len(result.Transactions), "payment"))
	if result.Skipped > 0 {
		fmt.Printf(" (%d unrecognized lines skipped)", result.Skipped)
	}
	fmt.Println()

	if flagSMSDryRun {
		for _, tx := range result.Transactions {
			fmt.Printf("    %s  %10s  %s\n",
				tx.Date.Format("02 Jan 2006"),
				cli.FormatRupees(tx.Amount),
				tx.Category.Label())
		}
		fmt.Println("\n  Dry run — nothing recorded.")
		fmt.Println()
		return nil
	}

	if len(result.Transactions) == 0 {
		fmt.Println()
		return nil
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, tx := range result.Transactions {
		if err := l.Add(tx); err != nil {
			return err
		}
	}

	fmt.Printf("  Recorded %s.\n\n", cli.FormatCount(len(result.Transactions), "payment"))
	return nil
}
