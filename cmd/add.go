package cmd

import (
	"fmt"
	"strings"
	"time"

	"paisa/internal/cli"
	"paisa/internal/model"
	"paisa/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagAddAmount   string
	flagAddCategory string
	flagAddMethod   string
	flagAddNote     string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	Example: `  paisa add -a 45 -c mess -m upi --note "thali + chai"
  paisa add -a 120 -c metro --date 2025-09-16`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddAmount, "amount", "a", "", "Amount in rupees (required)")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category: "+categoryHelp())
	addCmd.Flags().StringVarP(&flagAddMethod, "method", "m", "upi", "Payment method: upi, cash, card")
	addCmd.Flags().StringVar(&flagAddNote, "note", "", "Optional note")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date (YYYY-MM-DD), defaults to now")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(addCmd)
}

func categoryHelp() string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func runAdd(_ *cobra.Command, _ []string) error {
	cat, err := model.ParseCategory(flagAddCategory)
	if err != nil {
		return err
	}
	method, err := model.ParseMethod(flagAddMethod)
	if err != nil {
		return err
	}

	var at time.Time
	if flagAddDate != "" {
		at, err = time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("bad date %q, want YYYY-MM-DD", flagAddDate)
		}
	}

	tx, err := model.NewTransaction(flagAddAmount, cat, method, flagAddNote, at)
	if err != nil {
		return err
	}

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := l.Add(tx); err != nil {
		return err
	}

	fmt.Printf("\n  Recorded %s on %s (%s)\n",
		cli.FormatRupees(tx.Amount), tx.Category.Label(), tx.Method.Label())

	// Show the updated safe-to-spend right away.
	ws := pipeline.WeekReport(l.Transactions(), l.Policy(), time.Now())
	if ws.OverDailyLimit {
		fmt.Println("  " + cli.Alert(fmt.Sprintf("That puts you %s over today's limit", cli.FormatRupees(-ws.DailyRemaining))))
	} else {
		fmt.Printf("  %s left for today\n", cli.FormatRupees(ws.DailyRemaining))
	}
	if ws.ChaiIndexExceeded {
		fmt.Println("  " + cli.Warn("Chai-Index alert: misc spending is over 15% of your weekly allowance"))
	}
	fmt.Println()

	return nil
}
