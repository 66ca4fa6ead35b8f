package cmd

import (
	"fmt"
	"time"

	"paisa/internal/cli"
	"paisa/internal/pipeline"

	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Monthly summary with burn rate and projection",
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	ms := pipeline.MonthReport(l.Transactions(), l.Policy(), now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTH  " + now.Format("January 2006")))
	fmt.Println()

	rows := [][]string{
		{"Spent", cli.FormatRupees(ms.Spent)},
		{"Monthly limit", cli.FormatRupees(ms.Limit)},
		{"Used", fmt.Sprintf("%.1f%%", ms.UsedPercent)},
		{"---"},
		{"Days elapsed", fmt.Sprintf("%d of %d", ms.DaysElapsed, ms.DaysInMonth)},
		{"Daily burn rate", cli.FormatRupees(ms.DailyBurnRate) + "/day"},
		{"Projected month-end", cli.FormatRupees(ms.ProjectedSpend)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Month %s\n", cli.RenderBudgetBar(ms.UsedPercent/100, 30))
	if ms.ProjectedSpend > ms.Limit && ms.Limit > 0 {
		fmt.Println("  " + cli.Warn(fmt.Sprintf("On track to overshoot the monthly limit by %s",
			cli.FormatRupees(ms.ProjectedSpend-ms.Limit))))
	}
	fmt.Println()

	return nil
}
