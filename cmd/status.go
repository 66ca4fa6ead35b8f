package cmd

import (
	"fmt"
	"time"

	"paisa/internal/budget"
	"paisa/internal/cli"
	"paisa/internal/pipeline"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Today's safe-to-spend and alerts",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	ws := pipeline.WeekReport(l.Transactions(), l.Policy(), now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAFE TO SPEND  " + now.Format("Mon, 2 Jan")))
	fmt.Println()

	rows := [][]string{
		{"Today's limit", cli.FormatRupees(ws.DailyLimit)},
		{"Spent today", cli.FormatRupees(ws.TodaySpent)},
		{"Remaining today", cli.FormatRupees(ws.DailyRemaining)},
		{"---"},
		{"Weekly allowance", cli.FormatRupees(l.Policy().WeeklyAllowance)},
		{"Spent this week", cli.FormatRupees(ws.Spent)},
		{"Days left in week", fmt.Sprintf("%d", ws.DaysLeft)},
		{"---"},
		{"Misc this week", cli.FormatRupees(ws.MiscSpent)},
		{"Chai-Index", cli.FormatPercent(ws.ChaiIndex)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Weekly progress bar
	weekPct := 0.0
	if l.Policy().WeeklyAllowance > 0 {
		weekPct = ws.Spent / l.Policy().WeeklyAllowance
	}
	fmt.Printf("\n  Week  %s\n", cli.RenderBudgetBar(weekPct, 30))

	fmt.Println()
	switch {
	case ws.OverDailyLimit:
		fmt.Println("  " + cli.Alert(fmt.Sprintf("Over today's limit by %s — ease up!", cli.FormatRupees(-ws.DailyRemaining))))
	default:
		fmt.Println("  " + cli.OK(fmt.Sprintf("%s still safe to spend today", cli.FormatRupees(ws.DailyRemaining))))
	}
	if ws.ChaiIndexExceeded {
		fmt.Println("  " + cli.Warn(fmt.Sprintf("Chai-Index alert: misc spending is past %.0f%% of your weekly allowance", budget.ChaiIndexThreshold*100)))
	}
	fmt.Println()

	return nil
}
