package cmd

import (
	"fmt"
	"time"

	"paisa/internal/budget"
	"paisa/internal/cli"
	"paisa/internal/pipeline"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Day-by-day table for the current week",
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	start, end := budget.WeekStart(now), budget.WeekEnd(now)
	days := pipeline.AggregateDays(l.Transactions(), start, end)
	ws := pipeline.WeekReport(l.Transactions(), l.Policy(), now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("THIS WEEK  %s – %s",
		start.Format("2 Jan"), end.Format("2 Jan"))))
	fmt.Println()

	rows := make([][]string, 0, len(days)+2)
	spark := make([]float64, 0, len(days))
	for _, d := range days {
		label := d.Date.Format("2006-01-02")
		if budget.SameDay(now, d.Date) {
			label += " *"
		}
		rows = append(rows, []string{
			label,
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatCount(d.Count, "txn"),
			cli.FormatRupees(d.Spent),
		})
		spark = append(spark, d.Spent)
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", "", cli.FormatRupees(ws.Spent)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Txns", "Spent"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Mon..Sun  %s\n", cli.RenderSparkline(spark))
	fmt.Printf("  %s of %s allowance used\n",
		cli.FormatRupees(ws.Spent), cli.FormatRupees(l.Policy().WeeklyAllowance))
	fmt.Println()

	return nil
}
