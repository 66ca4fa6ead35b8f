package cmd

import (
	"fmt"
	"time"

	"paisa/internal/budget"
	"paisa/internal/cli"
	"paisa/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagCategoriesMonth bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spending breakdown by category",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&flagCategoriesMonth, "month", false, "Use the current month instead of the current week")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	var start, end time.Time
	var title string
	if flagCategoriesMonth {
		start, end = budget.MonthStart(now), budget.MonthEnd(now)
		title = "CATEGORIES  " + now.Format("January 2006")
	} else {
		start, end = budget.WeekStart(now), budget.WeekEnd(now)
		title = fmt.Sprintf("CATEGORIES  %s – %s", start.Format("2 Jan"), end.Format("2 Jan"))
	}

	cats := pipeline.AggregateCategories(l.Transactions(), start, end)

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if len(cats) == 0 {
		fmt.Println("  Nothing spent in this window yet.")
		fmt.Println()
		return nil
	}

	maxSpent := cats[0].Spent
	rows := make([][]string, 0, len(cats))
	for _, cs := range cats {
		rows = append(rows, []string{
			cs.Category.Label(),
			cli.FormatCount(cs.Count, "txn"),
			cli.FormatRupees(cs.Spent),
			fmt.Sprintf("%.1f%%", cs.SharePercent),
			cli.RenderHorizontalBar(cs.Spent, maxSpent, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Txns", "Spent", "Share", ""},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
