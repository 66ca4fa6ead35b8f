package cmd

import (
	"fmt"

	"paisa/internal/cli"
	"paisa/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBudgetWeekly  float64
	flagBudgetMonthly float64
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or change the budget policy",
	Example: `  paisa budget
  paisa budget --weekly 3500
  paisa budget --weekly 3500 --monthly 20000`,
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().Float64Var(&flagBudgetWeekly, "weekly", 0, "Set the weekly allowance")
	budgetCmd.Flags().Float64Var(&flagBudgetMonthly, "monthly", 0, "Set the monthly limit")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	changed := cmd.Flags().Changed("weekly") || cmd.Flags().Changed("monthly")
	if changed {
		p := l.Policy()
		if cmd.Flags().Changed("weekly") {
			if flagBudgetWeekly <= 0 {
				return fmt.Errorf("weekly allowance must be positive")
			}
			p.WeeklyAllowance = flagBudgetWeekly
		}
		if cmd.Flags().Changed("monthly") {
			if flagBudgetMonthly <= 0 {
				return fmt.Errorf("monthly limit must be positive")
			}
			p.MonthlyLimit = flagBudgetMonthly
		}
		if err := l.SetPolicy(p); err != nil {
			return err
		}
		fmt.Println("\n  Budget updated.")
	}

	p := l.Policy()
	fmt.Println()
	fmt.Printf("  Weekly allowance: %s\n", cli.FormatRupees(p.WeeklyAllowance))
	fmt.Printf("  Monthly limit:    %s\n", cli.FormatRupees(p.MonthlyLimit))
	if p == model.DefaultBudgetPolicy() && !changed {
		fmt.Println(cli.Muted("  (defaults — set your own with --weekly / --monthly)"))
	}
	fmt.Println()

	return nil
}
