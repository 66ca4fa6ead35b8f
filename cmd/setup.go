package cmd

import (
	"fmt"
	"strconv"

	"paisa/internal/config"
	"paisa/internal/model"
	"paisa/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	l, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	policy := l.Policy()
	weeklyStr := strconv.FormatFloat(policy.WeeklyAllowance, 'f', -1, 64)
	monthlyStr := strconv.FormatFloat(policy.MonthlyLimit, 'f', -1, 64)
	themeName := cfg.Appearance.Theme

	validateAmount := func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("enter a positive number")
		}
		return nil
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weekly allowance (₹)").
				Description("Your pocket money per week — safe-to-spend is derived from this.").
				Value(&weeklyStr).
				Validate(validateAmount),
			huh.NewInput().
				Title("Monthly limit (₹)").
				Description("Hard ceiling for the whole month, rent included.").
				Value(&monthlyStr).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	weekly, _ := strconv.ParseFloat(weeklyStr, 64)
	monthly, _ := strconv.ParseFloat(monthlyStr, 64)
	if err := l.SetPolicy(model.BudgetPolicy{
		WeeklyAllowance: weekly,
		MonthlyLimit:    monthly,
	}); err != nil {
		return err
	}

	cfg.Appearance.Theme = themeName
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `paisa setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
