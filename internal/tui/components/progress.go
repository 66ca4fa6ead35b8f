package components

import (
	"fmt"

	"paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on utilization level.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// BudgetBar renders a labeled allowance-usage bar with percentage and a
// remaining-amount caption. pct is spend over limit, clamped to [0, 1]
// for the fill but shown unclamped so overshoot reads as >100%.
func BudgetBar(label string, pct float64, remaining string, labelW, barWidth int) string {
	t := theme.Active

	fillPct := pct
	if fillPct < 0 {
		fillPct = 0
	}
	if fillPct > 1 {
		fillPct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(fillPct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(fillPct))).Background(t.Surface).Bold(true)
	remStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(fillPct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(pctStr) +
		spaceStyle.Render("  ") +
		remStyle.Render(remaining)
}
