package tui

import (
	"fmt"
	"strings"

	"paisa/internal/cli"
	"paisa/internal/tui/components"
	"paisa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	wk := a.week
	mo := a.month
	var b strings.Builder

	// Row 1: Metric cards
	safeDelta := fmt.Sprintf("%s/day · %s", cli.FormatRupees(wk.DailyLimit), cli.FormatCount(wk.DaysLeft, "day"))
	weekDelta := fmt.Sprintf("of %s allowance", cli.FormatRupees(a.policy.WeeklyAllowance))
	monthDelta := fmt.Sprintf("projected %s", cli.FormatRupees(mo.ProjectedSpend))
	chaiDelta := "within limit"
	if wk.ChaiIndexExceeded {
		chaiDelta = "over 15% of allowance!"
	}

	cards := []struct{ Label, Value, Delta string }{
		{"Safe Today", cli.FormatRupees(wk.DailyRemaining), safeDelta},
		{"Spent This Week", cli.FormatRupees(wk.Spent), weekDelta},
		{"Spent This Month", cli.FormatRupees(mo.Spent), monthDelta},
		{"Chai-Index", cli.FormatPercent(wk.ChaiIndex), chaiDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Allowance bars
	barInnerW := components.CardInnerWidth(cw)
	barW := barInnerW - 36
	if barW < 10 {
		barW = 10
	}

	weekPct := 0.0
	if a.policy.WeeklyAllowance > 0 {
		weekPct = wk.Spent / a.policy.WeeklyAllowance
	}
	monthPct := 0.0
	if mo.Limit > 0 {
		monthPct = mo.Spent / mo.Limit
	}

	var barsBody strings.Builder
	barsBody.WriteString(components.BudgetBar("Week", weekPct,
		cli.FormatRupees(a.policy.WeeklyAllowance-wk.Spent)+" left", 6, barW))
	barsBody.WriteString("\n")
	barsBody.WriteString(components.BudgetBar("Month", monthPct,
		cli.FormatRupees(mo.Limit-mo.Spent)+" left", 6, barW))

	b.WriteString(components.ContentCard("Allowance", barsBody.String(), cw))
	b.WriteString("\n")

	// Row 3: Alerts (only when something needs attention)
	if wk.OverDailyLimit || wk.ChaiIndexExceeded {
		alertStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

		var alertBody strings.Builder
		if wk.OverDailyLimit {
			alertBody.WriteString(alertStyle.Render(fmt.Sprintf("▲ Over today's limit by %s",
				cli.FormatRupees(-wk.DailyRemaining))))
			alertBody.WriteString("\n")
		}
		if wk.ChaiIndexExceeded {
			alertBody.WriteString(warnStyle.Render(fmt.Sprintf("▲ Chai-Index at %s: %s of small spends this week",
				cli.FormatPercent(wk.ChaiIndex), cli.FormatRupees(wk.MiscSpent))))
			alertBody.WriteString("\n")
		}
		b.WriteString(components.ContentCard("Alerts", strings.TrimRight(alertBody.String(), "\n"), cw))
		b.WriteString("\n")
	}

	// Row 4: Recent transactions
	b.WriteString(components.ContentCard("Recent", a.renderRecent(components.CardInnerWidth(cw)), cw))

	return b.String()
}

func (a App) renderRecent(innerW int) string {
	t := theme.Active

	if len(a.recent) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("No spending recorded yet. Add one with `paisa add`.")
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	catStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	limit := 8
	if len(a.recent) < limit {
		limit = len(a.recent)
	}

	noteW := innerW - 38
	if noteW < 8 {
		noteW = 8
	}

	var b strings.Builder
	for _, tx := range a.recent[:limit] {
		fmt.Fprintf(&b, "%s  %s %s  %s\n",
			dateStyle.Render(tx.Date.Format("Mon 02 Jan")),
			amtStyle.Render(fmt.Sprintf("%10s", cli.FormatRupees(tx.Amount))),
			catStyle.Render(fmt.Sprintf("%-11s", tx.Category.Label())),
			noteStyle.Render(truncStr(tx.Note, noteW)))
	}
	return strings.TrimRight(b.String(), "\n")
}
