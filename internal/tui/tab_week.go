package tui

import (
	"fmt"
	"strings"
	"time"

	"paisa/internal/budget"
	"paisa/internal/cli"
	"paisa/internal/tui/components"
	"paisa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWeekTab(cw int) string {
	t := theme.Active
	wk := a.week
	var b strings.Builder

	// Row 1: Daily spend chart across the week
	chartVals := make([]float64, len(a.weekDays))
	chartLabels := make([]string, len(a.weekDays))
	for i, d := range a.weekDays {
		chartVals[i] = d.Spent
		chartLabels[i] = d.Date.Format("Mon")
	}
	chartH := 10
	if a.isCompactLayout() {
		chartH = 7
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Daily Spend · %s to %s", wk.WeekStart.Format("02 Jan"), wk.WeekEnd.Format("02 Jan")),
		components.BarChart(chartVals, chartLabels, t.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 2: Day-by-day table + safe-to-spend summary
	halves := components.LayoutRow(cw, 2)

	today := time.Now()
	dayStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	todayStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var daysBody strings.Builder
	for _, d := range a.weekDays {
		name := d.Date.Format("Monday")
		marker := "  "
		nameStyled := dayStyle.Render(fmt.Sprintf("%-10s", name))
		if budget.SameDay(d.Date, today) {
			marker = todayStyle.Render("▸ ")
			nameStyled = todayStyle.Render(fmt.Sprintf("%-10s", name))
		}

		amt := amtStyle.Render(fmt.Sprintf("%10s", cli.FormatRupees(d.Spent)))
		if wk.DailyLimit > 0 && d.Spent > wk.DailyLimit {
			amt = overStyle.Render(fmt.Sprintf("%10s", cli.FormatRupees(d.Spent)))
		}
		if d.Date.After(today) {
			amt = dimStyle.Render(fmt.Sprintf("%10s", "—"))
		}

		count := ""
		if d.Count > 0 {
			count = dimStyle.Render("  " + cli.FormatCount(d.Count, "txn"))
		}

		daysBody.WriteString(marker + nameStyled + amt + count + "\n")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var sumBody strings.Builder
	rows := []struct{ label, value string }{
		{"Allowance", cli.FormatRupees(a.policy.WeeklyAllowance)},
		{"Spent", cli.FormatRupees(wk.Spent)},
		{"Left", cli.FormatRupees(a.policy.WeeklyAllowance - wk.Spent)},
		{"Days left", cli.FormatCount(wk.DaysLeft, "day")},
		{"Daily limit", cli.FormatRupees(wk.DailyLimit)},
		{"Spent today", cli.FormatRupees(wk.TodaySpent)},
		{"Safe today", cli.FormatRupees(wk.DailyRemaining)},
	}
	for _, r := range rows {
		sumBody.WriteString(labelStyle.Render(fmt.Sprintf("%-13s", r.label)))
		sumBody.WriteString(valueStyle.Render(r.value))
		sumBody.WriteString("\n")
	}
	if wk.OverDailyLimit {
		sumBody.WriteString("\n")
		sumBody.WriteString(overStyle.Render("Over today's limit."))
	}

	daysCard := components.ContentCard("This Week", strings.TrimRight(daysBody.String(), "\n"), halves[0])
	sumCard := components.ContentCard("Safe to Spend", strings.TrimRight(sumBody.String(), "\n"), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("This Week", strings.TrimRight(daysBody.String(), "\n"), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Safe to Spend", strings.TrimRight(sumBody.String(), "\n"), cw))
	} else {
		b.WriteString(components.CardRow([]string{daysCard, sumCard}))
	}

	return b.String()
}
