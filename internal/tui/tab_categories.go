package tui

import (
	"fmt"
	"strings"

	"paisa/internal/cli"
	"paisa/internal/model"
	"paisa/internal/tui/components"
	"paisa/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active

	cats := a.weekCats
	title := fmt.Sprintf("Categories · %s to %s",
		a.week.WeekStart.Format("02 Jan"), a.week.WeekEnd.Format("02 Jan"))
	if a.catMonthly {
		cats = a.monthCats
		title = "Categories · " + a.month.MonthStart.Format("January 2006")
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(title, a.renderCategoryBars(cats, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	// Chai-Index card: the week's small spends against the 15% ceiling
	chaiStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true)
	okStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var chaiBody strings.Builder
	chaiBody.WriteString(chaiStyle.Render(fmt.Sprintf("Misc this week: %s of a %s allowance (%s)",
		cli.FormatRupees(a.week.MiscSpent),
		cli.FormatRupees(a.policy.WeeklyAllowance),
		cli.FormatPercent(a.week.ChaiIndex))))
	chaiBody.WriteString("\n")
	if a.week.ChaiIndexExceeded {
		chaiBody.WriteString(warnStyle.Render("Chai money is leaking past 15%. Watch the small stuff."))
	} else {
		chaiBody.WriteString(okStyle.Render("Small spends under control."))
	}
	chaiBody.WriteString("\n")
	chaiBody.WriteString(dimStyle.Render("[m] toggle week/month window"))

	b.WriteString(components.ContentCard("Chai-Index", chaiBody.String(), cw))

	return b.String()
}

func (a App) renderCategoryBars(cats []model.CategoryStats, innerW int) string {
	t := theme.Active

	if len(cats) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("Nothing spent in this window.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	maxSpent := cats[0].Spent
	for _, c := range cats[1:] {
		if c.Spent > maxSpent {
			maxSpent = c.Spent
		}
	}

	// name(11) + amount(11) + pct(5) + spacing
	barMax := innerW - 32
	if barMax < 5 {
		barMax = 5
	}

	colors := []lipgloss.Color{t.Blue, t.Green, t.Yellow, t.Orange, t.Magenta, t.Cyan, t.Red}

	var b strings.Builder
	for i, c := range cats {
		barLen := 0
		if maxSpent > 0 {
			barLen = int(c.Spent / maxSpent * float64(barMax))
		}
		barStyle := lipgloss.NewStyle().Foreground(colors[i%len(colors)]).Background(t.Surface)
		fmt.Fprintf(&b, "%s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-11s", c.Category.Label())),
			amtStyle.Render(fmt.Sprintf("%10s", cli.FormatRupees(c.Spent))),
			barStyle.Render(strings.Repeat("█", barLen)),
			pctStyle.Render(fmt.Sprintf("%.0f%%", c.SharePercent)))
	}
	return strings.TrimRight(b.String(), "\n")
}
