package pipeline

import (
	"time"

	"paisa/internal/budget"
	"paisa/internal/model"
)

// WeekReport derives the full safe-to-spend picture for the week
// containing now.
func WeekReport(txs []model.Transaction, policy model.BudgetPolicy, now time.Time) model.WeekStats {
	weekStart := budget.WeekStart(now)
	weekEnd := budget.WeekEnd(now)

	spent := SumInRange(txs, weekStart, weekEnd)
	todaySpent := SumOnDay(txs, now)
	daysLeft := budget.DaysRemainingInWeek(now)

	dailyLimit := budget.DailyLimit(policy.WeeklyAllowance, spent, daysLeft)
	dailyRemaining := dailyLimit - todaySpent

	miscSpent := SumByCategory(txs, weekStart, weekEnd)[model.CategoryMisc]
	chaiIndex := 0.0
	if policy.WeeklyAllowance > 0 {
		chaiIndex = miscSpent / policy.WeeklyAllowance
	}

	return model.WeekStats{
		WeekStart:         weekStart,
		WeekEnd:           weekEnd,
		Spent:             spent,
		TodaySpent:        todaySpent,
		DaysLeft:          daysLeft,
		DailyLimit:        dailyLimit,
		DailyRemaining:    dailyRemaining,
		MiscSpent:         miscSpent,
		ChaiIndex:         chaiIndex,
		OverDailyLimit:    budget.OverDailyLimit(dailyRemaining),
		ChaiIndexExceeded: budget.ChaiIndexExceeded(miscSpent, policy.WeeklyAllowance),
	}
}

// MonthReport derives the calendar-month summary with a straight-line
// projection from the burn rate so far.
func MonthReport(txs []model.Transaction, policy model.BudgetPolicy, now time.Time) model.MonthStats {
	monthStart := budget.MonthStart(now)
	monthEnd := budget.MonthEnd(now)

	spent := SumInRange(txs, monthStart, monthEnd)
	daysElapsed := now.Day()
	daysInMonth := monthEnd.Day()

	burnRate := spent / float64(daysElapsed)
	projected := burnRate * float64(daysInMonth)

	usedPct := 0.0
	if policy.MonthlyLimit > 0 {
		usedPct = spent / policy.MonthlyLimit * 100
	}

	return model.MonthStats{
		MonthStart:     monthStart,
		MonthEnd:       monthEnd,
		Spent:          spent,
		Limit:          policy.MonthlyLimit,
		UsedPercent:    usedPct,
		DaysElapsed:    daysElapsed,
		DaysInMonth:    daysInMonth,
		DailyBurnRate:  burnRate,
		ProjectedSpend: projected,
	}
}
