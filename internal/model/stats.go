package model

import "time"

// WeekStats holds the safe-to-spend figures for the current week.
// Everything here is derived from (transactions, policy, now) on demand;
// nothing is cached between queries.
type WeekStats struct {
	WeekStart time.Time
	WeekEnd   time.Time

	Spent      float64
	TodaySpent float64
	DaysLeft   int

	DailyLimit     float64
	DailyRemaining float64

	MiscSpent float64
	ChaiIndex float64 // misc spend as a fraction of the weekly allowance

	OverDailyLimit    bool
	ChaiIndexExceeded bool
}

// DayStats holds the spend total for one calendar day.
type DayStats struct {
	Date  time.Time
	Spent float64
	Count int
}

// CategoryStats holds aggregated spend for one category within a window.
type CategoryStats struct {
	Category     Category
	Spent        float64
	Count        int
	SharePercent float64
}

// MonthStats holds the calendar-month summary and burn-rate projection.
type MonthStats struct {
	MonthStart time.Time
	MonthEnd   time.Time

	Spent       float64
	Limit       float64
	UsedPercent float64

	DaysElapsed int
	DaysInMonth int

	DailyBurnRate  float64
	ProjectedSpend float64
}
