// Package budget implements the allowance maths: calendar windows,
// the daily safe-to-spend derivation, and alert predicates.
package budget

import "time"

// WeekStart returns Monday 00:00:00 of the week containing t, in t's
// location. Weeks run Monday through Sunday.
func WeekStart(t time.Time) time.Time {
	day := startOfDay(t)
	wd := int(day.Weekday())
	// time.Weekday has Sunday=0; shift so Monday=0.
	offset := (wd + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns Sunday 23:59:59 of the week containing t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7).Add(-time.Second)
}

// DaysRemainingInWeek counts the days left in the week including today.
// Monday yields 7, Sunday yields 1.
func DaysRemainingInWeek(t time.Time) int {
	wd := int(t.Weekday())
	return 7 - (wd+6)%7
}

// MonthStart returns the first of the month at 00:00:00.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of the month at 23:59:59.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0).Add(-time.Second)
}

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
