// Package pipeline computes derived spending figures from the transaction
// list. All functions are pure reads: no mutation, no I/O, no cached state.
package pipeline

import (
	"sort"
	"time"

	"paisa/internal/budget"
	"paisa/internal/model"
)

// SumInRange sums the amounts of transactions whose date falls in the
// inclusive range [start, end].
func SumInRange(txs []model.Transaction, start, end time.Time) float64 {
	var total float64
	for _, tx := range txs {
		if inRange(tx.Date, start, end) {
			total += tx.Amount
		}
	}
	return total
}

// SumOnDay sums amounts for transactions on the same calendar day as day.
func SumOnDay(txs []model.Transaction, day time.Time) float64 {
	var total float64
	for _, tx := range txs {
		if budget.SameDay(day, tx.Date) {
			total += tx.Amount
		}
	}
	return total
}

// SumByCategory groups in-range transactions by category and sums their
// amounts. Categories with no matching transactions are absent from the
// result, not present with zero.
func SumByCategory(txs []model.Transaction, start, end time.Time) map[model.Category]float64 {
	sums := make(map[model.Category]float64)
	for _, tx := range txs {
		if inRange(tx.Date, start, end) {
			sums[tx.Category] += tx.Amount
		}
	}
	return sums
}

// FilterByCategory returns the transactions matching the given category.
func FilterByCategory(txs []model.Transaction, cat model.Category) []model.Transaction {
	var result []model.Transaction
	for _, tx := range txs {
		if tx.Category == cat {
			result = append(result, tx)
		}
	}
	return result
}

// FilterInRange returns the transactions within the inclusive range.
func FilterInRange(txs []model.Transaction, start, end time.Time) []model.Transaction {
	var result []model.Transaction
	for _, tx := range txs {
		if inRange(tx.Date, start, end) {
			result = append(result, tx)
		}
	}
	return result
}

// AggregateDays computes per-day totals across [start, end], one entry per
// calendar day. Days with no transactions appear with a zero total so
// tables and charts show the gaps.
func AggregateDays(txs []model.Transaction, start, end time.Time) []model.DayStats {
	dayMap := make(map[string]*model.DayStats)

	for _, tx := range txs {
		if !inRange(tx.Date, start, end) {
			continue
		}
		key := tx.Date.Local().Format("2006-01-02")
		ds, ok := dayMap[key]
		if !ok {
			t, _ := time.ParseInLocation("2006-01-02", key, time.Local)
			ds = &model.DayStats{Date: t}
			dayMap[key] = ds
		}
		ds.Spent += tx.Amount
		ds.Count++
	}

	// Fill every day in the range.
	day := startOfDay(start)
	last := startOfDay(end)
	for !day.After(last) {
		key := day.Format("2006-01-02")
		if _, ok := dayMap[key]; !ok {
			dayMap[key] = &model.DayStats{Date: day}
		}
		day = day.AddDate(0, 0, 1)
	}

	days := make([]model.DayStats, 0, len(dayMap))
	for _, ds := range dayMap {
		days = append(days, *ds)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

// AggregateCategories computes per-category totals and share percentages
// for the window, sorted by spend descending. Empty categories are omitted.
func AggregateCategories(txs []model.Transaction, start, end time.Time) []model.CategoryStats {
	catMap := make(map[model.Category]*model.CategoryStats)
	var total float64

	for _, tx := range txs {
		if !inRange(tx.Date, start, end) {
			continue
		}
		cs, ok := catMap[tx.Category]
		if !ok {
			cs = &model.CategoryStats{Category: tx.Category}
			catMap[tx.Category] = cs
		}
		cs.Spent += tx.Amount
		cs.Count++
		total += tx.Amount
	}

	cats := make([]model.CategoryStats, 0, len(catMap))
	for _, cs := range catMap {
		if total > 0 {
			cs.SharePercent = cs.Spent / total * 100
		}
		cats = append(cats, *cs)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Spent != cats[j].Spent {
			return cats[i].Spent > cats[j].Spent
		}
		return cats[i].Category < cats[j].Category
	})

	return cats
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
