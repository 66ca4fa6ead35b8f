package pipeline

import (
	"testing"
	"time"

	"paisa/internal/model"
)

// tx builds a test transaction on the given local date.
func tx(t *testing.T, amount float64, cat model.Category, date string) model.Transaction {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02 15:04", date, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return model.Transaction{
		ID:       "tx-" + date,
		Amount:   amount,
		Category: cat,
		Method:   model.MethodUPI,
		Date:     d,
	}
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("parse day %q: %v", date, err)
	}
	return d
}

func TestSumInRange(t *testing.T) {
	txs := []model.Transaction{
		tx(t, 100, model.CategoryMess, "2025-09-15 09:00"),
		tx(t, 50, model.CategoryMetro, "2025-09-16 18:30"),
		tx(t, 200, model.CategoryMisc, "2025-09-22 10:00"), // next week
	}

	got := SumInRange(txs, day(t, "2025-09-15"), day(t, "2025-09-21").Add(24*time.Hour-time.Second))
	if got != 150 {
		t.Errorf("SumInRange week = %v, want 150", got)
	}

	// Full range covering everything equals the sum of all amounts.
	all := SumInRange(txs, day(t, "2025-09-01"), day(t, "2025-09-30"))
	if all != 350 {
		t.Errorf("SumInRange full span = %v, want 350", all)
	}
}

func TestSumInRangeInclusiveBounds(t *testing.T) {
	edge := tx(t, 75, model.CategorySocial, "2025-09-15 00:00")
	got := SumInRange([]model.Transaction{edge}, edge.Date, edge.Date)
	if got != 75 {
		t.Errorf("SumInRange with tx exactly at both bounds = %v, want 75", got)
	}
}

func TestSumOnDay(t *testing.T) {
	txs := []model.Transaction{
		tx(t, 40, model.CategoryMess, "2025-09-17 08:00"),
		tx(t, 60, model.CategoryMess, "2025-09-17 21:45"),
		tx(t, 500, model.CategoryRent, "2025-09-18 10:00"),
	}

	if got := SumOnDay(txs, day(t, "2025-09-17")); got != 100 {
		t.Errorf("SumOnDay = %v, want 100", got)
	}
	if got := SumOnDay(txs, day(t, "2025-09-19")); got != 0 {
		t.Errorf("SumOnDay on empty day = %v, want 0", got)
	}
}

func TestSumByCategory(t *testing.T) {
	start, end := day(t, "2025-09-15"), day(t, "2025-09-21")
	txs := []model.Transaction{
		tx(t, 100, model.CategoryMess, "2025-09-15 09:00"),
		tx(t, 80, model.CategoryMess, "2025-09-16 13:00"),
		tx(t, 30, model.CategoryMisc, "2025-09-16 17:00"),
	}

	sums := SumByCategory(txs, start, end)
	if len(sums) != 2 {
		t.Fatalf("got %d categories, want 2 (zero categories must be absent)", len(sums))
	}
	if sums[model.CategoryMess] != 180 {
		t.Errorf("mess sum = %v, want 180", sums[model.CategoryMess])
	}
	if _, ok := sums[model.CategoryRent]; ok {
		t.Error("rent present in result, want absent")
	}

	// Category totals must add up to the range sum over the same window.
	var catTotal float64
	for _, v := range sums {
		catTotal += v
	}
	if rangeTotal := SumInRange(txs, start, end); catTotal != rangeTotal {
		t.Errorf("category totals %v != range sum %v", catTotal, rangeTotal)
	}
}

func TestEmptyCollection(t *testing.T) {
	start, end := day(t, "2025-09-15"), day(t, "2025-09-21")

	if got := SumInRange(nil, start, end); got != 0 {
		t.Errorf("SumInRange(nil) = %v, want 0", got)
	}
	if got := SumOnDay(nil, start); got != 0 {
		t.Errorf("SumOnDay(nil) = %v, want 0", got)
	}
	if sums := SumByCategory(nil, start, end); len(sums) != 0 {
		t.Errorf("SumByCategory(nil) has %d entries, want 0", len(sums))
	}
}

func TestAggregateDaysFillsGaps(t *testing.T) {
	txs := []model.Transaction{
		tx(t, 100, model.CategoryMess, "2025-09-15 09:00"),
		tx(t, 50, model.CategoryMetro, "2025-09-17 18:00"),
	}

	days := AggregateDays(txs, day(t, "2025-09-15"), day(t, "2025-09-21"))
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0].Spent != 100 || days[0].Count != 1 {
		t.Errorf("Monday = %+v, want Spent 100 Count 1", days[0])
	}
	if days[1].Spent != 0 {
		t.Errorf("Tuesday spent = %v, want 0 (gap day)", days[1].Spent)
	}
	if days[2].Spent != 50 {
		t.Errorf("Wednesday spent = %v, want 50", days[2].Spent)
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Date.Before(days[i].Date) {
			t.Fatalf("days not sorted ascending at %d", i)
		}
	}
}

func TestAggregateCategories(t *testing.T) {
	start, end := day(t, "2025-09-15"), day(t, "2025-09-21")
	txs := []model.Transaction{
		tx(t, 300, model.CategoryMess, "2025-09-15 09:00"),
		tx(t, 100, model.CategoryMetro, "2025-09-16 09:00"),
		tx(t, 100, model.CategoryMess, "2025-09-17 09:00"),
	}

	cats := AggregateCategories(txs, start, end)
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].Category != model.CategoryMess || cats[0].Spent != 400 {
		t.Errorf("top category = %+v, want mess with 400", cats[0])
	}
	if cats[0].SharePercent != 80 {
		t.Errorf("mess share = %v%%, want 80", cats[0].SharePercent)
	}
	if cats[1].SharePercent != 20 {
		t.Errorf("metro share = %v%%, want 20", cats[1].SharePercent)
	}
}

func TestAggregateCategoriesEmpty(t *testing.T) {
	cats := AggregateCategories(nil, day(t, "2025-09-15"), day(t, "2025-09-21"))
	if len(cats) != 0 {
		t.Errorf("got %d categories for empty input, want 0", len(cats))
	}
}
