// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatRupees formats an amount with the rupee sign and Indian digit
// grouping. e.g., 1234567.5 -> "₹12,34,567.50". Whole amounts drop the
// paise: 450 -> "₹450".
func FormatRupees(amount float64) string {
	if amount < 0 {
		return "-" + FormatRupees(-amount)
	}

	whole := int64(amount)
	paise := int64(math.Round((amount - float64(whole)) * 100))
	if paise >= 100 {
		whole++
		paise -= 100
	}

	s := "₹" + GroupIndian(whole)
	if paise > 0 {
		s += fmt.Sprintf(".%02d", paise)
	}
	return s
}

// GroupIndian adds Indian-style digit separators: the last three digits,
// then groups of two. e.g., 1234567 -> "12,34,567".
func GroupIndian(n int64) string {
	if n < 0 {
		return "-" + GroupIndian(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatCount adds a count with its noun, pluralized the lazy way.
// e.g., FormatCount(1, "txn") -> "1 txn", FormatCount(3, "txn") -> "3 txns".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
