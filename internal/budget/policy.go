package budget

// DailyLimit derives today's safe-to-spend from what is left of the weekly
// allowance, spread evenly over the remaining days. Never negative; zero
// days remaining is treated as one so the division is always defined.
func DailyLimit(weeklyAllowance, weeklySpent float64, daysRemaining int) float64 {
	left := weeklyAllowance - weeklySpent
	if left < 0 {
		left = 0
	}
	if daysRemaining < 1 {
		daysRemaining = 1
	}
	return left / float64(daysRemaining)
}
