package budget

// ChaiIndexThreshold is the share of the weekly allowance that Misc
// spending may reach before the Chai-Index alert fires. Fixed policy
// constant, not user-configurable.
const ChaiIndexThreshold = 0.15

// OverDailyLimit reports whether today's spending has gone past the
// daily safe-to-spend.
func OverDailyLimit(dailyRemaining float64) bool {
	return dailyRemaining < 0
}

// ChaiIndexExceeded reports whether Misc spending this week is strictly
// above the threshold share of the weekly allowance. Spending exactly at
// the threshold does not trigger it.
func ChaiIndexExceeded(miscSpentThisWeek, weeklyAllowance float64) bool {
	return miscSpentThisWeek > weeklyAllowance*ChaiIndexThreshold
}
