package model

// Default budget policy values for a fresh install.
const (
	DefaultMonthlyLimit    = 25000
	DefaultWeeklyAllowance = 4000
)

// BudgetPolicy holds the configured spending limits. Created at startup
// from the persisted snapshot (or defaults) and mutated only through an
// explicit settings change.
type BudgetPolicy struct {
	MonthlyLimit    float64
	WeeklyAllowance float64
}

// DefaultBudgetPolicy returns the policy used when no snapshot exists.
func DefaultBudgetPolicy() BudgetPolicy {
	return BudgetPolicy{
		MonthlyLimit:    DefaultMonthlyLimit,
		WeeklyAllowance: DefaultWeeklyAllowance,
	}
}

// Snapshot is the full persisted state: every transaction plus the policy.
// Saves are idempotent whole-snapshot overwrites.
type Snapshot struct {
	Transactions []Transaction
	Budget       BudgetPolicy
}
