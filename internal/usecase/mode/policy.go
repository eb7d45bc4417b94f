package mode

import (
	"github.com/shopspring/decimal"
)

// BudgetingSnapshot is the history a ConsistencyEvaluator sees
type BudgetingSnapshot struct {
	ExpenseCount int
	ExpenseTotal decimal.Decimal
	SavingsTotal decimal.Decimal // part of ExpenseTotal that went to savings categories
}

// ConsistencyEvaluator decides whether a user in Budgeting mode is saving consistently
type ConsistencyEvaluator interface {
	IsSavingConsistently(s BudgetingSnapshot) bool
}

// ConsistencyFunc adapts a plain function to ConsistencyEvaluator
type ConsistencyFunc func(s BudgetingSnapshot) bool

func (f ConsistencyFunc) IsSavingConsistently(s BudgetingSnapshot) bool {
	return f(s)
}

// SavingsRatioPolicy is the default evaluator: enough expenses seen, and a large enough
// share of them went into savings categories
type SavingsRatioPolicy struct {
	MinExpenses     int
	MinSavingsRatio decimal.Decimal
}

// DefaultConsistency requires 10 expenses with at least 20% of spend saved
func DefaultConsistency() SavingsRatioPolicy {
	return SavingsRatioPolicy{MinExpenses: 10, MinSavingsRatio: decimal.RequireFromString("0.2")}
}

func (p SavingsRatioPolicy) IsSavingConsistently(s BudgetingSnapshot) bool {
	if s.ExpenseCount < p.MinExpenses || s.ExpenseTotal.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return s.SavingsTotal.Div(s.ExpenseTotal).GreaterThanOrEqual(p.MinSavingsRatio)
}

// PerformanceEstimator supplies return figures for mode reports.
// ok is false when there is no data to base an estimate on.
type PerformanceEstimator interface {
	ReturnPercent(kind Kind, principal decimal.Decimal) (percent decimal.Decimal, ok bool)
}

// NoEstimates never produces a figure, so every performance metric is reported as not computed
type NoEstimates struct{}

func (NoEstimates) ReturnPercent(Kind, decimal.Decimal) (decimal.Decimal, bool) {
	return decimal.Zero, false
}
