package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

var (
	zeroBasedWeights = []weight{
		w(domain.CategoryHousing, "0.30"),
		w(domain.CategoryFood, "0.15"),
		w(domain.CategoryTransportation, "0.10"),
		w(domain.CategoryUtilities, "0.05"),
		w(domain.CategoryHealthcare, "0.05"),
		w(domain.CategoryEntertainment, "0.05"),
		w(domain.CategoryPersonalCare, "0.05"),
		w(domain.CategoryEmergencyFund, "0.10"),
		w(domain.CategoryRetirement, "0.10"),
		w(domain.CategoryOther, "0.05"),
	}

	underspendThreshold = decimal.RequireFromString("0.8")
)

// ZeroBasedStrategy gives every unit of income a job across a fixed category table
type ZeroBasedStrategy struct{}

// NewZeroBasedStrategy creates the zero-based strategy
func NewZeroBasedStrategy() *ZeroBasedStrategy {
	return &ZeroBasedStrategy{}
}

func (s *ZeroBasedStrategy) Name() string { return "Zero-Based Budgeting" }

func (s *ZeroBasedStrategy) Description() string {
	return "A method of budgeting where all expenses must be justified for each new period. Income - Expenses = 0"
}

// CalculateBudget allocates 100% of income over ten categories
func (s *ZeroBasedStrategy) CalculateBudget(income decimal.Decimal) (Allocation, error) {
	return make(Allocation, 0, len(zeroBasedWeights)).spread(income, zeroBasedWeights), nil
}

// Recommendations compares actual spend per category against the ideal allocation
// for the income found in transactions.
// Logic:
//  1. actual > budget flags an overspend
//  2. actual < 80% of budget flags an underspend worth reallocating
func (s *ZeroBasedStrategy) Recommendations(transactions []*domain.Transaction) []string {
	spent, _ := expensesByCategory(transactions)
	ideal, _ := s.CalculateBudget(totalIncome(transactions))

	recommendations := []string{}
	for _, line := range ideal {
		actual := spent[line.Category]
		switch {
		case actual.GreaterThan(line.Amount):
			recommendations = append(recommendations, fmt.Sprintf(
				"You've spent %s more than allocated for %s. Consider cutting back.",
				money(actual.Sub(line.Amount)), line.Category))
		case actual.LessThan(line.Amount.Mul(underspendThreshold)):
			recommendations = append(recommendations, fmt.Sprintf(
				"You've only used %s of your %s budget for %s. Consider reallocating.",
				money(actual), money(line.Amount), line.Category))
		}
	}
	return recommendations
}
