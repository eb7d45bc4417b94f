package budget

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/allocator"
)

// SplitRuleStrategy allocates income with a user-defined split rule
type SplitRuleStrategy struct {
	rule domain.SplitRule
}

// NewSplitRuleStrategy validates rule and wraps it as a budget strategy
func NewSplitRuleStrategy(rule domain.SplitRule) (*SplitRuleStrategy, error) {
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid split rule: %w", err)
	}
	return &SplitRuleStrategy{rule: rule}, nil
}

func (s *SplitRuleStrategy) Name() string { return s.rule.Name }

func (s *SplitRuleStrategy) Description() string {
	return "Custom split: fixed amounts first, percentages of what is left, remainder to a catch-all category."
}

// CalculateBudget runs the allocator and orders the result by item priority
func (s *SplitRuleStrategy) CalculateBudget(income decimal.Decimal) (Allocation, error) {
	amounts, err := allocator.CalculateAllocation(income, s.rule.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate income: %w", err)
	}

	items := make([]domain.SplitRuleItem, len(s.rule.Items))
	copy(items, s.rule.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority < items[j].Priority
	})

	allocation := make(Allocation, 0, len(items))
	for _, item := range items {
		allocation = append(allocation, Line{Category: item.TargetCategory, Amount: amounts[item.TargetCategory]})
	}
	return allocation, nil
}

// Recommendations flags every allocated category whose spending went over its share
// of the income recorded in transactions
func (s *SplitRuleStrategy) Recommendations(transactions []*domain.Transaction) []string {
	income := totalIncome(transactions)
	allocation, err := s.CalculateBudget(income)
	if err != nil {
		return []string{}
	}

	spent, _ := expensesByCategory(transactions)
	recommendations := []string{}
	for _, line := range allocation {
		actual := spent[line.Category]
		if actual.GreaterThan(line.Amount) {
			recommendations = append(recommendations, fmt.Sprintf(
				"You've spent %s more than your %s split for %s.",
				money(actual.Sub(line.Amount)), s.rule.Name, line.Category))
		}
	}
	return recommendations
}
