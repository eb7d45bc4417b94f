package allocator

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// CalculateAllocation divides an income across the items of a split rule.
// Returns a map of category to allocated amount.
// Logic:
//  1. Sort items by Priority (Lower = First, stable for ties)
//  2. Deduct FIXED amounts first
//  3. PERCENT items take their share of what is left after FIXED, not of the original total
//  4. The REMAINDER item receives whatever is left
//
// The allocated amounts always sum to totalAmount exactly.
func CalculateAllocation(totalAmount decimal.Decimal, items []domain.SplitRuleItem) (map[domain.Category]decimal.Decimal, error) {
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("total amount must be positive")
	}
	if len(items) == 0 {
		return nil, errors.New("items list cannot be empty")
	}

	ordered := make([]domain.SplitRuleItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	remainderItem := findRemainderItem(ordered)
	if remainderItem == nil {
		return nil, errors.New("no REMAINDER item found")
	}

	allocation := make(map[domain.Category]decimal.Decimal, len(ordered))
	remaining := totalAmount

	for _, item := range ordered {
		if item.Type != domain.SplitRuleItemTypeFixed {
			continue
		}
		if item.Value.GreaterThan(remaining) {
			return nil, errors.New("FIXED amount exceeds remaining balance")
		}
		allocation[item.TargetCategory] = item.Value
		remaining = remaining.Sub(item.Value)
	}

	afterFixed := remaining
	for _, item := range ordered {
		if item.Type != domain.SplitRuleItemTypePercent {
			continue
		}
		share := afterFixed.Mul(item.Value).Div(decimal.NewFromInt(100))
		if share.GreaterThan(remaining) {
			return nil, errors.New("PERCENT items exceed remaining balance")
		}
		allocation[item.TargetCategory] = share
		remaining = remaining.Sub(share)
	}

	allocation[remainderItem.TargetCategory] = remaining

	allocated := decimal.Zero
	for _, amount := range allocation {
		allocated = allocated.Add(amount)
	}
	if !allocated.Equal(totalAmount) {
		return nil, errors.New("total allocation does not equal total amount")
	}

	return allocation, nil
}

func findRemainderItem(items []domain.SplitRuleItem) *domain.SplitRuleItem {
	for i := range items {
		if items[i].Type == domain.SplitRuleItemTypeRemainder {
			return &items[i]
		}
	}
	return nil
}
