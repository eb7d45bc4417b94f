package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitRuleItemType represents the type of split rule item
type SplitRuleItemType string

const (
	SplitRuleItemTypeFixed     SplitRuleItemType = "FIXED"
	SplitRuleItemTypePercent   SplitRuleItemType = "PERCENT"
	SplitRuleItemTypeRemainder SplitRuleItemType = "REMAINDER"
)

// SplitRule is a user-defined way of dividing income across budget categories
type SplitRule struct {
	ID    uuid.UUID
	Name  string
	Items []SplitRuleItem
}

// SplitRuleItem assigns part of the income to one category
type SplitRuleItem struct {
	ID             uuid.UUID
	TargetCategory Category
	Type           SplitRuleItemType // 'FIXED', 'PERCENT' (of Remainder), or 'REMAINDER' (Catch-all)
	Value          decimal.Decimal   // Amount for FIXED, percentage (0-100) for PERCENT, ignored for REMAINDER
	Priority       int               // Lower number = Executed first
}

// Validate ensures the split rule adheres to domain rules
// CRITICAL: Ensures exactly one item is type 'REMAINDER' and no category is targeted twice
func (sr *SplitRule) Validate() error {
	if len(sr.Items) == 0 {
		return errors.New("split rule must have at least one item")
	}

	remainderCount := 0
	seen := make(map[Category]bool, len(sr.Items))
	for _, item := range sr.Items {
		if item.Type == SplitRuleItemTypeRemainder {
			remainderCount++
		}

		if item.Type != SplitRuleItemTypeFixed &&
			item.Type != SplitRuleItemTypePercent &&
			item.Type != SplitRuleItemTypeRemainder {
			return errors.New("split rule item type must be FIXED, PERCENT, or REMAINDER")
		}

		if !item.TargetCategory.IsValid() {
			return ErrInvalidCategory
		}
		if seen[item.TargetCategory] {
			return errors.New("split rule must not target the same category twice")
		}
		seen[item.TargetCategory] = true

		if item.Type == SplitRuleItemTypeFixed {
			if item.Value.LessThanOrEqual(decimal.Zero) {
				return errors.New("FIXED split rule item value must be positive")
			}
		}

		if item.Type == SplitRuleItemTypePercent {
			if item.Value.LessThan(decimal.Zero) || item.Value.GreaterThan(decimal.NewFromInt(100)) {
				return errors.New("PERCENT split rule item value must be between 0 and 100")
			}
		}
	}

	if remainderCount != 1 {
		return errors.New("split rule must have exactly one REMAINDER item")
	}

	return nil
}
