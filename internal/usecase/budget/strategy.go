package budget

import (
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Strategy maps an income figure to a category allocation and reviews actual spending against it
type Strategy interface {
	Name() string
	Description() string
	CalculateBudget(income decimal.Decimal) (Allocation, error)
	Recommendations(transactions []*domain.Transaction) []string
}

// Line is one category of an allocation
type Line struct {
	Category domain.Category
	Amount   decimal.Decimal
}

// Allocation is an ordered list of category amounts
type Allocation []Line

// Total sums every line of the allocation
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range a {
		total = total.Add(line.Amount)
	}
	return total
}

// Lookup returns the amount allocated to category
func (a Allocation) Lookup(category domain.Category) (decimal.Decimal, bool) {
	for _, line := range a {
		if line.Category == category {
			return line.Amount, true
		}
	}
	return decimal.Zero, false
}

// SumOf adds the amounts allocated to the given categories
func (a Allocation) SumOf(categories ...domain.Category) decimal.Decimal {
	total := decimal.Zero
	for _, line := range a {
		if line.Category.In(categories...) {
			total = total.Add(line.Amount)
		}
	}
	return total
}

type weight struct {
	category domain.Category
	share    decimal.Decimal
}

func w(category domain.Category, share string) weight {
	return weight{category: category, share: decimal.RequireFromString(share)}
}

// spread distributes amount across weights, appending to the allocation in table order
func (a Allocation) spread(amount decimal.Decimal, weights []weight) Allocation {
	for _, wt := range weights {
		a = append(a, Line{Category: wt.category, Amount: amount.Mul(wt.share)})
	}
	return a
}

// expensesByCategory sums EXPENSE transactions per category, returning categories in first-seen order
func expensesByCategory(transactions []*domain.Transaction) (map[domain.Category]decimal.Decimal, []domain.Category) {
	sums := make(map[domain.Category]decimal.Decimal)
	var order []domain.Category
	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		if _, ok := sums[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}
	return sums, order
}

func totalIncome(transactions []*domain.Transaction) decimal.Decimal {
	return domain.SumAmounts(transactions, func(tx *domain.Transaction) bool {
		return tx.Type == domain.TransactionTypeIncome
	})
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
