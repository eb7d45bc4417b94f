package recommendation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

const (
	topCategoryCount      = 3
	smallPurchaseMinCount = 5
)

var (
	highShareThreshold    = decimal.NewFromInt(25)
	categorySavingsShare  = decimal.RequireFromString("0.2")
	smallPurchaseLimit    = decimal.NewFromInt(20)
	smallPurchaseMinTotal = decimal.NewFromInt(100)
	smallPurchaseSavings  = decimal.RequireFromString("0.5")
	percentScale          = decimal.NewFromInt(100)
)

// SpendingAnalyzer flags categories that dominate spending and piles of small purchases
type SpendingAnalyzer struct{}

type categoryTotal struct {
	category domain.Category
	amount   decimal.Decimal
}

// Analyze ranks expense categories and looks for runs of small purchases.
// Logic:
//  1. Sum expenses per category in first-seen order, then rank descending (stable)
//  2. Each of the top three taking more than 25% of all expenses is priority 1, 20% of it savable
//  3. At least five expenses under 20 summing over 100 are priority 2, half of it savable
func (SpendingAnalyzer) Analyze(_ *domain.User, transactions []*domain.Transaction) []domain.Recommendation {
	var recs []domain.Recommendation

	ranked, totalExpenses := rankExpenses(transactions)
	if len(ranked) > topCategoryCount {
		ranked = ranked[:topCategoryCount]
	}
	for _, entry := range ranked {
		share := entry.amount.Div(totalExpenses).Mul(percentScale)
		if !share.GreaterThan(highShareThreshold) {
			continue
		}
		rec := domain.NewRecommendation(
			fmt.Sprintf("High Spending in %s", entry.category),
			fmt.Sprintf("You're spending %s%% of your expenses on %s. Consider setting a budget for this category.", share.StringFixed(1), entry.category),
			1,
			string(entry.category),
			domain.DifficultyMedium,
		)
		recs = append(recs, rec.WithSavings(entry.amount.Mul(categorySavingsShare)))
	}

	smallCount := 0
	smallTotal := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == domain.TransactionTypeExpense && tx.Amount.LessThan(smallPurchaseLimit) {
			smallCount++
			smallTotal = smallTotal.Add(tx.Amount)
		}
	}
	if smallCount >= smallPurchaseMinCount && smallTotal.GreaterThan(smallPurchaseMinTotal) {
		rec := domain.NewRecommendation(
			"Small Purchases Adding Up",
			fmt.Sprintf("You've made %d small purchases totaling $%s. These small expenses can add up quickly.", smallCount, smallTotal.StringFixed(2)),
			2,
			"General",
			domain.DifficultyEasy,
		)
		recs = append(recs, rec.WithSavings(smallTotal.Mul(smallPurchaseSavings)))
	}

	return recs
}

func rankExpenses(transactions []*domain.Transaction) ([]categoryTotal, decimal.Decimal) {
	index := make(map[domain.Category]int)
	var totals []categoryTotal
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		total = total.Add(tx.Amount)
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, categoryTotal{category: tx.Category})
		}
		totals[i].amount = totals[i].amount.Add(tx.Amount)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].amount.GreaterThan(totals[j].amount)
	})
	return totals, total
}
