package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// Category groups reviewed by the 50/30/20 rule
var (
	NeedsCategories = []domain.Category{
		domain.CategoryHousing, domain.CategoryFood, domain.CategoryTransportation,
		domain.CategoryUtilities, domain.CategoryHealthcare,
	}
	WantsCategories = []domain.Category{
		domain.CategoryEntertainment, domain.CategoryDiningOut, domain.CategoryShopping,
		domain.CategoryTravel, domain.CategoryPersonalCare,
	}
	SavingsCategories = []domain.Category{
		domain.CategoryEmergencyFund, domain.CategoryRetirement, domain.CategoryVacation,
		domain.CategoryEducationSavings,
	}
)

var (
	needsShare   = decimal.RequireFromString("0.5")
	wantsShare   = decimal.RequireFromString("0.3")
	savingsShare = decimal.RequireFromString("0.2")

	// Sub-allocation of each bucket; every table sums to 1
	needsWeights = []weight{
		w(domain.CategoryHousing, "0.5"),
		w(domain.CategoryFood, "0.2"),
		w(domain.CategoryTransportation, "0.15"),
		w(domain.CategoryUtilities, "0.1"),
		w(domain.CategoryHealthcare, "0.05"),
	}
	wantsWeights = []weight{
		w(domain.CategoryEntertainment, "0.4"),
		w(domain.CategoryDiningOut, "0.3"),
		w(domain.CategoryShopping, "0.2"),
		w(domain.CategoryTravel, "0.1"),
	}
	savingsWeights = []weight{
		w(domain.CategoryEmergencyFund, "0.4"),
		w(domain.CategoryRetirement, "0.6"),
	}
)

// FiftyThirtyTwentyStrategy splits income into needs, wants and savings
type FiftyThirtyTwentyStrategy struct{}

// NewFiftyThirtyTwentyStrategy creates the 50/30/20 strategy
func NewFiftyThirtyTwentyStrategy() *FiftyThirtyTwentyStrategy {
	return &FiftyThirtyTwentyStrategy{}
}

func (s *FiftyThirtyTwentyStrategy) Name() string { return "50/30/20 Rule" }

func (s *FiftyThirtyTwentyStrategy) Description() string {
	return "Allocate 50% of income to needs, 30% to wants, and 20% to savings and debt repayment."
}

// CalculateBudget allocates the whole income: 50% needs, 30% wants, 20% savings,
// each bucket spread over its category weights
func (s *FiftyThirtyTwentyStrategy) CalculateBudget(income decimal.Decimal) (Allocation, error) {
	allocation := make(Allocation, 0, len(needsWeights)+len(wantsWeights)+len(savingsWeights))
	allocation = allocation.spread(income.Mul(needsShare), needsWeights)
	allocation = allocation.spread(income.Mul(wantsShare), wantsWeights)
	allocation = allocation.spread(income.Mul(savingsShare), savingsWeights)
	return allocation, nil
}

// Recommendations compares actual needs, wants and savings ratios to 50/30/20.
// Only unfavorable deviations are flagged, and nothing is flagged without income.
func (s *FiftyThirtyTwentyStrategy) Recommendations(transactions []*domain.Transaction) []string {
	income := totalIncome(transactions)
	if income.LessThanOrEqual(decimal.Zero) {
		return []string{}
	}

	var needs, wants, savings decimal.Decimal
	for _, tx := range transactions {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		switch {
		case tx.Category.In(NeedsCategories...):
			needs = needs.Add(tx.Amount)
		case tx.Category.In(WantsCategories...):
			wants = wants.Add(tx.Amount)
		case tx.Category.In(SavingsCategories...):
			savings = savings.Add(tx.Amount)
		}
	}

	needsRatio := needs.Div(income)
	wantsRatio := wants.Div(income)
	savingsRatio := savings.Div(income)

	recommendations := []string{}
	if needsRatio.GreaterThan(needsShare) {
		recommendations = append(recommendations, fmt.Sprintf(
			"You're spending %s%% on needs, which is above the recommended 50%%. Consider reducing housing or other essential expenses if possible.",
			percent(needsRatio)))
	}
	if wantsRatio.GreaterThan(wantsShare) {
		recommendations = append(recommendations, fmt.Sprintf(
			"You're spending %s%% on wants, which is above the recommended 30%%. Look for areas to cut back on discretionary spending.",
			percent(wantsRatio)))
	}
	if savingsRatio.LessThan(savingsShare) {
		recommendations = append(recommendations, fmt.Sprintf(
			"You're only saving %s%% of your income, which is below the recommended 20%%. Try to increase contributions to savings or retirement accounts.",
			percent(savingsRatio)))
	}
	return recommendations
}

func percent(ratio decimal.Decimal) string {
	return ratio.Mul(hundred).Round(0).String()
}
