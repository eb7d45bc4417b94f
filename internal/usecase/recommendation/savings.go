package recommendation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

var (
	minimumSavingsRate   = decimal.NewFromInt(10)
	targetSavingsShare   = decimal.RequireFromString("0.15")
	emergencyIncomeShare = decimal.RequireFromString("0.5")

	savingsCategories = []domain.Category{
		domain.CategoryEmergencyFund, domain.CategoryRetirement, domain.CategoryEducationSavings,
	}
)

// SavingsAnalyzer checks the savings rate and the emergency fund against income
type SavingsAnalyzer struct{}

// Analyze reports nothing when no income has been recorded: without income there
// is no rate to judge, and expense-only ledgers get their advice from SpendingAnalyzer.
func (SavingsAnalyzer) Analyze(_ *domain.User, transactions []*domain.Transaction) []domain.Recommendation {
	var recs []domain.Recommendation

	totalIncome := sumWhere(transactions, isIncome)
	if !totalIncome.GreaterThan(decimal.Zero) {
		return recs
	}

	totalSavings := sumWhere(transactions, func(tx *domain.Transaction) bool {
		return tx.Type == domain.TransactionTypeExpense && tx.Category.In(savingsCategories...)
	})
	savingsRate := totalSavings.Div(totalIncome).Mul(percentScale)

	if savingsRate.LessThan(minimumSavingsRate) {
		rec := domain.NewRecommendation(
			"Increase Your Savings Rate",
			fmt.Sprintf("Your current savings rate is %s%%. Financial experts recommend saving at least 15-20%% of your income.", savingsRate.StringFixed(1)),
			1,
			"Savings",
			domain.DifficultyMedium,
		)
		recs = append(recs, rec.WithSavings(nonNegative(totalIncome.Mul(targetSavingsShare).Sub(totalSavings))))
	}

	emergencyFund := sumWhere(transactions, func(tx *domain.Transaction) bool {
		return tx.Category == domain.CategoryEmergencyFund
	})
	if emergencyFund.LessThan(totalIncome.Mul(emergencyIncomeShare)) {
		recs = append(recs, domain.NewRecommendation(
			"Build Your Emergency Fund",
			"Financial experts recommend having 3-6 months of expenses saved in an emergency fund.",
			2,
			"Savings",
			domain.DifficultyMedium,
		))
	}

	return recs
}
