package recommendation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

var retirementIncomeShare = decimal.RequireFromString("0.1")

// InvestmentAnalyzer nudges users without investments and checks retirement contributions
type InvestmentAnalyzer struct{}

func (InvestmentAnalyzer) Analyze(user *domain.User, transactions []*domain.Transaction) []domain.Recommendation {
	invested := 0
	for _, tx := range transactions {
		if tx.Type == domain.TransactionTypeInvestment || tx.Category == domain.CategoryInvestments {
			invested++
		}
	}

	if invested == 0 {
		description := "You don't have any recorded investments. Consider starting with index funds or ETFs for long-term wealth building."
		if user != nil && user.TotalBalance().GreaterThan(decimal.Zero) {
			description = fmt.Sprintf("You don't have any recorded investments and hold $%s across your accounts. Consider starting with index funds or ETFs for long-term wealth building.", user.TotalBalance().StringFixed(2))
		}
		return []domain.Recommendation{domain.NewRecommendation(
			"Start Investing", description, 2, "Investments", domain.DifficultyMedium,
		)}
	}

	retirement := sumWhere(transactions, func(tx *domain.Transaction) bool {
		return tx.Category == domain.CategoryRetirement
	})
	totalIncome := sumWhere(transactions, isIncome)
	if retirement.LessThan(totalIncome.Mul(retirementIncomeShare)) {
		return []domain.Recommendation{domain.NewRecommendation(
			"Increase Retirement Savings",
			"Financial experts recommend saving at least 15% of your income for retirement.",
			1,
			"Investments",
			domain.DifficultyMedium,
		)}
	}
	return nil
}
