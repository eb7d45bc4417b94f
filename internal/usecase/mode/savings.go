package mode

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

var (
	emergencyShareOfBalance  = decimal.RequireFromString("0.25")
	retirementShareOfSavings = decimal.RequireFromString("0.15")
	investReadyThreshold     = decimal.NewFromInt(10000)
)

type savingsMode struct {
	breakThreshold int

	savings       *ledger
	totalSaved    decimal.Decimal
	totalIncome   decimal.Decimal
	streak        int // consecutive savings contributions
	nonSavingsRun int // consecutive expenses outside the savings categories
}

func newSavingsMode(breakThreshold int) *savingsMode {
	return &savingsMode{
		breakThreshold: breakThreshold,
		savings:        newLedger(),
	}
}

func (m *savingsMode) Kind() Kind { return KindSavings }

// HandleTransaction records savings contributions.
// Logic:
//  1. A savings-category expense grows the streak and clears the non-savings run
//  2. Any other expense resets the streak; a run of breakThreshold of them returns to Budgeting
//  3. An INVESTMENT above 1000 moves on to Investment
func (m *savingsMode) HandleTransaction(tx *domain.Transaction) *Transition {
	switch tx.Type {
	case domain.TransactionTypeIncome:
		m.totalIncome = m.totalIncome.Add(tx.Amount)

	case domain.TransactionTypeExpense:
		if tx.Category.In(savingsCategories...) {
			m.savings.add(tx.Category, tx.Amount)
			m.totalSaved = m.totalSaved.Add(tx.Amount)
			m.streak++
			m.nonSavingsRun = 0
			return nil
		}
		m.streak = 0
		m.nonSavingsRun++
		if m.breakThreshold > 0 && m.nonSavingsRun >= m.breakThreshold {
			return &Transition{
				To:     KindBudgeting,
				Reason: fmt.Sprintf("%d consecutive expenses without a savings contribution", m.nonSavingsRun),
			}
		}

	case domain.TransactionTypeInvestment:
		if tx.Amount.GreaterThan(largeMovement) {
			return &Transition{
				To:     KindInvestment,
				Reason: fmt.Sprintf("significant investment of %s", tx.Amount.StringFixed(2)),
			}
		}
	}
	return nil
}

func (m *savingsMode) Recommendations(p Portfolio) []domain.Recommendation {
	var recs []domain.Recommendation

	totalBalance := decimal.Zero
	if p != nil {
		totalBalance = p.TotalBalance()
	}
	if m.savings.get(domain.CategoryEmergencyFund).LessThan(totalBalance.Mul(emergencyShareOfBalance)) {
		recs = append(recs, domain.NewRecommendation(
			"Build Your Emergency Fund",
			"Aim to save 3-6 months of expenses in your emergency fund.",
			1, "Savings", domain.DifficultyMedium,
		))
	}

	recs = append(recs, domain.NewRecommendation(
		"Consider a High-Yield Savings Account",
		"Move your savings to a high-yield savings account to earn more interest.",
		2, "Savings", domain.DifficultyEasy,
	))

	if m.savings.get(domain.CategoryRetirement).LessThan(m.totalSaved.Mul(retirementShareOfSavings)) {
		recs = append(recs, domain.NewRecommendation(
			"Increase Retirement Savings",
			"Consider allocating more of your savings to retirement accounts for tax advantages and long-term growth.",
			2, "Retirement", domain.DifficultyMedium,
		))
	}

	if m.totalSaved.GreaterThan(investReadyThreshold) {
		recs = append(recs, domain.NewRecommendation(
			"Consider Starting to Invest",
			"With your solid savings foundation, you might consider investing some of your savings for potentially higher returns.",
			3, "Investments", domain.DifficultyHard,
		))
	}
	return recs
}

func (m *savingsMode) Reports(est PerformanceEstimator) []ReportProjection {
	if est == nil {
		est = NoEstimates{}
	}

	rate := NotComputed("currentSavingsRate", "no income recorded while in savings mode")
	if m.totalIncome.GreaterThan(decimal.Zero) {
		rate = Computed("currentSavingsRate", m.totalSaved.Div(m.totalIncome).Mul(hundred).Round(1))
	}

	interest := NotComputed("totalInterest", "no return data for savings accounts")
	if pct, ok := est.ReturnPercent(KindSavings, m.totalSaved); ok {
		interest = Computed("totalInterest", m.totalSaved.Mul(pct).Div(hundred).Round(2))
	}

	return []ReportProjection{
		{
			Title:       "Savings Goals Progress",
			Description: "Track progress towards your savings goals",
			Breakdown:   m.savings.rows(),
			Metrics: []Metric{
				Computed("totalSaved", m.totalSaved),
				Computed("savingsStreak", decimal.NewFromInt(int64(m.streak))),
			},
		},
		{
			Title:       "Savings Rate Over Time",
			Description: "View how your savings rate has changed over time",
			Metrics: []Metric{
				rate,
				NotComputed("historicalRates", "savings rate history is not retained"),
			},
		},
		{
			Title:       "Interest Earned Report",
			Description: "Summary of interest earned on savings accounts",
			Metrics: []Metric{
				interest,
				NotComputed("projectedAnnualInterest", "no interest rate data for savings accounts"),
			},
		},
	}
}
