package mode

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

const (
	diversifiedBuckets     = 3
	feesNotTracked         = "investment fees are not tracked"
	taxTreatmentNotTracked = "account tax treatment is not tracked"
)

var alternativesMinimumInvest = decimal.NewFromInt(50000)

type investmentMode struct {
	risk RiskProfile

	invested      *ledger
	totalInvested decimal.Decimal
}

func newInvestmentMode(risk RiskProfile) *investmentMode {
	if risk == "" {
		risk = RiskMedium
	}
	return &investmentMode{risk: risk, invested: newLedger()}
}

func (m *investmentMode) Kind() Kind { return KindInvestment }

// HandleTransaction tracks invested amounts by category. A large emergency fund or
// retirement contribution means the user is back to focusing on savings.
func (m *investmentMode) HandleTransaction(tx *domain.Transaction) *Transition {
	if tx.Type == domain.TransactionTypeInvestment {
		m.invested.add(tx.Category, tx.Amount)
		m.totalInvested = m.totalInvested.Add(tx.Amount)
	}

	if tx.Type == domain.TransactionTypeExpense &&
		tx.Category.In(emergencyAndRetirement...) &&
		tx.Amount.GreaterThan(largeMovement) {
		return &Transition{
			To:     KindSavings,
			Reason: fmt.Sprintf("%s contribution of %s", tx.Category, tx.Amount.StringFixed(2)),
		}
	}
	return nil
}

func (m *investmentMode) Recommendations(Portfolio) []domain.Recommendation {
	var recs []domain.Recommendation

	if m.invested.len() < diversifiedBuckets {
		recs = append(recs, domain.NewRecommendation(
			"Diversify Your Investment Portfolio",
			"Consider investing in a mix of stocks, bonds, and other asset classes to reduce risk.",
			1, "Investments", domain.DifficultyMedium,
		))
	}

	recs = append(recs,
		domain.NewRecommendation(
			"Maximize Tax-Advantaged Accounts",
			"Make sure you're fully utilizing retirement accounts like 401(k) and IRA before investing in taxable accounts.",
			2, "Tax Planning", domain.DifficultyMedium,
		),
		domain.NewRecommendation(
			"Consider Low-Cost Index Funds",
			"For long-term growth, low-cost index funds often outperform actively managed funds.",
			2, "Investments", domain.DifficultyEasy,
		),
		domain.NewRecommendation(
			"Rebalance Your Portfolio",
			"Consider rebalancing your portfolio annually to maintain your target asset allocation.",
			3, "Investments", domain.DifficultyMedium,
		),
	)

	if m.risk == RiskHigh && m.totalInvested.GreaterThan(alternativesMinimumInvest) {
		recs = append(recs, domain.NewRecommendation(
			"Explore Alternative Investments",
			"With your risk tolerance and investment base, you might consider adding alternative investments like REITs or commodities.",
			4, "Advanced Investments", domain.DifficultyHard,
		))
	}
	return recs
}

func (m *investmentMode) Reports(est PerformanceEstimator) []ReportProjection {
	if est == nil {
		est = NoEstimates{}
	}

	totalReturn := NotComputed("totalReturn", "no market value recorded for the portfolio")
	if pct, ok := est.ReturnPercent(KindInvestment, m.totalInvested); ok {
		totalReturn = Computed("totalReturn", pct.Round(2))
	}

	return []ReportProjection{
		{
			Title:       "Investment Portfolio Allocation",
			Description: "Breakdown of your investment portfolio by asset class",
			Breakdown:   m.invested.rows(),
			Metrics:     []Metric{Computed("totalInvested", m.totalInvested)},
		},
		{
			Title:       "Investment Performance",
			Description: "Performance of your investments over time",
			Metrics:     []Metric{totalReturn},
		},
		{
			Title:       "Investment Fees Analysis",
			Description: "Analysis of fees paid on investment accounts",
			Metrics: []Metric{
				NotComputed("totalFees", feesNotTracked),
				NotComputed("feePercentage", feesNotTracked),
				NotComputed("potentialSavings", feesNotTracked),
			},
		},
		{
			Title:       "Tax Efficiency Report",
			Description: "Analysis of the tax efficiency of your investment accounts",
			Metrics: []Metric{
				NotComputed("taxableAccounts", taxTreatmentNotTracked),
				NotComputed("taxAdvantaged", taxTreatmentNotTracked),
				NotComputed("potentialTaxSavings", taxTreatmentNotTracked),
			},
		},
	}
}
