package mode

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

var overBudgetUrgent = decimal.NewFromInt(100)

type budgetingMode struct {
	consistency ConsistencyEvaluator
	limits      map[domain.Category]decimal.Decimal

	spent            *ledger
	overBudget       *ledger
	transactionCount int
	expenseCount     int
	expenseTotal     decimal.Decimal
	savingsTotal     decimal.Decimal
}

func newBudgetingMode(consistency ConsistencyEvaluator, limits map[domain.Category]decimal.Decimal) *budgetingMode {
	if consistency == nil {
		consistency = DefaultConsistency()
	}
	return &budgetingMode{
		consistency: consistency,
		limits:      limits,
		spent:       newLedger(),
		overBudget:  newLedger(),
	}
}

func (m *budgetingMode) Kind() Kind { return KindBudgeting }

// HandleTransaction tracks spend per category and, after each expense, asks the
// consistency policy whether the user has moved on to saving
func (m *budgetingMode) HandleTransaction(tx *domain.Transaction) *Transition {
	m.transactionCount++
	if tx.Type != domain.TransactionTypeExpense {
		return nil
	}

	m.expenseCount++
	m.expenseTotal = m.expenseTotal.Add(tx.Amount)
	if tx.Category.In(savingsCategories...) {
		m.savingsTotal = m.savingsTotal.Add(tx.Amount)
	}

	m.spent.add(tx.Category, tx.Amount)
	limit, hasLimit := m.limits[tx.Category]
	if !hasLimit {
		m.overBudget.add(tx.Category, tx.Amount)
	} else if over := m.spent.get(tx.Category).Sub(limit); over.GreaterThan(decimal.Zero) {
		m.overBudget.set(tx.Category, over)
	}

	snapshot := BudgetingSnapshot{
		ExpenseCount: m.expenseCount,
		ExpenseTotal: m.expenseTotal,
		SavingsTotal: m.savingsTotal,
	}
	if m.consistency.IsSavingConsistently(snapshot) {
		return &Transition{
			To:     KindSavings,
			Reason: fmt.Sprintf("saving consistently: %s of %s spent across %d expenses went to savings", m.savingsTotal.StringFixed(2), m.expenseTotal.StringFixed(2), m.expenseCount),
		}
	}
	return nil
}

// Recommendations suggests cutting back in each over-budget category, then zero-based budgeting
func (m *budgetingMode) Recommendations(Portfolio) []domain.Recommendation {
	rows := m.overBudget.rows()
	recs := make([]domain.Recommendation, 0, len(rows)+1)
	for _, row := range rows {
		priority := 2
		if row.Amount.GreaterThan(overBudgetUrgent) {
			priority = 1
		}
		rec := domain.NewRecommendation(
			fmt.Sprintf("Reduce spending in %s", row.Category),
			fmt.Sprintf("You're over budget in %s by $%s. Consider reducing spending in this category.", row.Category, row.Amount.StringFixed(2)),
			priority,
			string(row.Category),
			domain.DifficultyMedium,
		)
		recs = append(recs, rec.WithSavings(row.Amount))
	}

	recs = append(recs, domain.NewRecommendation(
		"Consider zero-based budgeting",
		"Zero-based budgeting can help you allocate every dollar of your income and ensure you're not overspending.",
		3,
		"General",
		domain.DifficultyHard,
	))
	return recs
}

func (m *budgetingMode) Reports(PerformanceEstimator) []ReportProjection {
	return []ReportProjection{
		{
			Title:       "Budget Utilization Report",
			Description: "Shows how much of each budget category has been used",
			Breakdown:   m.overBudget.rows(),
			Metrics: []Metric{
				Computed("transactionCount", decimal.NewFromInt(int64(m.transactionCount))),
				Computed("expenseCount", decimal.NewFromInt(int64(m.expenseCount))),
			},
		},
		{
			Title:       "Spending Trends Report",
			Description: "Shows spending trends across different categories",
			Breakdown:   m.spent.rows(),
			Metrics: []Metric{
				Computed("totalSpent", m.expenseTotal),
				Computed("totalSaved", m.savingsTotal),
			},
		},
	}
}
