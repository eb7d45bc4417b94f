package recommendation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// Analyzer inspects a transaction history and returns advice. It must not mutate its inputs.
type Analyzer interface {
	Analyze(user *domain.User, transactions []*domain.Transaction) []domain.Recommendation
}

// Engine runs analyzers over the whole transaction history, independent of the active financial mode
type Engine struct {
	analyzers []Analyzer
}

// NewEngine creates an engine. Without analyzers it runs spending, savings and investment analysis, in that order.
func NewEngine(analyzers ...Analyzer) *Engine {
	if len(analyzers) == 0 {
		analyzers = []Analyzer{SpendingAnalyzer{}, SavingsAnalyzer{}, InvestmentAnalyzer{}}
	}
	return &Engine{analyzers: analyzers}
}

// Generate concatenates every analyzer's output and sorts by priority, most urgent first.
// Equal priorities keep analyzer order, then the order each analyzer produced them in.
func (e *Engine) Generate(user *domain.User, transactions []*domain.Transaction) []domain.Recommendation {
	recs := []domain.Recommendation{}
	for _, analyzer := range e.analyzers {
		recs = append(recs, analyzer.Analyze(user, transactions)...)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].PriorityLevel < recs[j].PriorityLevel
	})
	return recs
}

func sumWhere(transactions []*domain.Transaction, keep func(*domain.Transaction) bool) decimal.Decimal {
	return domain.SumAmounts(transactions, keep)
}

func isIncome(tx *domain.Transaction) bool {
	return tx.Type == domain.TransactionTypeIncome
}

// nonNegative clamps a suggested savings figure; a negative figure means the target is already exceeded
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
