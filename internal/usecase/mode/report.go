package mode

import (
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// ReportProjection is a mode-specific view over the active mode's aggregates
type ReportProjection struct {
	Title       string
	Description string
	Breakdown   []CategoryAmount
	Metrics     []Metric
}

// CategoryAmount is one row of a breakdown
type CategoryAmount struct {
	Category domain.Category
	Amount   decimal.Decimal
}

// Metric is a named figure. Computed is false when no real data backs it;
// Value is then zero and Note says what is missing.
type Metric struct {
	Name     string
	Value    decimal.Decimal
	Computed bool
	Note     string
}

// Computed returns a metric backed by real data
func Computed(name string, value decimal.Decimal) Metric {
	return Metric{Name: name, Value: value, Computed: true}
}

// NotComputed returns a placeholder metric
func NotComputed(name, note string) Metric {
	return Metric{Name: name, Value: decimal.Zero, Note: note}
}

// Metric finds a metric by name
func (r ReportProjection) Metric(name string) (Metric, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// ledger is an insertion-ordered category total
type ledger struct {
	totals map[domain.Category]decimal.Decimal
	order  []domain.Category
}

func newLedger() *ledger {
	return &ledger{totals: make(map[domain.Category]decimal.Decimal)}
}

func (l *ledger) add(category domain.Category, amount decimal.Decimal) {
	if _, ok := l.totals[category]; !ok {
		l.order = append(l.order, category)
	}
	l.totals[category] = l.totals[category].Add(amount)
}

func (l *ledger) set(category domain.Category, amount decimal.Decimal) {
	if _, ok := l.totals[category]; !ok {
		l.order = append(l.order, category)
	}
	l.totals[category] = amount
}

func (l *ledger) get(category domain.Category) decimal.Decimal {
	return l.totals[category]
}

func (l *ledger) len() int {
	return len(l.order)
}

// rows returns the non-zero totals in first-seen order
func (l *ledger) rows() []CategoryAmount {
	rows := make([]CategoryAmount, 0, len(l.order))
	for _, category := range l.order {
		if amount := l.totals[category]; !amount.IsZero() {
			rows = append(rows, CategoryAmount{Category: category, Amount: amount})
		}
	}
	return rows
}
