package mode

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

type recordingListener struct {
	names []string
}

func (l *recordingListener) SetFinancialMode(name string) {
	l.names = append(l.names, name)
}

type fixedBalance decimal.Decimal

func (b fixedBalance) TotalBalance() decimal.Decimal { return decimal.Decimal(b) }

type fixedReturn decimal.Decimal

func (r fixedReturn) ReturnPercent(kind Kind, _ decimal.Decimal) (decimal.Decimal, bool) {
	return decimal.Decimal(r), kind == KindInvestment
}

var testUser = uuid.New()

func newTx(amount int64, txType domain.TransactionType, category domain.Category) *domain.Transaction {
	return domain.NewTransaction(testUser, decimal.NewFromInt(amount), "test", time.Now(), txType, category, "Checking")
}

func expense(amount int64, category domain.Category) *domain.Transaction {
	return newTx(amount, domain.TransactionTypeExpense, category)
}

func investment(amount int64, category domain.Category) *domain.Transaction {
	return newTx(amount, domain.TransactionTypeInvestment, category)
}

func quietMachine(owner Listener, opts ...Option) *Machine {
	opts = append([]Option{WithLogger(log.New(&bytes.Buffer{}, "", 0))}, opts...)
	return NewMachine(owner, opts...)
}

func TestNewMachine_StartsInBudgetingAndNotifiesOwner(t *testing.T) {
	owner := &recordingListener{}
	m := quietMachine(owner)

	assert.Equal(t, KindBudgeting, m.Kind())
	assert.Equal(t, "Budgeting Mode", m.Name())
	assert.Equal(t, []string{"Budgeting Mode"}, owner.names)
	assert.Empty(t, m.History())
}

func TestMachine_SavingsToInvestmentAndBack(t *testing.T) {
	owner := &recordingListener{}
	m := quietMachine(owner)
	m.TransitionTo(KindSavings, "test setup")

	applied := m.HandleTransaction(investment(1500, domain.CategoryInvestments))
	require.NotNil(t, applied)
	assert.Equal(t, KindInvestment, applied.To)
	assert.Equal(t, KindInvestment, m.Kind())

	applied = m.HandleTransaction(expense(1200, domain.CategoryRetirement))
	require.NotNil(t, applied)
	assert.Equal(t, KindSavings, m.Kind())

	assert.Equal(t, []string{"Budgeting Mode", "Savings Mode", "Investment Mode", "Savings Mode"}, owner.names)

	history := m.History()
	require.Len(t, history, 3)
	assert.Equal(t, KindBudgeting, history[0].From)
	assert.Equal(t, KindSavings, history[2].To)
}

func TestMachine_TransitionThresholds(t *testing.T) {
	tests := []struct {
		name  string
		start Kind
		tx    *domain.Transaction
		want  Kind
	}{
		{name: "small investment stays in savings", start: KindSavings, tx: investment(1000, domain.CategoryInvestments), want: KindSavings},
		{name: "large investment leaves savings", start: KindSavings, tx: investment(1001, domain.CategoryInvestments), want: KindInvestment},
		{name: "large emergency fund expense leaves investment", start: KindInvestment, tx: expense(1500, domain.CategoryEmergencyFund), want: KindSavings},
		{name: "small retirement expense stays in investment", start: KindInvestment, tx: expense(1000, domain.CategoryRetirement), want: KindInvestment},
		{name: "large vacation expense stays in investment", start: KindInvestment, tx: expense(5000, domain.CategoryVacation), want: KindInvestment},
		{name: "large investment income stays in investment", start: KindInvestment, tx: newTx(5000, domain.TransactionTypeIncome, domain.CategoryRetirement), want: KindInvestment},
		{name: "no direct budgeting to investment", start: KindBudgeting, tx: investment(50000, domain.CategoryInvestments), want: KindBudgeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := quietMachine(nil)
			if tt.start != KindBudgeting {
				m.TransitionTo(tt.start, "test setup")
			}
			m.HandleTransaction(tt.tx)
			assert.Equal(t, tt.want, m.Kind())
		})
	}
}

func TestMachine_BudgetingToSavingsOnConsistentSaving(t *testing.T) {
	m := quietMachine(nil)

	m.HandleTransaction(expense(100, domain.CategoryEmergencyFund))
	m.HandleTransaction(expense(100, domain.CategoryRetirement))
	for i := 0; i < 7; i++ {
		m.HandleTransaction(expense(50, domain.CategoryFood))
		assert.Equal(t, KindBudgeting, m.Kind(), "fewer than 10 expenses must never transition")
	}

	// Income is not an expense and does not count towards the ten
	assert.Nil(t, m.HandleTransaction(newTx(5000, domain.TransactionTypeIncome, domain.CategorySalary)))

	applied := m.HandleTransaction(expense(50, domain.CategoryFood))
	require.NotNil(t, applied)
	assert.Equal(t, KindSavings, m.Kind())
	assert.Contains(t, applied.Reason, "10 expenses")
}

func TestMachine_BudgetingStaysWhenNotSaving(t *testing.T) {
	m := quietMachine(nil)

	for i := 0; i < 20; i++ {
		m.HandleTransaction(expense(50, domain.CategoryFood))
	}
	m.HandleTransaction(expense(100, domain.CategoryEmergencyFund))

	assert.Equal(t, KindBudgeting, m.Kind())
}

func TestMachine_CustomConsistencyEvaluator(t *testing.T) {
	var seen []BudgetingSnapshot
	policy := ConsistencyFunc(func(s BudgetingSnapshot) bool {
		seen = append(seen, s)
		return s.ExpenseCount == 2
	})
	m := quietMachine(nil, WithConsistencyEvaluator(policy))

	m.HandleTransaction(expense(10, domain.CategoryFood))
	assert.Equal(t, KindBudgeting, m.Kind())
	m.HandleTransaction(expense(20, domain.CategoryVacation))
	assert.Equal(t, KindSavings, m.Kind())

	require.Len(t, seen, 2)
	assert.True(t, seen[1].ExpenseTotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, seen[1].SavingsTotal.Equal(decimal.NewFromInt(20)))
}

func TestMachine_SavingsStreakBreak(t *testing.T) {
	m := quietMachine(nil, WithStreakBreakThreshold(5))
	m.TransitionTo(KindSavings, "test setup")

	for i := 0; i < 4; i++ {
		m.HandleTransaction(expense(20, domain.CategoryFood))
	}
	// A savings contribution clears the run
	m.HandleTransaction(expense(200, domain.CategoryEmergencyFund))
	for i := 0; i < 4; i++ {
		m.HandleTransaction(expense(20, domain.CategoryShopping))
	}
	assert.Equal(t, KindSavings, m.Kind())

	applied := m.HandleTransaction(expense(20, domain.CategoryShopping))
	require.NotNil(t, applied)
	assert.Equal(t, KindBudgeting, m.Kind())
	assert.Equal(t, "5 consecutive expenses without a savings contribution", applied.Reason)
}

func TestMachine_StreakBreakDisabled(t *testing.T) {
	m := quietMachine(nil, WithStreakBreakThreshold(0))
	m.TransitionTo(KindSavings, "test setup")

	for i := 0; i < 50; i++ {
		m.HandleTransaction(expense(20, domain.CategoryFood))
	}
	assert.Equal(t, KindSavings, m.Kind())
}

func TestMachine_TransitionDiscardsAggregates(t *testing.T) {
	m := quietMachine(nil)
	m.TransitionTo(KindInvestment, "test setup")
	m.HandleTransaction(investment(500, domain.CategoryInvestments))

	m.HandleTransaction(expense(2000, domain.CategoryEmergencyFund))
	m.TransitionTo(KindInvestment, "back again")

	reports := m.Reports(nil)
	assert.Empty(t, reports[0].Breakdown, "a new Investment instance starts with no aggregates")
	total, ok := reports[0].Metric("totalInvested")
	require.True(t, ok)
	assert.True(t, total.Value.IsZero())
}

func TestMachine_ReplayIsDeterministic(t *testing.T) {
	sequence := []*domain.Transaction{
		newTx(5000, domain.TransactionTypeIncome, domain.CategorySalary),
		expense(1500, domain.CategoryHousing),
		expense(400, domain.CategoryFood),
		expense(800, domain.CategoryEmergencyFund),
		expense(500, domain.CategoryRetirement),
		expense(150, domain.CategoryUtilities),
		expense(80, domain.CategoryUtilities),
		expense(50, domain.CategoryEntertainment),
		expense(150, domain.CategoryDiningOut),
		expense(300, domain.CategoryVacation),
		expense(60, domain.CategoryFood),
		investment(2000, domain.CategoryInvestments),
		investment(700, domain.CategoryRetirement),
		expense(1200, domain.CategoryRetirement),
		expense(30, domain.CategoryFood),
	}

	run := func() *Machine {
		m := quietMachine(nil)
		for _, tx := range sequence {
			m.HandleTransaction(tx)
		}
		return m
	}

	first, second := run(), run()

	assert.Equal(t, first.Kind(), second.Kind())
	assert.Equal(t, first.Reports(nil), second.Reports(nil))

	transitions := func(m *Machine) []string {
		var out []string
		for _, h := range m.History() {
			out = append(out, string(h.From)+">"+string(h.To)+":"+h.Reason)
		}
		return out
	}
	assert.Equal(t, transitions(first), transitions(second))
	assert.Equal(t, []string{"BUDGETING", "SAVINGS", "INVESTMENT"}, []string{
		string(first.History()[0].From), string(first.History()[1].From), string(first.History()[2].From),
	})
	assert.Equal(t, KindSavings, first.Kind())

	assert.Equal(t, titles(first.Recommendations(fixedBalance(decimal.NewFromInt(10000)))),
		titles(second.Recommendations(fixedBalance(decimal.NewFromInt(10000)))))
}

func TestMachine_NilOwnerIsLoggedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	m := NewMachine(nil, WithLogger(log.New(&buf, "", 0)))

	m.TransitionTo(KindSavings, "manual")

	assert.Equal(t, KindSavings, m.Kind())
	assert.Contains(t, buf.String(), "no owner attached")
	assert.Contains(t, buf.String(), "Budgeting Mode -> Savings Mode: manual")
}

func TestNewMachine_WithoutLoggerIsSilent(t *testing.T) {
	var std bytes.Buffer
	log.SetOutput(&std)
	defer log.SetOutput(os.Stderr)

	m := NewMachine(nil)
	m.TransitionTo(KindSavings, "manual")
	m.HandleTransaction(expense(50, domain.CategoryFood))

	assert.Equal(t, KindSavings, m.Kind())
	assert.Empty(t, std.String())
	assert.Equal(t, io.Discard, DefaultConfig().Logger.Writer())
}

func TestParseKindAndRiskProfile(t *testing.T) {
	for _, in := range []string{"savings", "SAVINGS", "Savings Mode"} {
		kind, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, KindSavings, kind)
	}
	_, err := ParseKind("retired")
	assert.Error(t, err)

	risk, err := ParseRiskProfile("high")
	require.NoError(t, err)
	assert.Equal(t, RiskHigh, risk)
	_, err = ParseRiskProfile("extreme")
	assert.Error(t, err)
}
