package reporting

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// Chart is a rendering hint for the client
type Chart string

const (
	ChartBar  Chart = "bar"
	ChartPie  Chart = "pie"
	ChartLine Chart = "line"
)

// Type identifies one of the reports the service can produce
type Type string

const (
	TypeIncomeVsExpense    Type = "income-expense"
	TypeExpensesByCategory Type = "expenses-by-category"
	TypeSavingsGoals       Type = "savings-goals"
	TypeNetWorth           Type = "net-worth"
)

// ParseType converts a case-insensitive report name into a Type
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeIncomeVsExpense, TypeExpensesByCategory, TypeSavingsGoals, TypeNetWorth:
		return t, nil
	}
	return "", ErrUnknownReport
}

// Header is shared by every report
type Header struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	Chart       Chart
}

type CashflowSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetCashflow   decimal.Decimal
	SavingsRate   decimal.Decimal // Percent of income; zero without income
}

type MonthlyCashflow struct {
	Month    string // e.g. "Jan 2025"
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

type IncomeVsExpenseReport struct {
	Header
	Summary CashflowSummary
	Monthly []MonthlyCashflow // Oldest month first
}

type CategoryShare struct {
	Category   domain.Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

type ExpensesByCategoryReport struct {
	Header
	TotalExpenses decimal.Decimal
	Categories    []CategoryShare // Largest first
}

type GoalProgress struct {
	Name     string
	Target   decimal.Decimal
	Current  decimal.Decimal
	Progress decimal.Decimal
	Status   domain.GoalStatus
	Deadline *time.Time
}

type SavingsGoalsReport struct {
	Header
	Goals []GoalProgress
}

type AccountShare struct {
	Name       string
	Balance    decimal.Decimal
	Percentage decimal.Decimal
}

// NetWorthReport lists the user's top-level accounts.
// PortfolioMarketValue is the latest recorded market value of the user's investments, if any.
type NetWorthReport struct {
	Header
	TotalNetWorth        decimal.Decimal
	Accounts             []AccountShare
	PortfolioMarketValue *decimal.Decimal
}
