package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// ErrUnknownReport is returned for report names the service does not produce
var ErrUnknownReport = errors.New("unknown report type")

var hundred = decimal.NewFromInt(100)

// ReportingService projects transactions, goals and accounts into chartable reports.
// Reports are recomputed on every call and never stored.
type ReportingService struct {
	MarketValueRepo domain.MarketValueRepository

	now func() time.Time
}

// Option configures a ReportingService
type Option func(*ReportingService)

// WithClock replaces the clock used for report timestamps
func WithClock(now func() time.Time) Option {
	return func(s *ReportingService) {
		s.now = now
	}
}

// NewReportingService creates a new ReportingService instance.
// marketValueRepo may be nil, in which case net worth reports carry no portfolio value.
func NewReportingService(marketValueRepo domain.MarketValueRepository, opts ...Option) *ReportingService {
	s := &ReportingService{MarketValueRepo: marketValueRepo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReportingService) header(title, description string, chart Chart) Header {
	return Header{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
		Chart:       chart,
	}
}

// IncomeVsExpense summarizes cash flow overall and per calendar month.
// Only INCOME and EXPENSE transactions count.
func (s *ReportingService) IncomeVsExpense(txs []*domain.Transaction) *IncomeVsExpenseReport {
	income := domain.SumAmounts(txs, isType(domain.TransactionTypeIncome))
	expenses := domain.SumAmounts(txs, isType(domain.TransactionTypeExpense))

	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = income.Sub(expenses).Div(income).Mul(hundred)
	}

	return &IncomeVsExpenseReport{
		Header: s.header("Income vs Expenses",
			fmt.Sprintf("Your savings rate is %s%%", savingsRate.StringFixed(1)), ChartBar),
		Summary: CashflowSummary{
			TotalIncome:   income,
			TotalExpenses: expenses,
			NetCashflow:   income.Sub(expenses),
			SavingsRate:   savingsRate,
		},
		Monthly: monthlySeries(txs),
	}
}

// ExpensesByCategory breaks expenses down by category, largest first.
// Equal amounts keep the order in which their categories first appeared.
func (s *ReportingService) ExpensesByCategory(txs []*domain.Transaction) *ExpensesByCategoryReport {
	var order []domain.Category
	totals := make(map[domain.Category]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	total := decimal.Zero
	for _, category := range order {
		total = total.Add(totals[category])
	}

	categories := make([]CategoryShare, 0, len(order))
	for _, category := range order {
		categories = append(categories, CategoryShare{
			Category:   category,
			Amount:     totals[category],
			Percentage: percentOf(totals[category], total),
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return &ExpensesByCategoryReport{
		Header:        s.header("Expenses by Category", "Breakdown of your expenses by category", ChartPie),
		TotalExpenses: total,
		Categories:    categories,
	}
}

// SavingsGoals lists every goal of the user with its progress
func (s *ReportingService) SavingsGoals(user *domain.User) *SavingsGoalsReport {
	goals := user.Goals()
	rows := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		rows = append(rows, GoalProgress{
			Name:     goal.Name,
			Target:   goal.TargetAmount,
			Current:  goal.CurrentAmount(),
			Progress: goal.Progress(),
			Status:   goal.Status(),
			Deadline: goal.Deadline,
		})
	}

	return &SavingsGoalsReport{
		Header: s.header("Savings Goals Progress", "Track the progress of your financial goals", ChartBar),
		Goals:  rows,
	}
}

// NetWorth calculates the user's net worth
// Logic:
//   - Total: sum of all top-level account balances (groups count as one entry)
//   - Each account's share of the total, zero when the total is not positive
//   - Portfolio market value: latest recorded value, omitted when none exists
func (s *ReportingService) NetWorth(ctx context.Context, user *domain.User) (*NetWorthReport, error) {
	total := user.TotalBalance()

	accounts := user.Accounts()
	rows := make([]AccountShare, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, AccountShare{
			Name:       account.Name(),
			Balance:    account.Balance(),
			Percentage: percentOf(account.Balance(), total),
		})
	}

	report := &NetWorthReport{
		Header:        s.header("Net Worth", "Summary of your assets across all accounts", ChartPie),
		TotalNetWorth: total,
		Accounts:      rows,
	}

	if s.MarketValueRepo == nil {
		return report, nil
	}
	latest, err := s.MarketValueRepo.GetLatest(ctx, user.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to get latest market value: %w", err)
	default:
		value := latest.MarketValue
		report.PortfolioMarketValue = &value
	}
	return report, nil
}

type monthKey struct {
	year  int
	month time.Month
}

func monthlySeries(txs []*domain.Transaction) []MonthlyCashflow {
	type flow struct{ income, expenses decimal.Decimal }

	var keys []monthKey
	months := make(map[monthKey]*flow)
	for _, tx := range txs {
		key := monthKey{tx.Date.Year(), tx.Date.Month()}
		f, ok := months[key]
		if !ok {
			f = &flow{}
			months[key] = f
			keys = append(keys, key)
		}
		switch tx.Type {
		case domain.TransactionTypeIncome:
			f.income = f.income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			f.expenses = f.expenses.Add(tx.Amount)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	series := make([]MonthlyCashflow, 0, len(keys))
	for _, key := range keys {
		f := months[key]
		series = append(series, MonthlyCashflow{
			Month:    time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			Income:   f.income,
			Expenses: f.expenses,
			Savings:  f.income.Sub(f.expenses),
		})
	}
	return series
}

func isType(t domain.TransactionType) func(*domain.Transaction) bool {
	return func(tx *domain.Transaction) bool { return tx.Type == t }
}

func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}
