package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/goal"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/ledger"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/session"
)

// DemoUserID is fixed so a persisted ledger can be matched to the demo user after a restart
var DemoUserID = uuid.MustParse("00000000-0000-0000-0000-00000000d001")

type demoGoal struct {
	name         string
	target       int64
	category     string
	deadline     *time.Time
	description  string
	contribution int64
}

type demoTransaction struct {
	amount      int64
	description string
	txType      domain.TransactionType
	category    domain.Category
	account     string
}

var demoTransactions = []demoTransaction{
	{5000, "Monthly Salary", domain.TransactionTypeIncome, domain.CategorySalary, "Checking"},
	{1500, "Rent Payment", domain.TransactionTypeExpense, domain.CategoryHousing, "Checking"},
	{400, "Grocery Shopping", domain.TransactionTypeExpense, domain.CategoryFood, "Checking"},
	{150, "Electric Bill", domain.TransactionTypeExpense, domain.CategoryUtilities, "Checking"},
	{80, "Internet Bill", domain.TransactionTypeExpense, domain.CategoryUtilities, "Checking"},
	{50, "Netflix Subscription", domain.TransactionTypeExpense, domain.CategoryEntertainment, "Checking"},
	{150, "Dining Out", domain.TransactionTypeExpense, domain.CategoryDiningOut, "Checking"},
	{800, "Emergency Fund Contribution", domain.TransactionTypeExpense, domain.CategoryEmergencyFund, "Savings"},
	{500, "Retirement Contribution", domain.TransactionTypeExpense, domain.CategoryRetirement, "401k"},
	{200, "Investment Purchase", domain.TransactionTypeInvestment, domain.CategoryInvestments, "Investment"},
}

// DemoSeeder creates the demo user with its accounts, goals and transaction history
type DemoSeeder struct {
	sessions *session.Manager
	ledger   *ledger.LedgerService
	goals    *goal.GoalService
	now      func() time.Time
}

// Option configures a DemoSeeder
type Option func(*DemoSeeder)

// WithClock replaces the clock used for goal deadlines and transaction dates
func WithClock(now func() time.Time) Option {
	return func(s *DemoSeeder) {
		s.now = now
	}
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(sessions *session.Manager, ledgerService *ledger.LedgerService, goalService *goal.GoalService, opts ...Option) *DemoSeeder {
	s := &DemoSeeder{
		sessions: sessions,
		ledger:   ledgerService,
		goals:    goalService,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed ensures the demo user exists
// Logic:
//  1. A demo session that is already registered is returned as is
//  2. Otherwise create the user with its accounts and goals
//  3. An empty ledger gets the demo transactions recorded through the ledger service;
//     a non-empty one (persisted from an earlier run) is restored instead
func (s *DemoSeeder) Seed(ctx context.Context) (*domain.User, error) {
	if existing, err := s.sessions.Get(DemoUserID); err == nil {
		return existing.User, nil
	}

	user := domain.NewUser("John Doe", "john@example.com")
	user.ID = DemoUserID
	addDemoAccounts(user)

	if _, err := s.sessions.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register demo user: %w", err)
	}

	for _, g := range s.demoGoals() {
		created, err := s.goals.CreateGoal(user, g.name, decimal.NewFromInt(g.target), g.category, g.deadline, g.description)
		if err != nil {
			return nil, fmt.Errorf("failed to create goal %q: %w", g.name, err)
		}
		if _, err := s.goals.Contribute(user, created.ID, decimal.NewFromInt(g.contribution)); err != nil {
			return nil, fmt.Errorf("failed to fund goal %q: %w", g.name, err)
		}
	}

	count, err := s.ledger.CountTransactions(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		if _, err := s.ledger.Restore(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to restore demo ledger: %w", err)
		}
		log.Printf("Demo user restored from %d persisted transactions", count)
		return user, nil
	}

	for _, tx := range demoTransactions {
		_, err := s.ledger.RecordTransaction(ctx, ledger.RecordInput{
			UserID:      user.ID,
			Amount:      decimal.NewFromInt(tx.amount),
			Description: tx.description,
			Date:        s.now(),
			Type:        tx.txType,
			Category:    tx.category,
			AccountID:   tx.account,
		})
		if err != nil && !errors.Is(err, domain.ErrInsufficientFunds) {
			return nil, fmt.Errorf("failed to record %q: %w", tx.description, err)
		}
	}
	log.Printf("Demo user seeded with %d transactions", len(demoTransactions))
	return user, nil
}

func addDemoAccounts(user *domain.User) {
	user.AddAccount(domain.NewIndividualAccount("Checking", decimal.NewFromInt(2500), "Checking"))
	user.AddAccount(domain.NewIndividualAccount("Savings", decimal.NewFromInt(10000), "Savings"))

	investments := domain.NewAccountGroup("Investment Accounts")
	investments.Add(domain.NewIndividualAccount("Investment", decimal.NewFromInt(15000), "Investment"))
	investments.Add(domain.NewIndividualAccount("401k", decimal.NewFromInt(50000), "Retirement"))
	user.AddAccount(investments)
}

func (s *DemoSeeder) demoGoals() []demoGoal {
	now := s.now()
	vacation := time.Date(now.Year()+1, time.June, 15, 0, 0, 0, 0, now.Location())
	house := time.Date(now.Year()+3, time.January, 1, 0, 0, 0, 0, now.Location())
	return []demoGoal{
		{name: "Summer Vacation", target: 2000, category: "Vacation", deadline: &vacation, contribution: 500},
		{name: "Emergency Fund", target: 15000, category: "Emergency", description: "6 months of expenses", contribution: 7500},
		{name: "House Down Payment", target: 60000, category: "Home", deadline: &house, description: "20% down payment on a home", contribution: 20000},
	}
}
