package mode

import (
	"io"
	"log"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// Mode is one state of the financial mode machine. Each instance owns private
// aggregates built only from the transactions it handled.
type Mode interface {
	Kind() Kind
	// HandleTransaction updates the aggregates and may request a transition.
	// A nil result means stay.
	HandleTransaction(tx *domain.Transaction) *Transition
	Recommendations(p Portfolio) []domain.Recommendation
	Reports(est PerformanceEstimator) []ReportProjection
}

// Transition is a request from a mode to replace itself
type Transition struct {
	To     Kind
	Reason string
}

// Portfolio exposes the balance figures modes read when advising
type Portfolio interface {
	TotalBalance() decimal.Decimal
}

// Listener is told the display name of the new mode after every transition
type Listener interface {
	SetFinancialMode(name string)
}

// Config holds the tunable policies of every mode
type Config struct {
	Consistency          ConsistencyEvaluator
	StreakBreakThreshold int // consecutive non-savings expenses that end Savings mode; <= 0 disables
	RiskProfile          RiskProfile
	BudgetLimits         map[domain.Category]decimal.Decimal
	Logger               *log.Logger
}

// Option configures a Machine
type Option func(*Config)

// DefaultConfig returns the policies used when no option overrides them
func DefaultConfig() Config {
	return Config{
		Consistency:          DefaultConsistency(),
		StreakBreakThreshold: 5,
		RiskProfile:          RiskMedium,
		Logger:               log.New(io.Discard, "", 0),
	}
}

func WithConsistencyEvaluator(e ConsistencyEvaluator) Option {
	return func(c *Config) {
		c.Consistency = e
	}
}

func WithStreakBreakThreshold(n int) Option {
	return func(c *Config) {
		c.StreakBreakThreshold = n
	}
}

// WithRiskProfile sets the profile the Investment mode advises for
func WithRiskProfile(p RiskProfile) Option {
	return func(c *Config) {
		c.RiskProfile = p
	}
}

// WithBudgetLimits sets per-category spending limits for Budgeting mode.
// Spend in a category without a limit counts as over budget in full.
func WithBudgetLimits(limits map[domain.Category]decimal.Decimal) Option {
	return func(c *Config) {
		c.BudgetLimits = make(map[domain.Category]decimal.Decimal, len(limits))
		for category, limit := range limits {
			c.BudgetLimits[category] = limit
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newMode(kind Kind, cfg Config) Mode {
	switch kind {
	case KindSavings:
		return newSavingsMode(cfg.StreakBreakThreshold)
	case KindInvestment:
		return newInvestmentMode(cfg.RiskProfile)
	default:
		return newBudgetingMode(cfg.Consistency, cfg.BudgetLimits)
	}
}

var (
	emergencyAndRetirement = []domain.Category{domain.CategoryEmergencyFund, domain.CategoryRetirement}
	savingsCategories      = []domain.Category{
		domain.CategoryEmergencyFund, domain.CategoryRetirement,
		domain.CategoryVacation, domain.CategoryEducationSavings,
	}
	largeMovement = decimal.NewFromInt(1000)
	hundred       = decimal.NewFromInt(100)
)
