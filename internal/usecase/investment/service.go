package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
)

var hundred = decimal.NewFromInt(100)

// InvestmentService handles portfolio valuation for a user's investments
type InvestmentService struct {
	MarketValueRepo domain.MarketValueRepository

	now func() time.Time
}

// Option configures an InvestmentService
type Option func(*InvestmentService)

// WithClock replaces the clock used to date market value entries
func WithClock(now func() time.Time) Option {
	return func(s *InvestmentService) {
		s.now = now
	}
}

// NewInvestmentService creates a new InvestmentService instance
func NewInvestmentService(marketValueRepo domain.MarketValueRepository, opts ...Option) *InvestmentService {
	s := &InvestmentService{MarketValueRepo: marketValueRepo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateMarketValue records a new market value point for a user's portfolio
// Logic: Insert a new market value history row (does NOT create a transaction)
// Returns the created market value history entry
func (s *InvestmentService) UpdateMarketValue(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.MarketValueHistory, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("market value: %w", domain.ErrNonPositiveAmount)
	}

	entry := &domain.MarketValueHistory{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        s.now(),
		MarketValue: amount,
	}
	if err := s.MarketValueRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record market value: %w", err)
	}
	return entry, nil
}

// CalculateProfit calculates the profit/loss of a user's portfolio
// Logic: Profit = MarketValue - BookValue
// BookValue = invested, the sum of the user's investment transactions
// MarketValue = latest entry in market value history; without one the profit is zero
func (s *InvestmentService) CalculateProfit(ctx context.Context, userID uuid.UUID, invested decimal.Decimal) (decimal.Decimal, error) {
	latest, err := s.MarketValueRepo.GetLatest(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get latest market value: %w", err)
	}
	return latest.MarketValue.Sub(invested), nil
}

// Estimator snapshots the user's latest market value for mode reports
func (s *InvestmentService) Estimator(ctx context.Context, userID uuid.UUID) (*PortfolioEstimator, error) {
	latest, err := s.MarketValueRepo.GetLatest(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &PortfolioEstimator{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest market value: %w", err)
	}
	return &PortfolioEstimator{MarketValue: latest.MarketValue, HasMarketValue: true}, nil
}

// PortfolioEstimator derives the investment return from a recorded market value.
// It has no interest data, so savings returns are never computed.
type PortfolioEstimator struct {
	MarketValue    decimal.Decimal
	HasMarketValue bool
}

var _ mode.PerformanceEstimator = (*PortfolioEstimator)(nil)

// ReturnPercent returns (market - principal) / principal * 100 for the Investment mode
func (e *PortfolioEstimator) ReturnPercent(kind mode.Kind, principal decimal.Decimal) (decimal.Decimal, bool) {
	if kind != mode.KindInvestment || !e.HasMarketValue || !principal.IsPositive() {
		return decimal.Zero, false
	}
	return e.MarketValue.Sub(principal).Div(principal).Mul(hundred), true
}
