package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// Built-in strategy names
const (
	StrategyFiftyThirtyTwenty = "fifty-thirty-twenty"
	StrategyZeroBased         = "zero-based"

	// StrategySplitRule needs a user-defined rule, see NewSplitRuleStrategy
	StrategySplitRule = "split-rule"
)

// ByName returns a built-in strategy
func ByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyFiftyThirtyTwenty, "50/30/20":
		return NewFiftyThirtyTwentyStrategy(), nil
	case StrategyZeroBased:
		return NewZeroBasedStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
	}
}

// Context holds the active strategy. Swapping it has no effect on any other engine.
type Context struct {
	strategy Strategy
}

// NewContext creates a context using strategy
func NewContext(strategy Strategy) *Context {
	return &Context{strategy: strategy}
}

func (c *Context) SetStrategy(strategy Strategy) {
	c.strategy = strategy
}

func (c *Context) Strategy() Strategy {
	return c.strategy
}

func (c *Context) CalculateBudget(income decimal.Decimal) (Allocation, error) {
	return c.strategy.CalculateBudget(income)
}

func (c *Context) Recommendations(transactions []*domain.Transaction) []string {
	return c.strategy.Recommendations(transactions)
}

func (c *Context) StrategyName() string {
	return c.strategy.Name()
}

func (c *Context) StrategyDescription() string {
	return c.strategy.Description()
}
