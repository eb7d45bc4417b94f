package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents how a goal is progressing
type GoalStatus string

const (
	GoalStatusNotStarted    GoalStatus = "NOT_STARTED"
	GoalStatusInProgress    GoalStatus = "IN_PROGRESS"
	GoalStatusOnTrack       GoalStatus = "ON_TRACK"
	GoalStatusFallingBehind GoalStatus = "FALLING_BEHIND"
	GoalStatusAchieved      GoalStatus = "ACHIEVED"
)

var hundred = decimal.NewFromInt(100)

// Goal represents a savings or spending target.
// CurrentAmount and Status are only changed through AddContribution and WithdrawFunds.
type Goal struct {
	ID           uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Description  string
	Category     string
	CreatedAt    time.Time

	currentAmount decimal.Decimal
	status        GoalStatus
	now           func() time.Time
}

// GoalOption configures optional Goal behaviour
type GoalOption func(*Goal)

// WithGoalClock replaces the clock used for status derivation
func WithGoalClock(now func() time.Time) GoalOption {
	return func(g *Goal) {
		g.now = now
	}
}

// WithCreatedAt overrides the creation time (used when restoring goals)
func WithCreatedAt(createdAt time.Time) GoalOption {
	return func(g *Goal) {
		g.CreatedAt = createdAt
	}
}

// NewGoal creates a goal with no contributions
func NewGoal(name string, target decimal.Decimal, category string, deadline *time.Time, description string, opts ...GoalOption) *Goal {
	g := &Goal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  target,
		Deadline:      deadline,
		Description:   description,
		Category:      category,
		currentAmount: decimal.Zero,
		status:        GoalStatusNotStarted,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = g.now()
	}
	return g
}

// Validate ensures the goal adheres to domain rules
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("goal name cannot be empty")
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("goal target: %w", ErrNonPositiveAmount)
	}
	if g.Deadline != nil && g.Deadline.Before(g.CreatedAt) {
		return errors.New("goal deadline cannot be before its creation")
	}
	return nil
}

// CurrentAmount returns the amount saved so far
func (g *Goal) CurrentAmount() decimal.Decimal {
	return g.currentAmount
}

// Status returns the status derived after the last contribution or withdrawal
func (g *Goal) Status() GoalStatus {
	return g.status
}

// AddContribution adds amount to the goal and re-derives its status
func (g *Goal) AddContribution(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	g.currentAmount = g.currentAmount.Add(amount)
	g.refreshStatus()
	return nil
}

// WithdrawFunds removes amount from the goal.
// It returns false and leaves the goal untouched if amount is not positive
// or exceeds the current amount.
func (g *Goal) WithdrawFunds(amount decimal.Decimal) bool {
	if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(g.currentAmount) {
		return false
	}
	g.currentAmount = g.currentAmount.Sub(amount)
	g.refreshStatus()
	return true
}

// Progress returns current/target as a percentage. Values above 100 are not clamped.
func (g *Goal) Progress() decimal.Decimal {
	return progressPercent(g.currentAmount, g.TargetAmount)
}

// EstimatedCompletion projects when the goal is reached with a fixed monthly contribution.
// The second value is false when no projection is possible.
func (g *Goal) EstimatedCompletion(monthly decimal.Decimal, now time.Time) (time.Time, bool) {
	if g.currentAmount.GreaterThanOrEqual(g.TargetAmount) {
		return now, true
	}
	if monthly.LessThanOrEqual(decimal.Zero) {
		return time.Time{}, false
	}
	months := g.TargetAmount.Sub(g.currentAmount).Div(monthly).Ceil().IntPart()
	return now.AddDate(0, int(months), 0), true
}

func (g *Goal) refreshStatus() {
	g.status = DeriveGoalStatus(g.currentAmount, g.TargetAmount, g.Deadline, g.CreatedAt, g.now())
}

// DeriveGoalStatus computes a goal status from its inputs.
// Precedence: nothing saved, target reached, deadline passed, no deadline,
// then progress compared against elapsed time.
func DeriveGoalStatus(current, target decimal.Decimal, deadline *time.Time, createdAt, now time.Time) GoalStatus {
	if current.IsZero() {
		return GoalStatusNotStarted
	}
	if current.GreaterThanOrEqual(target) {
		return GoalStatusAchieved
	}
	if deadline == nil {
		return GoalStatusInProgress
	}
	if deadline.Before(now) {
		return GoalStatusFallingBehind
	}

	totalDays := deadline.Sub(createdAt).Hours() / 24
	if totalDays <= 0 {
		return GoalStatusOnTrack
	}
	daysElapsed := now.Sub(createdAt).Hours() / 24
	elapsedPercent := decimal.NewFromFloat(daysElapsed / totalDays * 100)

	if progressPercent(current, target).GreaterThanOrEqual(elapsedPercent) {
		return GoalStatusOnTrack
	}
	return GoalStatusFallingBehind
}

func progressPercent(current, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}
	return current.Div(target).Mul(hundred)
}
