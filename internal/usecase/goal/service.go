package goal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// GoalService manages the goals owned by a user.
// Goals change only through contributions and withdrawals; the mode machine never touches them.
type GoalService struct {
	now func() time.Time
}

// Option configures a GoalService
type Option func(*GoalService)

// WithClock replaces the clock used for goal status and completion estimates
func WithClock(now func() time.Time) Option {
	return func(s *GoalService) {
		s.now = now
	}
}

// NewGoalService creates a new GoalService instance
func NewGoalService(opts ...Option) *GoalService {
	s := &GoalService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGoal validates and attaches a new goal to user
func (s *GoalService) CreateGoal(user *domain.User, name string, target decimal.Decimal, category string, deadline *time.Time, description string) (*domain.Goal, error) {
	goal := domain.NewGoal(name, target, category, deadline, description, domain.WithGoalClock(s.now))
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	user.AddGoal(goal)
	return goal, nil
}

// Contribute adds amount to the goal and returns it with its refreshed status
func (s *GoalService) Contribute(user *domain.User, goalID uuid.UUID, amount decimal.Decimal) (*domain.Goal, error) {
	goal, err := user.Goal(goalID)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, err)
	}
	if err := goal.AddContribution(amount); err != nil {
		return nil, err
	}
	return goal, nil
}

// Withdraw takes amount out of the goal. ok is false when the goal holds less than amount;
// err is only set when the goal does not exist.
func (s *GoalService) Withdraw(user *domain.User, goalID uuid.UUID, amount decimal.Decimal) (goal *domain.Goal, ok bool, err error) {
	goal, err = user.Goal(goalID)
	if err != nil {
		return nil, false, fmt.Errorf("goal %s: %w", goalID, err)
	}
	return goal, goal.WithdrawFunds(amount), nil
}

// Progress returns the goal's completion percentage, which may exceed 100
func (s *GoalService) Progress(user *domain.User, goalID uuid.UUID) (decimal.Decimal, error) {
	goal, err := user.Goal(goalID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("goal %s: %w", goalID, err)
	}
	return goal.Progress(), nil
}

func (s *GoalService) ListGoals(user *domain.User) []*domain.Goal {
	return user.Goals()
}

// GoalsByStatus keeps the user's goal order
func (s *GoalService) GoalsByStatus(user *domain.User, status domain.GoalStatus) []*domain.Goal {
	var out []*domain.Goal
	for _, goal := range user.Goals() {
		if goal.Status() == status {
			out = append(out, goal)
		}
	}
	return out
}

func (s *GoalService) GetGoal(user *domain.User, goalID uuid.UUID) (*domain.Goal, error) {
	goal, err := user.Goal(goalID)
	if err != nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, err)
	}
	return goal, nil
}

// EstimatedCompletion projects when the goal completes with a fixed monthly contribution.
// ok is false when monthly is not positive and the goal is still open.
func (s *GoalService) EstimatedCompletion(user *domain.User, goalID uuid.UUID, monthly decimal.Decimal) (when time.Time, ok bool, err error) {
	goal, err := user.Goal(goalID)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("goal %s: %w", goalID, err)
	}
	when, ok = goal.EstimatedCompletion(monthly, s.now())
	return when, ok, nil
}
