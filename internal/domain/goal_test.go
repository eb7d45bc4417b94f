package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a clock whose time can be moved by the test
func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	current := start
	return &current, func() time.Time { return current }
}

func TestGoal_NewGoal_StartsNotStarted(t *testing.T) {
	goal := NewGoal("Vacation", decimal.NewFromInt(2000), "Vacation", nil, "")

	assert.Equal(t, GoalStatusNotStarted, goal.Status())
	assert.True(t, goal.CurrentAmount().IsZero())
	assert.False(t, goal.CreatedAt.IsZero())
}

func TestGoal_AddContribution_WithDeadline(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now, clock := fixedClock(start)
	deadline := start.AddDate(1, 0, 0)

	goal := NewGoal("Vacation", decimal.NewFromInt(2000), "Vacation", &deadline, "", WithGoalClock(clock))

	require.NoError(t, goal.AddContribution(decimal.NewFromInt(500)))
	assert.Equal(t, GoalStatusOnTrack, goal.Status(), "25% saved with no time elapsed is on track")
	assert.True(t, goal.Progress().Equal(decimal.NewFromInt(25)))

	// Half the year gone with only a quarter saved
	*now = start.AddDate(0, 6, 0)
	require.NoError(t, goal.AddContribution(decimal.NewFromInt(1)))
	assert.Equal(t, GoalStatusFallingBehind, goal.Status())
	assert.NotEqual(t, GoalStatusAchieved, goal.Status())
}

func TestGoal_AddContribution_WithoutDeadlineIsInProgress(t *testing.T) {
	goal := NewGoal("Emergency Fund", decimal.NewFromInt(15000), "Emergency", nil, "6 months of expenses")

	require.NoError(t, goal.AddContribution(decimal.NewFromInt(7500)))

	assert.Equal(t, GoalStatusInProgress, goal.Status())
	assert.True(t, goal.Progress().Equal(decimal.NewFromInt(50)))
}

func TestGoal_AddContribution_RejectsNonPositive(t *testing.T) {
	goal := NewGoal("Car", decimal.NewFromInt(1000), "Car", nil, "")

	assert.ErrorIs(t, goal.AddContribution(decimal.Zero), ErrNonPositiveAmount)
	assert.ErrorIs(t, goal.AddContribution(decimal.NewFromInt(-10)), ErrNonPositiveAmount)
	assert.True(t, goal.CurrentAmount().IsZero())
	assert.Equal(t, GoalStatusNotStarted, goal.Status())
}

func TestGoal_Achieved_ProgressNotClamped(t *testing.T) {
	goal := NewGoal("Laptop", decimal.NewFromInt(1000), "Tech", nil, "")

	require.NoError(t, goal.AddContribution(decimal.NewFromInt(1500)))

	assert.Equal(t, GoalStatusAchieved, goal.Status())
	assert.True(t, goal.Progress().Equal(decimal.NewFromInt(150)))
}

func TestGoal_WithdrawFunds(t *testing.T) {
	goal := NewGoal("Vacation", decimal.NewFromInt(2000), "Vacation", nil, "")
	require.NoError(t, goal.AddContribution(decimal.NewFromInt(500)))

	// Overdraw fails and leaves the goal untouched
	assert.False(t, goal.WithdrawFunds(decimal.NewFromInt(600)))
	assert.True(t, goal.CurrentAmount().Equal(decimal.NewFromInt(500)))
	assert.Equal(t, GoalStatusInProgress, goal.Status())

	assert.False(t, goal.WithdrawFunds(decimal.Zero))

	assert.True(t, goal.WithdrawFunds(decimal.NewFromInt(200)))
	assert.True(t, goal.CurrentAmount().Equal(decimal.NewFromInt(300)))

	// Emptying the goal resets it to NOT_STARTED
	assert.True(t, goal.WithdrawFunds(decimal.NewFromInt(300)))
	assert.Equal(t, GoalStatusNotStarted, goal.Status())
}

func TestDeriveGoalStatus(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := created.AddDate(0, 0, 100)
	passed := created.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		current  int64
		target   int64
		deadline *time.Time
		now      time.Time
		want     GoalStatus
	}{
		{name: "nothing saved", current: 0, target: 100, deadline: &deadline, now: created, want: GoalStatusNotStarted},
		{name: "target reached beats passed deadline", current: 100, target: 100, deadline: &passed, now: created, want: GoalStatusAchieved},
		{name: "deadline passed", current: 10, target: 100, deadline: &passed, now: created, want: GoalStatusFallingBehind},
		{name: "no deadline", current: 10, target: 100, deadline: nil, now: created, want: GoalStatusInProgress},
		{name: "ahead of schedule", current: 50, target: 100, deadline: &deadline, now: created.AddDate(0, 0, 40), want: GoalStatusOnTrack},
		{name: "exactly on schedule", current: 50, target: 100, deadline: &deadline, now: created.AddDate(0, 0, 50), want: GoalStatusOnTrack},
		{name: "behind schedule", current: 50, target: 100, deadline: &deadline, now: created.AddDate(0, 0, 60), want: GoalStatusFallingBehind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveGoalStatus(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.target), tt.deadline, created, tt.now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoal_EstimatedCompletion(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	goal := NewGoal("House", decimal.NewFromInt(1000), "Home", nil, "")
	require.NoError(t, goal.AddContribution(decimal.NewFromInt(250)))

	// 750 left at 200/month needs 4 months (3.75 rounded up)
	when, ok := goal.EstimatedCompletion(decimal.NewFromInt(200), now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 4, 0), when)

	_, ok = goal.EstimatedCompletion(decimal.Zero, now)
	assert.False(t, ok)

	require.NoError(t, goal.AddContribution(decimal.NewFromInt(750)))
	when, ok = goal.EstimatedCompletion(decimal.Zero, now)
	require.True(t, ok)
	assert.Equal(t, now, when)
}

func TestGoal_Validate(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	before := created.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		goal    *Goal
		wantErr string
	}{
		{name: "Valid goal should pass", goal: NewGoal("Car", decimal.NewFromInt(1000), "Car", nil, "", WithCreatedAt(created))},
		{name: "Blank name should fail", goal: NewGoal("  ", decimal.NewFromInt(1000), "Car", nil, ""), wantErr: "goal name cannot be empty"},
		{name: "Zero target should fail", goal: NewGoal("Car", decimal.Zero, "Car", nil, ""), wantErr: "amount must be positive"},
		{name: "Deadline before creation should fail", goal: NewGoal("Car", decimal.NewFromInt(1000), "Car", &before, "", WithCreatedAt(created)), wantErr: "goal deadline cannot be before its creation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
