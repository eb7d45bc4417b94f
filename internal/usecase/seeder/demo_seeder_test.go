package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/adapter/repository/memory"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/goal"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/ledger"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/session"
)

var seedTime = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return seedTime }

func newSeeder(t *testing.T, repo domain.TransactionRepository) (*DemoSeeder, *session.Manager) {
	t.Helper()
	sessions, err := session.NewManager("fifty-thirty-twenty", mode.WithLogger(nil))
	require.NoError(t, err)
	ledgerService := ledger.NewLedgerService(repo, sessions)
	goalService := goal.NewGoalService(goal.WithClock(clock))
	return NewDemoSeeder(sessions, ledgerService, goalService, WithClock(clock)), sessions
}

func balanceOf(t *testing.T, user *domain.User, name string) string {
	t.Helper()
	account, err := user.FindAccount(name)
	require.NoError(t, err)
	return account.Balance().String()
}

func TestDemoSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	seeder, sessions := newSeeder(t, repo)

	user, err := seeder.Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, DemoUserID, user.ID)
	assert.Equal(t, "5170", balanceOf(t, user, "Checking"))
	assert.Equal(t, "9200", balanceOf(t, user, "Savings"))
	assert.Equal(t, "15000", balanceOf(t, user, "Investment"))
	assert.Equal(t, "49500", balanceOf(t, user, "401k"))
	assert.True(t, user.TotalBalance().Equal(decimal.NewFromInt(78870)))

	goals := user.Goals()
	require.Len(t, goals, 3)
	assert.Equal(t, "Summer Vacation", goals[0].Name)
	assert.Equal(t, time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), *goals[0].Deadline)
	assert.Equal(t, domain.GoalStatusInProgress, goals[1].Status())
	assert.True(t, goals[2].CurrentAmount().Equal(decimal.NewFromInt(20000)))

	count, err := repo.CountByUser(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	sess, err := sessions.Get(DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, mode.KindBudgeting, sess.Machine.Kind(), "eight expenses are not enough to leave Budgeting")
}

func TestDemoSeeder_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	seeder, _ := newSeeder(t, repo)

	first, err := seeder.Seed(ctx)
	require.NoError(t, err)
	second, err := seeder.Seed(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	count, _ := repo.CountByUser(ctx, DemoUserID)
	assert.Equal(t, 10, count)
	assert.Len(t, second.Goals(), 3)
}

func TestDemoSeeder_RestoresPersistedLedger(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	first, _ := newSeeder(t, repo)
	_, err := first.Seed(ctx)
	require.NoError(t, err)

	// A restart keeps the ledger but loses every in-memory session
	restarted, _ := newSeeder(t, repo)
	user, err := restarted.Seed(ctx)
	require.NoError(t, err)

	count, _ := repo.CountByUser(ctx, DemoUserID)
	assert.Equal(t, 10, count, "restoring must not record the demo transactions again")
	assert.Equal(t, "5170", balanceOf(t, user, "Checking"))
	assert.Equal(t, "Budgeting Mode", user.FinancialMode())
}
