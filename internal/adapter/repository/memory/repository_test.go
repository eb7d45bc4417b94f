package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

func newTx(userID uuid.UUID, description string) *domain.Transaction {
	return domain.NewTransaction(userID, decimal.NewFromInt(10), description, time.Now(),
		domain.TransactionTypeExpense, domain.CategoryFood, "Checking")
}

func TestTransactionRepository_AppendOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, repo.Append(ctx, newTx(alice, "first")))
	require.NoError(t, repo.Append(ctx, newTx(bob, "other user")))
	require.NoError(t, repo.Append(ctx, newTx(alice, "second")))

	txs, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "first", txs[0].Description)
	assert.Equal(t, "second", txs[1].Description)

	count, err := repo.CountByUser(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	none, err := repo.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTransactionRepository_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	userID := uuid.New()
	require.NoError(t, repo.Append(ctx, newTx(userID, "rent")))

	txs, _ := repo.ListByUser(ctx, userID)
	txs[0] = nil

	again, _ := repo.ListByUser(ctx, userID)
	assert.NotNil(t, again[0])
}

func TestTransactionRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	userID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Append(ctx, newTx(userID, "coffee"))
		}()
	}
	wg.Wait()

	count, err := repo.CountByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestTransactionRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTransactionRepository().Append(ctx, newTx(uuid.New(), "late"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMarketValueRepository_GetLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewMarketValueRepository()
	userID := uuid.New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.GetLatest(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, e := range []struct {
		days  int
		value int64
	}{{10, 1100}, {30, 1300}, {20, 1200}} {
		require.NoError(t, repo.Add(ctx, &domain.MarketValueHistory{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        base.AddDate(0, 0, e.days),
			MarketValue: decimal.NewFromInt(e.value),
		}))
	}

	latest, err := repo.GetLatest(ctx, userID)
	require.NoError(t, err)
	assert.True(t, latest.MarketValue.Equal(decimal.NewFromInt(1300)), "latest by date, not by insertion")

	_, err = repo.GetLatest(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
