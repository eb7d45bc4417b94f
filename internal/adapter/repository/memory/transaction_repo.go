package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// transactionRepository implements domain.TransactionRepository in memory.
// Contents are lost on restart.
type transactionRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]*domain.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction repository
func NewTransactionRepository() domain.TransactionRepository {
	return &transactionRepository{byUser: make(map[uuid.UUID][]*domain.Transaction)}
}

func (r *transactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[tx.UserID] = append(r.byUser[tx.UserID], tx)
	return nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	txs := r.byUser[userID]
	out := make([]*domain.Transaction, len(txs))
	copy(out, txs)
	return out, nil
}

func (r *transactionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]), nil
}
