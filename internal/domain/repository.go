package domain

import (
	"context"

	"github.com/google/uuid"
)

// TransactionRepository is the append-only ledger of transactions per user
type TransactionRepository interface {
	// Append stores a new transaction at the end of its user's history
	Append(ctx context.Context, tx *Transaction) error

	// ListByUser returns a user's transactions in the order they were appended
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)

	// CountByUser returns the number of transactions stored for a user
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// MarketValueRepository defines the interface for market value history persistence operations
type MarketValueRepository interface {
	// Add creates a new market value history entry
	Add(ctx context.Context, entry *MarketValueHistory) error

	// GetLatest retrieves the most recent market value entry for a given user.
	// Returns an error wrapping ErrNotFound when none exists.
	GetLatest(ctx context.Context, userID uuid.UUID) (*MarketValueHistory, error)
}
