package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
)

// marketValueRepository implements domain.MarketValueRepository in memory
type marketValueRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID][]*domain.MarketValueHistory
}

// NewMarketValueRepository creates an empty in-memory market value repository
func NewMarketValueRepository() domain.MarketValueRepository {
	return &marketValueRepository{entries: make(map[uuid.UUID][]*domain.MarketValueHistory)}
}

func (r *marketValueRepository) Add(ctx context.Context, entry *domain.MarketValueHistory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.UserID] = append(r.entries[entry.UserID], entry)
	return nil
}

// GetLatest returns the entry with the latest date; among equal dates the last added wins
func (r *marketValueRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*domain.MarketValueHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.MarketValueHistory
	for _, entry := range r.entries[userID] {
		if latest == nil || !entry.Date.Before(latest.Date) {
			latest = entry
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("no market value history for user %s: %w", userID, domain.ErrNotFound)
	}
	return latest, nil
}
