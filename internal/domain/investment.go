package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketValueHistory records what a user's investment portfolio was worth at a point in time.
// It is compared against the invested amount (book value) to derive returns.
type MarketValueHistory struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	MarketValue decimal.Decimal
}
