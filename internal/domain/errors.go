package domain

import "errors"

var (
	// ErrNonPositiveAmount is returned when an amount must be greater than zero
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the available balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound is returned by lookups that match nothing
	ErrNotFound = errors.New("not found")

	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrUnknownStrategy        = errors.New("unknown budget strategy")
)
