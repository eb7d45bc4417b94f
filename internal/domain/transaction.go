package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of monetary event a transaction records
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "INCOME"
	TransactionTypeExpense    TransactionType = "EXPENSE"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeInvestment TransactionType = "INVESTMENT"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer,
		TransactionTypeInvestment, TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	}
	return false
}

// ParseTransactionType converts a case-insensitive name into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidTransactionType
	}
	return t, nil
}

// Transaction represents one monetary event in a user's ledger.
// Everything except Category and the tag set is fixed once created.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal // Always positive, direction comes from Type
	Description string
	Date        time.Time
	Type        TransactionType
	Category    Category
	AccountID   string // Name of the account the transaction was booked against

	recategorized bool
	tags          []string
}

// NewTransaction creates a transaction with a fresh ID
func NewTransaction(userID uuid.UUID, amount decimal.Decimal, description string, date time.Time,
	txType TransactionType, category Category, accountID string) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Date:        date,
		Type:        txType,
		Category:    category,
		AccountID:   accountID,
	}
}

// Validate ensures the transaction adheres to domain rules
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(t.AccountID) == "" {
		return errors.New("transaction account must not be empty")
	}
	return nil
}

// Tags returns a copy of the transaction's tags in insertion order
func (t *Transaction) Tags() []string {
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// AddTag appends tag unless it is already present
func (t *Transaction) AddTag(tag string) {
	for _, existing := range t.tags {
		if existing == tag {
			return
		}
	}
	t.tags = append(t.tags, tag)
}

// Recategorize rewrites the category of an uncategorized (OTHER) transaction.
// It succeeds at most once per transaction.
func (t *Transaction) Recategorize(c Category) bool {
	if t.recategorized || t.Category != CategoryOther || c == CategoryOther || !c.IsValid() {
		return false
	}
	t.Category = c
	t.recategorized = true
	return true
}

// SumAmounts adds the amounts of every transaction accepted by keep
func SumAmounts(txs []*Transaction, keep func(*Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if keep(tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
