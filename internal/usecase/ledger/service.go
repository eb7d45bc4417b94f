package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/session"
)

// RecordInput represents the input for recording a transaction
type RecordInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time // Optional: defaults to now
	Type        domain.TransactionType
	Category    domain.Category // Optional: defaults to OTHER and is then categorized
	AccountID   string
	Tags        []string
}

// RecordResult reports what recording a transaction did
type RecordResult struct {
	Transaction *domain.Transaction
	Transition  *mode.Transition // nil when the financial mode stayed
	Mode        string           // display name of the mode after the transaction
}

// LedgerService records transactions and drives each user's mode machine
type LedgerService struct {
	TransactionRepo domain.TransactionRepository
	Sessions        *session.Manager

	now func() time.Time
}

// Option configures a LedgerService
type Option func(*LedgerService)

// WithClock replaces the clock used for undated transactions
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(transactionRepo domain.TransactionRepository, sessions *session.Manager, opts ...Option) *LedgerService {
	s := &LedgerService{
		TransactionRepo: transactionRepo,
		Sessions:        sessions,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordTransaction books a transaction for a user
// Logic:
//  1. Build and validate the transaction, and find its account
//  2. Categorize it if it arrived as OTHER
//  3. Append it to the ledger
//  4. Feed it to the mode machine
//  5. Adjust the account balance: INCOME/DEPOSIT deposit, EXPENSE/WITHDRAWAL withdraw
//
// Steps 3 and 4 happen before the balance check, so a withdrawal the account cannot
// cover is still recorded; the result is returned together with ErrInsufficientFunds.
func (s *LedgerService) RecordTransaction(ctx context.Context, input RecordInput) (*RecordResult, error) {
	sess, err := s.Sessions.Get(input.UserID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	category := input.Category
	if category == "" {
		category = domain.CategoryOther
	}

	tx := domain.NewTransaction(input.UserID, input.Amount, input.Description, date, input.Type, category, input.AccountID)
	for _, tag := range input.Tags {
		tx.AddTag(tag)
	}
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	var result *RecordResult
	err = sess.Do(func() error {
		account, err := sess.User.FindAccount(tx.AccountID)
		if err != nil {
			return fmt.Errorf("account %q: %w", tx.AccountID, err)
		}

		if tx.Category == domain.CategoryOther {
			tx.Recategorize(sess.Categorizer.Categorize(tx))
		}

		if err := s.TransactionRepo.Append(ctx, tx); err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}

		result = &RecordResult{
			Transaction: tx,
			Transition:  sess.Machine.HandleTransaction(tx),
			Mode:        sess.Machine.Name(),
		}

		if !applyToBalance(account, tx) {
			return fmt.Errorf("account %q: %w", tx.AccountID, domain.ErrInsufficientFunds)
		}
		return nil
	})
	return result, err
}

// ListTransactions returns the user's ledger in recording order
func (s *LedgerService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	if _, err := s.Sessions.Get(userID); err != nil {
		return nil, err
	}
	txs, err := s.TransactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// Replay rebuilds the user's mode machine from the persisted ledger.
// Account balances are left alone. Returns the number of transactions replayed.
func (s *LedgerService) Replay(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.replay(ctx, userID, false)
}

// Restore replays the ledger into a freshly created session, rebuilding both the
// mode machine and the account balances from their opening values.
// Withdrawals that could not be covered are skipped, as they were when recorded.
func (s *LedgerService) Restore(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.replay(ctx, userID, true)
}

func (s *LedgerService) replay(ctx context.Context, userID uuid.UUID, balances bool) (int, error) {
	sess, err := s.Sessions.Get(userID)
	if err != nil {
		return 0, err
	}
	txs, err := s.TransactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	err = sess.Do(func() error {
		sess.ResetMachine()
		for _, tx := range txs {
			sess.Machine.HandleTransaction(tx)
			if !balances {
				continue
			}
			if account, err := sess.User.FindAccount(tx.AccountID); err == nil {
				applyToBalance(account, tx)
			}
		}
		return nil
	})
	return len(txs), err
}

// applyToBalance reports false when a withdrawal exceeds the balance
func applyToBalance(account *domain.IndividualAccount, tx *domain.Transaction) bool {
	switch tx.Type {
	case domain.TransactionTypeIncome, domain.TransactionTypeDeposit:
		account.Deposit(tx.Amount)
	case domain.TransactionTypeExpense, domain.TransactionTypeWithdrawal:
		return account.Withdraw(tx.Amount)
	}
	return true
}

// CountTransactions returns how many transactions the user's ledger holds
func (s *LedgerService) CountTransactions(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.TransactionRepo.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
