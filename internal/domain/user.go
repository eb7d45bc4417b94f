package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User owns accounts and goals and remembers which financial mode is active
type User struct {
	ID    uuid.UUID
	Name  string
	Email string

	accounts      []AccountComponent
	goals         []*Goal
	financialMode string
}

// NewUser creates a user with a fresh ID
func NewUser(name, email string) *User {
	return &User{ID: uuid.New(), Name: name, Email: email}
}

// Validate ensures the user adheres to domain rules
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("user name cannot be empty")
	}
	if u.Email == "" {
		return errors.New("user email cannot be empty")
	}
	return nil
}

// AddAccount attaches a top-level account or account group
func (u *User) AddAccount(account AccountComponent) {
	u.accounts = append(u.accounts, account)
}

// RemoveAccount detaches the top-level account with the given name
func (u *User) RemoveAccount(name string) bool {
	for i, account := range u.accounts {
		if account.Name() == name {
			u.accounts = append(u.accounts[:i], u.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Accounts returns a copy of the top-level accounts
func (u *User) Accounts() []AccountComponent {
	out := make([]AccountComponent, len(u.accounts))
	copy(out, u.accounts)
	return out
}

// FindAccount looks up an individual account by name, descending into groups
func (u *User) FindAccount(name string) (*IndividualAccount, error) {
	if account := findIndividual(u.accounts, name); account != nil {
		return account, nil
	}
	return nil, ErrNotFound
}

// TotalBalance sums every top-level account balance
func (u *User) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, account := range u.accounts {
		total = total.Add(account.Balance())
	}
	return total
}

// AddGoal attaches a goal
func (u *User) AddGoal(goal *Goal) {
	u.goals = append(u.goals, goal)
}

// RemoveGoal detaches the goal with the given ID
func (u *User) RemoveGoal(id uuid.UUID) bool {
	for i, goal := range u.goals {
		if goal.ID == id {
			u.goals = append(u.goals[:i], u.goals[i+1:]...)
			return true
		}
	}
	return false
}

// Goals returns a copy of the user's goals
func (u *User) Goals() []*Goal {
	out := make([]*Goal, len(u.goals))
	copy(out, u.goals)
	return out
}

// Goal looks up a goal by ID
func (u *User) Goal(id uuid.UUID) (*Goal, error) {
	for _, goal := range u.goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return nil, ErrNotFound
}

// FinancialMode returns the name of the active financial mode
func (u *User) FinancialMode() string {
	return u.financialMode
}

// SetFinancialMode records the active financial mode. The mode machine calls it on every transition.
func (u *User) SetFinancialMode(name string) {
	u.financialMode = name
}
