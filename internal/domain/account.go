package domain

import "github.com/shopspring/decimal"

// AccountComponent is the read interface shared by single accounts and account groups
type AccountComponent interface {
	Name() string
	Balance() decimal.Decimal
}

// IndividualAccount is a leaf account holding a balance
type IndividualAccount struct {
	name        string
	accountType string
	balance     decimal.Decimal
}

// NewIndividualAccount creates an account with an opening balance
func NewIndividualAccount(name string, openingBalance decimal.Decimal, accountType string) *IndividualAccount {
	return &IndividualAccount{
		name:        name,
		accountType: accountType,
		balance:     openingBalance,
	}
}

func (a *IndividualAccount) Name() string             { return a.name }
func (a *IndividualAccount) Balance() decimal.Decimal { return a.balance }
func (a *IndividualAccount) AccountType() string      { return a.accountType }

// Deposit adds amount to the balance
func (a *IndividualAccount) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Withdraw removes amount from the balance if it is covered
func (a *IndividualAccount) Withdraw(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.balance) {
		return false
	}
	a.balance = a.balance.Sub(amount)
	return true
}

// AccountGroup aggregates accounts; its balance is the sum of its members
type AccountGroup struct {
	name     string
	accounts []AccountComponent
}

// NewAccountGroup creates an empty account group
func NewAccountGroup(name string) *AccountGroup {
	return &AccountGroup{name: name}
}

func (g *AccountGroup) Name() string { return g.name }

// Add appends an account to the group
func (g *AccountGroup) Add(account AccountComponent) {
	g.accounts = append(g.accounts, account)
}

// Remove drops an account from the group, reporting whether it was present
func (g *AccountGroup) Remove(account AccountComponent) bool {
	for i, existing := range g.accounts {
		if existing == account {
			g.accounts = append(g.accounts[:i], g.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Accounts returns a copy of the group's members
func (g *AccountGroup) Accounts() []AccountComponent {
	out := make([]AccountComponent, len(g.accounts))
	copy(out, g.accounts)
	return out
}

// Balance sums the balances of all members, recursively
func (g *AccountGroup) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, account := range g.accounts {
		total = total.Add(account.Balance())
	}
	return total
}

// findIndividual walks the component tree depth-first looking for a leaf named name
func findIndividual(components []AccountComponent, name string) *IndividualAccount {
	for _, component := range components {
		switch c := component.(type) {
		case *IndividualAccount:
			if c.Name() == name {
				return c
			}
		case *AccountGroup:
			if found := findIndividual(c.accounts, name); found != nil {
				return found
			}
		}
	}
	return nil
}
