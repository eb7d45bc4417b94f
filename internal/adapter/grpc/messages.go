package grpc

import "google.golang.org/protobuf/types/known/timestamppb"

// Amounts travel as decimal strings, timestamps as timestamppb.Timestamp.

type AccountMessage struct {
	Name        string            `json:"name"`
	Balance     string            `json:"balance"`
	AccountType string            `json:"accountType,omitempty"` // empty for groups
	Accounts    []*AccountMessage `json:"accounts,omitempty"`    // members of a group
}

type UserMessage struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	FinancialMode string            `json:"financialMode"`
	TotalBalance  string            `json:"totalBalance"`
	Accounts      []*AccountMessage `json:"accounts"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GetUserRequest struct {
	UserID string `json:"userId"`
}

type UserResponse struct {
	User *UserMessage `json:"user"`
}

// AddAccountRequest adds an individual account. With Group set, the account is
// added to that top-level group, which is created when missing.
type AddAccountRequest struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	OpeningBalance string `json:"openingBalance"`
	AccountType    string `json:"accountType"`
	Group          string `json:"group,omitempty"`
}

type TransactionMessage struct {
	ID          string                 `json:"id"`
	Amount      string                 `json:"amount"`
	Description string                 `json:"description"`
	Date        *timestamppb.Timestamp `json:"date"`
	Type        string                 `json:"type"`
	Category    string                 `json:"category"`
	AccountID   string                 `json:"accountId"`
	Tags        []string               `json:"tags,omitempty"`
}

type RecordTransactionRequest struct {
	UserID      string                 `json:"userId"`
	Amount      string                 `json:"amount"`
	Description string                 `json:"description"`
	Date        *timestamppb.Timestamp `json:"date,omitempty"`
	Type        string                 `json:"type"`
	Category    string                 `json:"category,omitempty"`
	AccountID   string                 `json:"accountId"`
	Tags        []string               `json:"tags,omitempty"`
}

type TransitionMessage struct {
	From   string                 `json:"from,omitempty"`
	To     string                 `json:"to"`
	Reason string                 `json:"reason"`
	At     *timestamppb.Timestamp `json:"at,omitempty"`
}

type RecordTransactionResponse struct {
	Transaction *TransactionMessage `json:"transaction"`
	Mode        string              `json:"mode"`
	Transition  *TransitionMessage  `json:"transition,omitempty"`
}

type ListTransactionsRequest struct {
	UserID string `json:"userId"`
}

type ListTransactionsResponse struct {
	Transactions []*TransactionMessage `json:"transactions"`
}

type CategoryAmountMessage struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage,omitempty"`
}

type MetricMessage struct {
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"` // empty when not computed
	Computed bool   `json:"computed"`
	Note     string `json:"note,omitempty"`
}

type ReportProjectionMessage struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Breakdown   []*CategoryAmountMessage `json:"breakdown"`
	Metrics     []*MetricMessage         `json:"metrics"`
}

type GetModeRequest struct {
	UserID string `json:"userId"`
}

type GetModeResponse struct {
	Mode    string                     `json:"mode"`
	Kind    string                     `json:"kind"`
	History []*TransitionMessage       `json:"history"`
	Reports []*ReportProjectionMessage `json:"reports"`
}

type RecommendationMessage struct {
	ID                       string                 `json:"id"`
	Title                    string                 `json:"title"`
	Description              string                 `json:"description"`
	PriorityLevel            int                    `json:"priorityLevel"`
	Category                 string                 `json:"category"`
	PotentialSavings         string                 `json:"potentialSavings,omitempty"`
	ImplementationDifficulty string                 `json:"implementationDifficulty"`
	IsApplied                bool                   `json:"isApplied"`
	DateGenerated            *timestamppb.Timestamp `json:"dateGenerated"`
}

type GetModeRecommendationsRequest struct {
	UserID string `json:"userId"`
}

type GetRecommendationsRequest struct {
	UserID string `json:"userId"`
}

type RecommendationsResponse struct {
	Recommendations []*RecommendationMessage `json:"recommendations"`
}

type CalculateBudgetRequest struct {
	UserID string `json:"userId"`
	Income string `json:"income"`
}

type CalculateBudgetResponse struct {
	Strategy    string                   `json:"strategy"`
	Description string                   `json:"description"`
	Allocations []*CategoryAmountMessage `json:"allocations"`
	Total       string                   `json:"total"`
}

type GetBudgetRecommendationsRequest struct {
	UserID string `json:"userId"`
}

type GetBudgetRecommendationsResponse struct {
	Strategy        string   `json:"strategy"`
	Recommendations []string `json:"recommendations"`
}

// SplitRuleItemMessage.Type is FIXED, PERCENT or REMAINDER; Value is ignored for REMAINDER
type SplitRuleItemMessage struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Value    string `json:"value,omitempty"`
	Priority int    `json:"priority"`
}

// SetBudgetStrategyRequest.Strategy is fifty-thirty-twenty, zero-based or split-rule.
// SplitRuleName and SplitItems are only read for split-rule.
type SetBudgetStrategyRequest struct {
	UserID        string                  `json:"userId"`
	Strategy      string                  `json:"strategy"`
	SplitRuleName string                  `json:"splitRuleName,omitempty"`
	SplitItems    []*SplitRuleItemMessage `json:"splitItems,omitempty"`
}

type SetBudgetStrategyResponse struct {
	Strategy    string `json:"strategy"`
	Description string `json:"description"`
}

type GoalMessage struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	TargetAmount  string                 `json:"targetAmount"`
	CurrentAmount string                 `json:"currentAmount"`
	Progress      string                 `json:"progress"`
	Status        string                 `json:"status"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description,omitempty"`
	Deadline      *timestamppb.Timestamp `json:"deadline,omitempty"`
	CreatedAt     *timestamppb.Timestamp `json:"createdAt"`
}

type CreateGoalRequest struct {
	UserID       string                 `json:"userId"`
	Name         string                 `json:"name"`
	TargetAmount string                 `json:"targetAmount"`
	Category     string                 `json:"category"`
	Deadline     *timestamppb.Timestamp `json:"deadline,omitempty"`
	Description  string                 `json:"description,omitempty"`
}

type ContributeToGoalRequest struct {
	UserID string `json:"userId"`
	GoalID string `json:"goalId"`
	Amount string `json:"amount"`
}

type GoalResponse struct {
	Goal *GoalMessage `json:"goal"`
}

type WithdrawFromGoalRequest struct {
	UserID string `json:"userId"`
	GoalID string `json:"goalId"`
	Amount string `json:"amount"`
}

// WithdrawFromGoalResponse reports Success false, with the goal unchanged, when
// the goal holds less than the requested amount
type WithdrawFromGoalResponse struct {
	Goal    *GoalMessage `json:"goal"`
	Success bool         `json:"success"`
}

type ListGoalsRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status,omitempty"` // optional filter
}

type ListGoalsResponse struct {
	Goals []*GoalMessage `json:"goals"`
}

type MonthlyCashflowMessage struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Savings  string `json:"savings"`
}

type IncomeVsExpenseMessage struct {
	TotalIncome   string                    `json:"totalIncome"`
	TotalExpenses string                    `json:"totalExpenses"`
	NetCashflow   string                    `json:"netCashflow"`
	SavingsRate   string                    `json:"savingsRate"`
	Monthly       []*MonthlyCashflowMessage `json:"monthly"`
}

type ExpensesByCategoryMessage struct {
	TotalExpenses string                   `json:"totalExpenses"`
	Categories    []*CategoryAmountMessage `json:"categories"`
}

type GoalProgressMessage struct {
	Name     string                 `json:"name"`
	Target   string                 `json:"target"`
	Current  string                 `json:"current"`
	Progress string                 `json:"progress"`
	Status   string                 `json:"status"`
	Deadline *timestamppb.Timestamp `json:"deadline,omitempty"`
}

type SavingsGoalsMessage struct {
	Goals []*GoalProgressMessage `json:"goals"`
}

type AccountShareMessage struct {
	Name       string `json:"name"`
	Balance    string `json:"balance"`
	Percentage string `json:"percentage"`
}

type NetWorthMessage struct {
	TotalNetWorth        string                 `json:"totalNetWorth"`
	Accounts             []*AccountShareMessage `json:"accounts"`
	PortfolioMarketValue string                 `json:"portfolioMarketValue,omitempty"`
}

// GetReportRequest.Type is one of income-expense, expenses-by-category, savings-goals, net-worth
type GetReportRequest struct {
	UserID string `json:"userId"`
	Type   string `json:"type"`
}

// GetReportResponse carries exactly one of the typed report bodies
type GetReportResponse struct {
	ID                 string                     `json:"id"`
	Title              string                     `json:"title"`
	Description        string                     `json:"description"`
	CreatedAt          *timestamppb.Timestamp     `json:"createdAt"`
	ChartType          string                     `json:"chartType"`
	IncomeVsExpense    *IncomeVsExpenseMessage    `json:"incomeVsExpense,omitempty"`
	ExpensesByCategory *ExpensesByCategoryMessage `json:"expensesByCategory,omitempty"`
	SavingsGoals       *SavingsGoalsMessage       `json:"savingsGoals,omitempty"`
	NetWorth           *NetWorthMessage           `json:"netWorth,omitempty"`
}

type UpdateMarketValueRequest struct {
	UserID      string `json:"userId"`
	MarketValue string `json:"marketValue"`
}

// UpdateMarketValueResponse.Profit is the market value minus everything invested so far
type UpdateMarketValueResponse struct {
	EntryID string                 `json:"entryId"`
	Date    *timestamppb.Timestamp `json:"date"`
	Profit  string                 `json:"profit"`
}
