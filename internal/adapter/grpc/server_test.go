package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/adapter/repository/memory"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/goal"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/investment"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/ledger"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/recommendation"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/reporting"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/session"
)

const testToken = "capacitor-test-token"

// newTestClient serves a fully wired in-memory stack over bufconn
func newTestClient(t *testing.T, token string) *Client {
	t.Helper()

	sessions, err := session.NewManager("fifty-thirty-twenty", mode.WithLogger(nil))
	require.NoError(t, err)
	marketValueRepo := memory.NewMarketValueRepository()
	ledgerService := ledger.NewLedgerService(memory.NewTransactionRepository(), sessions)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(AuthInterceptor(testToken), LoggingInterceptor(nil)))
	RegisterFinanceServiceServer(srv, NewServer(
		sessions,
		ledgerService,
		goal.NewGoalService(),
		investment.NewInvestmentService(marketValueRepo),
		reporting.NewReportingService(marketValueRepo),
		recommendation.NewEngine(),
	))

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn, token)
}

func createUserWithChecking(t *testing.T, client *Client) string {
	t.Helper()
	ctx := context.Background()

	created, err := client.CreateUser(ctx, &CreateUserRequest{Name: "Jane Doe", Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = client.AddAccount(ctx, &AddAccountRequest{
		UserID:         created.User.ID,
		Name:           "Checking",
		OpeningBalance: "1000",
		AccountType:    "Checking",
	})
	require.NoError(t, err)
	return created.User.ID
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "error should be a gRPC status")
	assert.Equal(t, want, st.Code(), st.Message())
}

func TestServer_RequiresToken(t *testing.T) {
	client := newTestClient(t, "wrong-token")

	_, err := client.CreateUser(context.Background(), &CreateUserRequest{Name: "Jane", Email: "jane@example.com"})

	assertCode(t, err, codes.Unauthenticated)
}

func TestServer_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	_, err := client.AddAccount(ctx, &AddAccountRequest{
		UserID: userID, Name: "401k", OpeningBalance: "5000", AccountType: "Retirement", Group: "Investment Accounts",
	})
	require.NoError(t, err)

	got, err := client.GetUser(ctx, &GetUserRequest{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "Budgeting Mode", got.User.FinancialMode)
	assert.Equal(t, "6000", got.User.TotalBalance)
	require.Len(t, got.User.Accounts, 2)
	require.Len(t, got.User.Accounts[1].Accounts, 1)
	assert.Equal(t, "401k", got.User.Accounts[1].Accounts[0].Name)

	_, err = client.AddAccount(ctx, &AddAccountRequest{UserID: userID, Name: "401k"})
	assertCode(t, err, codes.AlreadyExists)
}

func TestServer_UserErrors(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{
			name: "malformed user id should fail",
			call: func() error {
				_, err := client.GetUser(ctx, &GetUserRequest{UserID: "not-a-uuid"})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "unknown user should fail",
			call: func() error {
				_, err := client.GetUser(ctx, &GetUserRequest{UserID: "00000000-0000-0000-0000-000000000042"})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "empty user name should fail",
			call: func() error {
				_, err := client.CreateUser(ctx, &CreateUserRequest{Email: "nobody@example.com"})
				return err
			},
			want: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCode(t, tt.call(), tt.want)
		})
	}
}

func TestServer_RecordTransaction(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	recorded, err := client.RecordTransaction(ctx, &RecordTransactionRequest{
		UserID:      userID,
		Amount:      "500",
		Description: "Monthly salary",
		Type:        "income",
		AccountID:   "Checking",
	})
	require.NoError(t, err)
	assert.Equal(t, "SALARY", recorded.Transaction.Category, "missing categories are inferred")
	assert.Equal(t, "Budgeting Mode", recorded.Mode)
	assert.Nil(t, recorded.Transition)

	_, err = client.RecordTransaction(ctx, &RecordTransactionRequest{
		UserID: userID, Amount: "5000", Description: "New car", Type: "EXPENSE", Category: "transportation", AccountID: "Checking",
	})
	assertCode(t, err, codes.FailedPrecondition)

	_, err = client.RecordTransaction(ctx, &RecordTransactionRequest{
		UserID: userID, Amount: "10", Type: "EXPENSE", Category: "LUXURY", AccountID: "Checking",
	})
	assertCode(t, err, codes.InvalidArgument)

	_, err = client.RecordTransaction(ctx, &RecordTransactionRequest{
		UserID: userID, Amount: "10", Type: "EXPENSE", AccountID: "Brokerage",
	})
	assertCode(t, err, codes.NotFound)

	listed, err := client.ListTransactions(ctx, &ListTransactionsRequest{UserID: userID})
	require.NoError(t, err)
	require.Len(t, listed.Transactions, 2, "an overdraft is still recorded")
	assert.Equal(t, "TRANSPORTATION", listed.Transactions[1].Category)

	user, err := client.GetUser(ctx, &GetUserRequest{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "1500", user.User.TotalBalance)
}

func TestServer_ModeAndRecommendations(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	_, err := client.RecordTransaction(ctx, &RecordTransactionRequest{
		UserID: userID, Amount: "120", Description: "Groceries", Type: "EXPENSE", Category: "FOOD", AccountID: "Checking",
	})
	require.NoError(t, err)

	got, err := client.GetMode(ctx, &GetModeRequest{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "Budgeting Mode", got.Mode)
	assert.Equal(t, "BUDGETING", got.Kind)
	assert.Empty(t, got.History)
	assert.NotEmpty(t, got.Reports)

	modeRecs, err := client.GetModeRecommendations(ctx, &GetModeRecommendationsRequest{UserID: userID})
	require.NoError(t, err)
	assert.NotEmpty(t, modeRecs.Recommendations)

	recs, err := client.GetRecommendations(ctx, &GetRecommendationsRequest{UserID: userID})
	require.NoError(t, err)
	for i := 1; i < len(recs.Recommendations); i++ {
		assert.LessOrEqual(t, recs.Recommendations[i-1].PriorityLevel, recs.Recommendations[i].PriorityLevel)
	}
}

func TestServer_Budget(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	budget, err := client.CalculateBudget(ctx, &CalculateBudgetRequest{UserID: userID, Income: "4000"})
	require.NoError(t, err)
	assert.Equal(t, "50/30/20 Rule", budget.Strategy)
	assert.Equal(t, "4000.00", budget.Total)
	assert.NotEmpty(t, budget.Allocations)

	_, err = client.SetBudgetStrategy(ctx, &SetBudgetStrategyRequest{UserID: userID, Strategy: "envelope"})
	assertCode(t, err, codes.InvalidArgument)

	switched, err := client.SetBudgetStrategy(ctx, &SetBudgetStrategyRequest{UserID: userID, Strategy: "zero-based"})
	require.NoError(t, err)
	assert.Equal(t, "Zero-Based Budgeting", switched.Strategy)

	advice, err := client.GetBudgetRecommendations(ctx, &GetBudgetRecommendationsRequest{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "Zero-Based Budgeting", advice.Strategy)

	_, err = client.CalculateBudget(ctx, &CalculateBudgetRequest{UserID: userID, Income: "lots"})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_SplitRuleBudget(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	switched, err := client.SetBudgetStrategy(ctx, &SetBudgetStrategyRequest{
		UserID:        userID,
		Strategy:      "split-rule",
		SplitRuleName: "Rent first",
		SplitItems: []*SplitRuleItemMessage{
			{Category: "HOUSING", Type: "fixed", Value: "1000", Priority: 1},
			{Category: "FOOD", Type: "percent", Value: "50", Priority: 2},
			{Category: "EMERGENCY_FUND", Type: "remainder", Priority: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rent first", switched.Strategy)

	budget, err := client.CalculateBudget(ctx, &CalculateBudgetRequest{UserID: userID, Income: "3000"})
	require.NoError(t, err)
	require.Len(t, budget.Allocations, 3)
	assert.Equal(t, "HOUSING", budget.Allocations[0].Category)
	assert.Equal(t, "1000.00", budget.Allocations[1].Amount)
	assert.Equal(t, "3000.00", budget.Total)

	_, err = client.SetBudgetStrategy(ctx, &SetBudgetStrategyRequest{
		UserID:     userID,
		Strategy:   "split-rule",
		SplitItems: []*SplitRuleItemMessage{{Category: "FOOD", Type: "percent", Value: "50"}},
	})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_Goals(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	created, err := client.CreateGoal(ctx, &CreateGoalRequest{
		UserID: userID, Name: "Emergency Fund", TargetAmount: "1000", Category: "Emergency",
	})
	require.NoError(t, err)
	assert.Equal(t, "NOT_STARTED", created.Goal.Status)

	contributed, err := client.ContributeToGoal(ctx, &ContributeToGoalRequest{
		UserID: userID, GoalID: created.Goal.ID, Amount: "300",
	})
	require.NoError(t, err)
	assert.Equal(t, "300", contributed.Goal.CurrentAmount)
	assert.Equal(t, "30.00", contributed.Goal.Progress)

	withdrawn, err := client.WithdrawFromGoal(ctx, &WithdrawFromGoalRequest{
		UserID: userID, GoalID: created.Goal.ID, Amount: "500",
	})
	require.NoError(t, err)
	assert.False(t, withdrawn.Success)
	assert.Equal(t, "300", withdrawn.Goal.CurrentAmount)

	_, err = client.ContributeToGoal(ctx, &ContributeToGoalRequest{
		UserID: userID, GoalID: created.Goal.ID, Amount: "-5",
	})
	assertCode(t, err, codes.InvalidArgument)

	listed, err := client.ListGoals(ctx, &ListGoalsRequest{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, listed.Goals, 1)

	achieved, err := client.ListGoals(ctx, &ListGoalsRequest{UserID: userID, Status: "achieved"})
	require.NoError(t, err)
	assert.Empty(t, achieved.Goals)

	_, err = client.ListGoals(ctx, &ListGoalsRequest{UserID: userID, Status: "abandoned"})
	assertCode(t, err, codes.InvalidArgument)
}

func TestServer_ReportsAndMarketValue(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t, testToken)
	userID := createUserWithChecking(t, client)

	_, err := client.RecordTransaction(ctx, &RecordTransactionRequest{
		UserID: userID, Amount: "1000", Description: "Index fund", Type: "INVESTMENT", Category: "INVESTMENTS", AccountID: "Checking",
	})
	require.NoError(t, err)

	updated, err := client.UpdateMarketValue(ctx, &UpdateMarketValueRequest{UserID: userID, MarketValue: "1200"})
	require.NoError(t, err)
	assert.NotEmpty(t, updated.EntryID)
	assert.Equal(t, "200.00", updated.Profit)

	_, err = client.UpdateMarketValue(ctx, &UpdateMarketValueRequest{UserID: userID, MarketValue: "0"})
	assertCode(t, err, codes.InvalidArgument)

	netWorth, err := client.GetReport(ctx, &GetReportRequest{UserID: userID, Type: "net-worth"})
	require.NoError(t, err)
	assert.Equal(t, "Net Worth", netWorth.Title)
	assert.Equal(t, "pie", netWorth.ChartType)
	require.NotNil(t, netWorth.NetWorth)
	assert.Equal(t, "1000.00", netWorth.NetWorth.TotalNetWorth)
	assert.Equal(t, "1200.00", netWorth.NetWorth.PortfolioMarketValue)
	assert.Nil(t, netWorth.IncomeVsExpense)

	cashflow, err := client.GetReport(ctx, &GetReportRequest{UserID: userID, Type: "income-expense"})
	require.NoError(t, err)
	require.NotNil(t, cashflow.IncomeVsExpense)
	assert.Equal(t, "0.00", cashflow.IncomeVsExpense.TotalIncome)

	_, err = client.GetReport(ctx, &GetReportRequest{UserID: userID, Type: "tax"})
	assertCode(t, err, codes.InvalidArgument)
}
