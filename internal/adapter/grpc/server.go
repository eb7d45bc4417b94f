package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/budget"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/goal"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/investment"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/ledger"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/recommendation"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/reporting"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/session"
)

// Server implements the FinanceService gRPC server
type Server struct {
	Sessions        *session.Manager
	Ledger          *ledger.LedgerService
	Goals           *goal.GoalService
	Investments     *investment.InvestmentService
	Reports         *reporting.ReportingService
	Recommendations *recommendation.Engine
}

var _ FinanceServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	sessions *session.Manager,
	ledgerService *ledger.LedgerService,
	goalService *goal.GoalService,
	investmentService *investment.InvestmentService,
	reportingService *reporting.ReportingService,
	engine *recommendation.Engine,
) *Server {
	return &Server{
		Sessions:        sessions,
		Ledger:          ledgerService,
		Goals:           goalService,
		Investments:     investmentService,
		Reports:         reportingService,
		Recommendations: engine,
	}
}

// session parses the user ID of a request and returns its session
func (s *Server) session(userID string) (*session.Session, error) {
	id, err := parseUUID("user_id", userID)
	if err != nil {
		return nil, err
	}
	sess, err := s.Sessions.Get(id)
	if err != nil {
		return nil, mapError(err)
	}
	return sess, nil
}

// CreateUser handles the CreateUser RPC
func (s *Server) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	user := domain.NewUser(strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
	sess, err := s.Sessions.Create(user)
	if err != nil {
		return nil, mapError(err)
	}

	var resp *UserResponse
	sess.Run(func() {
		resp = &UserResponse{User: domainUserToProto(sess.User)}
	})
	return resp, nil
}

// GetUser handles the GetUser RPC
func (s *Server) GetUser(ctx context.Context, req *GetUserRequest) (*UserResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}

	var resp *UserResponse
	sess.Run(func() {
		resp = &UserResponse{User: domainUserToProto(sess.User)}
	})
	return resp, nil
}

// AddAccount handles the AddAccount RPC
func (s *Server) AddAccount(ctx context.Context, req *AddAccountRequest) (*UserResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "account name cannot be empty")
	}
	opening := decimal.Zero
	if req.OpeningBalance != "" {
		if opening, err = parseAmount("opening_balance", req.OpeningBalance); err != nil {
			return nil, err
		}
	}
	if opening.IsNegative() {
		return nil, status.Error(codes.InvalidArgument, "opening balance cannot be negative")
	}

	var resp *UserResponse
	err = sess.Do(func() error {
		if _, err := sess.User.FindAccount(name); err == nil {
			return status.Errorf(codes.AlreadyExists, "account %q already exists", name)
		}
		account := domain.NewIndividualAccount(name, opening, req.AccountType)

		if req.Group == "" {
			sess.User.AddAccount(account)
		} else {
			group, err := findOrCreateGroup(sess.User, req.Group)
			if err != nil {
				return err
			}
			group.Add(account)
		}

		resp = &UserResponse{User: domainUserToProto(sess.User)}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// findOrCreateGroup returns the top-level group called name, adding it when missing
func findOrCreateGroup(user *domain.User, name string) (*domain.AccountGroup, error) {
	for _, account := range user.Accounts() {
		if account.Name() != name {
			continue
		}
		group, ok := account.(*domain.AccountGroup)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "%q is an account, not a group", name)
		}
		return group, nil
	}
	group := domain.NewAccountGroup(name)
	user.AddAccount(group)
	return group, nil
}

// RecordTransaction handles the RecordTransaction RPC
func (s *Server) RecordTransaction(ctx context.Context, req *RecordTransactionRequest) (*RecordTransactionResponse, error) {
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	txType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, mapError(err)
	}

	// Category is optional; missing categories are inferred from the description
	var category domain.Category
	if req.Category != "" {
		if category, err = domain.ParseCategory(req.Category); err != nil {
			return nil, mapError(err)
		}
	}

	input := ledger.RecordInput{
		UserID:      userID,
		Amount:      amount,
		Description: req.Description,
		Type:        txType,
		Category:    category,
		AccountID:   req.AccountID,
		Tags:        req.Tags,
	}
	if req.Date != nil {
		input.Date = req.Date.AsTime()
	}

	result, err := s.Ledger.RecordTransaction(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &RecordTransactionResponse{
		Transaction: domainTransactionToProto(result.Transaction),
		Mode:        result.Mode,
	}
	if result.Transition != nil {
		resp.Transition = &TransitionMessage{
			To:     result.Transition.To.DisplayName(),
			Reason: result.Transition.Reason,
		}
	}
	return resp, nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, req *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}

	txs, err := s.Ledger.ListTransactions(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &ListTransactionsResponse{Transactions: make([]*TransactionMessage, 0, len(txs))}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, domainTransactionToProto(tx))
	}
	return resp, nil
}

// GetMode handles the GetMode RPC
func (s *Server) GetMode(ctx context.Context, req *GetModeRequest) (*GetModeResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}

	var est mode.PerformanceEstimator = mode.NoEstimates{}
	if s.Investments != nil {
		portfolio, err := s.Investments.Estimator(ctx, sess.User.ID)
		if err != nil {
			return nil, mapError(err)
		}
		est = portfolio
	}

	var resp *GetModeResponse
	sess.Run(func() {
		history := sess.Machine.History()
		reports := sess.Machine.Reports(est)

		resp = &GetModeResponse{
			Mode:    sess.Machine.Name(),
			Kind:    string(sess.Machine.Kind()),
			History: make([]*TransitionMessage, 0, len(history)),
			Reports: make([]*ReportProjectionMessage, 0, len(reports)),
		}
		for _, record := range history {
			resp.History = append(resp.History, transitionRecordToProto(record))
		}
		for _, report := range reports {
			resp.Reports = append(resp.Reports, projectionToProto(report))
		}
	})
	return resp, nil
}

// GetModeRecommendations handles the GetModeRecommendations RPC
func (s *Server) GetModeRecommendations(ctx context.Context, req *GetModeRecommendationsRequest) (*RecommendationsResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}

	var resp *RecommendationsResponse
	sess.Run(func() {
		resp = &RecommendationsResponse{
			Recommendations: domainRecommendationsToProto(sess.Machine.Recommendations(sess.User)),
		}
	})
	return resp, nil
}

// GetRecommendations handles the GetRecommendations RPC
func (s *Server) GetRecommendations(ctx context.Context, req *GetRecommendationsRequest) (*RecommendationsResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	txs, err := s.Ledger.ListTransactions(ctx, sess.User.ID)
	if err != nil {
		return nil, mapError(err)
	}

	var resp *RecommendationsResponse
	sess.Run(func() {
		resp = &RecommendationsResponse{
			Recommendations: domainRecommendationsToProto(s.Recommendations.Generate(sess.User, txs)),
		}
	})
	return resp, nil
}

// CalculateBudget handles the CalculateBudget RPC
func (s *Server) CalculateBudget(ctx context.Context, req *CalculateBudgetRequest) (*CalculateBudgetResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	income, err := parseAmount("income", req.Income)
	if err != nil {
		return nil, err
	}

	var resp *CalculateBudgetResponse
	err = sess.Do(func() error {
		allocation, err := sess.Budget.CalculateBudget(income)
		if err != nil {
			return err
		}
		resp = &CalculateBudgetResponse{
			Strategy:    sess.Budget.StrategyName(),
			Description: sess.Budget.StrategyDescription(),
			Allocations: allocationToProto(allocation),
			Total:       allocation.Total().StringFixed(2),
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// GetBudgetRecommendations handles the GetBudgetRecommendations RPC
func (s *Server) GetBudgetRecommendations(ctx context.Context, req *GetBudgetRecommendationsRequest) (*GetBudgetRecommendationsResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	txs, err := s.Ledger.ListTransactions(ctx, sess.User.ID)
	if err != nil {
		return nil, mapError(err)
	}

	var resp *GetBudgetRecommendationsResponse
	sess.Run(func() {
		resp = &GetBudgetRecommendationsResponse{
			Strategy:        sess.Budget.StrategyName(),
			Recommendations: sess.Budget.Recommendations(txs),
		}
	})
	return resp, nil
}

// SetBudgetStrategy handles the SetBudgetStrategy RPC
func (s *Server) SetBudgetStrategy(ctx context.Context, req *SetBudgetStrategyRequest) (*SetBudgetStrategyResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	strategy, err := strategyFromRequest(req)
	if err != nil {
		return nil, mapError(err)
	}

	var resp *SetBudgetStrategyResponse
	sess.Run(func() {
		sess.Budget.SetStrategy(strategy)
		resp = &SetBudgetStrategyResponse{
			Strategy:    sess.Budget.StrategyName(),
			Description: sess.Budget.StrategyDescription(),
		}
	})
	return resp, nil
}

func strategyFromRequest(req *SetBudgetStrategyRequest) (budget.Strategy, error) {
	if !strings.EqualFold(strings.TrimSpace(req.Strategy), budget.StrategySplitRule) {
		return budget.ByName(req.Strategy)
	}

	rule := domain.SplitRule{ID: uuid.New(), Name: req.SplitRuleName}
	if rule.Name == "" {
		rule.Name = "Custom Split"
	}
	for _, item := range req.SplitItems {
		category, err := domain.ParseCategory(item.Category)
		if err != nil {
			return nil, err
		}
		value := decimal.Zero
		if item.Value != "" {
			if value, err = parseAmount("split item value", item.Value); err != nil {
				return nil, err
			}
		}
		rule.Items = append(rule.Items, domain.SplitRuleItem{
			ID:             uuid.New(),
			TargetCategory: category,
			Type:           domain.SplitRuleItemType(strings.ToUpper(item.Type)),
			Value:          value,
			Priority:       item.Priority,
		})
	}
	return budget.NewSplitRuleStrategy(rule)
}

// CreateGoal handles the CreateGoal RPC
func (s *Server) CreateGoal(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	target, err := parseAmount("target_amount", req.TargetAmount)
	if err != nil {
		return nil, err
	}

	var resp *GoalResponse
	err = sess.Do(func() error {
		g, err := s.Goals.CreateGoal(sess.User, req.Name, target, req.Category, optionalTime(req.Deadline), req.Description)
		if err != nil {
			return err
		}
		resp = &GoalResponse{Goal: domainGoalToProto(g)}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// ContributeToGoal handles the ContributeToGoal RPC
func (s *Server) ContributeToGoal(ctx context.Context, req *ContributeToGoalRequest) (*GoalResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	goalID, err := parseUUID("goal_id", req.GoalID)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	var resp *GoalResponse
	err = sess.Do(func() error {
		g, err := s.Goals.Contribute(sess.User, goalID, amount)
		if err != nil {
			return err
		}
		resp = &GoalResponse{Goal: domainGoalToProto(g)}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// WithdrawFromGoal handles the WithdrawFromGoal RPC
func (s *Server) WithdrawFromGoal(ctx context.Context, req *WithdrawFromGoalRequest) (*WithdrawFromGoalResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	goalID, err := parseUUID("goal_id", req.GoalID)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	var resp *WithdrawFromGoalResponse
	err = sess.Do(func() error {
		g, ok, err := s.Goals.Withdraw(sess.User, goalID, amount)
		if err != nil {
			return err
		}
		resp = &WithdrawFromGoalResponse{Goal: domainGoalToProto(g), Success: ok}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// ListGoals handles the ListGoals RPC
func (s *Server) ListGoals(ctx context.Context, req *ListGoalsRequest) (*ListGoalsResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}

	var filter domain.GoalStatus
	if req.Status != "" {
		if filter, err = parseGoalStatus(req.Status); err != nil {
			return nil, err
		}
	}

	var resp *ListGoalsResponse
	sess.Run(func() {
		goals := s.Goals.ListGoals(sess.User)
		if filter != "" {
			goals = s.Goals.GoalsByStatus(sess.User, filter)
		}
		resp = &ListGoalsResponse{Goals: make([]*GoalMessage, 0, len(goals))}
		for _, g := range goals {
			resp.Goals = append(resp.Goals, domainGoalToProto(g))
		}
	})
	return resp, nil
}

func parseGoalStatus(s string) (domain.GoalStatus, error) {
	gs := domain.GoalStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch gs {
	case domain.GoalStatusNotStarted, domain.GoalStatusInProgress, domain.GoalStatusOnTrack,
		domain.GoalStatusFallingBehind, domain.GoalStatusAchieved:
		return gs, nil
	}
	return "", status.Errorf(codes.InvalidArgument, "invalid goal status %q", s)
}

// GetReport handles the GetReport RPC
func (s *Server) GetReport(ctx context.Context, req *GetReportRequest) (*GetReportResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	reportType, err := reporting.ParseType(req.Type)
	if err != nil {
		return nil, mapError(err)
	}

	var txs []*domain.Transaction
	if reportType == reporting.TypeIncomeVsExpense || reportType == reporting.TypeExpensesByCategory {
		if txs, err = s.Ledger.ListTransactions(ctx, sess.User.ID); err != nil {
			return nil, mapError(err)
		}
	}

	var resp *GetReportResponse
	err = sess.Do(func() error {
		switch reportType {
		case reporting.TypeIncomeVsExpense:
			resp = incomeVsExpenseToProto(s.Reports.IncomeVsExpense(txs))
		case reporting.TypeExpensesByCategory:
			resp = expensesByCategoryToProto(s.Reports.ExpensesByCategory(txs))
		case reporting.TypeSavingsGoals:
			resp = savingsGoalsToProto(s.Reports.SavingsGoals(sess.User))
		case reporting.TypeNetWorth:
			report, err := s.Reports.NetWorth(ctx, sess.User)
			if err != nil {
				return err
			}
			resp = netWorthToProto(report)
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

// UpdateMarketValue handles the UpdateMarketValue RPC
func (s *Server) UpdateMarketValue(ctx context.Context, req *UpdateMarketValueRequest) (*UpdateMarketValueResponse, error) {
	sess, err := s.session(req.UserID)
	if err != nil {
		return nil, err
	}
	marketValue, err := parseAmount("market_value", req.MarketValue)
	if err != nil {
		return nil, err
	}

	entry, err := s.Investments.UpdateMarketValue(ctx, sess.User.ID, marketValue)
	if err != nil {
		return nil, mapError(err)
	}

	txs, err := s.Ledger.ListTransactions(ctx, sess.User.ID)
	if err != nil {
		return nil, mapError(err)
	}
	invested := domain.SumAmounts(txs, func(tx *domain.Transaction) bool {
		return tx.Type == domain.TransactionTypeInvestment
	})
	profit, err := s.Investments.CalculateProfit(ctx, sess.User.ID, invested)
	if err != nil {
		return nil, mapError(err)
	}

	return &UpdateMarketValueResponse{
		EntryID: entry.ID.String(),
		Date:    timestamppb.New(entry.Date),
		Profit:  profit.StringFixed(2),
	}, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	case errors.Is(err, session.ErrUserExists):
		return status.Errorf(codes.AlreadyExists, "%s", errorMsg)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Errorf(codes.FailedPrecondition, "%s", errorMsg)
	case errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrUnknownStrategy),
		errors.Is(err, reporting.ErrUnknownReport):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Remaining validation failures only carry a message
	if strings.Contains(errorMsg, "invalid") ||
		strings.Contains(errorMsg, "cannot be") ||
		strings.Contains(errorMsg, "must be") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}
