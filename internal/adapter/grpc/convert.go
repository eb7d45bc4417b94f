package grpc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mhmmdslmnfslnust/Capacitor/internal/domain"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/budget"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/mode"
	"github.com/mhmmdslmnfslnust/Capacitor/internal/usecase/reporting"
)

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return amount, nil
}

func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func domainAccountToProto(account domain.AccountComponent) *AccountMessage {
	msg := &AccountMessage{
		Name:    account.Name(),
		Balance: account.Balance().String(),
	}
	switch a := account.(type) {
	case *domain.IndividualAccount:
		msg.AccountType = a.AccountType()
	case *domain.AccountGroup:
		for _, member := range a.Accounts() {
			msg.Accounts = append(msg.Accounts, domainAccountToProto(member))
		}
	}
	return msg
}

func domainUserToProto(user *domain.User) *UserMessage {
	accounts := user.Accounts()
	msg := &UserMessage{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		FinancialMode: user.FinancialMode(),
		TotalBalance:  user.TotalBalance().String(),
		Accounts:      make([]*AccountMessage, 0, len(accounts)),
	}
	for _, account := range accounts {
		msg.Accounts = append(msg.Accounts, domainAccountToProto(account))
	}
	return msg
}

func domainTransactionToProto(tx *domain.Transaction) *TransactionMessage {
	return &TransactionMessage{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Date:        timestamppb.New(tx.Date),
		Type:        string(tx.Type),
		Category:    string(tx.Category),
		AccountID:   tx.AccountID,
		Tags:        tx.Tags(),
	}
}

func domainRecommendationsToProto(recs []domain.Recommendation) []*RecommendationMessage {
	out := make([]*RecommendationMessage, 0, len(recs))
	for _, rec := range recs {
		msg := &RecommendationMessage{
			ID:                       rec.ID.String(),
			Title:                    rec.Title,
			Description:              rec.Description,
			PriorityLevel:            rec.PriorityLevel,
			Category:                 rec.Category,
			ImplementationDifficulty: string(rec.ImplementationDifficulty),
			IsApplied:                rec.IsApplied,
			DateGenerated:            timestamppb.New(rec.DateGenerated),
		}
		if rec.PotentialSavings != nil {
			msg.PotentialSavings = rec.PotentialSavings.StringFixed(2)
		}
		out = append(out, msg)
	}
	return out
}

func domainGoalToProto(goal *domain.Goal) *GoalMessage {
	return &GoalMessage{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount.String(),
		CurrentAmount: goal.CurrentAmount().String(),
		Progress:      goal.Progress().StringFixed(2),
		Status:        string(goal.Status()),
		Category:      goal.Category,
		Description:   goal.Description,
		Deadline:      optionalTimestamp(goal.Deadline),
		CreatedAt:     timestamppb.New(goal.CreatedAt),
	}
}

func transitionRecordToProto(record mode.TransitionRecord) *TransitionMessage {
	return &TransitionMessage{
		From:   record.From.DisplayName(),
		To:     record.To.DisplayName(),
		Reason: record.Reason,
		At:     timestamppb.New(record.At),
	}
}

func projectionToProto(report mode.ReportProjection) *ReportProjectionMessage {
	msg := &ReportProjectionMessage{
		Title:       report.Title,
		Description: report.Description,
		Breakdown:   make([]*CategoryAmountMessage, 0, len(report.Breakdown)),
		Metrics:     make([]*MetricMessage, 0, len(report.Metrics)),
	}
	for _, row := range report.Breakdown {
		msg.Breakdown = append(msg.Breakdown, &CategoryAmountMessage{
			Category: string(row.Category),
			Amount:   row.Amount.String(),
		})
	}
	for _, metric := range report.Metrics {
		m := &MetricMessage{Name: metric.Name, Computed: metric.Computed, Note: metric.Note}
		if metric.Computed {
			m.Value = metric.Value.String()
		}
		msg.Metrics = append(msg.Metrics, m)
	}
	return msg
}

func allocationToProto(allocation budget.Allocation) []*CategoryAmountMessage {
	out := make([]*CategoryAmountMessage, 0, len(allocation))
	for _, line := range allocation {
		out = append(out, &CategoryAmountMessage{
			Category: string(line.Category),
			Amount:   line.Amount.StringFixed(2),
		})
	}
	return out
}

func reportHeader(h reporting.Header) *GetReportResponse {
	return &GetReportResponse{
		ID:          h.ID.String(),
		Title:       h.Title,
		Description: h.Description,
		CreatedAt:   timestamppb.New(h.CreatedAt),
		ChartType:   string(h.Chart),
	}
}

func incomeVsExpenseToProto(r *reporting.IncomeVsExpenseReport) *GetReportResponse {
	resp := reportHeader(r.Header)
	body := &IncomeVsExpenseMessage{
		TotalIncome:   r.Summary.TotalIncome.StringFixed(2),
		TotalExpenses: r.Summary.TotalExpenses.StringFixed(2),
		NetCashflow:   r.Summary.NetCashflow.StringFixed(2),
		SavingsRate:   r.Summary.SavingsRate.StringFixed(1),
		Monthly:       make([]*MonthlyCashflowMessage, 0, len(r.Monthly)),
	}
	for _, month := range r.Monthly {
		body.Monthly = append(body.Monthly, &MonthlyCashflowMessage{
			Month:    month.Month,
			Income:   month.Income.StringFixed(2),
			Expenses: month.Expenses.StringFixed(2),
			Savings:  month.Savings.StringFixed(2),
		})
	}
	resp.IncomeVsExpense = body
	return resp
}

func expensesByCategoryToProto(r *reporting.ExpensesByCategoryReport) *GetReportResponse {
	resp := reportHeader(r.Header)
	body := &ExpensesByCategoryMessage{
		TotalExpenses: r.TotalExpenses.StringFixed(2),
		Categories:    make([]*CategoryAmountMessage, 0, len(r.Categories)),
	}
	for _, share := range r.Categories {
		body.Categories = append(body.Categories, &CategoryAmountMessage{
			Category:   string(share.Category),
			Amount:     share.Amount.StringFixed(2),
			Percentage: share.Percentage.StringFixed(1),
		})
	}
	resp.ExpensesByCategory = body
	return resp
}

func savingsGoalsToProto(r *reporting.SavingsGoalsReport) *GetReportResponse {
	resp := reportHeader(r.Header)
	body := &SavingsGoalsMessage{Goals: make([]*GoalProgressMessage, 0, len(r.Goals))}
	for _, goal := range r.Goals {
		body.Goals = append(body.Goals, &GoalProgressMessage{
			Name:     goal.Name,
			Target:   goal.Target.StringFixed(2),
			Current:  goal.Current.StringFixed(2),
			Progress: goal.Progress.StringFixed(1),
			Status:   string(goal.Status),
			Deadline: optionalTimestamp(goal.Deadline),
		})
	}
	resp.SavingsGoals = body
	return resp
}

func netWorthToProto(r *reporting.NetWorthReport) *GetReportResponse {
	resp := reportHeader(r.Header)
	body := &NetWorthMessage{
		TotalNetWorth: r.TotalNetWorth.StringFixed(2),
		Accounts:      make([]*AccountShareMessage, 0, len(r.Accounts)),
	}
	for _, account := range r.Accounts {
		body.Accounts = append(body.Accounts, &AccountShareMessage{
			Name:       account.Name,
			Balance:    account.Balance.StringFixed(2),
			Percentage: account.Percentage.StringFixed(1),
		})
	}
	if r.PortfolioMarketValue != nil {
		body.PortfolioMarketValue = r.PortfolioMarketValue.StringFixed(2)
	}
	resp.NetWorth = body
	return resp
}
