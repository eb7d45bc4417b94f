package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Client is a typed FinanceService client over an existing connection
type Client struct {
	conn  grpc.ClientConnInterface
	token string
}

// NewClient wraps conn. token is sent as the authorization metadata on every call.
func NewClient(conn grpc.ClientConnInterface, token string) *Client {
	return &Client{conn: conn, token: token}
}

func (c *Client) invoke(ctx context.Context, method string, req, resp any, opts ...grpc.CallOption) error {
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", c.token)
	}
	opts = append(opts, grpc.CallContentSubtype(CodecName))
	return c.conn.Invoke(ctx, fullMethod(method), req, resp, opts...)
}

func (c *Client) CreateUser(ctx context.Context, req *CreateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	resp := new(UserResponse)
	if err := c.invoke(ctx, "CreateUser", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetUser(ctx context.Context, req *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	resp := new(UserResponse)
	if err := c.invoke(ctx, "GetUser", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) AddAccount(ctx context.Context, req *AddAccountRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	resp := new(UserResponse)
	if err := c.invoke(ctx, "AddAccount", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) RecordTransaction(ctx context.Context, req *RecordTransactionRequest, opts ...grpc.CallOption) (*RecordTransactionResponse, error) {
	resp := new(RecordTransactionResponse)
	if err := c.invoke(ctx, "RecordTransaction", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ListTransactions(ctx context.Context, req *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	resp := new(ListTransactionsResponse)
	if err := c.invoke(ctx, "ListTransactions", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetMode(ctx context.Context, req *GetModeRequest, opts ...grpc.CallOption) (*GetModeResponse, error) {
	resp := new(GetModeResponse)
	if err := c.invoke(ctx, "GetMode", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetModeRecommendations(ctx context.Context, req *GetModeRecommendationsRequest, opts ...grpc.CallOption) (*RecommendationsResponse, error) {
	resp := new(RecommendationsResponse)
	if err := c.invoke(ctx, "GetModeRecommendations", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetRecommendations(ctx context.Context, req *GetRecommendationsRequest, opts ...grpc.CallOption) (*RecommendationsResponse, error) {
	resp := new(RecommendationsResponse)
	if err := c.invoke(ctx, "GetRecommendations", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CalculateBudget(ctx context.Context, req *CalculateBudgetRequest, opts ...grpc.CallOption) (*CalculateBudgetResponse, error) {
	resp := new(CalculateBudgetResponse)
	if err := c.invoke(ctx, "CalculateBudget", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetBudgetRecommendations(ctx context.Context, req *GetBudgetRecommendationsRequest, opts ...grpc.CallOption) (*GetBudgetRecommendationsResponse, error) {
	resp := new(GetBudgetRecommendationsResponse)
	if err := c.invoke(ctx, "GetBudgetRecommendations", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SetBudgetStrategy(ctx context.Context, req *SetBudgetStrategyRequest, opts ...grpc.CallOption) (*SetBudgetStrategyResponse, error) {
	resp := new(SetBudgetStrategyResponse)
	if err := c.invoke(ctx, "SetBudgetStrategy", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateGoal(ctx context.Context, req *CreateGoalRequest, opts ...grpc.CallOption) (*GoalResponse, error) {
	resp := new(GoalResponse)
	if err := c.invoke(ctx, "CreateGoal", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ContributeToGoal(ctx context.Context, req *ContributeToGoalRequest, opts ...grpc.CallOption) (*GoalResponse, error) {
	resp := new(GoalResponse)
	if err := c.invoke(ctx, "ContributeToGoal", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) WithdrawFromGoal(ctx context.Context, req *WithdrawFromGoalRequest, opts ...grpc.CallOption) (*WithdrawFromGoalResponse, error) {
	resp := new(WithdrawFromGoalResponse)
	if err := c.invoke(ctx, "WithdrawFromGoal", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ListGoals(ctx context.Context, req *ListGoalsRequest, opts ...grpc.CallOption) (*ListGoalsResponse, error) {
	resp := new(ListGoalsResponse)
	if err := c.invoke(ctx, "ListGoals", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetReport(ctx context.Context, req *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	resp := new(GetReportResponse)
	if err := c.invoke(ctx, "GetReport", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) UpdateMarketValue(ctx context.Context, req *UpdateMarketValueRequest, opts ...grpc.CallOption) (*UpdateMarketValueResponse, error) {
	resp := new(UpdateMarketValueResponse)
	if err := c.invoke(ctx, "UpdateMarketValue", req, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}
