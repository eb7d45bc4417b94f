package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "capacitor.v1.FinanceService"

// FinanceServiceServer is the server API for the finance service
type FinanceServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*UserResponse, error)
	GetUser(context.Context, *GetUserRequest) (*UserResponse, error)
	AddAccount(context.Context, *AddAccountRequest) (*UserResponse, error)
	RecordTransaction(context.Context, *RecordTransactionRequest) (*RecordTransactionResponse, error)
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	GetMode(context.Context, *GetModeRequest) (*GetModeResponse, error)
	GetModeRecommendations(context.Context, *GetModeRecommendationsRequest) (*RecommendationsResponse, error)
	GetRecommendations(context.Context, *GetRecommendationsRequest) (*RecommendationsResponse, error)
	CalculateBudget(context.Context, *CalculateBudgetRequest) (*CalculateBudgetResponse, error)
	GetBudgetRecommendations(context.Context, *GetBudgetRecommendationsRequest) (*GetBudgetRecommendationsResponse, error)
	SetBudgetStrategy(context.Context, *SetBudgetStrategyRequest) (*SetBudgetStrategyResponse, error)
	CreateGoal(context.Context, *CreateGoalRequest) (*GoalResponse, error)
	ContributeToGoal(context.Context, *ContributeToGoalRequest) (*GoalResponse, error)
	WithdrawFromGoal(context.Context, *WithdrawFromGoalRequest) (*WithdrawFromGoalResponse, error)
	ListGoals(context.Context, *ListGoalsRequest) (*ListGoalsResponse, error)
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
	UpdateMarketValue(context.Context, *UpdateMarketValueRequest) (*UpdateMarketValueResponse, error)
}

// FinanceServiceDesc describes the service for grpc.Server.RegisterService.
// Messages are encoded with the json codec, so no generated code is involved.
var FinanceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FinanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateUser", FinanceServiceServer.CreateUser),
		unary("GetUser", FinanceServiceServer.GetUser),
		unary("AddAccount", FinanceServiceServer.AddAccount),
		unary("RecordTransaction", FinanceServiceServer.RecordTransaction),
		unary("ListTransactions", FinanceServiceServer.ListTransactions),
		unary("GetMode", FinanceServiceServer.GetMode),
		unary("GetModeRecommendations", FinanceServiceServer.GetModeRecommendations),
		unary("GetRecommendations", FinanceServiceServer.GetRecommendations),
		unary("CalculateBudget", FinanceServiceServer.CalculateBudget),
		unary("GetBudgetRecommendations", FinanceServiceServer.GetBudgetRecommendations),
		unary("SetBudgetStrategy", FinanceServiceServer.SetBudgetStrategy),
		unary("CreateGoal", FinanceServiceServer.CreateGoal),
		unary("ContributeToGoal", FinanceServiceServer.ContributeToGoal),
		unary("WithdrawFromGoal", FinanceServiceServer.WithdrawFromGoal),
		unary("ListGoals", FinanceServiceServer.ListGoals),
		unary("GetReport", FinanceServiceServer.GetReport),
		unary("UpdateMarketValue", FinanceServiceServer.UpdateMarketValue),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterFinanceServiceServer registers srv with s
func RegisterFinanceServiceServer(s grpc.ServiceRegistrar, srv FinanceServiceServer) {
	s.RegisterService(&FinanceServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary builds the method descriptor for one request/response RPC
func unary[Req, Resp any](name string, call func(FinanceServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(FinanceServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(FinanceServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
