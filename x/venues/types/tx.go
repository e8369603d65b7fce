package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	RegisterTokenPath(context.Context, *MsgRegisterTokenPath) (*MsgRegisterTokenPathResponse, error)
	SetPairFee(context.Context, *MsgSetPairFee) (*MsgSetPairFeeResponse, error)
	RegisterPoolRoute(context.Context, *MsgRegisterPoolRoute) (*MsgRegisterPoolRouteResponse, error)
	SetSharePool(context.Context, *MsgSetSharePool) (*MsgSetSharePoolResponse, error)
	WithdrawDust(context.Context, *MsgWithdrawDust) (*MsgWithdrawDustResponse, error)
}

// Response types

// MsgRegisterTokenPathResponse defines the response for RegisterTokenPath
type MsgRegisterTokenPathResponse struct{}

// MsgSetPairFeeResponse defines the response for SetPairFee
type MsgSetPairFeeResponse struct{}

// MsgRegisterPoolRouteResponse defines the response for RegisterPoolRoute
type MsgRegisterPoolRouteResponse struct{}

// MsgSetSharePoolResponse defines the response for SetSharePool
type MsgSetSharePoolResponse struct{}

// MsgWithdrawDustResponse defines the response for WithdrawDust
type MsgWithdrawDustResponse struct{}
