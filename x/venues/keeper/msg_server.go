package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the venues MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterTokenPath handles hop-path registration for the multi-hop venue
func (ms msgServer) RegisterTokenPath(goCtx context.Context, msg *types.MsgRegisterTokenPath) (*types.MsgRegisterTokenPathResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "register token path")
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	if err := ms.Keeper.RegisterTokenPath(goCtx, caller, msg.TokenIn, msg.TokenOut, msg.Hops); err != nil {
		return nil, errorsmod.Wrap(err, "register token path")
	}

	return &types.MsgRegisterTokenPathResponse{}, nil
}

// SetPairFee handles fee-tier configuration for the single-pool venue
func (ms msgServer) SetPairFee(goCtx context.Context, msg *types.MsgSetPairFee) (*types.MsgSetPairFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "set pair fee")
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	if err := ms.Keeper.SetPairFeeTier(goCtx, caller, msg.TokenA, msg.TokenB, msg.FeeTier); err != nil {
		return nil, errorsmod.Wrap(err, "set pair fee")
	}

	return &types.MsgSetPairFeeResponse{}, nil
}

// RegisterPoolRoute handles pool-route registration for the batch venue
func (ms msgServer) RegisterPoolRoute(goCtx context.Context, msg *types.MsgRegisterPoolRoute) (*types.MsgRegisterPoolRouteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "register pool route")
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	if err := ms.Keeper.RegisterPoolRoute(goCtx, caller, msg.TokenA, msg.TokenB, msg.PoolID); err != nil {
		return nil, errorsmod.Wrap(err, "register pool route")
	}

	return &types.MsgRegisterPoolRouteResponse{}, nil
}

// SetSharePool handles selection of the active internal liquidity pool
func (ms msgServer) SetSharePool(goCtx context.Context, msg *types.MsgSetSharePool) (*types.MsgSetSharePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "set share pool")
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	if err := ms.Keeper.SelectSharePool(goCtx, caller, msg.Name); err != nil {
		return nil, errorsmod.Wrap(err, "set share pool")
	}

	return &types.MsgSetSharePoolResponse{}, nil
}

// WithdrawDust handles the owner-only residual balance sweep
func (ms msgServer) WithdrawDust(goCtx context.Context, msg *types.MsgWithdrawDust) (*types.MsgWithdrawDustResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(err, "withdraw dust")
	}

	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidAddress, err.Error())
	}

	if err := ms.Keeper.WithdrawDust(goCtx, caller, msg.Token, msg.Amount); err != nil {
		return nil, errorsmod.Wrap(err, "withdraw dust")
	}

	return &types.MsgWithdrawDustResponse{}, nil
}
