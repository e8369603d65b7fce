package keeper

import (
	"context"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// Routing configuration entry points. RegisterTokenPath and SelectSharePool
// consult the external role registry; SetPairFeeTier and RegisterPoolRoute
// do not carry a gate.

// RegisterTokenPath stores the hop path for a directional pair on the
// multi-hop venue. The caller must hold a pool role on the registry.
func (k Keeper) RegisterTokenPath(ctx context.Context, caller sdk.AccAddress, tokenIn, tokenOut string, hops []string) error {
	if err := k.checkPoolRole(ctx, caller); err != nil {
		return err
	}

	path := types.TokenPath{TokenIn: tokenIn, TokenOut: tokenOut, Hops: hops}
	if err := k.SetTokenPath(ctx, path); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenPathSet,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyPath, strings.Join(hops, ",")),
		),
	)
	return nil
}

// SetPairFeeTier stores the fee tier for a pair on the single-pool venue,
// for both orderings.
func (k Keeper) SetPairFeeTier(ctx context.Context, caller sdk.AccAddress, tokenA, tokenB string, feeTier uint32) error {
	if tokenA == "" || tokenB == "" {
		return types.ErrInvalidToken.Wrap("token denominations cannot be empty")
	}
	if tokenA == tokenB {
		return types.ErrInvalidRoute.Wrap("pair tokens must be different")
	}

	k.SetPairFee(ctx, tokenA, tokenB, feeTier)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairFeeSet,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenB),
			sdk.NewAttribute(types.AttributeKeyFeeTier, strconv.FormatUint(uint64(feeTier), 10)),
		),
	)
	return nil
}

// RegisterPoolRoute maps a pair to an external vault pool id under an
// order-independent key.
func (k Keeper) RegisterPoolRoute(ctx context.Context, caller sdk.AccAddress, tokenA, tokenB, poolID string) error {
	route := types.PoolRoute{PoolID: poolID, TokenA: tokenA, TokenB: tokenB}
	if err := k.SetPoolRoute(ctx, route); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolRouteSet,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenB),
			sdk.NewAttribute(types.AttributeKeyPoolID, poolID),
		),
	)
	return nil
}

// SelectSharePool switches the share connector to a registered internal
// pool. The caller must hold a pool role on the registry.
func (k Keeper) SelectSharePool(ctx context.Context, caller sdk.AccAddress, name string) error {
	if err := k.checkPoolRole(ctx, caller); err != nil {
		return err
	}
	if err := k.SetActiveSharePool(ctx, name); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSharePoolSet,
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeySharePool, name),
		),
	)
	return nil
}
