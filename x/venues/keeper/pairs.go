package keeper

import (
	"context"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// Routing metadata accessors. The getters deliberately do not error on a
// missing record: an unset path is an empty hop list, an unset fee tier is
// zero, an unset route is the zero PoolRoute. The connectors pass those zero
// values straight to the venue, which rejects them on its own terms.

// SetTokenPath stores the hop path for a directional pair.
func (k Keeper) SetTokenPath(ctx context.Context, path types.TokenPath) error {
	params := k.GetParams(ctx)
	if err := path.Validate(params.MaxPathHops); err != nil {
		return err
	}

	bz, err := json.Marshal(path)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.TokenPathKey(path.TokenIn, path.TokenOut), bz)
	return nil
}

// GetTokenPath returns the hop path for a directional pair, or an empty path
// record when none is configured.
func (k Keeper) GetTokenPath(ctx context.Context, tokenIn, tokenOut string) types.TokenPath {
	bz := k.getStore(ctx).Get(types.TokenPathKey(tokenIn, tokenOut))
	if bz == nil {
		return types.TokenPath{TokenIn: tokenIn, TokenOut: tokenOut}
	}

	var path types.TokenPath
	if err := json.Unmarshal(bz, &path); err != nil {
		return types.TokenPath{TokenIn: tokenIn, TokenOut: tokenOut}
	}
	return path
}

// IterateTokenPaths calls fn for every stored hop path, stopping early when
// fn returns true.
func (k Keeper) IterateTokenPaths(ctx context.Context, fn func(path types.TokenPath) bool) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.TokenPathKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var path types.TokenPath
		if err := json.Unmarshal(iterator.Value(), &path); err != nil {
			continue
		}
		if fn(path) {
			break
		}
	}
}

// SetPairFee stores the fee record for a pair under both orderings, so
// lookups resolve regardless of swap direction. The denoms live in the value;
// keys are never reparsed, so denoms containing "/" (ibc/..., factory/...)
// round-trip intact.
func (k Keeper) SetPairFee(ctx context.Context, tokenA, tokenB string, feeTier uint32) {
	store := k.getStore(ctx)
	for _, record := range []types.PairFee{
		{TokenA: tokenA, TokenB: tokenB, FeeTier: feeTier},
		{TokenA: tokenB, TokenB: tokenA, FeeTier: feeTier},
	} {
		bz, err := json.Marshal(record)
		if err != nil {
			panic(err)
		}
		store.Set(types.PairFeeKey(record.TokenA, record.TokenB), bz)
	}
}

// GetPairFee returns the fee tier for a pair, or zero when none is
// configured.
func (k Keeper) GetPairFee(ctx context.Context, tokenA, tokenB string) uint32 {
	bz := k.getStore(ctx).Get(types.PairFeeKey(tokenA, tokenB))
	if bz == nil {
		return 0
	}

	var fee types.PairFee
	if err := json.Unmarshal(bz, &fee); err != nil {
		return 0
	}
	return fee.FeeTier
}

// IteratePairFees calls fn for every stored fee record, both orderings
// included, stopping early when fn returns true.
func (k Keeper) IteratePairFees(ctx context.Context, fn func(tokenA, tokenB string, feeTier uint32) bool) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PairFeeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var fee types.PairFee
		if err := json.Unmarshal(iterator.Value(), &fee); err != nil {
			continue
		}
		if fn(fee.TokenA, fee.TokenB, fee.FeeTier) {
			break
		}
	}
}

// SetPoolRoute stores the vault route for a pair under its order-independent
// key.
func (k Keeper) SetPoolRoute(ctx context.Context, route types.PoolRoute) error {
	if err := route.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(route)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.PoolRouteKey(route.TokenA, route.TokenB), bz)
	return nil
}

// GetPoolRoute returns the vault route for a pair, or the zero route when
// none is configured.
func (k Keeper) GetPoolRoute(ctx context.Context, tokenA, tokenB string) types.PoolRoute {
	bz := k.getStore(ctx).Get(types.PoolRouteKey(tokenA, tokenB))
	if bz == nil {
		return types.PoolRoute{}
	}

	var route types.PoolRoute
	if err := json.Unmarshal(bz, &route); err != nil {
		return types.PoolRoute{}
	}
	return route
}

// IteratePoolRoutes calls fn for every stored pool route, stopping early when
// fn returns true.
func (k Keeper) IteratePoolRoutes(ctx context.Context, fn func(route types.PoolRoute) bool) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolRouteKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var route types.PoolRoute
		if err := json.Unmarshal(iterator.Value(), &route); err != nil {
			continue
		}
		if fn(route) {
			break
		}
	}
}

// SetActiveSharePool selects the internal liquidity pool by registered name.
func (k Keeper) SetActiveSharePool(ctx context.Context, name string) error {
	if _, ok := k.sharePools[name]; !ok {
		return types.ErrNoSharePool.Wrapf("share pool %q is not registered", name)
	}
	k.getStore(ctx).Set(types.ActiveSharePoolKey, []byte(name))
	return nil
}

// GetActiveSharePoolName returns the name of the selected share pool, empty
// when none has been selected.
func (k Keeper) GetActiveSharePoolName(ctx context.Context) string {
	return string(k.getStore(ctx).Get(types.ActiveSharePoolKey))
}

// activeSharePool resolves the selected share pool.
func (k Keeper) activeSharePool(ctx context.Context) (types.SharePool, error) {
	name := k.GetActiveSharePoolName(ctx)
	if name == "" {
		return nil, types.ErrNoSharePool
	}
	pool, ok := k.sharePools[name]
	if !ok {
		return nil, types.ErrNoSharePool.Wrapf("selected share pool %q is no longer registered", name)
	}
	return pool, nil
}
