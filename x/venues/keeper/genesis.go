package keeper

import (
	"context"
	"fmt"

	"github.com/meshswap/meshswap/x/venues/types"
)

// InitGenesis initializes the venues module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	for _, path := range genState.TokenPaths {
		if err := k.SetTokenPath(ctx, path); err != nil {
			return fmt.Errorf("failed to set token path %s/%s: %w", path.TokenIn, path.TokenOut, err)
		}
	}

	for _, fee := range genState.PairFees {
		k.SetPairFee(ctx, fee.TokenA, fee.TokenB, fee.FeeTier)
	}

	for _, route := range genState.PoolRoutes {
		if err := k.SetPoolRoute(ctx, route); err != nil {
			return fmt.Errorf("failed to set pool route %s/%s: %w", route.TokenA, route.TokenB, err)
		}
	}

	// The named pool may be registered after keeper construction, so the
	// reference is written raw rather than through SetActiveSharePool.
	if genState.ActiveSharePool != "" {
		k.getStore(ctx).Set(types.ActiveSharePoolKey, []byte(genState.ActiveSharePool))
	}

	return nil
}

// ExportGenesis exports the venues module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:          k.GetParams(ctx),
		TokenPaths:      []types.TokenPath{},
		PairFees:        []types.PairFee{},
		PoolRoutes:      []types.PoolRoute{},
		ActiveSharePool: k.GetActiveSharePoolName(ctx),
	}

	k.IterateTokenPaths(ctx, func(path types.TokenPath) bool {
		genState.TokenPaths = append(genState.TokenPaths, path)
		return false
	})

	// Fees are stored under both orderings; export only the canonical one.
	k.IteratePairFees(ctx, func(tokenA, tokenB string, feeTier uint32) bool {
		if tokenA > tokenB {
			return false
		}
		genState.PairFees = append(genState.PairFees, types.PairFee{TokenA: tokenA, TokenB: tokenB, FeeTier: feeTier})
		return false
	})

	k.IteratePoolRoutes(ctx, func(route types.PoolRoute) bool {
		genState.PoolRoutes = append(genState.PoolRoutes, route)
		return false
	})

	return &genState
}
