package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/meshswap/meshswap/testutil/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// TestGenesis_RoundTrip seeds routing metadata through a genesis state and
// exports an equivalent one.
func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx, _ := keepertest.VenuesKeeper(t)

	genState := types.GenesisState{
		Params: types.Params{BatchDeadlineGraceSeconds: 300, MaxPathHops: 4},
		TokenPaths: []types.TokenPath{
			{TokenIn: "uusdc", TokenOut: "uweth", Hops: []string{"uusdc", "uatom", "uweth"}},
		},
		PairFees: []types.PairFee{
			{TokenA: "uusdc", TokenB: "uweth", FeeTier: 500},
		},
		PoolRoutes: []types.PoolRoute{
			{PoolID: "pool-7", TokenA: "uusdc", TokenB: "uweth"},
		},
		ActiveSharePool: "main",
	}
	require.NoError(t, genState.Validate())
	require.NoError(t, k.InitGenesis(ctx, genState))

	require.Equal(t, int64(300), k.GetParams(ctx).BatchDeadlineGraceSeconds)
	require.Equal(t, []string{"uusdc", "uatom", "uweth"}, k.GetTokenPath(ctx, "uusdc", "uweth").Hops)
	require.Equal(t, uint32(500), k.GetPairFee(ctx, "uweth", "uusdc"))
	require.Equal(t, "pool-7", k.GetPoolRoute(ctx, "uweth", "uusdc").PoolID)
	require.Equal(t, "main", k.GetActiveSharePoolName(ctx))

	exported := k.ExportGenesis(ctx)
	require.Equal(t, genState.Params, exported.Params)
	require.Equal(t, genState.TokenPaths, exported.TokenPaths)
	require.Equal(t, genState.PoolRoutes, exported.PoolRoutes)
	require.Equal(t, genState.ActiveSharePool, exported.ActiveSharePool)

	// Fees come back once under the canonical ordering.
	require.Len(t, exported.PairFees, 1)
	require.Equal(t, uint32(500), exported.PairFees[0].FeeTier)
}

// TestGenesis_RejectsBadPath fails init on a path that violates the hop
// bound in the same genesis state.
func TestGenesis_RejectsBadPath(t *testing.T) {
	k, ctx, _ := keepertest.VenuesKeeper(t)

	genState := types.GenesisState{
		Params: types.Params{BatchDeadlineGraceSeconds: 300, MaxPathHops: 2},
		TokenPaths: []types.TokenPath{
			{TokenIn: "uusdc", TokenOut: "uweth", Hops: []string{"uusdc", "uatom", "uweth"}},
		},
	}
	require.Error(t, genState.Validate())
	require.Error(t, k.InitGenesis(ctx, genState))
}
