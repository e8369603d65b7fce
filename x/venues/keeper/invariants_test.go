package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meshswap/meshswap/testutil/keeper"
	"github.com/meshswap/meshswap/x/venues/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// TestInvariants_CleanState holds on a freshly configured keeper.
func TestInvariants_CleanState(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	k.SetPairFee(ctx, "uusdc", "uweth", 500)
	require.NoError(t, k.RegisterPoolRoute(ctx, keepertest.Admin, "uusdc", "uweth", "pool-7"))
	require.NoError(t, k.RegisterTokenPath(ctx, keepertest.Admin, "uusdc", "uweth", []string{"uusdc", "uweth"}))

	msg, broken := keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)

	// Still holds after a swap.
	mocks.Tiered.SetPool("uusdc", "uweth", 500, keepertest.NewPairRate(1, 2))
	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueFeePool)
	require.NoError(t, err)
	_, err = connector.Swap(ctx, keepertest.Trader, "uusdc", "uweth", math.NewInt(1000), math.NewInt(100))
	require.NoError(t, err)

	msg, broken = keeper.AllInvariants(*k)(ctx)
	require.False(t, broken, msg)
}

// TestInvariants_SlashedDenomFee holds for a fee record on a voucher-style
// denom containing "/", and exports the record with its denoms intact.
func TestInvariants_SlashedDenomFee(t *testing.T) {
	k, ctx, _ := keepertest.VenuesKeeper(t)

	const voucher = "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"
	k.SetPairFee(ctx, voucher, "uatom", 500)

	msg, broken := keeper.PairFeeSymmetryInvariant(*k)(ctx)
	require.False(t, broken, msg)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, []types.PairFee{{TokenA: voucher, TokenB: "uatom", FeeTier: 500}}, exported.PairFees)
}

// TestInvariants_DetectStaleLock flags a lock left in the store.
func TestInvariants_DetectStaleLock(t *testing.T) {
	k, ctx, _ := keepertest.VenuesKeeper(t)

	ctx.KVStore(keeper.StoreKeyForTesting(k)).Set(types.SwapLockKey(string(types.VenuePath)), []byte{1})

	msg, broken := keeper.NoStaleSwapLocksInvariant(*k)(ctx)
	require.True(t, broken, msg)
}
