package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meshswap/meshswap/testutil/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// TestBatchSwap_ExactOutWithRefund buys an exact output from the vault pool
// mapped to the pair and refunds the rest of the budget.
func TestBatchSwap_ExactOutWithRefund(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	mocks.Vault.SetPool("pool-7", "uusdc", "uweth", keepertest.NewPairRate(1, 2))
	require.NoError(t, k.RegisterPoolRoute(ctx, keepertest.Admin, "uusdc", "uweth", "pool-7"))

	keepertest.FundTrader(mocks.Bank, "uusdc", 10_000)

	connector, err := k.Connector(types.VenueBatch)
	require.NoError(t, err)

	received, err := connector.Swap(ctx, keepertest.Trader, "uusdc", "uweth", math.NewInt(500), math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), received)

	require.Equal(t, math.NewInt(10_000-200), mocks.Bank.GetBalance(ctx, keepertest.Trader, "uusdc").Amount)
	require.Equal(t, math.NewInt(100), mocks.Bank.GetBalance(ctx, keepertest.Trader, "uweth").Amount)

	moduleAddr := k.ModuleAddress()
	require.True(t, mocks.Bank.GetBalance(ctx, moduleAddr, "uusdc").Amount.IsZero())
	require.True(t, mocks.Bank.GetBalance(ctx, moduleAddr, "uweth").Amount.IsZero())
}

// TestBatchSwap_RouteSymmetry registers the route once and swaps in both
// directions through the same pool.
func TestBatchSwap_RouteSymmetry(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	mocks.Vault.SetPool("pool-7", "uusdc", "uweth", keepertest.NewPairRate(1, 2))
	require.NoError(t, k.RegisterPoolRoute(ctx, keepertest.Admin, "uweth", "uusdc", "pool-7"))

	require.Equal(t, "pool-7", k.GetPoolRoute(ctx, "uusdc", "uweth").PoolID)
	require.Equal(t, "pool-7", k.GetPoolRoute(ctx, "uweth", "uusdc").PoolID)

	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)
	keepertest.FundTrader(mocks.Bank, "uweth", 1000)

	connector, err := k.Connector(types.VenueBatch)
	require.NoError(t, err)

	out, err := connector.Swap(ctx, keepertest.Trader, "uusdc", "uweth", math.NewInt(200), math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), out)

	out, err = connector.Swap(ctx, keepertest.Trader, "uweth", "uusdc", math.NewInt(100), math.NewInt(200))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), out)
}

// TestBatchSwap_ShortDelivery trips the adapter-side floor when the vault
// delivers less than the requested output.
func TestBatchSwap_ShortDelivery(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	mocks.Vault.SetPool("pool-7", "uusdc", "uweth", keepertest.NewPairRate(1, 2))
	mocks.Vault.DeliverShortfall = math.NewInt(1)
	require.NoError(t, k.RegisterPoolRoute(ctx, keepertest.Admin, "uusdc", "uweth", "pool-7"))

	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueBatch)
	require.NoError(t, err)

	_, err = connector.Swap(ctx, keepertest.Trader, "uusdc", "uweth", math.NewInt(500), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientOutput)
}

// TestBatchSwap_UnregisteredPair passes the empty pool id to the vault and
// surfaces its rejection.
func TestBatchSwap_UnregisteredPair(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueBatch)
	require.NoError(t, err)

	_, err = connector.Swap(ctx, keepertest.Trader, "uusdc", "uweth", math.NewInt(500), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrVenueFailure)
}

// TestBatchQuotes verifies both query directions against the mock pool.
func TestBatchQuotes(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	mocks.Vault.SetPool("pool-9", "uatom", "umesh", keepertest.NewPairRate(5, 1))
	require.NoError(t, k.RegisterPoolRoute(ctx, keepertest.Admin, "uatom", "umesh", "pool-9"))

	connector, err := k.Connector(types.VenueBatch)
	require.NoError(t, err)

	out, err := connector.GetQuoteIn(ctx, "uatom", "umesh", math.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), out)

	in, err := connector.GetQuoteOut(ctx, "uatom", "umesh", math.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), in)
}
