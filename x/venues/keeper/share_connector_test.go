package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meshswap/meshswap/testutil/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// TestShareSwap_MintRetainsShares mints an exact share amount and verifies
// the shares stay in the module account while the unspent budget flows back.
func TestShareSwap_MintRetainsShares(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	require.NoError(t, k.SelectSharePool(ctx, keepertest.Admin, "main"))
	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueShare)
	require.NoError(t, err)

	// Price 2: 100 shares cost 200 uusdc of the 500 budget.
	minted, err := connector.Swap(ctx, keepertest.Trader, "uusdc", "ushare", math.NewInt(500), math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), minted)

	moduleAddr := k.ModuleAddress()
	require.Equal(t, math.NewInt(100), mocks.Bank.GetBalance(ctx, moduleAddr, "ushare").Amount)
	require.True(t, mocks.Bank.GetBalance(ctx, keepertest.Trader, "ushare").Amount.IsZero())
	require.Equal(t, math.NewInt(800), mocks.Bank.GetBalance(ctx, keepertest.Trader, "uusdc").Amount)
	require.True(t, mocks.Bank.GetBalance(ctx, moduleAddr, "uusdc").Amount.IsZero())
}

// TestShareSwap_NoPoolSelected fails before any funds move.
func TestShareSwap_NoPoolSelected(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueShare)
	require.NoError(t, err)

	_, err = connector.Swap(ctx, keepertest.Trader, "uusdc", "ushare", math.NewInt(500), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrNoSharePool)
	require.Equal(t, math.NewInt(1000), mocks.Bank.GetBalance(ctx, keepertest.Trader, "uusdc").Amount)
}

// TestShareSwap_ShortMint trips the floor when the pool mints fewer shares
// than requested.
func TestShareSwap_ShortMint(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	require.NoError(t, k.SelectSharePool(ctx, keepertest.Operator, "main"))
	mocks.SharePool.MintShortfall = math.NewInt(1)
	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueShare)
	require.NoError(t, err)

	_, err = connector.Swap(ctx, keepertest.Trader, "uusdc", "ushare", math.NewInt(500), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInsufficientOutput)
}

// TestShareSwap_WrongShareDenom rejects an output denom that is not the
// pool's share denom.
func TestShareSwap_WrongShareDenom(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	require.NoError(t, k.SelectSharePool(ctx, keepertest.Admin, "main"))
	keepertest.FundTrader(mocks.Bank, "uusdc", 1000)

	connector, err := k.Connector(types.VenueShare)
	require.NoError(t, err)

	_, err = connector.Swap(ctx, keepertest.Trader, "uusdc", "uweth", math.NewInt(500), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidToken)
}

// TestShareQuotes_Rounding quotes both directions and checks the rounding:
// input-to-shares floors, shares-to-input ceils.
func TestShareQuotes_Rounding(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	require.NoError(t, k.SelectSharePool(ctx, keepertest.Admin, "main"))
	mocks.SharePool.SetPrice(math.LegacyMustNewDecFromStr("2.5"))

	connector, err := k.Connector(types.VenueShare)
	require.NoError(t, err)

	// 101 / 2.5 = 40.4 -> 40 shares.
	shares, err := connector.GetQuoteIn(ctx, "uusdc", "ushare", math.NewInt(101))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(40), shares)

	// 41 * 2.5 = 102.5 -> 103 uusdc.
	in, err := connector.GetQuoteOut(ctx, "uusdc", "ushare", math.NewInt(41))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(103), in)
}

// TestSelectSharePool_Gating requires a pool role and a registered name.
func TestSelectSharePool_Gating(t *testing.T) {
	k, ctx, _ := keepertest.VenuesKeeper(t)

	err := k.SelectSharePool(ctx, keepertest.Stranger, "main")
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.Empty(t, k.GetActiveSharePoolName(ctx))

	err = k.SelectSharePool(ctx, keepertest.Admin, "missing")
	require.ErrorIs(t, err, types.ErrNoSharePool)

	require.NoError(t, k.SelectSharePool(ctx, keepertest.Admin, "main"))
	require.Equal(t, "main", k.GetActiveSharePoolName(ctx))
}
