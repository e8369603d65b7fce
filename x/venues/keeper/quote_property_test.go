package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	keepertest "github.com/meshswap/meshswap/testutil/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// TestQuoteRoundTrip_FeePool checks the round-trip law on the fee-pool
// quoter: the input quoted for the output of an exact-in quote never exceeds
// the original input. Venue rounding may only make the round trip cheaper.
func TestQuoteRoundTrip_FeePool(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx, mocks := keepertest.VenuesKeeper(t)

		outPerIn := rapid.Int64Range(1, 1000).Draw(rt, "outPerIn")
		inPerOut := rapid.Int64Range(1, 1000).Draw(rt, "inPerOut")
		amountIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(rt, "amountIn"))

		mocks.Tiered.SetPool("uusdc", "uweth", 500, keepertest.NewPairRate(outPerIn, inPerOut))
		k.SetPairFee(ctx, "uusdc", "uweth", 500)

		connector, err := k.Connector(types.VenueFeePool)
		require.NoError(t, err)

		out, err := connector.GetQuoteIn(ctx, "uusdc", "uweth", amountIn)
		require.NoError(t, err)
		if out.IsZero() {
			return
		}

		roundTrip, err := connector.GetQuoteOut(ctx, "uusdc", "uweth", out)
		require.NoError(t, err)
		require.True(t, roundTrip.LTE(amountIn),
			"round trip %s exceeds original input %s", roundTrip, amountIn)
		require.True(t, roundTrip.IsPositive())
	})
}

// TestQuoteRoundTrip_Share checks the same law on the closed-form share
// quoter across prices.
func TestQuoteRoundTrip_Share(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx, mocks := keepertest.VenuesKeeper(t)
		require.NoError(t, k.SelectSharePool(ctx, keepertest.Admin, "main"))

		num := rapid.Int64Range(1, 10_000).Draw(rt, "priceNum")
		den := rapid.Int64Range(1, 10_000).Draw(rt, "priceDen")
		price := math.LegacyNewDec(num).Quo(math.LegacyNewDec(den))
		if !price.IsPositive() {
			return
		}
		mocks.SharePool.SetPrice(price)

		amountIn := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(rt, "amountIn"))

		connector, err := k.Connector(types.VenueShare)
		require.NoError(t, err)

		shares, err := connector.GetQuoteIn(ctx, "uusdc", "ushare", amountIn)
		require.NoError(t, err)
		if shares.IsZero() {
			return
		}

		// The ceil-rounded input for the floor-rounded share amount stays
		// within one price unit of the original input.
		roundTrip, err := connector.GetQuoteOut(ctx, "uusdc", "ushare", shares)
		require.NoError(t, err)
		bound := math.LegacyNewDecFromInt(amountIn).Add(price).Ceil().TruncateInt()
		require.True(t, roundTrip.LTE(bound),
			"round trip %s exceeds %s at price %s", roundTrip, bound, price)
	})
}
