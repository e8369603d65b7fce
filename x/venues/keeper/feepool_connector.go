package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// feePoolConnector fronts the single-pool exact-output router. amountA is
// the input budget, amountB the exact output; the pool is selected by the
// pair's configured fee tier. The router guarantees the output amount, so no
// adapter-side floor is applied; unspent budget is refunded.
type feePoolConnector struct {
	Keeper
}

var _ Connector = feePoolConnector{}

func (c feePoolConnector) Swap(ctx context.Context, caller sdk.AccAddress, tokenIn, tokenOut string, maxAmountIn, amountOut math.Int) (math.Int, error) {
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("output amount must be positive")
	}

	// An unconfigured pair yields fee tier zero; the router rejects it.
	feeTier := c.GetPairFee(ctx, tokenIn, tokenOut)

	return c.executeSwap(ctx, caller, swapPlan{
		venue:    types.VenueFeePool,
		tokenIn:  tokenIn,
		tokenOut: tokenOut,
		budgetIn: maxAmountIn,
		call: func(ctx context.Context, payer sdk.AccAddress, deadline int64) error {
			if _, err := c.tieredPool.SwapExactOut(ctx, payer, tokenIn, tokenOut, feeTier, amountOut, maxAmountIn, deadline); err != nil {
				return types.ErrVenueFailure.Wrapf("fee pool router: %s", err)
			}
			return nil
		},
	})
}

func (c feePoolConnector) GetQuoteIn(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountIn); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenueFeePool), "in").Inc()

	feeTier := c.GetPairFee(ctx, tokenIn, tokenOut)
	out, err := c.tieredPool.QuoteExactIn(ctx, tokenIn, tokenOut, feeTier, amountIn)
	if err != nil {
		return math.ZeroInt(), types.ErrVenueFailure.Wrapf("fee pool quote: %s", err)
	}
	return out, nil
}

func (c feePoolConnector) GetQuoteOut(ctx context.Context, tokenIn, tokenOut string, amountOut math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountOut); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenueFeePool), "out").Inc()

	feeTier := c.GetPairFee(ctx, tokenIn, tokenOut)
	in, err := c.tieredPool.QuoteExactOut(ctx, tokenIn, tokenOut, feeTier, amountOut)
	if err != nil {
		return math.ZeroInt(), types.ErrVenueFailure.Wrapf("fee pool quote: %s", err)
	}
	return in, nil
}
