package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// pathConnector fronts the multi-hop exact-input router. amountA is the
// exact input, amountB the minimum output. The minimum is handed to the
// router untouched; the router is the sole enforcer, and the connector
// forwards whatever actually arrives.
type pathConnector struct {
	Keeper
}

var _ Connector = pathConnector{}

func (c pathConnector) Swap(ctx context.Context, caller sdk.AccAddress, tokenIn, tokenOut string, amountIn, minAmountOut math.Int) (math.Int, error) {
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("minimum output cannot be negative")
	}

	// An unregistered pair yields an empty hop list; the router rejects it.
	path := c.GetTokenPath(ctx, tokenIn, tokenOut)

	return c.executeSwap(ctx, caller, swapPlan{
		venue:    types.VenuePath,
		tokenIn:  tokenIn,
		tokenOut: tokenOut,
		budgetIn: amountIn,
		call: func(ctx context.Context, payer sdk.AccAddress, deadline int64) error {
			if _, err := c.pathRouter.SwapExactIn(ctx, payer, path.Hops, amountIn, minAmountOut, deadline); err != nil {
				return types.ErrVenueFailure.Wrapf("path router: %s", err)
			}
			return nil
		},
	})
}

func (c pathConnector) GetQuoteIn(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountIn); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenuePath), "in").Inc()

	path := c.GetTokenPath(ctx, tokenIn, tokenOut)
	out, err := c.pathRouter.QuoteExactIn(ctx, path.Hops, amountIn)
	if err != nil {
		return math.ZeroInt(), types.ErrVenueFailure.Wrapf("path router quote: %s", err)
	}
	return out, nil
}

func (c pathConnector) GetQuoteOut(ctx context.Context, tokenIn, tokenOut string, amountOut math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountOut); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenuePath), "out").Inc()

	path := c.GetTokenPath(ctx, tokenIn, tokenOut)
	in, err := c.pathRouter.QuoteExactOut(ctx, path.Hops, amountOut)
	if err != nil {
		return math.ZeroInt(), types.ErrVenueFailure.Wrapf("path router quote: %s", err)
	}
	return in, nil
}
