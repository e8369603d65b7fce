package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// batchConnector fronts the generalized vault. amountA is the input budget,
// amountB the exact output; the pool is resolved from the pair's registered
// route. The vault's fill is re-measured against amountB after the call, and
// the deadline carries the configured grace past the block time.
type batchConnector struct {
	Keeper
}

var _ Connector = batchConnector{}

func (c batchConnector) Swap(ctx context.Context, caller sdk.AccAddress, tokenIn, tokenOut string, maxAmountIn, amountOut math.Int) (math.Int, error) {
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("output amount must be positive")
	}

	// An unregistered pair yields an empty pool id; the vault rejects it.
	route := c.GetPoolRoute(ctx, tokenIn, tokenOut)
	params := c.GetParams(ctx)

	return c.executeSwap(ctx, caller, swapPlan{
		venue:        types.VenueBatch,
		tokenIn:      tokenIn,
		tokenOut:     tokenOut,
		budgetIn:     maxAmountIn,
		minReceived:  &amountOut,
		graceSeconds: params.BatchDeadlineGraceSeconds,
		call: func(ctx context.Context, payer sdk.AccAddress, deadline int64) error {
			if _, err := c.batchVault.SwapExactOut(ctx, payer, route.PoolID, tokenIn, tokenOut, amountOut, maxAmountIn, deadline); err != nil {
				return types.ErrVenueFailure.Wrapf("batch vault: %s", err)
			}
			return nil
		},
	})
}

func (c batchConnector) GetQuoteIn(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountIn); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenueBatch), "in").Inc()

	route := c.GetPoolRoute(ctx, tokenIn, tokenOut)
	out, err := c.batchVault.QueryExactIn(ctx, route.PoolID, tokenIn, tokenOut, amountIn)
	if err != nil {
		return math.ZeroInt(), types.ErrVenueFailure.Wrapf("batch vault query: %s", err)
	}
	return out, nil
}

func (c batchConnector) GetQuoteOut(ctx context.Context, tokenIn, tokenOut string, amountOut math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountOut); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenueBatch), "out").Inc()

	route := c.GetPoolRoute(ctx, tokenIn, tokenOut)
	in, err := c.batchVault.QueryExactOut(ctx, route.PoolID, tokenIn, tokenOut, amountOut)
	if err != nil {
		return math.ZeroInt(), types.ErrVenueFailure.Wrapf("batch vault query: %s", err)
	}
	return in, nil
}
