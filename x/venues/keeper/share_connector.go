package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// shareConnector fronts the selected internal liquidity pool. amountA is the
// input budget, amountB the exact number of shares to mint. Minted shares
// stay in the module account; only the unspent budget flows back to the
// caller. Quotes are closed-form conversions off the pool's share price, as
// the pool has no quoter entry point.
type shareConnector struct {
	Keeper
}

var _ Connector = shareConnector{}

func (c shareConnector) Swap(ctx context.Context, caller sdk.AccAddress, tokenIn, tokenOut string, maxAmountIn, sharesOut math.Int) (math.Int, error) {
	if sharesOut.IsNil() || !sharesOut.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("share amount must be positive")
	}

	pool, err := c.activeSharePool(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if tokenOut != pool.ShareDenom() {
		return math.ZeroInt(), types.ErrInvalidToken.Wrapf("output %s does not match share denom %s", tokenOut, pool.ShareDenom())
	}

	return c.executeSwap(ctx, caller, swapPlan{
		venue:        types.VenueShare,
		tokenIn:      tokenIn,
		tokenOut:     tokenOut,
		budgetIn:     maxAmountIn,
		minReceived:  &sharesOut,
		retainOutput: true,
		call: func(ctx context.Context, payer sdk.AccAddress, _ int64) error {
			if _, _, err := pool.MintShares(ctx, payer, tokenIn, maxAmountIn, sharesOut); err != nil {
				return types.ErrVenueFailure.Wrapf("share pool: %s", err)
			}
			return nil
		},
	})
}

// GetQuoteIn converts an input amount to shares at the current share price,
// rounding down.
func (c shareConnector) GetQuoteIn(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, amountIn); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenueShare), "in").Inc()

	price, err := c.quotePrice(ctx, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return math.LegacyNewDecFromInt(amountIn).Quo(price).TruncateInt(), nil
}

// GetQuoteOut converts a share amount to the input required at the current
// share price, rounding up so the quoted input always covers the mint.
func (c shareConnector) GetQuoteOut(ctx context.Context, tokenIn, tokenOut string, sharesOut math.Int) (math.Int, error) {
	if err := validateQuoteArgs(tokenIn, tokenOut, sharesOut); err != nil {
		return math.ZeroInt(), err
	}
	c.metrics.QuotesTotal.WithLabelValues(string(types.VenueShare), "out").Inc()

	price, err := c.quotePrice(ctx, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return math.LegacyNewDecFromInt(sharesOut).Mul(price).Ceil().TruncateInt(), nil
}

// quotePrice resolves the active pool, checks the share denom and returns a
// usable price.
func (c shareConnector) quotePrice(ctx context.Context, tokenOut string) (math.LegacyDec, error) {
	pool, err := c.activeSharePool(ctx)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if tokenOut != pool.ShareDenom() {
		return math.LegacyZeroDec(), types.ErrInvalidToken.Wrapf("output %s does not match share denom %s", tokenOut, pool.ShareDenom())
	}

	price, err := pool.SharePrice(ctx)
	if err != nil {
		return math.LegacyZeroDec(), types.ErrVenueFailure.Wrapf("share price: %s", err)
	}
	if !price.IsPositive() {
		return math.LegacyZeroDec(), types.ErrVenueFailure.Wrapf("share price %s is not positive", price)
	}
	return price, nil
}
