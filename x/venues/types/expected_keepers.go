package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected bank keeper. The module account's balance
// is the connector's working balance; every pull, forward and refund goes
// through SendCoins.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// AccessRegistry is the external role registry consulted for configuration
// calls. It is dereferenced on every call and never cached, so registry-side
// changes take effect on the next call with no module state to invalidate.
type AccessRegistry interface {
	IsPoolAdmin(ctx context.Context, addr sdk.AccAddress) bool
	IsPoolOperations(ctx context.Context, addr sdk.AccAddress) bool
}

// PathRouter is the multi-hop exact-input venue. The router is
// fee-on-transfer tolerant: the amount actually delivered to the payer may
// be below its own reported output.
type PathRouter interface {
	// SwapExactIn swaps amountIn along path, crediting the payer with the
	// output. minAmountOut is enforced by the router, not by the caller.
	SwapExactIn(ctx context.Context, payer sdk.AccAddress, path []string, amountIn, minAmountOut sdkmath.Int, deadline int64) (sdkmath.Int, error)

	QuoteExactIn(ctx context.Context, path []string, amountIn sdkmath.Int) (sdkmath.Int, error)
	QuoteExactOut(ctx context.Context, path []string, amountOut sdkmath.Int) (sdkmath.Int, error)
}

// TieredPoolRouter is the single-pool exact-output venue. Each pair maps to
// one pool selected by fee tier.
type TieredPoolRouter interface {
	// SwapExactOut buys exactly amountOut of tokenOut, spending at most
	// maxAmountIn of tokenIn from the payer. Returns the input actually
	// consumed.
	SwapExactOut(ctx context.Context, payer sdk.AccAddress, tokenIn, tokenOut string, feeTier uint32, amountOut, maxAmountIn sdkmath.Int, deadline int64) (sdkmath.Int, error)

	QuoteExactIn(ctx context.Context, tokenIn, tokenOut string, feeTier uint32, amountIn sdkmath.Int) (sdkmath.Int, error)
	QuoteExactOut(ctx context.Context, tokenIn, tokenOut string, feeTier uint32, amountOut sdkmath.Int) (sdkmath.Int, error)
}

// BatchVault is the generalized vault venue: swaps and queries are keyed by
// an opaque pool identifier.
type BatchVault interface {
	// SwapExactOut buys exactly amountOut of tokenOut from the identified
	// pool, spending at most maxAmountIn. Returns the input consumed.
	SwapExactOut(ctx context.Context, payer sdk.AccAddress, poolID, tokenIn, tokenOut string, amountOut, maxAmountIn sdkmath.Int, deadline int64) (sdkmath.Int, error)

	QueryExactIn(ctx context.Context, poolID, tokenIn, tokenOut string, amountIn sdkmath.Int) (sdkmath.Int, error)
	QueryExactOut(ctx context.Context, poolID, tokenIn, tokenOut string, amountOut sdkmath.Int) (sdkmath.Int, error)
}

// SharePool is an internal liquidity pool that exposes a liquidity-mint call
// and a share-price oracle instead of a router. There is no venue-side quote
// entry point; quoting is a closed-form price conversion.
type SharePool interface {
	// MintShares mints at least sharesOut shares to the payer, consuming at
	// most maxAmountIn of token. Returns input consumed and shares minted;
	// fails rather than minting below sharesOut.
	MintShares(ctx context.Context, payer sdk.AccAddress, token string, maxAmountIn, sharesOut sdkmath.Int) (amountIn, minted sdkmath.Int, err error)

	// SharePrice returns the price of one share in units of the deposit
	// token, as a fixed-point decimal.
	SharePrice(ctx context.Context) (sdkmath.LegacyDec, error)

	// ShareDenom returns the denomination of the minted shares.
	ShareDenom() string
}
