package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// Connector is the uniform call surface over one external venue. The meaning
// of amountA/amountB depends on the venue's fill mode:
//
//	path:    amountA = exact input, amountB = minimum output (router-enforced)
//	feepool: amountA = input budget, amountB = exact output
//	batch:   amountA = input budget, amountB = exact output
//	share:   amountA = input budget, amountB = exact shares to mint
//
// Swap returns the output credited by the venue. Budget-mode connectors
// refund unspent input to the caller.
type Connector interface {
	Swap(ctx context.Context, caller sdk.AccAddress, tokenIn, tokenOut string, amountA, amountB math.Int) (math.Int, error)
	GetQuoteIn(ctx context.Context, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error)
	GetQuoteOut(ctx context.Context, tokenIn, tokenOut string, amountOut math.Int) (math.Int, error)
}

// Connector returns the connector for the given venue kind.
func (k Keeper) Connector(kind types.VenueKind) (Connector, error) {
	switch kind {
	case types.VenuePath:
		return pathConnector{k}, nil
	case types.VenueFeePool:
		return feePoolConnector{k}, nil
	case types.VenueBatch:
		return batchConnector{k}, nil
	case types.VenueShare:
		return shareConnector{k}, nil
	}
	return nil, types.ErrInvalidVenue.Wrapf("unknown venue kind %q", kind)
}

// venueCall invokes the external venue with the module account as payer.
type venueCall func(ctx context.Context, payer sdk.AccAddress, deadline int64) error

// swapPlan describes one connector execution for the shared flow below.
type swapPlan struct {
	venue    types.VenueKind
	tokenIn  string
	tokenOut string

	// budgetIn is pulled from the caller up front; whatever the venue does
	// not consume is refunded.
	budgetIn math.Int

	// minReceived, when set, is the adapter-side floor on the measured
	// output. Venues that enforce their own floor leave it nil.
	minReceived *math.Int

	// retainOutput keeps the received output in the module account instead
	// of forwarding it to the caller.
	retainOutput bool

	// graceSeconds extends the venue deadline past the block time.
	graceSeconds int64

	call venueCall
}

// executeSwap runs the shared connector flow: pull the input budget into the
// module account, invoke the venue with the module account as payer, measure
// what was consumed and what was received off the bank balances, refund the
// unspent budget and forward the output as-received. Balance measurement
// rather than trusting venue return values keeps the accounting correct for
// fee-on-transfer style shortfalls.
func (k Keeper) executeSwap(ctx context.Context, caller sdk.AccAddress, plan swapPlan) (math.Int, error) {
	start := time.Now()
	defer func() {
		k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	}()

	fail := func(err error) (math.Int, error) {
		k.metrics.SwapsTotal.WithLabelValues(string(plan.venue), "failed").Inc()
		return math.ZeroInt(), err
	}

	if plan.tokenIn == "" || plan.tokenOut == "" {
		return fail(types.ErrInvalidToken.Wrap("token denominations cannot be empty"))
	}
	if plan.tokenIn == plan.tokenOut {
		return fail(types.ErrInvalidToken.Wrap("input and output tokens must be different"))
	}
	if plan.budgetIn.IsNil() || !plan.budgetIn.IsPositive() {
		return fail(types.ErrInvalidAmount.Wrap("input amount must be positive"))
	}

	if err := k.acquireSwapLock(ctx, plan.venue); err != nil {
		return fail(err)
	}
	defer k.releaseSwapLock(ctx, plan.venue)

	moduleAddr := k.ModuleAddress()

	pull := sdk.NewCoins(sdk.NewCoin(plan.tokenIn, plan.budgetIn))
	if err := k.bankKeeper.SendCoins(ctx, caller, moduleAddr, pull); err != nil {
		return fail(types.ErrInvalidAmount.Wrapf("pull input: %s", err))
	}

	balInBefore := k.bankKeeper.GetBalance(ctx, moduleAddr, plan.tokenIn).Amount
	balOutBefore := k.bankKeeper.GetBalance(ctx, moduleAddr, plan.tokenOut).Amount

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	deadline := sdkCtx.BlockTime().Unix() + plan.graceSeconds

	if err := plan.call(ctx, moduleAddr, deadline); err != nil {
		return fail(err)
	}

	consumed := balInBefore.Sub(k.bankKeeper.GetBalance(ctx, moduleAddr, plan.tokenIn).Amount)
	received := k.bankKeeper.GetBalance(ctx, moduleAddr, plan.tokenOut).Amount.Sub(balOutBefore)
	if consumed.IsNegative() {
		consumed = math.ZeroInt()
	}

	if plan.minReceived != nil && received.LT(*plan.minReceived) {
		return fail(types.ErrInsufficientOutput.Wrapf("venue %s delivered %s of %s, need %s",
			plan.venue, received, plan.tokenOut, plan.minReceived))
	}

	refund := plan.budgetIn.Sub(consumed)
	if refund.IsPositive() {
		refundCoins := sdk.NewCoins(sdk.NewCoin(plan.tokenIn, refund))
		if err := k.bankKeeper.SendCoins(ctx, moduleAddr, caller, refundCoins); err != nil {
			return fail(types.ErrVenueFailure.Wrapf("refund unspent input: %s", err))
		}
		k.metrics.RefundsTotal.WithLabelValues(string(plan.venue)).Inc()
	}

	if !plan.retainOutput && received.IsPositive() {
		out := sdk.NewCoins(sdk.NewCoin(plan.tokenOut, received))
		if err := k.bankKeeper.SendCoins(ctx, moduleAddr, caller, out); err != nil {
			return fail(types.ErrVenueFailure.Wrapf("forward output: %s", err))
		}
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVenueSwap,
			sdk.NewAttribute(types.AttributeKeyVenue, string(plan.venue)),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, plan.tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, plan.tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, consumed.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, received.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
		),
	)

	k.Logger(ctx).Debug("venue swap executed",
		"venue", plan.venue,
		"caller", caller.String(),
		"token_in", plan.tokenIn,
		"token_out", plan.tokenOut,
		"consumed", consumed.String(),
		"received", received.String(),
		"refund", refund.String(),
	)

	k.metrics.SwapsTotal.WithLabelValues(string(plan.venue), "success").Inc()
	return received, nil
}

// validateQuoteArgs runs the shared argument checks for the quote facade.
func validateQuoteArgs(tokenIn, tokenOut string, amount math.Int) error {
	if tokenIn == "" || tokenOut == "" {
		return types.ErrInvalidToken.Wrap("token denominations cannot be empty")
	}
	if tokenIn == tokenOut {
		return types.ErrInvalidToken.Wrap("input and output tokens must be different")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}
