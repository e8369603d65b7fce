package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meshswap/meshswap/testutil/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// TestWithdrawDust_OwnerOnly rejects every caller except the owner and
// leaves the module balance untouched on rejection.
func TestWithdrawDust_OwnerOnly(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	mocks.Bank.Mint(k.ModuleAddress(), sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(42))))

	for _, caller := range []sdk.AccAddress{keepertest.Admin, keepertest.Operator, keepertest.Trader, keepertest.Stranger} {
		err := k.WithdrawDust(ctx, caller, "uusdc", math.NewInt(42))
		require.ErrorIs(t, err, types.ErrUnauthorized)
	}
	require.Equal(t, math.NewInt(42), mocks.Bank.GetBalance(ctx, k.ModuleAddress(), "uusdc").Amount)

	require.NoError(t, k.WithdrawDust(ctx, keepertest.Owner, "uusdc", math.NewInt(42)))
	require.True(t, mocks.Bank.GetBalance(ctx, k.ModuleAddress(), "uusdc").Amount.IsZero())
	require.Equal(t, math.NewInt(42), mocks.Bank.GetBalance(ctx, keepertest.Owner, "uusdc").Amount)
}

// TestWithdrawDust_EmitsEvent carries the token and amount on the emitted
// event.
func TestWithdrawDust_EmitsEvent(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	mocks.Bank.Mint(k.ModuleAddress(), sdk.NewCoins(sdk.NewCoin("uweth", math.NewInt(7))))
	require.NoError(t, k.WithdrawDust(ctx, keepertest.Owner, "uweth", math.NewInt(7)))

	var found bool
	for _, event := range ctx.EventManager().Events() {
		if event.Type != types.EventTypeDustWithdrawn {
			continue
		}
		found = true
		attrs := make(map[string]string)
		for _, attr := range event.Attributes {
			attrs[attr.Key] = attr.Value
		}
		require.Equal(t, "uweth", attrs[types.AttributeKeyToken])
		require.Equal(t, "7", attrs[types.AttributeKeyAmount])
		require.Equal(t, keepertest.Owner.String(), attrs[types.AttributeKeyOwner])
	}
	require.True(t, found, "dust_withdrawn event not emitted")
}

// TestWithdrawDust_Validation rejects bad arguments and overdrawn sweeps.
func TestWithdrawDust_Validation(t *testing.T) {
	k, ctx, mocks := keepertest.VenuesKeeper(t)

	err := k.WithdrawDust(ctx, keepertest.Owner, "", math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInvalidToken)

	err = k.WithdrawDust(ctx, keepertest.Owner, "uusdc", math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// Nothing in the module account to sweep.
	err = k.WithdrawDust(ctx, keepertest.Owner, "uusdc", math.NewInt(1))
	require.Error(t, err)
	require.True(t, mocks.Bank.GetBalance(ctx, keepertest.Owner, "uusdc").Amount.IsZero())
}
