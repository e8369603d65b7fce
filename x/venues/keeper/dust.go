package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// WithdrawDust sweeps residual token balance from the module account to the
// owner. Only the owner may call it; the bank send fails the call when the
// requested amount exceeds what actually sits in the account.
func (k Keeper) WithdrawDust(ctx context.Context, caller sdk.AccAddress, token string, amount math.Int) error {
	if err := k.checkOwner(caller); err != nil {
		return err
	}
	if token == "" {
		return types.ErrInvalidToken.Wrap("token denomination cannot be empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("amount must be positive")
	}

	ownerAddr, err := sdk.AccAddressFromBech32(k.owner)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("owner address: %s", err)
	}

	coins := sdk.NewCoins(sdk.NewCoin(token, amount))
	if err := k.bankKeeper.SendCoins(ctx, k.ModuleAddress(), ownerAddr, coins); err != nil {
		return types.ErrInvalidAmount.Wrapf("withdraw dust: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDustWithdrawn,
			sdk.NewAttribute(types.AttributeKeyOwner, k.owner),
			sdk.NewAttribute(types.AttributeKeyToken, token),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	amtFloat, _ := math.LegacyNewDecFromInt(amount).Float64()
	k.metrics.DustWithdrawn.WithLabelValues(token).Add(amtFloat)

	k.Logger(ctx).Info("dust withdrawn", "token", token, "amount", amount.String(), "owner", k.owner)
	return nil
}
