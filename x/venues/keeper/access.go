package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// checkPoolRole admits callers holding either the pool-admin or the
// pool-operations role on the external registry. The registry is consulted
// fresh on every call; revocations take effect immediately.
func (k Keeper) checkPoolRole(ctx context.Context, addr sdk.AccAddress) error {
	if k.accessRegistry.IsPoolAdmin(ctx, addr) {
		return nil
	}
	if k.accessRegistry.IsPoolOperations(ctx, addr) {
		return nil
	}
	return types.ErrUnauthorized.Wrapf("%s holds neither pool-admin nor pool-operations role", addr)
}

// checkOwner admits only the configured owner address.
func (k Keeper) checkOwner(addr sdk.AccAddress) error {
	if addr.String() != k.owner {
		return types.ErrUnauthorized.Wrapf("%s is not the owner", addr)
	}
	return nil
}
