package keeper

import (
	"context"

	"github.com/meshswap/meshswap/x/venues/types"
)

// acquireSwapLock takes the per-venue swap lock. The lock lives in the
// KVStore, so an aborted transaction releases it implicitly when its writes
// are discarded.
func (k Keeper) acquireSwapLock(ctx context.Context, venue types.VenueKind) error {
	store := k.getStore(ctx)
	key := types.SwapLockKey(string(venue))
	if store.Has(key) {
		return types.ErrSwapLocked.Wrapf("venue %s", venue)
	}
	store.Set(key, []byte{1})
	return nil
}

// releaseSwapLock releases the per-venue swap lock.
func (k Keeper) releaseSwapLock(ctx context.Context, venue types.VenueKind) {
	k.getStore(ctx).Delete(types.SwapLockKey(string(venue)))
}
