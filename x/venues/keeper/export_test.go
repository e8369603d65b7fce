package keeper

import (
	storetypes "cosmossdk.io/store/types"
)

// StoreKeyForTesting exposes the module store key so external tests can
// manipulate raw state.
func StoreKeyForTesting(k *Keeper) storetypes.StoreKey {
	return k.storeKey
}
