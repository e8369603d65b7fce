package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// Keeper of the venues store. It fronts four external swap surfaces with a
// single connector contract, holding only routing metadata and transient
// balances in the module account.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec

	bankKeeper     types.BankKeeper
	accessRegistry types.AccessRegistry
	pathRouter     types.PathRouter
	tieredPool     types.TieredPoolRouter
	batchVault     types.BatchVault
	sharePools     map[string]types.SharePool

	// owner may sweep residual balances out of the module account. Nobody
	// else can move funds that are not part of an in-flight swap.
	owner string

	metrics *VenueMetrics
}

// NewKeeper creates a new venues Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accessRegistry types.AccessRegistry,
	pathRouter types.PathRouter,
	tieredPool types.TieredPoolRouter,
	batchVault types.BatchVault,
	owner string,
) *Keeper {
	return &Keeper{
		storeKey:       key,
		cdc:            cdc,
		bankKeeper:     bankKeeper,
		accessRegistry: accessRegistry,
		pathRouter:     pathRouter,
		tieredPool:     tieredPool,
		batchVault:     batchVault,
		sharePools:     make(map[string]types.SharePool),
		owner:          owner,
		metrics:        NewVenueMetrics(),
	}
}

// RegisterSharePool makes an internal liquidity pool selectable by name. The
// active pool is chosen separately via SetActiveSharePool.
func (k *Keeper) RegisterSharePool(name string, pool types.SharePool) {
	k.sharePools[name] = pool
}

// Owner returns the address allowed to withdraw dust.
func (k Keeper) Owner() string {
	return k.owner
}

// ModuleAddress returns the module account address holding in-flight swap
// balances.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the venues module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
