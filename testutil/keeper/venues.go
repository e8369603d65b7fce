package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meshswap/meshswap/x/venues/keeper"
	"github.com/meshswap/meshswap/x/venues/types"
)

// Well-known test actors.
var (
	Owner    = sdk.AccAddress([]byte("owner_______________"))
	Admin    = sdk.AccAddress([]byte("admin_______________"))
	Operator = sdk.AccAddress([]byte("operator____________"))
	Trader   = sdk.AccAddress([]byte("trader______________"))
	Stranger = sdk.AccAddress([]byte("stranger____________"))

	pathRouterAddr = sdk.AccAddress([]byte("mock_path_router____"))
	tieredPoolAddr = sdk.AccAddress([]byte("mock_tiered_pool____"))
	batchVaultAddr = sdk.AccAddress([]byte("mock_batch_vault____"))
	sharePoolAddr  = sdk.AccAddress([]byte("mock_share_pool_____"))
)

// Mocks bundles the mock collaborators wired into a test keeper.
type Mocks struct {
	Bank      *MockBankKeeper
	Registry  *MockAccessRegistry
	Path      *MockPathRouter
	Tiered    *MockTieredPool
	Vault     *MockBatchVault
	SharePool *MockSharePool
}

// VenuesKeeper creates a test keeper for the venues module with mock
// collaborators. The admin and operator addresses carry their roles on the
// mock registry; venue accounts are pre-funded so fills never bounce on
// liquidity.
func VenuesKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *Mocks) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	access := NewMockAccessRegistry()
	access.Admins[Admin.String()] = true
	access.Operations[Operator.String()] = true

	mocks := &Mocks{
		Bank:      bank,
		Registry:  access,
		Path:      NewMockPathRouter(bank, pathRouterAddr),
		Tiered:    NewMockTieredPool(bank, tieredPoolAddr),
		Vault:     NewMockBatchVault(bank, batchVaultAddr),
		SharePool: NewMockSharePool(bank, sharePoolAddr, "ushare", math.LegacyNewDec(2)),
	}

	for _, venueAddr := range []sdk.AccAddress{pathRouterAddr, tieredPoolAddr, batchVaultAddr, sharePoolAddr} {
		for _, denom := range []string{"uusdc", "uweth", "uatom", "umesh"} {
			bank.Mint(venueAddr, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(1_000_000_000_000))))
		}
	}

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bank,
		access,
		mocks.Path,
		mocks.Tiered,
		mocks.Vault,
		Owner.String(),
	)
	k.RegisterSharePool("main", mocks.SharePool)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, mocks
}

// FundTrader credits the trader account for a test scenario.
func FundTrader(bank *MockBankKeeper, denom string, amount int64) {
	bank.Mint(Trader, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(amount))))
}
