package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// MockBankKeeper is an in-memory ledger standing in for the bank module.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// Mint credits coins to an address out of thin air. Test setup only.
func (m *MockBankKeeper) Mint(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]
	newFrom, neg := from.SafeSub(amt...)
	if neg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, from, amt)
	}
	m.balances[fromAddr.String()] = newFrom
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// MockAccessRegistry is a role registry backed by two address sets.
type MockAccessRegistry struct {
	Admins     map[string]bool
	Operations map[string]bool
}

var _ types.AccessRegistry = (*MockAccessRegistry)(nil)

func NewMockAccessRegistry() *MockAccessRegistry {
	return &MockAccessRegistry{
		Admins:     make(map[string]bool),
		Operations: make(map[string]bool),
	}
}

func (m *MockAccessRegistry) IsPoolAdmin(_ context.Context, addr sdk.AccAddress) bool {
	return m.Admins[addr.String()]
}

func (m *MockAccessRegistry) IsPoolOperations(_ context.Context, addr sdk.AccAddress) bool {
	return m.Operations[addr.String()]
}

// pairRate is a fixed integer exchange rate: OutPerIn units of output per
// InPerOut units of input.
type pairRate struct {
	OutPerIn math.Int
	InPerOut math.Int
}

func NewPairRate(outPerIn, inPerOut int64) pairRate {
	return pairRate{OutPerIn: math.NewInt(outPerIn), InPerOut: math.NewInt(inPerOut)}
}

func (r pairRate) outFor(amountIn math.Int) math.Int {
	return amountIn.Mul(r.OutPerIn).Quo(r.InPerOut)
}

func (r pairRate) inFor(amountOut math.Int) math.Int {
	// ceil(amountOut * InPerOut / OutPerIn)
	num := amountOut.Mul(r.InPerOut)
	return num.Add(r.OutPerIn).Sub(math.OneInt()).Quo(r.OutPerIn)
}

// MockPathRouter is a fixed-rate multi-hop router holding its own liquidity
// account on the mock bank.
type MockPathRouter struct {
	bank  *MockBankKeeper
	addr  sdk.AccAddress
	rates map[string]pairRate // keyed "in/out" per hop edge

	// DeliverShortfall, when positive, withholds that many units of the
	// final output after the min-out check, imitating a fee-on-transfer
	// token.
	DeliverShortfall math.Int
}

var _ types.PathRouter = (*MockPathRouter)(nil)

func NewMockPathRouter(bank *MockBankKeeper, addr sdk.AccAddress) *MockPathRouter {
	return &MockPathRouter{
		bank:             bank,
		addr:             addr,
		rates:            make(map[string]pairRate),
		DeliverShortfall: math.ZeroInt(),
	}
}

func (m *MockPathRouter) SetRate(tokenIn, tokenOut string, rate pairRate) {
	m.rates[tokenIn+"/"+tokenOut] = rate
}

func (m *MockPathRouter) quote(path []string, amountIn math.Int) (math.Int, error) {
	if len(path) < 2 {
		return math.ZeroInt(), fmt.Errorf("path too short: %d hops", len(path))
	}
	amount := amountIn
	for i := 0; i < len(path)-1; i++ {
		rate, ok := m.rates[path[i]+"/"+path[i+1]]
		if !ok {
			return math.ZeroInt(), fmt.Errorf("no pool for hop %s/%s", path[i], path[i+1])
		}
		amount = rate.outFor(amount)
	}
	return amount, nil
}

func (m *MockPathRouter) SwapExactIn(ctx context.Context, payer sdk.AccAddress, path []string, amountIn, minAmountOut math.Int, deadline int64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Unix() > deadline {
		return math.ZeroInt(), fmt.Errorf("deadline exceeded")
	}

	out, err := m.quote(path, amountIn)
	if err != nil {
		return math.ZeroInt(), err
	}
	if out.LT(minAmountOut) {
		return math.ZeroInt(), fmt.Errorf("output %s below minimum %s", out, minAmountOut)
	}

	if err := m.bank.SendCoins(ctx, payer, m.addr, sdk.NewCoins(sdk.NewCoin(path[0], amountIn))); err != nil {
		return math.ZeroInt(), err
	}

	delivered := out.Sub(m.DeliverShortfall)
	if delivered.IsNegative() {
		delivered = math.ZeroInt()
	}
	if delivered.IsPositive() {
		if err := m.bank.SendCoins(ctx, m.addr, payer, sdk.NewCoins(sdk.NewCoin(path[len(path)-1], delivered))); err != nil {
			return math.ZeroInt(), err
		}
	}
	return out, nil
}

func (m *MockPathRouter) QuoteExactIn(_ context.Context, path []string, amountIn math.Int) (math.Int, error) {
	return m.quote(path, amountIn)
}

func (m *MockPathRouter) QuoteExactOut(_ context.Context, path []string, amountOut math.Int) (math.Int, error) {
	if len(path) < 2 {
		return math.ZeroInt(), fmt.Errorf("path too short: %d hops", len(path))
	}
	amount := amountOut
	for i := len(path) - 1; i > 0; i-- {
		rate, ok := m.rates[path[i-1]+"/"+path[i]]
		if !ok {
			return math.ZeroInt(), fmt.Errorf("no pool for hop %s/%s", path[i-1], path[i])
		}
		amount = rate.inFor(amount)
	}
	return amount, nil
}

// MockTieredPool is a fixed-rate single-pool exact-output router. A pair is
// swappable only at its registered fee tier.
type MockTieredPool struct {
	bank  *MockBankKeeper
	addr  sdk.AccAddress
	pools map[string]pairRate // keyed "a/b@tier", both orderings
}

var _ types.TieredPoolRouter = (*MockTieredPool)(nil)

func NewMockTieredPool(bank *MockBankKeeper, addr sdk.AccAddress) *MockTieredPool {
	return &MockTieredPool{bank: bank, addr: addr, pools: make(map[string]pairRate)}
}

func (m *MockTieredPool) SetPool(tokenA, tokenB string, feeTier uint32, rate pairRate) {
	m.pools[fmt.Sprintf("%s/%s@%d", tokenA, tokenB, feeTier)] = rate
	m.pools[fmt.Sprintf("%s/%s@%d", tokenB, tokenA, feeTier)] = pairRate{OutPerIn: rate.InPerOut, InPerOut: rate.OutPerIn}
}

func (m *MockTieredPool) rate(tokenIn, tokenOut string, feeTier uint32) (pairRate, error) {
	rate, ok := m.pools[fmt.Sprintf("%s/%s@%d", tokenIn, tokenOut, feeTier)]
	if !ok {
		return pairRate{}, fmt.Errorf("no pool for %s/%s at fee tier %d", tokenIn, tokenOut, feeTier)
	}
	return rate, nil
}

func (m *MockTieredPool) SwapExactOut(ctx context.Context, payer sdk.AccAddress, tokenIn, tokenOut string, feeTier uint32, amountOut, maxAmountIn math.Int, deadline int64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Unix() > deadline {
		return math.ZeroInt(), fmt.Errorf("deadline exceeded")
	}

	rate, err := m.rate(tokenIn, tokenOut, feeTier)
	if err != nil {
		return math.ZeroInt(), err
	}
	consumed := rate.inFor(amountOut)
	if consumed.GT(maxAmountIn) {
		return math.ZeroInt(), fmt.Errorf("needs %s of %s, budget is %s", consumed, tokenIn, maxAmountIn)
	}

	if err := m.bank.SendCoins(ctx, payer, m.addr, sdk.NewCoins(sdk.NewCoin(tokenIn, consumed))); err != nil {
		return math.ZeroInt(), err
	}
	if err := m.bank.SendCoins(ctx, m.addr, payer, sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return math.ZeroInt(), err
	}
	return consumed, nil
}

func (m *MockTieredPool) QuoteExactIn(_ context.Context, tokenIn, tokenOut string, feeTier uint32, amountIn math.Int) (math.Int, error) {
	rate, err := m.rate(tokenIn, tokenOut, feeTier)
	if err != nil {
		return math.ZeroInt(), err
	}
	return rate.outFor(amountIn), nil
}

func (m *MockTieredPool) QuoteExactOut(_ context.Context, tokenIn, tokenOut string, feeTier uint32, amountOut math.Int) (math.Int, error) {
	rate, err := m.rate(tokenIn, tokenOut, feeTier)
	if err != nil {
		return math.ZeroInt(), err
	}
	return rate.inFor(amountOut), nil
}

// MockBatchVault is a fixed-rate vault keyed by pool id.
type MockBatchVault struct {
	bank  *MockBankKeeper
	addr  sdk.AccAddress
	pools map[string]mockVaultPool

	// DeliverShortfall, when positive, withholds that many units of the
	// output, so the adapter-side floor trips.
	DeliverShortfall math.Int
}

type mockVaultPool struct {
	tokenA, tokenB string
	rate           pairRate // tokenA -> tokenB direction
}

var _ types.BatchVault = (*MockBatchVault)(nil)

func NewMockBatchVault(bank *MockBankKeeper, addr sdk.AccAddress) *MockBatchVault {
	return &MockBatchVault{
		bank:             bank,
		addr:             addr,
		pools:            make(map[string]mockVaultPool),
		DeliverShortfall: math.ZeroInt(),
	}
}

func (m *MockBatchVault) SetPool(poolID, tokenA, tokenB string, rate pairRate) {
	m.pools[poolID] = mockVaultPool{tokenA: tokenA, tokenB: tokenB, rate: rate}
}

func (m *MockBatchVault) rate(poolID, tokenIn, tokenOut string) (pairRate, error) {
	pool, ok := m.pools[poolID]
	if !ok {
		return pairRate{}, fmt.Errorf("unknown pool id %q", poolID)
	}
	switch {
	case tokenIn == pool.tokenA && tokenOut == pool.tokenB:
		return pool.rate, nil
	case tokenIn == pool.tokenB && tokenOut == pool.tokenA:
		return pairRate{OutPerIn: pool.rate.InPerOut, InPerOut: pool.rate.OutPerIn}, nil
	}
	return pairRate{}, fmt.Errorf("pool %q does not hold %s/%s", poolID, tokenIn, tokenOut)
}

func (m *MockBatchVault) SwapExactOut(ctx context.Context, payer sdk.AccAddress, poolID, tokenIn, tokenOut string, amountOut, maxAmountIn math.Int, deadline int64) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if sdkCtx.BlockTime().Unix() > deadline {
		return math.ZeroInt(), fmt.Errorf("deadline exceeded")
	}

	rate, err := m.rate(poolID, tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	consumed := rate.inFor(amountOut)
	if consumed.GT(maxAmountIn) {
		return math.ZeroInt(), fmt.Errorf("needs %s of %s, budget is %s", consumed, tokenIn, maxAmountIn)
	}

	if err := m.bank.SendCoins(ctx, payer, m.addr, sdk.NewCoins(sdk.NewCoin(tokenIn, consumed))); err != nil {
		return math.ZeroInt(), err
	}

	delivered := amountOut.Sub(m.DeliverShortfall)
	if delivered.IsNegative() {
		delivered = math.ZeroInt()
	}
	if delivered.IsPositive() {
		if err := m.bank.SendCoins(ctx, m.addr, payer, sdk.NewCoins(sdk.NewCoin(tokenOut, delivered))); err != nil {
			return math.ZeroInt(), err
		}
	}
	return consumed, nil
}

func (m *MockBatchVault) QueryExactIn(_ context.Context, poolID, tokenIn, tokenOut string, amountIn math.Int) (math.Int, error) {
	rate, err := m.rate(poolID, tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return rate.outFor(amountIn), nil
}

func (m *MockBatchVault) QueryExactOut(_ context.Context, poolID, tokenIn, tokenOut string, amountOut math.Int) (math.Int, error) {
	rate, err := m.rate(poolID, tokenIn, tokenOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return rate.inFor(amountOut), nil
}

// MockSharePool is an internal liquidity pool with a fixed share price.
type MockSharePool struct {
	bank  *MockBankKeeper
	addr  sdk.AccAddress
	denom string
	price math.LegacyDec

	// MintShortfall, when positive, mints that many shares fewer than
	// requested.
	MintShortfall math.Int
}

var _ types.SharePool = (*MockSharePool)(nil)

func NewMockSharePool(bank *MockBankKeeper, addr sdk.AccAddress, denom string, price math.LegacyDec) *MockSharePool {
	return &MockSharePool{
		bank:          bank,
		addr:          addr,
		denom:         denom,
		price:         price,
		MintShortfall: math.ZeroInt(),
	}
}

func (m *MockSharePool) SetPrice(price math.LegacyDec) {
	m.price = price
}

func (m *MockSharePool) MintShares(ctx context.Context, payer sdk.AccAddress, token string, maxAmountIn, sharesOut math.Int) (math.Int, math.Int, error) {
	amountIn := math.LegacyNewDecFromInt(sharesOut).Mul(m.price).Ceil().TruncateInt()
	if amountIn.GT(maxAmountIn) {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("needs %s of %s, budget is %s", amountIn, token, maxAmountIn)
	}

	if err := m.bank.SendCoins(ctx, payer, m.addr, sdk.NewCoins(sdk.NewCoin(token, amountIn))); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	minted := sharesOut.Sub(m.MintShortfall)
	if minted.IsNegative() {
		minted = math.ZeroInt()
	}
	if minted.IsPositive() {
		m.bank.Mint(payer, sdk.NewCoins(sdk.NewCoin(m.denom, minted)))
	}
	return amountIn, minted, nil
}

func (m *MockSharePool) SharePrice(_ context.Context) (math.LegacyDec, error) {
	return m.price, nil
}

func (m *MockSharePool) ShareDenom() string {
	return m.denom
}
