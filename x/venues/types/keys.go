package types

const (
	// ModuleName defines the module name
	ModuleName = "venues"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	TokenPathKeyPrefix     = []byte{0x01} // prefix for directional hop-path records
	PairFeeKeyPrefix       = []byte{0x02} // prefix for fee tiers, written for both orderings
	PoolRouteKeyPrefix     = []byte{0x03} // prefix for pool routes, order-independent key
	ActiveSharePoolKey     = []byte{0x04} // key for the selected share-pool reference
	ParamsKey              = []byte{0x05} // key for module parameters
	SwapLockKeyPrefix      = []byte{0x06} // prefix for per-venue swap locks
)

// pairSeparator splits the two denoms inside a pair key. Denoms may contain
// "/" (ibc vouchers, tokenfactory), so a NUL byte keeps distinct pairs from
// colliding; denoms never contain NUL.
var pairSeparator = []byte{0x00}

// TokenPathKey returns the store key for the hop path of a directional pair.
// Paths are asymmetric: (A,B) and (B,A) are distinct routes.
func TokenPathKey(tokenIn, tokenOut string) []byte {
	key := append(TokenPathKeyPrefix, []byte(tokenIn)...)
	key = append(key, pairSeparator...)
	return append(key, []byte(tokenOut)...)
}

// PairFeeKey returns the store key for the fee record of a directional pair.
// Callers write both orderings since the underlying pool fee is
// direction-independent.
func PairFeeKey(tokenA, tokenB string) []byte {
	key := append(PairFeeKeyPrefix, []byte(tokenA)...)
	key = append(key, pairSeparator...)
	return append(key, []byte(tokenB)...)
}

// PoolRouteKey returns the store key for a pool route. The pair is sorted
// lexicographically so both directions resolve to the same pool.
func PoolRouteKey(tokenA, tokenB string) []byte {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	key := append(PoolRouteKeyPrefix, []byte(tokenA)...)
	key = append(key, pairSeparator...)
	return append(key, []byte(tokenB)...)
}

// SwapLockKey returns the store key for a venue swap lock.
func SwapLockKey(venue string) []byte {
	return append(SwapLockKeyPrefix, []byte(venue)...)
}
