package types

// Event types for the venues module
const (
	EventTypeVenueSwap     = "venue_swap"
	EventTypeDustWithdrawn = "dust_withdrawn"
	EventTypeTokenPathSet  = "token_path_set"
	EventTypePairFeeSet    = "pair_fee_set"
	EventTypePoolRouteSet  = "pool_route_set"
	EventTypeSharePoolSet  = "share_pool_set"
)

// Event attribute keys
const (
	AttributeKeyVenue     = "venue"
	AttributeKeyCaller    = "caller"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyRefund    = "refund"
	AttributeKeyToken     = "token"
	AttributeKeyAmount    = "amount"
	AttributeKeyOwner     = "owner"
	AttributeKeyFeeTier   = "fee_tier"
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyPath      = "path"
	AttributeKeySharePool = "share_pool"
)
