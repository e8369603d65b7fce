package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	TokenPath(context.Context, *QueryTokenPathRequest) (*QueryTokenPathResponse, error)
	PairFee(context.Context, *QueryPairFeeRequest) (*QueryPairFeeResponse, error)
	PoolRoute(context.Context, *QueryPoolRouteRequest) (*QueryPoolRouteResponse, error)
	QuoteIn(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
	QuoteOut(context.Context, *QueryQuoteRequest) (*QueryQuoteResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryTokenPathRequest requests the hop path for a directional pair
type QueryTokenPathRequest struct {
	TokenIn  string `json:"token_in"`
	TokenOut string `json:"token_out"`
}

// QueryTokenPathResponse returns the configured hop path, empty if unset
type QueryTokenPathResponse struct {
	Hops []string `json:"hops"`
}

// QueryPairFeeRequest requests the fee tier for a pair
type QueryPairFeeRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryPairFeeResponse returns the configured fee tier, zero if unset
type QueryPairFeeResponse struct {
	FeeTier uint32 `json:"fee_tier"`
}

// QueryPoolRouteRequest requests the pool route for a pair
type QueryPoolRouteRequest struct {
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// QueryPoolRouteResponse returns the configured pool route, zero if unset
type QueryPoolRouteResponse struct {
	Route PoolRoute `json:"route"`
}

// QueryQuoteRequest previews an exchange on a venue. For QuoteIn, Amount is
// the input amount; for QuoteOut it is the desired output amount.
type QueryQuoteRequest struct {
	Venue    VenueKind `json:"venue"`
	TokenIn  string    `json:"token_in"`
	TokenOut string    `json:"token_out"`
	Amount   math.Int  `json:"amount"`
}

// QueryQuoteResponse returns the quoted counter-amount
type QueryQuoteResponse struct {
	Amount math.Int `json:"amount"`
}
