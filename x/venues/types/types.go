package types

import (
	"fmt"
)

// VenueKind identifies one of the supported external AMM call surfaces.
type VenueKind string

const (
	// VenuePath routes through a multi-hop exact-input router.
	VenuePath VenueKind = "path"

	// VenueFeePool routes through a single-pool exact-output router with
	// per-pair fee tiers.
	VenueFeePool VenueKind = "feepool"

	// VenueBatch routes through a generalized vault keyed by pool id.
	VenueBatch VenueKind = "batch"

	// VenueShare mints shares on an internal liquidity pool priced by a
	// share-price oracle.
	VenueShare VenueKind = "share"
)

// Validate reports whether the venue kind is one of the supported surfaces.
func (v VenueKind) Validate() error {
	switch v {
	case VenuePath, VenueFeePool, VenueBatch, VenueShare:
		return nil
	}
	return ErrInvalidVenue.Wrapf("unknown venue kind %q", v)
}

// TokenPath is the routing record for the multi-hop venue: the full ordered
// hop sequence from input token to output token, endpoints included.
type TokenPath struct {
	TokenIn  string   `json:"token_in"`
	TokenOut string   `json:"token_out"`
	Hops     []string `json:"hops"`
}

// Validate checks structural well-formedness of the path record. It does not
// check that intermediate hops reference live pools; a bad hop surfaces only
// when the venue rejects it.
func (p TokenPath) Validate(maxHops uint32) error {
	if p.TokenIn == "" || p.TokenOut == "" {
		return ErrInvalidToken.Wrap("path endpoints cannot be empty")
	}
	if len(p.Hops) < 2 {
		return ErrInvalidRoute.Wrap("path must contain at least the two endpoint tokens")
	}
	if uint32(len(p.Hops)) > maxHops {
		return ErrInvalidRoute.Wrapf("path has %d hops, maximum is %d", len(p.Hops), maxHops)
	}
	if p.Hops[0] != p.TokenIn {
		return ErrInvalidRoute.Wrapf("path must start at %s, starts at %s", p.TokenIn, p.Hops[0])
	}
	if p.Hops[len(p.Hops)-1] != p.TokenOut {
		return ErrInvalidRoute.Wrapf("path must end at %s, ends at %s", p.TokenOut, p.Hops[len(p.Hops)-1])
	}
	for i, hop := range p.Hops {
		if hop == "" {
			return ErrInvalidToken.Wrapf("path hop %d is empty", i)
		}
	}
	return nil
}

// PoolRoute is the routing record for the batch-vault venue: the external
// pool identifier plus the pool's two canonical token denominations.
type PoolRoute struct {
	PoolID string `json:"pool_id"`
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
}

// Validate checks structural well-formedness of the pool route.
func (r PoolRoute) Validate() error {
	if r.PoolID == "" {
		return ErrInvalidRoute.Wrap("pool id cannot be empty")
	}
	if r.TokenA == "" || r.TokenB == "" {
		return ErrInvalidToken.Wrap("pool route tokens cannot be empty")
	}
	if r.TokenA == r.TokenB {
		return ErrInvalidRoute.Wrap("pool route tokens must be different")
	}
	return nil
}

// PairFee couples a directional pair with its configured fee tier. Used in
// genesis and query responses; the store itself holds both orderings.
type PairFee struct {
	TokenA  string `json:"token_a"`
	TokenB  string `json:"token_b"`
	FeeTier uint32 `json:"fee_tier"`
}

func (f PairFee) String() string {
	return fmt.Sprintf("%s/%s@%d", f.TokenA, f.TokenB, f.FeeTier)
}
