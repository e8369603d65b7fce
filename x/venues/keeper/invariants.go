package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meshswap/meshswap/x/venues/types"
)

// RegisterInvariants registers all venues invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pair-fee-symmetry", PairFeeSymmetryInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-route-symmetry", PoolRouteSymmetryInvariant(k))
	ir.RegisterRoute(types.ModuleName, "no-stale-swap-locks", NoStaleSwapLocksInvariant(k))
}

// AllInvariants runs all invariants of the venues module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PairFeeSymmetryInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolRouteSymmetryInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return NoStaleSwapLocksInvariant(k)(ctx)
	}
}

// PairFeeSymmetryInvariant checks that every fee record has a matching
// record for the reversed ordering with the same tier.
func PairFeeSymmetryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IteratePairFees(ctx, func(tokenA, tokenB string, feeTier uint32) bool {
			reverse := k.GetPairFee(ctx, tokenB, tokenA)
			if reverse != feeTier {
				count++
				msg += fmt.Sprintf("pair %s/%s: fee tier %d but reverse ordering has %d\n",
					tokenA, tokenB, feeTier, reverse)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pair-fee-symmetry",
			fmt.Sprintf("found %d asymmetric fee records\n%s", count, msg),
		), broken
	}
}

// PoolRouteSymmetryInvariant checks that every stored route resolves
// identically for both pair orderings and names its own pair.
func PoolRouteSymmetryInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IteratePoolRoutes(ctx, func(route types.PoolRoute) bool {
			forward := k.GetPoolRoute(ctx, route.TokenA, route.TokenB)
			reverse := k.GetPoolRoute(ctx, route.TokenB, route.TokenA)
			if forward.PoolID != route.PoolID || reverse.PoolID != route.PoolID {
				count++
				msg += fmt.Sprintf("route %s/%s: pool %s does not resolve for both orderings\n",
					route.TokenA, route.TokenB, route.PoolID)
			}
			if err := route.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("route %s/%s: %s\n", route.TokenA, route.TokenB, err)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-route-symmetry",
			fmt.Sprintf("found %d broken pool routes\n%s", count, msg),
		), broken
	}
}

// NoStaleSwapLocksInvariant checks that no swap lock survived its call. A
// lock persisting past commit means a connector exited without releasing.
func NoStaleSwapLocksInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, venue := range []types.VenueKind{types.VenuePath, types.VenueFeePool, types.VenueBatch, types.VenueShare} {
			if k.getStore(ctx).Has(types.SwapLockKey(string(venue))) {
				count++
				msg += fmt.Sprintf("venue %s: stale swap lock\n", venue)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "no-stale-swap-locks",
			fmt.Sprintf("found %d stale swap locks\n%s", count, msg),
		), broken
	}
}
