package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshswap/meshswap/x/venues/types"
)

func TestGenesisState_Validate(t *testing.T) {
	tests := []struct {
		name     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			"default is valid",
			types.DefaultGenesis(),
			true,
		},
		{
			"fully populated",
			&types.GenesisState{
				Params: types.DefaultParams(),
				TokenPaths: []types.TokenPath{
					{TokenIn: "uusdc", TokenOut: "uweth", Hops: []string{"uusdc", "uatom", "uweth"}},
					{TokenIn: "uweth", TokenOut: "uusdc", Hops: []string{"uweth", "uusdc"}},
				},
				PairFees: []types.PairFee{
					{TokenA: "uusdc", TokenB: "uweth", FeeTier: 500},
				},
				PoolRoutes: []types.PoolRoute{
					{PoolID: "pool-1", TokenA: "uusdc", TokenB: "uweth"},
				},
				ActiveSharePool: "main",
			},
			true,
		},
		{
			"duplicate directional path",
			&types.GenesisState{
				Params: types.DefaultParams(),
				TokenPaths: []types.TokenPath{
					{TokenIn: "uusdc", TokenOut: "uweth", Hops: []string{"uusdc", "uweth"}},
					{TokenIn: "uusdc", TokenOut: "uweth", Hops: []string{"uusdc", "uatom", "uweth"}},
				},
			},
			false,
		},
		{
			"duplicate fee under reversed ordering",
			&types.GenesisState{
				Params: types.DefaultParams(),
				PairFees: []types.PairFee{
					{TokenA: "uusdc", TokenB: "uweth", FeeTier: 500},
					{TokenA: "uweth", TokenB: "uusdc", FeeTier: 3000},
				},
			},
			false,
		},
		{
			"duplicate route under reversed ordering",
			&types.GenesisState{
				Params: types.DefaultParams(),
				PoolRoutes: []types.PoolRoute{
					{PoolID: "pool-1", TokenA: "uusdc", TokenB: "uweth"},
					{PoolID: "pool-2", TokenA: "uweth", TokenB: "uusdc"},
				},
			},
			false,
		},
		{
			"path over hop bound",
			&types.GenesisState{
				Params: types.Params{BatchDeadlineGraceSeconds: 500, MaxPathHops: 3},
				TokenPaths: []types.TokenPath{
					{TokenIn: "a", TokenOut: "e", Hops: []string{"a", "b", "c", "e"}},
				},
			},
			false,
		},
		{
			"fee with identical tokens",
			&types.GenesisState{
				Params:   types.DefaultParams(),
				PairFees: []types.PairFee{{TokenA: "uusdc", TokenB: "uusdc", FeeTier: 500}},
			},
			false,
		},
		{
			"bad params",
			&types.GenesisState{
				Params: types.Params{BatchDeadlineGraceSeconds: 0, MaxPathHops: 5},
			},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	require.Error(t, types.Params{BatchDeadlineGraceSeconds: -1, MaxPathHops: 5}.Validate())
	require.Error(t, types.Params{BatchDeadlineGraceSeconds: 500, MaxPathHops: 1}.Validate())
}

func TestVenueKind_Validate(t *testing.T) {
	for _, v := range []types.VenueKind{types.VenuePath, types.VenueFeePool, types.VenueBatch, types.VenueShare} {
		require.NoError(t, v.Validate())
	}
	require.ErrorIs(t, types.VenueKind("bogus").Validate(), types.ErrInvalidVenue)
}
