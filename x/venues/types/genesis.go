package types

import (
	"fmt"
)

// GenesisState defines the venues module's genesis state
type GenesisState struct {
	Params          Params      `json:"params"`
	TokenPaths      []TokenPath `json:"token_paths"`
	PairFees        []PairFee   `json:"pair_fees"`
	PoolRoutes      []PoolRoute `json:"pool_routes"`
	ActiveSharePool string      `json:"active_share_pool"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		TokenPaths: []TokenPath{},
		PairFees:   []PairFee{},
		PoolRoutes: []PoolRoute{},
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenPaths := make(map[string]struct{})
	for _, path := range gs.TokenPaths {
		if err := path.Validate(gs.Params.MaxPathHops); err != nil {
			return err
		}
		key := path.TokenIn + "/" + path.TokenOut
		if _, ok := seenPaths[key]; ok {
			return fmt.Errorf("duplicate token path for pair %s", key)
		}
		seenPaths[key] = struct{}{}
	}

	seenFees := make(map[string]struct{})
	for _, fee := range gs.PairFees {
		if fee.TokenA == "" || fee.TokenB == "" {
			return fmt.Errorf("pair fee with empty token denomination")
		}
		if fee.TokenA == fee.TokenB {
			return fmt.Errorf("pair fee with identical tokens %s", fee.TokenA)
		}
		a, b := fee.TokenA, fee.TokenB
		if a > b {
			a, b = b, a
		}
		key := a + "/" + b
		if _, ok := seenFees[key]; ok {
			return fmt.Errorf("duplicate pair fee for pair %s", key)
		}
		seenFees[key] = struct{}{}
	}

	seenRoutes := make(map[string]struct{})
	for _, route := range gs.PoolRoutes {
		if err := route.Validate(); err != nil {
			return err
		}
		a, b := route.TokenA, route.TokenB
		if a > b {
			a, b = b, a
		}
		key := a + "/" + b
		if _, ok := seenRoutes[key]; ok {
			return fmt.Errorf("duplicate pool route for pair %s", key)
		}
		seenRoutes[key] = struct{}{}
	}

	return nil
}
