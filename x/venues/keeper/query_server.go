package keeper

import (
	"context"

	"github.com/meshswap/meshswap/x/venues/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the venues QueryServer
// interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	return &types.QueryParamsResponse{Params: qs.GetParams(goCtx)}, nil
}

// TokenPath returns the configured hop path for a directional pair
func (qs queryServer) TokenPath(goCtx context.Context, req *types.QueryTokenPathRequest) (*types.QueryTokenPathResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	if req.TokenIn == "" || req.TokenOut == "" {
		return nil, types.ErrInvalidToken.Wrap("token denominations cannot be empty")
	}

	path := qs.GetTokenPath(goCtx, req.TokenIn, req.TokenOut)
	return &types.QueryTokenPathResponse{Hops: path.Hops}, nil
}

// PairFee returns the configured fee tier for a pair
func (qs queryServer) PairFee(goCtx context.Context, req *types.QueryPairFeeRequest) (*types.QueryPairFeeResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	if req.TokenA == "" || req.TokenB == "" {
		return nil, types.ErrInvalidToken.Wrap("token denominations cannot be empty")
	}

	return &types.QueryPairFeeResponse{FeeTier: qs.GetPairFee(goCtx, req.TokenA, req.TokenB)}, nil
}

// PoolRoute returns the configured pool route for a pair
func (qs queryServer) PoolRoute(goCtx context.Context, req *types.QueryPoolRouteRequest) (*types.QueryPoolRouteResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	if req.TokenA == "" || req.TokenB == "" {
		return nil, types.ErrInvalidToken.Wrap("token denominations cannot be empty")
	}

	return &types.QueryPoolRouteResponse{Route: qs.GetPoolRoute(goCtx, req.TokenA, req.TokenB)}, nil
}

// QuoteIn previews the output of swapping an exact input on a venue
func (qs queryServer) QuoteIn(goCtx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}

	connector, err := qs.Connector(req.Venue)
	if err != nil {
		return nil, err
	}
	out, err := connector.GetQuoteIn(goCtx, req.TokenIn, req.TokenOut, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteResponse{Amount: out}, nil
}

// QuoteOut previews the input needed for an exact output on a venue
func (qs queryServer) QuoteOut(goCtx context.Context, req *types.QueryQuoteRequest) (*types.QueryQuoteResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}

	connector, err := qs.Connector(req.Venue)
	if err != nil {
		return nil, err
	}
	in, err := connector.GetQuoteOut(goCtx, req.TokenIn, req.TokenOut, req.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteResponse{Amount: in}, nil
}
