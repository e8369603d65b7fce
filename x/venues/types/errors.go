package types

import (
	"cosmossdk.io/errors"
)

// Venues module sentinel errors
var (
	ErrInvalidToken       = errors.Register(ModuleName, 2, "invalid token denomination")
	ErrUnauthorized       = errors.Register(ModuleName, 3, "unauthorized")
	ErrInsufficientOutput = errors.Register(ModuleName, 4, "received output below guaranteed amount")
	ErrVenueFailure       = errors.Register(ModuleName, 5, "external venue call failed")
	ErrInvalidAmount      = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidVenue       = errors.Register(ModuleName, 7, "invalid venue")
	ErrInvalidRoute       = errors.Register(ModuleName, 8, "invalid routing metadata")
	ErrSwapLocked         = errors.Register(ModuleName, 9, "swap already in progress for venue")
	ErrInvalidAddress     = errors.Register(ModuleName, 10, "invalid address")
	ErrNoSharePool        = errors.Register(ModuleName, 11, "no share pool selected")
)
