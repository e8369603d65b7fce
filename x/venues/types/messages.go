package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegisterTokenPath = "register_token_path"
	TypeMsgSetPairFee        = "set_pair_fee"
	TypeMsgRegisterPoolRoute = "register_pool_route"
	TypeMsgSetSharePool      = "set_share_pool"
	TypeMsgWithdrawDust      = "withdraw_dust"
)

var (
	_ sdk.Msg = &MsgRegisterTokenPath{}
	_ sdk.Msg = &MsgSetPairFee{}
	_ sdk.Msg = &MsgRegisterPoolRoute{}
	_ sdk.Msg = &MsgSetSharePool{}
	_ sdk.Msg = &MsgWithdrawDust{}
)

// MsgRegisterTokenPath registers the hop path for a directional pair on the
// multi-hop venue. Requires a pool-admin or pool-operations role.
type MsgRegisterTokenPath struct {
	Caller   string   `json:"caller"`
	TokenIn  string   `json:"token_in"`
	TokenOut string   `json:"token_out"`
	Hops     []string `json:"hops"`
}

// NewMsgRegisterTokenPath creates a new MsgRegisterTokenPath instance
func NewMsgRegisterTokenPath(caller, tokenIn, tokenOut string, hops []string) *MsgRegisterTokenPath {
	return &MsgRegisterTokenPath{
		Caller:   caller,
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
		Hops:     hops,
	}
}

// ValidateBasic implements the sdk.Msg interface for MsgRegisterTokenPath
func (msg MsgRegisterTokenPath) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if msg.TokenIn == "" || msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "token denominations cannot be empty")
	}
	if msg.TokenIn == msg.TokenOut {
		return sdkerrors.Wrap(ErrInvalidRoute, "input and output tokens must be different")
	}
	if len(msg.Hops) < 2 {
		return sdkerrors.Wrap(ErrInvalidRoute, "path must contain at least the two endpoint tokens")
	}
	for i, hop := range msg.Hops {
		if hop == "" {
			return sdkerrors.Wrapf(ErrInvalidToken, "path hop %d is empty", i)
		}
	}
	return nil
}

// GetSigners returns the expected signers for MsgRegisterTokenPath
func (msg MsgRegisterTokenPath) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgSetPairFee sets the fee tier for a pair on the single-pool venue. The
// tier is written for both orderings since the pool fee is
// direction-independent.
type MsgSetPairFee struct {
	Caller  string `json:"caller"`
	TokenA  string `json:"token_a"`
	TokenB  string `json:"token_b"`
	FeeTier uint32 `json:"fee_tier"`
}

// NewMsgSetPairFee creates a new MsgSetPairFee instance
func NewMsgSetPairFee(caller, tokenA, tokenB string, feeTier uint32) *MsgSetPairFee {
	return &MsgSetPairFee{
		Caller:  caller,
		TokenA:  tokenA,
		TokenB:  tokenB,
		FeeTier: feeTier,
	}
}

// ValidateBasic implements the sdk.Msg interface for MsgSetPairFee
func (msg MsgSetPairFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "token denominations cannot be empty")
	}
	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidRoute, "pair tokens must be different")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSetPairFee
func (msg MsgSetPairFee) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgRegisterPoolRoute maps a pair to an external vault pool id. The route
// is stored under an order-independent key so both directions resolve.
type MsgRegisterPoolRoute struct {
	Caller string `json:"caller"`
	TokenA string `json:"token_a"`
	TokenB string `json:"token_b"`
	PoolID string `json:"pool_id"`
}

// NewMsgRegisterPoolRoute creates a new MsgRegisterPoolRoute instance
func NewMsgRegisterPoolRoute(caller, tokenA, tokenB, poolID string) *MsgRegisterPoolRoute {
	return &MsgRegisterPoolRoute{
		Caller: caller,
		TokenA: tokenA,
		TokenB: tokenB,
		PoolID: poolID,
	}
}

// ValidateBasic implements the sdk.Msg interface for MsgRegisterPoolRoute
func (msg MsgRegisterPoolRoute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	route := PoolRoute{PoolID: msg.PoolID, TokenA: msg.TokenA, TokenB: msg.TokenB}
	return route.Validate()
}

// GetSigners returns the expected signers for MsgRegisterPoolRoute
func (msg MsgRegisterPoolRoute) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgSetSharePool selects the active internal liquidity pool by registered
// name. Requires a pool-admin or pool-operations role.
type MsgSetSharePool struct {
	Caller string `json:"caller"`
	Name   string `json:"name"`
}

// NewMsgSetSharePool creates a new MsgSetSharePool instance
func NewMsgSetSharePool(caller, name string) *MsgSetSharePool {
	return &MsgSetSharePool{Caller: caller, Name: name}
}

// ValidateBasic implements the sdk.Msg interface for MsgSetSharePool
func (msg MsgSetSharePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if msg.Name == "" {
		return sdkerrors.Wrap(ErrInvalidVenue, "share pool name cannot be empty")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSetSharePool
func (msg MsgSetSharePool) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

// MsgWithdrawDust sweeps residual token balance from the module account to
// the owner. Owner-only.
type MsgWithdrawDust struct {
	Caller string   `json:"caller"`
	Token  string   `json:"token"`
	Amount math.Int `json:"amount"`
}

// NewMsgWithdrawDust creates a new MsgWithdrawDust instance
func NewMsgWithdrawDust(caller, token string, amount math.Int) *MsgWithdrawDust {
	return &MsgWithdrawDust{Caller: caller, Token: token, Amount: amount}
}

// ValidateBasic implements the sdk.Msg interface for MsgWithdrawDust
func (msg MsgWithdrawDust) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	if msg.Token == "" {
		return sdkerrors.Wrap(ErrInvalidToken, "token denomination cannot be empty")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdrawDust
func (msg MsgWithdrawDust) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}
