package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterTokenPath{}, "venues/MsgRegisterTokenPath", nil)
	cdc.RegisterConcrete(&MsgSetPairFee{}, "venues/MsgSetPairFee", nil)
	cdc.RegisterConcrete(&MsgRegisterPoolRoute{}, "venues/MsgRegisterPoolRoute", nil)
	cdc.RegisterConcrete(&MsgSetSharePool{}, "venues/MsgSetSharePool", nil)
	cdc.RegisterConcrete(&MsgWithdrawDust{}, "venues/MsgWithdrawDust", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterTokenPath{},
		&MsgSetPairFee{},
		&MsgRegisterPoolRoute{},
		&MsgSetSharePool{},
		&MsgWithdrawDust{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
