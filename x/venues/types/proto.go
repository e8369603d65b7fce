package types

import (
	"fmt"
)

// Minimal gogoproto plumbing so the hand-written message types satisfy
// sdk.Msg and can be registered with the interface registry. The
// XXX_MessageName methods give each message a unique proto name; without one,
// gogo resolves every message to the empty name and the registry maps them
// all to the same type URL.

func (m *MsgRegisterTokenPath) Reset()         { *m = MsgRegisterTokenPath{} }
func (m *MsgRegisterTokenPath) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRegisterTokenPath) ProtoMessage()    {}
func (*MsgRegisterTokenPath) XXX_MessageName() string {
	return "meshswap.venues.MsgRegisterTokenPath"
}

func (m *MsgSetPairFee) Reset()         { *m = MsgSetPairFee{} }
func (m *MsgSetPairFee) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSetPairFee) ProtoMessage()    {}
func (*MsgSetPairFee) XXX_MessageName() string {
	return "meshswap.venues.MsgSetPairFee"
}

func (m *MsgRegisterPoolRoute) Reset()         { *m = MsgRegisterPoolRoute{} }
func (m *MsgRegisterPoolRoute) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgRegisterPoolRoute) ProtoMessage()    {}
func (*MsgRegisterPoolRoute) XXX_MessageName() string {
	return "meshswap.venues.MsgRegisterPoolRoute"
}

func (m *MsgSetSharePool) Reset()         { *m = MsgSetSharePool{} }
func (m *MsgSetSharePool) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgSetSharePool) ProtoMessage()    {}
func (*MsgSetSharePool) XXX_MessageName() string {
	return "meshswap.venues.MsgSetSharePool"
}

func (m *MsgWithdrawDust) Reset()         { *m = MsgWithdrawDust{} }
func (m *MsgWithdrawDust) String() string { return fmt.Sprintf("%+v", *m) }
func (*MsgWithdrawDust) ProtoMessage()    {}
func (*MsgWithdrawDust) XXX_MessageName() string {
	return "meshswap.venues.MsgWithdrawDust"
}
