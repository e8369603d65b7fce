package types_test

import (
	"fmt"
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meshswap/meshswap/x/venues/types"
)

// TestRegisterInterfaces registers the module's messages on a fresh registry
// and resolves each one back by its type URL. Every message must carry its
// own URL; a shared URL would make the second registration panic.
func TestRegisterInterfaces(t *testing.T) {
	registry := codectypes.NewInterfaceRegistry()

	require.NotPanics(t, func() {
		types.RegisterInterfaces(registry)
	})

	msgs := []sdk.Msg{
		&types.MsgRegisterTokenPath{},
		&types.MsgSetPairFee{},
		&types.MsgRegisterPoolRoute{},
		&types.MsgSetSharePool{},
		&types.MsgWithdrawDust{},
	}

	seen := make(map[string]bool)
	for _, msg := range msgs {
		url := sdk.MsgTypeURL(msg)
		require.False(t, seen[url], "type URL %s registered twice", url)
		seen[url] = true

		resolved, err := registry.Resolve(url)
		require.NoError(t, err)
		require.IsType(t, msg, resolved)
	}
}

// TestMsgTypeURLs pins the proto names the registry and tx routing key off.
func TestMsgTypeURLs(t *testing.T) {
	for _, tc := range []struct {
		msg  sdk.Msg
		name string
	}{
		{&types.MsgRegisterTokenPath{}, "MsgRegisterTokenPath"},
		{&types.MsgSetPairFee{}, "MsgSetPairFee"},
		{&types.MsgRegisterPoolRoute{}, "MsgRegisterPoolRoute"},
		{&types.MsgSetSharePool{}, "MsgSetSharePool"},
		{&types.MsgWithdrawDust{}, "MsgWithdrawDust"},
	} {
		require.Equal(t, fmt.Sprintf("/meshswap.venues.%s", tc.name), sdk.MsgTypeURL(tc.msg))
	}
}
