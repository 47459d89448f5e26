package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

func TestMsgSetFeesValidation(t *testing.T) {
	var msg *types.MsgSetFees

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{"success", func() {}, true},
		{"invalid payer", func() { msg.Payer = "invalid" }, false},
		{"empty denom", func() { msg.Denom = "" }, false},
		{"negative recv fee", func() { msg.RecvFee = sdk.NewInt(-5) }, false},
	}

	for _, tc := range testCases {
		msg = types.NewMsgSetFees(validAddress, sdk.DefaultBondDenom, sdk.NewInt(2333), sdk.ZeroInt(), sdk.NewInt(2666))

		tc.malleate()

		err := msg.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestMsgSetFeesGetSigners(t *testing.T) {
	msg := types.NewMsgSetFees(validAddress, sdk.DefaultBondDenom, sdk.NewInt(2333), sdk.ZeroInt(), sdk.NewInt(2666))
	require.Equal(t, validAddress, msg.GetSigners()[0].String())
	require.Equal(t, types.RouterKey, msg.Route())
	require.Equal(t, types.TypeMsgSetFees, msg.Type())
	require.NotEmpty(t, msg.GetSignBytes())

	msg.Payer = "invalid"
	require.Panics(t, func() { msg.GetSigners() })
}

func TestMsgUnsetFeesValidation(t *testing.T) {
	require.NoError(t, types.NewMsgUnsetFees(validAddress).ValidateBasic())
	require.Error(t, types.NewMsgUnsetFees("").ValidateBasic())
	require.Equal(t, validAddress, types.NewMsgUnsetFees(validAddress).GetSigners()[0].String())
}

func TestMsgSetDispatcherModeValidation(t *testing.T) {
	testCases := []struct {
		name    string
		msg     *types.MsgSetDispatcherMode
		expPass bool
	}{
		{"normal", types.NewMsgSetDispatcherMode(validAddress, types.DispatcherModeNormal), true},
		{"always fault", types.NewMsgSetDispatcherMode(validAddress, types.DispatcherModeAlwaysFault), true},
		{"invalid authority", types.NewMsgSetDispatcherMode("invalid", types.DispatcherModeNormal), false},
		{"unknown mode", types.NewMsgSetDispatcherMode(validAddress, types.DispatcherMode(3)), false},
	}

	for _, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestParseDispatcherMode(t *testing.T) {
	mode, err := types.ParseDispatcherMode("always_fault")
	require.NoError(t, err)
	require.Equal(t, types.DispatcherModeAlwaysFault, mode)

	mode, err = types.ParseDispatcherMode("Normal")
	require.NoError(t, err)
	require.Equal(t, types.DispatcherModeNormal, mode)

	_, err = types.ParseDispatcherMode("sometimes")
	require.ErrorIs(t, err, types.ErrInvalidDispatcherMode)

	require.Equal(t, "always_fault", types.DispatcherModeAlwaysFault.String())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	minFee := types.NewFee(nil, defaultAckFee, defaultTimeoutFee)
	require.NoError(t, types.NewParams(minFee, 1).Validate())

	require.Error(t, types.NewParams(types.Fee{}, 0).Validate())
	require.Error(t, types.NewParams(types.NewFee(nil, invalidCoins, nil), 1).Validate())
}
