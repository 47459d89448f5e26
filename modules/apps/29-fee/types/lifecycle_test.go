package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

func TestPacketStatus(t *testing.T) {
	require.False(t, types.PacketStatusUnspecified.IsTerminal())
	require.False(t, types.PacketStatusPending.IsTerminal())
	require.True(t, types.PacketStatusAckSuccess.IsTerminal())
	require.True(t, types.PacketStatusAckError.IsTerminal())
	require.True(t, types.PacketStatusTimedOut.IsTerminal())

	require.Equal(t, "timed_out", types.PacketStatusTimedOut.String())
	require.Equal(t, "PacketStatus(9)", types.PacketStatus(9).String())
}

func TestPacketRecordValidate(t *testing.T) {
	testCases := []struct {
		name    string
		record  types.PacketRecord
		expPass bool
	}{
		{"pending", types.NewPacketRecord(validPacketID, validAddress, types.PacketStatusPending), true},
		{"terminal", types.NewPacketRecord(validPacketID, validAddress, types.PacketStatusAckError), true},
		{"unspecified status", types.NewPacketRecord(validPacketID, validAddress, types.PacketStatusUnspecified), false},
		{"unknown status", types.NewPacketRecord(validPacketID, validAddress, types.PacketStatus(9)), false},
		{"invalid sender", types.NewPacketRecord(validPacketID, "invalid", types.PacketStatusPending), false},
		{"invalid packet id", types.NewPacketRecord(types.NewPacketID("transfer", "channel-0", 0), validAddress, types.PacketStatusPending), false},
	}

	for _, tc := range testCases {
		err := tc.record.Validate()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestClassifyAcknowledgement(t *testing.T) {
	testCases := []struct {
		name      string
		ack       []byte
		expStatus types.PacketStatus
		expError  string
	}{
		{
			"result acknowledgement",
			channeltypes.NewResultAcknowledgement([]byte{1}).Acknowledgement(),
			types.PacketStatusAckSuccess,
			"",
		},
		{
			"error acknowledgement",
			channeltypes.NewErrorAcknowledgement("receiver rejected the tokens").Acknowledgement(),
			types.PacketStatusAckError,
			"receiver rejected the tokens",
		},
		{
			"not json",
			[]byte("not an acknowledgement"),
			types.PacketStatusAckError,
			"malformed acknowledgement",
		},
		{
			"empty response",
			[]byte("{}"),
			types.PacketStatusAckError,
			"malformed acknowledgement: empty response",
		},
		{
			"empty payload",
			nil,
			types.PacketStatusAckError,
			"malformed acknowledgement",
		},
	}

	for _, tc := range testCases {
		status, ack := types.ClassifyAcknowledgement(tc.ack)

		require.Equal(t, tc.expStatus, status, tc.name)
		require.Contains(t, ack.GetError(), tc.expError, tc.name)

		if status == types.PacketStatusAckSuccess {
			require.True(t, ack.Success(), tc.name)
		} else {
			require.False(t, ack.Success(), tc.name)
		}
	}
}
