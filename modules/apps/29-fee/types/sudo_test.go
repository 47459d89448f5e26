package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	clienttypes "github.com/cosmos/ibc-go/v2/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

func TestSudoMessage(t *testing.T) {
	packet := channeltypes.NewPacket(
		[]byte(`{"amount":"1000"}`), 7,
		"transfer", "channel-0", "transfer", "channel-1",
		clienttypes.NewHeight(1, 100), 1_000_000,
	)

	testCases := []struct {
		name   string
		status types.PacketStatus
		ack    channeltypes.Acknowledgement
		expKey string
	}{
		{"response", types.PacketStatusAckSuccess, channeltypes.NewResultAcknowledgement([]byte{1}), "response"},
		{"error", types.PacketStatusAckError, channeltypes.NewErrorAcknowledgement("failed"), "error"},
		{"timeout", types.PacketStatusTimedOut, channeltypes.Acknowledgement{}, "timeout"},
	}

	for _, tc := range testCases {
		bz, err := types.NewSudoMessage(packet, tc.status, tc.ack).GetBytes()
		require.NoError(t, err, tc.name)

		// exactly one variant is encoded
		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(bz, &fields), tc.name)
		require.Len(t, fields, 1, tc.name)
		require.Contains(t, fields, tc.expKey, tc.name)

		var msg types.SudoMessage
		require.NoError(t, json.Unmarshal(bz, &msg), tc.name)

		var request types.RequestPacket
		switch tc.expKey {
		case "response":
			request = msg.Response.Request
			require.Equal(t, []byte{1}, msg.Response.Data)
		case "error":
			request = msg.Error.Request
			require.Equal(t, "failed", msg.Error.Details)
		case "timeout":
			request = msg.Timeout.Request
		}

		require.Equal(t, uint64(7), request.Sequence, tc.name)
		require.Equal(t, "channel-0", request.SourceChannel, tc.name)
		require.Equal(t, "channel-1", request.DestinationChannel, tc.name)
		require.Equal(t, uint64(100), request.TimeoutHeight.RevisionHeight, tc.name)
		require.Equal(t, uint64(1_000_000), request.TimeoutTimestamp, tc.name)
		require.Equal(t, packet.GetData(), request.Data, tc.name)
	}
}
