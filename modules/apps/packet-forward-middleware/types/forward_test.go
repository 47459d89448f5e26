package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
)

func TestGetPacketMetadataFromMemo(t *testing.T) {
	testCases := []struct {
		name     string
		memo     string
		isPFM    bool
		expError bool
	}{
		{"empty memo", "", false, false},
		{"memo is not json", "hello", false, false},
		{"memo without forward key", `{"wasm":{"contract":"cosmos1"}}`, false, false},
		{"forward is not an object", `{"forward":"channel-1"}`, true, true},
		{"missing receiver", `{"forward":{"port":"transfer","channel":"channel-1"}}`, true, true},
		{"missing port", `{"forward":{"receiver":"cosmos1","channel":"channel-1"}}`, true, true},
		{"missing channel", `{"forward":{"receiver":"cosmos1","port":"transfer"}}`, true, true},
		{"invalid timeout", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1","timeout":true}}`, true, true},
		{"next without forward", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1","next":{"wasm":{}}}}`, true, true},
		{"single hop", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1"}}`, true, false},
		{"string timeout", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1","timeout":"5m"}}`, true, false},
		{"numeric timeout", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1","timeout":60000000000}}`, true, false},
		{"next as object", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1","next":{"forward":{"receiver":"cosmos2","port":"transfer","channel":"channel-2"}}}}`, true, false},
		{"next as string", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"channel-1","next":"{\"forward\":{\"receiver\":\"cosmos2\",\"port\":\"transfer\",\"channel\":\"channel-2\"}}"}}`, true, false},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			_, isPFM, err := types.GetPacketMetadataFromMemo(tc.memo)

			require.Equal(t, tc.isPFM, isPFM)
			if tc.expError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestForwardMetadataRoundTrip(t *testing.T) {
	metadata := types.PacketMetadata{
		Forward: types.ForwardMetadata{
			Receiver: "cosmos1receiver",
			Port:     "transfer",
			Channel:  "channel-1",
			Timeout:  5 * time.Minute,
			Next: &types.PacketMetadata{
				Forward: types.ForwardMetadata{
					Receiver: "cosmos1final",
					Port:     "transfer",
					Channel:  "channel-7",
				},
			},
		},
	}

	memo, err := metadata.ToMemo()
	require.NoError(t, err)

	decoded, isPFM, err := types.GetPacketMetadataFromMemo(memo)
	require.NoError(t, err)
	require.True(t, isPFM)
	require.Equal(t, metadata, decoded)
}

func TestForwardMetadataValidate(t *testing.T) {
	valid := types.ForwardMetadata{Receiver: "cosmos1receiver", Port: "transfer", Channel: "channel-1"}

	testCases := []struct {
		name     string
		malleate func(m *types.ForwardMetadata)
		expPass  bool
	}{
		{"valid", func(m *types.ForwardMetadata) {}, true},
		{"empty receiver", func(m *types.ForwardMetadata) { m.Receiver = "" }, false},
		{"invalid port", func(m *types.ForwardMetadata) { m.Port = "" }, false},
		{"invalid channel", func(m *types.ForwardMetadata) { m.Channel = "ch" }, false},
		{"invalid next hop", func(m *types.ForwardMetadata) {
			m.Next = &types.PacketMetadata{Forward: types.ForwardMetadata{Port: "transfer", Channel: "channel-2"}}
		}, false},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			metadata := valid
			tc.malleate(&metadata)

			err := metadata.Validate()
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
