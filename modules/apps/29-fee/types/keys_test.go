package types_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

var validPacketID = types.NewPacketID("transfer", "channel-0", 1)

func TestKeyFeeConfig(t *testing.T) {
	key := types.KeyFeeConfig(validAddress)
	require.Equal(t, fmt.Sprintf("%s/%s", types.FeeConfigPrefix, validAddress), string(key))
}

func TestParseKeyFeeInEscrow(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		expPass bool
	}{
		{
			"success",
			string(types.KeyFeeInEscrow(validPacketID)),
			true,
		},
		{
			"incorrect key - key split has incorrect length",
			string(types.KeyFeeConfig(validAddress)),
			false,
		},
		{
			"incorrect key - wrong prefix",
			string(types.KeyPacketLifecycle(validPacketID)),
			false,
		},
		{
			"incorrect key - sequence cannot be parsed",
			fmt.Sprintf("%s/%s/%s/%s", types.FeeInEscrowPrefix, validPacketID.PortID, validPacketID.ChannelID, "sequence"),
			false,
		},
	}

	for _, tc := range testCases {
		packetID, err := types.ParseKeyFeeInEscrow(tc.key)

		if tc.expPass {
			require.NoError(t, err, tc.name)
			require.Equal(t, validPacketID, packetID)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestParseKeyPacketLifecycle(t *testing.T) {
	packetID, err := types.ParseKeyPacketLifecycle(string(types.KeyPacketLifecycle(validPacketID)))
	require.NoError(t, err)
	require.Equal(t, validPacketID, packetID)

	_, err = types.ParseKeyPacketLifecycle(string(types.KeyFeeInEscrow(validPacketID)))
	require.Error(t, err)
}

func TestPacketIDValidate(t *testing.T) {
	testCases := []struct {
		name     string
		packetID types.PacketID
		expPass  bool
	}{
		{"valid packet id", validPacketID, true},
		{"invalid port", types.NewPacketID("", "channel-0", 1), false},
		{"invalid channel", types.NewPacketID("transfer", "#", 1), false},
		{"zero sequence", types.NewPacketID("transfer", "channel-0", 0), false},
	}

	for _, tc := range testCases {
		err := tc.packetID.Validate()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}

	require.Equal(t, "transfer/channel-0/1", validPacketID.String())
}
