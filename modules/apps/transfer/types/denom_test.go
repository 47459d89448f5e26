package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ibctransfertypes "github.com/cosmos/ibc-go/v2/modules/apps/transfer/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

func TestReceivedDenom(t *testing.T) {
	testCases := []struct {
		name          string
		fullDenomPath string
		expected      string
	}{
		{
			"native denom is prefixed",
			"stake",
			ibctransfertypes.ParseDenomTrace("transfer/channel-1/stake").IBCDenom(),
		},
		{
			"voucher from another chain is prefixed again",
			"transfer/channel-5/uatom",
			ibctransfertypes.ParseDenomTrace("transfer/channel-1/transfer/channel-5/uatom").IBCDenom(),
		},
		{
			"returning voucher is unwrapped to the native denom",
			"transfer/channel-0/stake",
			"stake",
		},
		{
			"returning multi-hop voucher keeps the remaining trace",
			"transfer/channel-0/transfer/channel-9/uatom",
			ibctransfertypes.ParseDenomTrace("transfer/channel-9/uatom").IBCDenom(),
		},
	}

	for _, tc := range testCases {
		denom := types.ReceivedDenom("transfer", "channel-0", "transfer", "channel-1", tc.fullDenomPath)
		require.Equal(t, tc.expected, denom, tc.name)
	}
}
