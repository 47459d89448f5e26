package types

import (
	ibctransfertypes "github.com/cosmos/ibc-go/v2/modules/apps/transfer/types"
)

// ReceivedDenom returns the denomination credited on the receiving chain for a packet
// carrying fullDenomPath over the given source and destination port/channel pairs.
//
// If the sending chain was not the source of the token the prefix added by the
// sending chain is removed and the native (or hashed) denomination is returned.
// Otherwise the denomination is prefixed with the destination port and channel and
// the corresponding voucher denomination is returned.
func ReceivedDenom(sourcePort, sourceChannel, destPort, destChannel, fullDenomPath string) string {
	if ibctransfertypes.ReceiverChainIsSource(sourcePort, sourceChannel, fullDenomPath) {
		voucherPrefix := ibctransfertypes.GetDenomPrefix(sourcePort, sourceChannel)
		unprefixedDenom := fullDenomPath[len(voucherPrefix):]

		return ibctransfertypes.ParseDenomTrace(unprefixedDenom).IBCDenom()
	}

	prefixedDenom := ibctransfertypes.GetPrefixedDenom(destPort, destChannel, fullDenomPath)
	return ibctransfertypes.ParseDenomTrace(prefixedDenom).IBCDenom()
}
