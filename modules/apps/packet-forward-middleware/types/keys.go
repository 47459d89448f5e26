package types

import "fmt"

const (
	// ModuleName defines the module name
	ModuleName = "packetforward"

	// StoreKey is the store key string for the packet forward middleware
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the packet forward middleware
	QuerierRoute = ModuleName

	// ForwardedPacketPrefix is the key prefix of the forwarded packet records
	ForwardedPacketPrefix = "forwarded"
)

// ForwardedPacketKey returns the key of the record of an inbound packet that was forwarded.
// The inbound packet is identified by its destination port and channel on this chain.
func ForwardedPacketKey(portID, channelID string, sequence uint64) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s/%d", ForwardedPacketPrefix, portID, channelID, sequence))
}
