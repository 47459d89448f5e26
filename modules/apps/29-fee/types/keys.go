package types

import (
	"fmt"
	"strconv"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	// ModuleName defines the 29-fee name
	ModuleName = "feeibc"

	// StoreKey is the store key string for IBC fee module
	StoreKey = ModuleName

	// RouterKey is the message route for IBC fee module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for IBC fee module
	QuerierRoute = ModuleName

	// FeeConfigPrefix is the key prefix for the per payer fee configuration
	FeeConfigPrefix = "feeConfig"

	// FeeInEscrowPrefix is the key prefix for fee in escrow mapping
	FeeInEscrowPrefix = "feeInEscrow"

	// PacketLifecyclePrefix is the key prefix for the packet lifecycle records
	PacketLifecyclePrefix = "packetLifecycle"

	// DispatcherModeKey is the key under which the outcome dispatcher mode is stored
	DispatcherModeKey = "dispatcherMode"
)

// KeyFeeConfig returns the key that stores the fee configuration of the given payer
func KeyFeeConfig(payer string) []byte {
	return []byte(fmt.Sprintf("%s/%s", FeeConfigPrefix, payer))
}

// KeyFeeInEscrow returns the key of escrowed fees for the given packet identifier
func KeyFeeInEscrow(packetID PacketID) []byte {
	return []byte(fmt.Sprintf("%s/%s", FeeInEscrowPrefix, packetPath(packetID)))
}

// ParseKeyFeeInEscrow parses the key used to store a packet fee and returns the packet id
func ParseKeyFeeInEscrow(key string) (PacketID, error) {
	return parsePacketKey(FeeInEscrowPrefix, key)
}

// KeyPacketLifecycle returns the key of the lifecycle record for the given packet identifier
func KeyPacketLifecycle(packetID PacketID) []byte {
	return []byte(fmt.Sprintf("%s/%s", PacketLifecyclePrefix, packetPath(packetID)))
}

// ParseKeyPacketLifecycle parses the key used to store a packet lifecycle record and returns the packet id
func ParseKeyPacketLifecycle(key string) (PacketID, error) {
	return parsePacketKey(PacketLifecyclePrefix, key)
}

func packetPath(packetID PacketID) string {
	return fmt.Sprintf("%s/%s/%d", packetID.PortID, packetID.ChannelID, packetID.Sequence)
}

func parsePacketKey(prefix, key string) (PacketID, error) {
	keySplit := strings.Split(key, "/")
	if len(keySplit) != 4 {
		return PacketID{}, sdkerrors.Wrapf(
			sdkerrors.ErrLogic, "key provided is incorrect: the key split has incorrect length, expected %d, got %d", 4, len(keySplit),
		)
	}

	if keySplit[0] != prefix {
		return PacketID{}, sdkerrors.Wrapf(sdkerrors.ErrLogic, "key prefix is incorrect: expected %s, got %s", prefix, keySplit[0])
	}

	seq, err := strconv.ParseUint(keySplit[3], 10, 64)
	if err != nil {
		return PacketID{}, err
	}

	return NewPacketID(keySplit[1], keySplit[2], seq), nil
}
