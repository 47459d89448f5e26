package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// ack types recorded in the failure log
const (
	AckTypeAck     = "ack"
	AckTypeTimeout = "timeout"
)

// MaxFailuresPageLimit is the largest page a failures query may request
const MaxFailuresPageLimit uint64 = 100

// PacketInfo identifies the packet a failure was recorded for
type PacketInfo struct {
	PortID    string `json:"port_id" yaml:"port_id"`
	ChannelID string `json:"channel_id" yaml:"channel_id"`
	Sequence  uint64 `json:"sequence" yaml:"sequence"`
}

// NewPacketInfo creates a new PacketInfo instance
func NewPacketInfo(portID, channelID string, sequence uint64) PacketInfo {
	return PacketInfo{
		PortID:    portID,
		ChannelID: channelID,
		Sequence:  sequence,
	}
}

// Failure is a packet resolved with an error acknowledgement, a timeout or a failed callback
type Failure struct {
	Address   string     `json:"address" yaml:"address"`
	ID        uint64     `json:"id" yaml:"id"`
	AckType   string     `json:"ack_type" yaml:"ack_type"`
	Packet    PacketInfo `json:"packet" yaml:"packet"`
	ErrorText string     `json:"error" yaml:"error"`
}

// NewFailure creates a new Failure instance
func NewFailure(address string, id uint64, ackType string, packet PacketInfo, errorText string) Failure {
	return Failure{
		Address:   address,
		ID:        id,
		AckType:   ackType,
		Packet:    packet,
		ErrorText: errorText,
	}
}

// Validate performs a stateless check of the failure record
func (f Failure) Validate() error {
	if _, err := sdk.AccAddressFromBech32(f.Address); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if err := ValidateAckType(f.AckType); err != nil {
		return err
	}

	if err := host.PortIdentifierValidator(f.Packet.PortID); err != nil {
		return sdkerrors.Wrap(err, "invalid packet port ID")
	}

	return host.ChannelIdentifierValidator(f.Packet.ChannelID)
}

// ValidateAckType returns an error for ack types other than "ack" and "timeout"
func ValidateAckType(ackType string) error {
	switch ackType {
	case AckTypeAck, AckTypeTimeout:
		return nil
	default:
		return sdkerrors.Wrap(ErrInvalidAckType, fmt.Sprintf("expected %s or %s, got %q", AckTypeAck, AckTypeTimeout, ackType))
	}
}
