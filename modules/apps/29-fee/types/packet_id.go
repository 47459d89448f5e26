package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// PacketID identifies an outbound packet by its source port, source channel and sequence
type PacketID struct {
	PortID    string `json:"port_id" yaml:"port_id"`
	ChannelID string `json:"channel_id" yaml:"channel_id"`
	Sequence  uint64 `json:"sequence" yaml:"sequence"`
}

// NewPacketID returns a new instance of PacketID
func NewPacketID(portID, channelID string, seq uint64) PacketID {
	return PacketID{
		PortID:    portID,
		ChannelID: channelID,
		Sequence:  seq,
	}
}

// PacketIDFromPacket returns the identifier of an outbound packet
func PacketIDFromPacket(packet channeltypes.Packet) PacketID {
	return NewPacketID(packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetSequence())
}

// Validate performs basic validation of the packet identifiers
func (p PacketID) Validate() error {
	if err := host.PortIdentifierValidator(p.PortID); err != nil {
		return sdkerrors.Wrap(err, "invalid source port ID")
	}

	if err := host.ChannelIdentifierValidator(p.ChannelID); err != nil {
		return sdkerrors.Wrap(err, "invalid source channel ID")
	}

	if p.Sequence == 0 {
		return sdkerrors.Wrap(channeltypes.ErrInvalidPacket, "packet sequence cannot be 0")
	}

	return nil
}

// String implements fmt.Stringer
func (p PacketID) String() string {
	return fmt.Sprintf("%s/%s/%d", p.PortID, p.ChannelID, p.Sequence)
}
