package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// ForwardedPacket records an inbound transfer packet that was relayed onward.
// The inbound side is identified by the destination port and channel on this chain.
type ForwardedPacket struct {
	InPortID     string   `json:"in_port_id" yaml:"in_port_id"`
	InChannelID  string   `json:"in_channel_id" yaml:"in_channel_id"`
	InSequence   uint64   `json:"in_sequence" yaml:"in_sequence"`
	OutPortID    string   `json:"out_port_id" yaml:"out_port_id"`
	OutChannelID string   `json:"out_channel_id" yaml:"out_channel_id"`
	OutSequence  uint64   `json:"out_sequence" yaml:"out_sequence"`
	Sender       string   `json:"sender" yaml:"sender"`
	Receiver     string   `json:"receiver" yaml:"receiver"`
	Token        sdk.Coin `json:"token" yaml:"token"`
}

// Validate performs a stateless check of the record.
func (p ForwardedPacket) Validate() error {
	if err := host.PortIdentifierValidator(p.InPortID); err != nil {
		return err
	}
	if err := host.ChannelIdentifierValidator(p.InChannelID); err != nil {
		return err
	}
	if err := host.PortIdentifierValidator(p.OutPortID); err != nil {
		return err
	}
	if err := host.ChannelIdentifierValidator(p.OutChannelID); err != nil {
		return err
	}
	if p.InSequence == 0 || p.OutSequence == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidSequence, "packet sequence cannot be 0")
	}
	if _, err := sdk.AccAddressFromBech32(p.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "failed to convert sender address")
	}
	if p.Receiver == "" {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "receiver cannot be empty")
	}
	if !p.Token.IsValid() || !p.Token.IsPositive() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, p.Token.String())
	}

	return nil
}
