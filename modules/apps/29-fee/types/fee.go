package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Fee defines the relay fees reserved for a single packet
type Fee struct {
	RecvFee    sdk.Coins `json:"recv_fee" yaml:"recv_fee"`
	AckFee     sdk.Coins `json:"ack_fee" yaml:"ack_fee"`
	TimeoutFee sdk.Coins `json:"timeout_fee" yaml:"timeout_fee"`
}

// NewFee creates and returns a new Fee struct encapsulating the receive, acknowledgement and timeout fees as sdk.Coins
func NewFee(recvFee, ackFee, timeoutFee sdk.Coins) Fee {
	return Fee{
		RecvFee:    recvFee,
		AckFee:     ackFee,
		TimeoutFee: timeoutFee,
	}
}

// Total returns the total escrowable amount for a given Fee
func (fee Fee) Total() sdk.Coins {
	return fee.RecvFee.Add(fee.AckFee...).Add(fee.TimeoutFee...)
}

// Validate asserts that each Fee is valid and all three Fees are not empty or zero
func (fee Fee) Validate() error {
	var errFees []string
	if !fee.AckFee.IsValid() {
		errFees = append(errFees, "ack fee invalid")
	}
	if !fee.RecvFee.IsValid() {
		errFees = append(errFees, "recv fee invalid")
	}
	if !fee.TimeoutFee.IsValid() {
		errFees = append(errFees, "timeout fee invalid")
	}

	if len(errFees) > 0 {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "contains invalid fees: %s", strings.Join(errFees, " , "))
	}

	// if all three fee's are zero or empty return an error
	if fee.AckFee.IsZero() && fee.RecvFee.IsZero() && fee.TimeoutFee.IsZero() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, "all fees are zero")
	}

	return nil
}

// PacketFee is the escrow entry held against a single in-flight packet
type PacketFee struct {
	PacketID PacketID `json:"packet_id" yaml:"packet_id"`
	Payer    string   `json:"payer" yaml:"payer"`
	Fee      Fee      `json:"fee" yaml:"fee"`
}

// NewPacketFee creates and returns a new PacketFee struct
func NewPacketFee(packetID PacketID, payer string, fee Fee) PacketFee {
	return PacketFee{
		PacketID: packetID,
		Payer:    payer,
		Fee:      fee,
	}
}

// Validate performs basic stateless validation of the associated PacketFee
func (p PacketFee) Validate() error {
	if err := p.PacketID.Validate(); err != nil {
		return err
	}

	if _, err := sdk.AccAddressFromBech32(p.Payer); err != nil {
		return sdkerrors.Wrap(err, "failed to convert payer address")
	}

	return p.Fee.Validate()
}
