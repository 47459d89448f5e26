package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
)

// PacketStatus is the lifecycle state of an outbound packet
type PacketStatus int32

const (
	PacketStatusUnspecified PacketStatus = iota
	PacketStatusPending
	PacketStatusAckSuccess
	PacketStatusAckError
	PacketStatusTimedOut
)

var packetStatusNames = map[PacketStatus]string{
	PacketStatusUnspecified: "unspecified",
	PacketStatusPending:     "pending",
	PacketStatusAckSuccess:  "ack_success",
	PacketStatusAckError:    "ack_error",
	PacketStatusTimedOut:    "timed_out",
}

// String implements fmt.Stringer
func (s PacketStatus) String() string {
	if name, ok := packetStatusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("PacketStatus(%d)", int32(s))
}

// IsTerminal returns true for the states a packet can never leave
func (s PacketStatus) IsTerminal() bool {
	switch s {
	case PacketStatusAckSuccess, PacketStatusAckError, PacketStatusTimedOut:
		return true
	default:
		return false
	}
}

// PacketRecord tracks the lifecycle of a single outbound packet
type PacketRecord struct {
	PacketID PacketID     `json:"packet_id" yaml:"packet_id"`
	Sender   string       `json:"sender" yaml:"sender"`
	Status   PacketStatus `json:"status" yaml:"status"`
}

// NewPacketRecord creates a new PacketRecord instance
func NewPacketRecord(packetID PacketID, sender string, status PacketStatus) PacketRecord {
	return PacketRecord{
		PacketID: packetID,
		Sender:   sender,
		Status:   status,
	}
}

// Validate performs a stateless check of the record
func (r PacketRecord) Validate() error {
	if err := r.PacketID.Validate(); err != nil {
		return err
	}

	if _, err := sdk.AccAddressFromBech32(r.Sender); err != nil {
		return sdkerrors.Wrap(err, "failed to convert sender address")
	}

	if r.Status != PacketStatusPending && !r.Status.IsTerminal() {
		return sdkerrors.Wrapf(ErrInvalidPacketStatus, "packet %s has status %s", r.PacketID, r.Status)
	}

	return nil
}

// ClassifyAcknowledgement decodes an acknowledgement payload into AckSuccess or AckError.
// A payload that cannot be decoded is classified as AckError and replaced by an
// error acknowledgement describing the failure.
func ClassifyAcknowledgement(bz []byte) (PacketStatus, channeltypes.Acknowledgement) {
	var ack channeltypes.Acknowledgement
	if err := channeltypes.SubModuleCdc.UnmarshalJSON(bz, &ack); err != nil {
		return PacketStatusAckError, channeltypes.NewErrorAcknowledgement(fmt.Sprintf("malformed acknowledgement: %s", err))
	}

	if ack.Response == nil {
		return PacketStatusAckError, channeltypes.NewErrorAcknowledgement("malformed acknowledgement: empty response")
	}

	if !ack.Success() {
		return PacketStatusAckError, ack
	}

	return PacketStatusAckSuccess, ack
}
