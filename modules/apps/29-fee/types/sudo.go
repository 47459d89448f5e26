package types

import (
	"encoding/json"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
)

// RequestPacketTimeoutHeight is the timeout height of the packet a callback refers to
type RequestPacketTimeoutHeight struct {
	RevisionNumber uint64 `json:"revision_number"`
	RevisionHeight uint64 `json:"revision_height"`
}

// RequestPacket is the packet a sudo callback refers to
type RequestPacket struct {
	Sequence           uint64                     `json:"sequence"`
	SourcePort         string                     `json:"source_port"`
	SourceChannel      string                     `json:"source_channel"`
	DestinationPort    string                     `json:"destination_port"`
	DestinationChannel string                     `json:"destination_channel"`
	Data               []byte                     `json:"data"`
	TimeoutHeight      RequestPacketTimeoutHeight `json:"timeout_height"`
	TimeoutTimestamp   uint64                     `json:"timeout_timestamp"`
}

// SudoResponsePayload is sent to the sender when the packet was acknowledged with a result
type SudoResponsePayload struct {
	Request RequestPacket `json:"request"`
	Data    []byte        `json:"data"`
}

// SudoErrorPayload is sent to the sender when the packet was acknowledged with an error
type SudoErrorPayload struct {
	Request RequestPacket `json:"request"`
	Details string        `json:"details"`
}

// SudoTimeoutPayload is sent to the sender when the packet timed out
type SudoTimeoutPayload struct {
	Request RequestPacket `json:"request"`
}

// SudoMessage is the JSON message passed to the sender contract on packet resolution.
// Exactly one field is set.
type SudoMessage struct {
	Response *SudoResponsePayload `json:"response,omitempty"`
	Error    *SudoErrorPayload    `json:"error,omitempty"`
	Timeout  *SudoTimeoutPayload  `json:"timeout,omitempty"`
}

// NewRequestPacket converts a channel packet into its callback representation
func NewRequestPacket(packet channeltypes.Packet) RequestPacket {
	return RequestPacket{
		Sequence:           packet.GetSequence(),
		SourcePort:         packet.GetSourcePort(),
		SourceChannel:      packet.GetSourceChannel(),
		DestinationPort:    packet.GetDestPort(),
		DestinationChannel: packet.GetDestChannel(),
		Data:               packet.GetData(),
		TimeoutHeight: RequestPacketTimeoutHeight{
			RevisionNumber: packet.TimeoutHeight.RevisionNumber,
			RevisionHeight: packet.TimeoutHeight.RevisionHeight,
		},
		TimeoutTimestamp: packet.GetTimeoutTimestamp(),
	}
}

// NewSudoMessage builds the callback message for a resolved packet
func NewSudoMessage(packet channeltypes.Packet, status PacketStatus, ack channeltypes.Acknowledgement) SudoMessage {
	request := NewRequestPacket(packet)

	switch status {
	case PacketStatusAckSuccess:
		return SudoMessage{Response: &SudoResponsePayload{Request: request, Data: ack.GetResult()}}
	case PacketStatusTimedOut:
		return SudoMessage{Timeout: &SudoTimeoutPayload{Request: request}}
	default:
		return SudoMessage{Error: &SudoErrorPayload{Request: request, Details: ack.GetError()}}
	}
}

// GetBytes returns the JSON encoding passed to the contract
func (m SudoMessage) GetBytes() ([]byte, error) {
	return json.Marshal(m)
}
