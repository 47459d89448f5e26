package ibctesting

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	abci "github.com/tendermint/tendermint/abci/types"

	clienttypes "github.com/cosmos/ibc-go/v2/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
)

// ParsePacketFromEvents parses events emitted from a transaction and returns
// the first EventTypeSendPacket packet found.
// Returns an error if no packet is found.
func ParsePacketFromEvents(events []abci.Event) (channeltypes.Packet, error) {
	packets, err := ParsePacketsFromEvents(channeltypes.EventTypeSendPacket, events)
	if err != nil {
		return channeltypes.Packet{}, err
	}
	return packets[0], nil
}

// ParsePacketsFromEvents parses events emitted from a transaction and returns
// all the packets of eventType found.
// Returns an error if no packet is found.
func ParsePacketsFromEvents(eventType string, events []abci.Event) ([]channeltypes.Packet, error) {
	ferr := func(err error) ([]channeltypes.Packet, error) {
		return nil, fmt.Errorf("ibctesting.ParsePacketsFromEvents: %w", err)
	}
	var packets []channeltypes.Packet
	for _, ev := range events {
		if ev.Type == eventType {
			var packet channeltypes.Packet
			for _, attr := range ev.Attributes {
				value := string(attr.Value)

				switch string(attr.Key) {
				case channeltypes.AttributeKeyDataHex:
					data, err := hex.DecodeString(value)
					if err != nil {
						return ferr(err)
					}
					packet.Data = data

				case channeltypes.AttributeKeySequence:
					seq, err := strconv.ParseUint(value, 10, 64)
					if err != nil {
						return ferr(err)
					}

					packet.Sequence = seq

				case channeltypes.AttributeKeySrcPort:
					packet.SourcePort = value

				case channeltypes.AttributeKeySrcChannel:
					packet.SourceChannel = value

				case channeltypes.AttributeKeyDstPort:
					packet.DestinationPort = value

				case channeltypes.AttributeKeyDstChannel:
					packet.DestinationChannel = value

				case channeltypes.AttributeKeyTimeoutHeight:
					height, err := clienttypes.ParseHeight(value)
					if err != nil {
						return ferr(err)
					}

					packet.TimeoutHeight = height

				case channeltypes.AttributeKeyTimeoutTimestamp:
					timestamp, err := strconv.ParseUint(value, 10, 64)
					if err != nil {
						return ferr(err)
					}

					packet.TimeoutTimestamp = timestamp

				default:
					continue
				}
			}

			packets = append(packets, packet)
		}
	}
	if len(packets) == 0 {
		return ferr(errors.New("packet event not found"))
	}
	return packets, nil
}

// ParseAckFromEvents parses events emitted from a packet receive and returns the
// acknowledgement.
func ParseAckFromEvents(events []abci.Event) ([]byte, error) {
	for _, ev := range events {
		if ev.Type == channeltypes.EventTypeWriteAck {
			if value, found := attributeByKey(ev.Attributes, channeltypes.AttributeKeyAckHex); found {
				return hex.DecodeString(value)
			}
		}
	}
	return nil, errors.New("acknowledgement event attribute not found")
}

// GetEventAttribute returns the value of key in the first event of eventType that carries it
func GetEventAttribute(events []abci.Event, eventType, key string) (string, bool) {
	for _, ev := range events {
		if ev.Type != eventType {
			continue
		}

		if value, found := attributeByKey(ev.Attributes, key); found {
			return value, true
		}
	}
	return "", false
}

// ContainsEvent reports whether an event of eventType was emitted
func ContainsEvent(events []abci.Event, eventType string) bool {
	for _, ev := range events {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}

func attributeByKey(attributes []abci.EventAttribute, key string) (string, bool) {
	for _, attr := range attributes {
		if string(attr.Key) == key {
			return string(attr.Value), true
		}
	}
	return "", false
}
