package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// memo keys
const (
	ForwardMetadataKey = "forward"
	ForwardReceiverKey = "receiver"
	ForwardPortKey     = "port"
	ForwardChannelKey  = "channel"
	ForwardTimeoutKey  = "timeout"
	ForwardNextKey     = "next"
)

// PacketMetadata represents the metadata for a packet in the packet-forward middleware.
// Do not use this type directly with json encoding/decoding, as it is not json serializable.
// Instead use the provided helper methods to convert it.
type PacketMetadata struct {
	Forward ForwardMetadata
}

// ForwardMetadata represents the metadata for forwarding a packet.
type ForwardMetadata struct {
	Receiver string
	Port     string
	Channel  string
	Timeout  time.Duration

	Next *PacketMetadata // Next is a pointer to allow nil values
}

// Validate checks the receiver and the outbound port and channel identifiers.
func (m ForwardMetadata) Validate() error {
	if m.Receiver == "" {
		return errors.New("failed to validate metadata. receiver cannot be empty")
	}
	if err := host.PortIdentifierValidator(m.Port); err != nil {
		return fmt.Errorf("failed to validate metadata: %w", err)
	}
	if err := host.ChannelIdentifierValidator(m.Channel); err != nil {
		return fmt.Errorf("failed to validate metadata: %w", err)
	}

	if m.Next != nil {
		return m.Next.Forward.Validate()
	}

	return nil
}

// ToMap returns the memo representation of the forward metadata
func (m ForwardMetadata) ToMap() map[string]interface{} {
	forwardMetadataMap := map[string]interface{}{
		ForwardReceiverKey: m.Receiver,
		ForwardPortKey:     m.Port,
		ForwardChannelKey:  m.Channel,
	}

	if m.Timeout > 0 {
		forwardMetadataMap[ForwardTimeoutKey] = m.Timeout.String()
	}

	if m.Next != nil {
		forwardMetadataMap[ForwardNextKey] = m.Next.toMap()
	}

	return forwardMetadataMap
}

func (m PacketMetadata) toMap() map[string]interface{} {
	return map[string]interface{}{
		ForwardMetadataKey: m.Forward.ToMap(),
	}
}

// ToMemo returns the JSON memo carrying the metadata
func (m PacketMetadata) ToMemo() (string, error) {
	packetMetadataJSON, err := json.Marshal(m.toMap())
	if err != nil {
		return "", err
	}

	return string(packetMetadataJSON), nil
}

// GetPacketMetadataFromMemo decodes a transfer memo. The boolean is true when the memo
// carries a forward instruction, even if that instruction is malformed.
func GetPacketMetadataFromMemo(memo string) (PacketMetadata, bool, error) {
	if memo == "" {
		return PacketMetadata{}, false, nil
	}

	var memoMap map[string]interface{}
	if err := json.Unmarshal([]byte(memo), &memoMap); err != nil {
		// memos that are not JSON objects carry no forward instruction
		return PacketMetadata{}, false, nil
	}

	forwardDataAny, ok := memoMap[ForwardMetadataKey]
	if !ok {
		return PacketMetadata{}, false, nil
	}

	forwardData, ok := forwardDataAny.(map[string]interface{})
	if !ok {
		return PacketMetadata{}, true, sdkerrors.Wrapf(ErrInvalidForwardMetadata, "key %s is not an object", ForwardMetadataKey)
	}

	forwardMetadata, err := getForwardMetadata(forwardData)
	if err != nil {
		return PacketMetadata{}, true, sdkerrors.Wrapf(err, "failed to get forward metadata from packet data")
	}

	return PacketMetadata{
		Forward: forwardMetadata,
	}, true, nil
}

func getForwardMetadata(forwardData map[string]interface{}) (ForwardMetadata, error) {
	receiver, ok := forwardData[ForwardReceiverKey].(string)
	if !ok {
		return ForwardMetadata{}, sdkerrors.Wrapf(ErrMetadataKeyNotFound, "key %s not found in packet data", ForwardReceiverKey)
	}

	port, ok := forwardData[ForwardPortKey].(string)
	if !ok {
		return ForwardMetadata{}, sdkerrors.Wrapf(ErrMetadataKeyNotFound, "key %s not found in packet data", ForwardPortKey)
	}

	channel, ok := forwardData[ForwardChannelKey].(string)
	if !ok {
		return ForwardMetadata{}, sdkerrors.Wrapf(ErrMetadataKeyNotFound, "key %s not found in packet data", ForwardChannelKey)
	}

	var err error
	timeout := time.Duration(0)
	timeoutData, ok := forwardData[ForwardTimeoutKey]
	if ok {
		timeout, err = parseDuration(timeoutData)
		if err != nil {
			return ForwardMetadata{}, err
		}
	}

	var next *PacketMetadata
	nextDataAny, ok := forwardData[ForwardNextKey]
	if ok {
		nextData, err := getForwardMetadataFromNext(nextDataAny)
		if err != nil {
			return ForwardMetadata{}, sdkerrors.Wrapf(err, "failed to get next data")
		}

		nextForward, err := getForwardMetadata(nextData)
		if err != nil {
			return ForwardMetadata{}, sdkerrors.Wrapf(err, "failed to get next forward metadata from packet data")
		}

		next = &PacketMetadata{
			Forward: nextForward,
		}
	}

	return ForwardMetadata{
		Receiver: receiver,
		Port:     port,
		Channel:  channel,
		Timeout:  timeout,
		Next:     next,
	}, nil
}

func getForwardMetadataFromNext(nextData interface{}) (map[string]interface{}, error) {
	packetMetadataMap, ok := nextData.(map[string]interface{})
	if !ok {
		nextDataStr, ok := nextData.(string)
		if !ok {
			return nil, sdkerrors.Wrapf(ErrInvalidForwardMetadata, "next forward metadata is not a valid map or string")
		}

		if err := json.Unmarshal([]byte(nextDataStr), &packetMetadataMap); err != nil {
			return nil, sdkerrors.Wrapf(ErrInvalidForwardMetadata, "failed to unmarshal next forward metadata: %s", err.Error())
		}
	}

	forwardData, ok := packetMetadataMap[ForwardMetadataKey].(map[string]interface{})
	if !ok {
		return nil, sdkerrors.Wrapf(ErrMetadataKeyNotFound, "key %s not found in next forward metadata", ForwardMetadataKey)
	}

	return forwardData, nil
}

func parseDuration(duration interface{}) (time.Duration, error) {
	switch value := duration.(type) {
	case float64:
		return time.Duration(value), nil
	case string:
		return time.ParseDuration(value)
	default:
		return 0, errors.New("invalid duration")
	}
}
