package types

// packet forward middleware events
const (
	EventTypePacketForwarded = "packet_forwarded"
	EventTypeForwardFailed   = "forward_failed"

	AttributeKeyInPortID     = "in_port_id"
	AttributeKeyInChannelID  = "in_channel_id"
	AttributeKeyInSequence   = "in_sequence"
	AttributeKeyOutChannelID = "out_channel_id"
	AttributeKeyOutSequence  = "out_sequence"
	AttributeKeyReceiver     = "receiver"
	AttributeKeyError        = "error"
)
