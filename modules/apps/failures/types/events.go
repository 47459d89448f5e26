package types

// failure log events
const (
	EventTypeFailure      = "packet_failure"
	EventTypeResetFailure = "reset_failures"

	AttributeKeyAddress = "address"
	AttributeKeyID      = "id"
	AttributeKeyAckType = "ack_type"
	AttributeKeyCount   = "count"
)
