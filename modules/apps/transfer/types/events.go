package types

// IBC transfer events
const (
	EventTypeTimeout    = "timeout"
	EventTypePacket     = "fungible_token_packet"
	EventTypeTransfer   = "ibc_transfer"
	EventTypeDenomTrace = "denomination_trace"

	AttributeKeyReceiver       = "receiver"
	AttributeKeyDenom          = "denom"
	AttributeKeyAmount         = "amount"
	AttributeKeyMemo           = "memo"
	AttributeKeyRefundReceiver = "refund_receiver"
	AttributeKeyRefundDenom    = "refund_denom"
	AttributeKeyRefundAmount   = "refund_amount"
	AttributeKeyAckSuccess     = "success"
	AttributeKeyAck            = "acknowledgement"
	AttributeKeyAckError       = "error"
	AttributeKeyTraceHash      = "trace_hash"
)

// telemetry labels
const (
	LabelSourcePort         = "source-port"
	LabelSourceChannel      = "source-channel"
	LabelDestinationPort    = "destination-port"
	LabelDestinationChannel = "destination-channel"
	LabelDenom              = "denom"
	LabelSource             = "source"
)
