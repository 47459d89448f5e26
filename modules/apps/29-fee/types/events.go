package types

// 29-fee events
const (
	EventTypeIncentivizedPacket = "incentivized_ibc_packet"
	EventTypeDistributeFee      = "distribute_fee"
	EventTypeFeeConfig          = "fee_config"
	EventTypePacketResolved     = "packet_resolved"
	EventTypeSudoCallback       = "sudo_callback"
	EventTypeDispatcherMode     = "dispatcher_mode"

	AttributeKeyRecvFee    = "recv_fee"
	AttributeKeyAckFee     = "ack_fee"
	AttributeKeyTimeoutFee = "timeout_fee"
	AttributeKeyPayer      = "payer"
	AttributeKeyReceiver   = "receiver"
	AttributeKeyFee        = "fee"
	AttributeKeyDenom      = "denom"
	AttributeKeyStatus     = "status"
	AttributeKeyContract   = "contract"
	AttributeKeySuccess    = "success"
	AttributeKeyError      = "error"
	AttributeKeyMode       = "mode"
	AttributeKeyFailureID  = "failure_id"

	AttributeValueCategory = ModuleName
)

// telemetry labels
const (
	LabelStatus = "status"
	LabelPort   = "port"
)
