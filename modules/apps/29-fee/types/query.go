package types

import (
	"github.com/cosmos/cosmos-sdk/types/query"
)

// query endpoints supported by the fee middleware legacy querier
const (
	QueryFeeConfig           = "fee_config"
	QueryIncentivizedPacket  = "incentivized_packet"
	QueryIncentivizedPackets = "incentivized_packets"
	QueryPacketStatus        = "packet_status"
	QueryParameters          = "params"
	QueryDispatcherMode      = "dispatcher_mode"
)

// QueryFeeConfigRequest is the request type for the Query/FeeConfig method
type QueryFeeConfigRequest struct {
	Payer string `json:"payer" yaml:"payer"`
}

// QueryFeeConfigResponse is the response type for the Query/FeeConfig method
type QueryFeeConfigResponse struct {
	FeeConfig FeeConfig `json:"fee_config" yaml:"fee_config"`
}

// QueryIncentivizedPacketRequest is the request type for the Query/IncentivizedPacket method
type QueryIncentivizedPacketRequest struct {
	PacketID PacketID `json:"packet_id" yaml:"packet_id"`
}

// QueryIncentivizedPacketResponse is the response type for the Query/IncentivizedPacket method
type QueryIncentivizedPacketResponse struct {
	IncentivizedPacket PacketFee `json:"incentivized_packet" yaml:"incentivized_packet"`
}

// QueryIncentivizedPacketsRequest is the request type for the Query/IncentivizedPackets method
type QueryIncentivizedPacketsRequest struct {
	Pagination *query.PageRequest `json:"pagination" yaml:"pagination"`
}

// QueryIncentivizedPacketsResponse is the response type for the Query/IncentivizedPackets method
type QueryIncentivizedPacketsResponse struct {
	IncentivizedPackets []PacketFee         `json:"incentivized_packets" yaml:"incentivized_packets"`
	Pagination          *query.PageResponse `json:"pagination" yaml:"pagination"`
}

// QueryPacketStatusRequest is the request type for the Query/PacketStatus method
type QueryPacketStatusRequest struct {
	PacketID PacketID `json:"packet_id" yaml:"packet_id"`
}

// QueryPacketStatusResponse is the response type for the Query/PacketStatus method
type QueryPacketStatusResponse struct {
	Record PacketRecord `json:"record" yaml:"record"`
}

// QueryParamsRequest is the request type for the Query/Params method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method
type QueryParamsResponse struct {
	Params Params `json:"params" yaml:"params"`
}

// QueryDispatcherModeRequest is the request type for the Query/DispatcherMode method
type QueryDispatcherModeRequest struct{}

// QueryDispatcherModeResponse is the response type for the Query/DispatcherMode method
type QueryDispatcherModeResponse struct {
	Mode DispatcherMode `json:"mode" yaml:"mode"`
}
