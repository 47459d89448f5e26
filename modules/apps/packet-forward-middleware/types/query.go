package types

import (
	"github.com/cosmos/cosmos-sdk/types/query"
)

// query endpoints supported by the packet forward middleware legacy querier
const (
	QueryForwardedPacket  = "forwarded_packet"
	QueryForwardedPackets = "forwarded_packets"
)

// QueryForwardedPacketRequest identifies an inbound packet by its destination port and channel
type QueryForwardedPacketRequest struct {
	PortID    string `json:"port_id" yaml:"port_id"`
	ChannelID string `json:"channel_id" yaml:"channel_id"`
	Sequence  uint64 `json:"sequence" yaml:"sequence"`
}

// QueryForwardedPacketResponse is the response type for the Query/ForwardedPacket method
type QueryForwardedPacketResponse struct {
	ForwardedPacket ForwardedPacket `json:"forwarded_packet" yaml:"forwarded_packet"`
}

// QueryForwardedPacketsRequest is the request type for the Query/ForwardedPackets method
type QueryForwardedPacketsRequest struct {
	Pagination *query.PageRequest `json:"pagination" yaml:"pagination"`
}

// QueryForwardedPacketsResponse is the response type for the Query/ForwardedPackets method
type QueryForwardedPacketsResponse struct {
	ForwardedPackets []ForwardedPacket   `json:"forwarded_packets" yaml:"forwarded_packets"`
	Pagination       *query.PageResponse `json:"pagination" yaml:"pagination"`
}
