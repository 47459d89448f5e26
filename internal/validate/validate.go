package validate

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/types/query"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// GRPCRequest validates that the portID and channelID of a gRPC Request are valid identifiers.
func GRPCRequest(portID, channelID string) error {
	if err := host.PortIdentifierValidator(portID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	return nil
}

// PacketRequest validates the identifiers of a gRPC request addressing a single packet.
func PacketRequest(portID, channelID string, sequence uint64) error {
	if err := GRPCRequest(portID, channelID); err != nil {
		return err
	}

	if sequence == 0 {
		return status.Error(codes.InvalidArgument, "packet sequence cannot be 0")
	}

	return nil
}

// PageLimit rejects page requests asking for more than max entries.
// A nil page request or a zero limit is accepted, paginated queries fall back to their default limit.
func PageLimit(pageReq *query.PageRequest, max uint64) error {
	if pageReq == nil {
		return nil
	}

	if pageReq.Limit > max {
		return status.Errorf(codes.InvalidArgument, "limit is more than maximum allowed (%d > %d)", pageReq.Limit, max)
	}

	return nil
}
