package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
)

// ForwardedPacket implements the Query/ForwardedPacket gRPC method
func (k *Keeper) ForwardedPacket(c context.Context, req *types.QueryForwardedPacketRequest) (*types.QueryForwardedPacketResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := host.PortIdentifierValidator(req.PortID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := host.ChannelIdentifierValidator(req.ChannelID); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	packet, found := k.GetForwardedPacket(ctx, req.PortID, req.ChannelID, req.Sequence)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrForwardedPacketNotFound, "port-id: %s, channel-id: %s, sequence: %d", req.PortID, req.ChannelID, req.Sequence).Error(),
		)
	}

	return &types.QueryForwardedPacketResponse{ForwardedPacket: packet}, nil
}

// ForwardedPackets implements the Query/ForwardedPackets gRPC method
func (k *Keeper) ForwardedPackets(c context.Context, req *types.QueryForwardedPacketsRequest) (*types.QueryForwardedPacketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)

	var packets []types.ForwardedPacket
	store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.ForwardedPacketPrefix))
	pageRes, err := query.Paginate(store, req.Pagination, func(_, value []byte) error {
		var packet types.ForwardedPacket
		if err := k.cdc.Unmarshal(value, &packet); err != nil {
			return err
		}

		packets = append(packets, packet)
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryForwardedPacketsResponse{
		ForwardedPackets: packets,
		Pagination:       pageRes,
	}, nil
}
