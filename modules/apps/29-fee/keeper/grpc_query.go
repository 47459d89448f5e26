package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/ibc-apps/fee-escrow/internal/validate"
	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// FeeConfig implements the Query/FeeConfig gRPC method
func (k Keeper) FeeConfig(c context.Context, req *types.QueryFeeConfigRequest) (*types.QueryFeeConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if _, err := sdk.AccAddressFromBech32(req.Payer); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := sdk.UnwrapSDKContext(c)

	feeConfig, found := k.GetFeeConfig(ctx, req.Payer)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrFeeConfigNotFound, "payer %s", req.Payer).Error(),
		)
	}

	return &types.QueryFeeConfigResponse{FeeConfig: feeConfig}, nil
}

// IncentivizedPackets implements the IncentivizedPackets gRPC method
func (k Keeper) IncentivizedPackets(c context.Context, req *types.QueryIncentivizedPacketsRequest) (*types.QueryIncentivizedPacketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)

	var packetFees []types.PacketFee
	store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.FeeInEscrowPrefix+"/"))
	pageRes, err := query.Paginate(store, req.Pagination, func(key, value []byte) error {
		if _, err := types.ParseKeyFeeInEscrow(types.FeeInEscrowPrefix + "/" + string(key)); err != nil {
			return err
		}

		var packetFee types.PacketFee
		if err := k.cdc.Unmarshal(value, &packetFee); err != nil {
			return err
		}

		packetFees = append(packetFees, packetFee)
		return nil
	})

	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &types.QueryIncentivizedPacketsResponse{
		IncentivizedPackets: packetFees,
		Pagination:          pageRes,
	}, nil
}

// IncentivizedPacket implements the IncentivizedPacket gRPC method
func (k Keeper) IncentivizedPacket(c context.Context, req *types.QueryIncentivizedPacketRequest) (*types.QueryIncentivizedPacketResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.PacketRequest(req.PacketID.PortID, req.PacketID.ChannelID, req.PacketID.Sequence); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)

	packetFee, exists := k.GetFeeInEscrow(ctx, req.PacketID)
	if !exists {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrFeeNotFound, "channel: %s, port: %s, sequence: %d", req.PacketID.ChannelID, req.PacketID.PortID, req.PacketID.Sequence).Error())
	}

	return &types.QueryIncentivizedPacketResponse{
		IncentivizedPacket: packetFee,
	}, nil
}

// PacketStatus implements the Query/PacketStatus gRPC method
func (k Keeper) PacketStatus(c context.Context, req *types.QueryPacketStatusRequest) (*types.QueryPacketStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.PacketRequest(req.PacketID.PortID, req.PacketID.ChannelID, req.PacketID.Sequence); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)

	record, found := k.GetPacketRecord(ctx, req.PacketID)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrPacketRecordNotFound, "channel: %s, port: %s, sequence: %d", req.PacketID.ChannelID, req.PacketID.PortID, req.PacketID.Sequence).Error())
	}

	return &types.QueryPacketStatusResponse{Record: record}, nil
}

// Params implements the Query/Params gRPC method
func (k Keeper) Params(c context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

// DispatcherMode implements the Query/DispatcherMode gRPC method
func (k Keeper) DispatcherMode(c context.Context, _ *types.QueryDispatcherModeRequest) (*types.QueryDispatcherModeResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryDispatcherModeResponse{Mode: k.GetDispatcherMode(ctx)}, nil
}
