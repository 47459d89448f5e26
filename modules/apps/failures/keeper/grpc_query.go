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
	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// Failures implements the Query/Failures gRPC method
func (k Keeper) Failures(c context.Context, req *types.QueryFailuresRequest) (*types.QueryFailuresResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if err := validate.PageLimit(req.Pagination, types.MaxFailuresPageLimit); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(c)

	var (
		failures []types.Failure
		pageRes  *query.PageResponse
		err      error
	)

	if req.Address == "" {
		store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.FailurePrefix))
		pageRes, err = query.Paginate(store, req.Pagination, func(_, value []byte) error {
			var failure types.Failure
			if err := k.cdc.Unmarshal(value, &failure); err != nil {
				return err
			}

			failures = append(failures, failure)
			return nil
		})
	} else {
		if _, err := sdk.AccAddressFromBech32(req.Address); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyFailureIndexPrefix(req.Address))
		pageRes, err = query.Paginate(store, req.Pagination, func(key, _ []byte) error {
			id := sdk.BigEndianToUint64(key)
			failure, found := k.GetFailure(ctx, id)
			if !found {
				return sdkerrors.Wrapf(types.ErrFailureNotFound, "id %d", id)
			}

			failures = append(failures, failure)
			return nil
		})
	}

	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryFailuresResponse{
		Failures:   failures,
		Pagination: pageRes,
	}, nil
}

// Failure implements the Query/Failure gRPC method
func (k Keeper) Failure(c context.Context, req *types.QueryFailureRequest) (*types.QueryFailureResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)

	failure, found := k.GetFailure(ctx, req.ID)
	if !found {
		return nil, status.Error(
			codes.NotFound,
			sdkerrors.Wrapf(types.ErrFailureNotFound, "id %d", req.ID).Error(),
		)
	}

	return &types.QueryFailureResponse{Failure: failure}, nil
}
