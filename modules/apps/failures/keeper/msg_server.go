package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// ResetFailures defines the rpc handler for MsgResetFailures
func (k Keeper) ResetFailures(goCtx context.Context, msg *types.MsgResetFailures) (*types.MsgResetFailuresResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if k.authority != msg.Authority {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "invalid authority; expected %s, got %s", k.authority, msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	removed := k.DeleteFailures(ctx, msg.Address)

	k.Logger(ctx).Info("failure log reset", "address", msg.Address, "removed", removed)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResetFailure,
			sdk.NewAttribute(types.AttributeKeyAddress, msg.Address),
			sdk.NewAttribute(types.AttributeKeyCount, fmt.Sprint(removed)),
		),
	)

	return &types.MsgResetFailuresResponse{Removed: removed}, nil
}
