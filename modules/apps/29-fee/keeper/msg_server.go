package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// SetFees defines a rpc handler method for MsgSetFees.
// The payer's fee configuration is replaced wholesale, fees already escrowed for
// in-flight packets keep the amounts computed when they were sent.
func (k Keeper) SetFees(goCtx context.Context, msg *types.MsgSetFees) (*types.MsgSetFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	feeConfig := types.NewFeeConfig(msg.Payer, msg.Denom, msg.AckFee, msg.RecvFee, msg.TimeoutFee)
	k.SetFeeConfig(ctx, feeConfig)

	k.Logger(ctx).Info("fee configuration set", "payer", msg.Payer, "denom", msg.Denom,
		"ack-fee", msg.AckFee.String(), "recv-fee", msg.RecvFee.String(), "timeout-fee", msg.TimeoutFee.String())

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeFeeConfig,
			sdk.NewAttribute(types.AttributeKeyPayer, msg.Payer),
			sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
			sdk.NewAttribute(types.AttributeKeyAckFee, msg.AckFee.String()),
			sdk.NewAttribute(types.AttributeKeyRecvFee, msg.RecvFee.String()),
			sdk.NewAttribute(types.AttributeKeyTimeoutFee, msg.TimeoutFee.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Payer),
		),
	})

	return &types.MsgSetFeesResponse{}, nil
}

// UnsetFees defines a rpc handler method for MsgUnsetFees.
// Subsequent packets of the payer are sent without a fee.
func (k Keeper) UnsetFees(goCtx context.Context, msg *types.MsgUnsetFees) (*types.MsgUnsetFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	if !k.HasFeeConfig(ctx, msg.Payer) {
		return nil, sdkerrors.Wrapf(types.ErrFeeConfigNotFound, "payer %s", msg.Payer)
	}

	k.DeleteFeeConfig(ctx, msg.Payer)

	k.Logger(ctx).Info("fee configuration removed", "payer", msg.Payer)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Payer),
		),
	)

	return &types.MsgUnsetFeesResponse{}, nil
}

// SetDispatcherMode defines a rpc handler method for MsgSetDispatcherMode.
func (k Keeper) SetDispatcherMode(goCtx context.Context, msg *types.MsgSetDispatcherMode) (*types.MsgSetDispatcherModeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if k.authority != msg.Authority {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnauthorized, "invalid authority; expected %s, got %s", k.authority, msg.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	switch msg.Mode {
	case types.DispatcherModeAlwaysFault:
		k.EnableCallbackFault(ctx)
	default:
		k.DisableCallbackFault(ctx)
	}

	k.Logger(ctx).Info("dispatcher mode changed", "mode", msg.Mode.String())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDispatcherMode,
			sdk.NewAttribute(types.AttributeKeyMode, msg.Mode.String()),
		),
	)

	return &types.MsgSetDispatcherModeResponse{}, nil
}
