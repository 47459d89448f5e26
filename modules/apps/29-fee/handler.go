package fee

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/keeper"
	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// NewHandler returns a handler for the fee middleware messages
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgSetFees:
			res, err := k.SetFees(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgUnsetFees:
			res, err := k.UnsetFees(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		case *types.MsgSetDispatcherMode:
			res, err := k.SetDispatcherMode(sdk.WrapSDKContext(ctx), msg)
			return wrapResult(ctx, res, err)

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

// wrapResult amino encodes the response and attaches the events emitted while handling the message
func wrapResult(ctx sdk.Context, res interface{}, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}

	return &sdk.Result{
		Data:   types.ModuleCdc.MustMarshal(res),
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}
