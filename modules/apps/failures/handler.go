package failures

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/keeper"
	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// NewHandler returns a handler for the failure log messages
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgResetFailures:
			res, err := k.ResetFailures(sdk.WrapSDKContext(ctx), msg)
			if err != nil {
				return nil, err
			}

			return &sdk.Result{
				Data:   types.ModuleCdc.MustMarshal(res),
				Events: ctx.EventManager().ABCIEvents(),
			}, nil

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}
