package transfer

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/transfer/keeper"
	"github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// NewHandler returns a handler for ICS-20 transfer messages
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgTransfer:
			res, err := k.Transfer(sdk.WrapSDKContext(ctx), msg)
			if err != nil {
				return nil, err
			}

			return &sdk.Result{
				Data:   types.ModuleCdc.MustMarshal(res),
				Events: ctx.EventManager().ABCIEvents(),
			}, nil

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized ICS-20 transfer message type: %T", msg)
		}
	}
}
