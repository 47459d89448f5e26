package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// GetParams returns the total set of the fee middleware parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	var params types.Params
	k.paramSpace.GetParamSet(ctx, &params)
	return params
}

// SetParams sets the total set of the fee middleware parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}

// GetCallbackGasLimit returns the gas available to a single sudo callback
func (k Keeper) GetCallbackGasLimit(ctx sdk.Context) uint64 {
	if k.callbackGasLimit != 0 {
		return k.callbackGasLimit
	}

	return k.GetParams(ctx).CallbackGasLimit
}
