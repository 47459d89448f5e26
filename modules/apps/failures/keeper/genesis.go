package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// InitGenesis initializes the failure log state from a provided genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	for _, failure := range state.Failures {
		k.SetFailure(ctx, failure)
	}

	k.SetNextFailureID(ctx, state.NextFailureID)
}

// ExportGenesis returns the failure log exported genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(k.GetAllFailures(ctx), k.GetNextFailureID(ctx))
}
