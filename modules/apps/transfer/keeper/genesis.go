package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// InitGenesis initializes the ibc-transfer state and sets the port.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetPort(ctx, state.PortID)

	for _, trace := range state.DenomTraces {
		k.SetDenomTrace(ctx, trace)
	}

	k.SetParams(ctx, state.Params)

	// Every denom will have only one total escrow amount, since any
	// duplicate entry will fail validation in Validate of GenesisState
	for _, denomEscrow := range state.TotalEscrowed {
		k.SetTotalEscrowForDenom(ctx, denomEscrow)
	}
}

// ExportGenesis exports ibc-transfer module's portID and denom trace info into its genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(
		k.GetPort(ctx),
		k.GetAllDenomTraces(ctx),
		k.GetParams(ctx),
		k.GetAllTotalEscrowed(ctx),
	)
}
