package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// InitGenesis initializes the fee middleware state from a provided genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetParams(ctx, state.Params)

	for _, feeConfig := range state.FeeConfigs {
		k.SetFeeConfig(ctx, feeConfig)
	}

	for _, record := range state.PacketRecords {
		k.SetPacketRecord(ctx, record)
	}

	for _, packetFee := range state.PacketFees {
		k.SetFeeInEscrow(ctx, packetFee)
	}

	k.setDispatcherMode(ctx, state.DispatcherMode)
}

// ExportGenesis returns the fee middleware exported genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(
		k.GetParams(ctx),
		k.GetAllFeeConfigs(ctx),
		k.GetAllPacketFees(ctx),
		k.GetAllPacketRecords(ctx),
		k.GetDispatcherMode(ctx),
	)
}
