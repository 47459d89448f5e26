package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
)

// InitGenesis restores the forwarded packet records
func (k *Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	for _, packet := range state.ForwardedPackets {
		k.SetForwardedPacket(ctx, packet)
	}
}

// ExportGenesis exports the forwarded packet records
func (k *Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(k.GetAllForwardedPackets(ctx))
}
