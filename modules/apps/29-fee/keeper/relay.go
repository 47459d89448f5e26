package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// SendPacket wraps the ICS4Wrapper SendPacket function. Token transfer packets are tracked
// as pending and, when the sender has a fee configuration, the configured fee is escrowed
// before the packet is handed to the channel.
func (k Keeper) SendPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	data, err := transfertypes.UnmarshalPacketData(packet.GetData())
	if err != nil {
		// not a token transfer, nothing to track
		return k.ics4Wrapper.SendPacket(ctx, packet)
	}

	packetID := types.PacketIDFromPacket(packet)

	if k.HasFeeConfig(ctx, data.Sender) {
		if err := k.ReservePacketFee(ctx, data.Sender, packetID); err != nil {
			return err
		}
	}

	if err := k.SetPacketPending(ctx, packetID, data.Sender); err != nil {
		return err
	}

	return k.ics4Wrapper.SendPacket(ctx, packet)
}
