package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// EmitIncentivizedPacket emits an event so that relayers know an incentivized packet is ready to be relayed
func EmitIncentivizedPacket(ctx sdk.Context, packetFee types.PacketFee) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIncentivizedPacket,
			sdk.NewAttribute(channeltypes.AttributeKeyPortID, packetFee.PacketID.PortID),
			sdk.NewAttribute(channeltypes.AttributeKeyChannelID, packetFee.PacketID.ChannelID),
			sdk.NewAttribute(channeltypes.AttributeKeySequence, fmt.Sprint(packetFee.PacketID.Sequence)),
			sdk.NewAttribute(types.AttributeKeyPayer, packetFee.Payer),
			sdk.NewAttribute(types.AttributeKeyRecvFee, packetFee.Fee.RecvFee.String()),
			sdk.NewAttribute(types.AttributeKeyAckFee, packetFee.Fee.AckFee.String()),
			sdk.NewAttribute(types.AttributeKeyTimeoutFee, packetFee.Fee.TimeoutFee.String()),
		),
	)
}

// emitDistributeFeeEvent emits an event containing a distribution fee and receiver address
func emitDistributeFeeEvent(ctx sdk.Context, receiver string, fee sdk.Coins) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDistributeFee,
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver),
			sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		),
	)
}

// emitPacketResolvedEvent emits an event carrying the terminal status of a packet
func emitPacketResolvedEvent(ctx sdk.Context, record types.PacketRecord) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacketResolved,
			sdk.NewAttribute(channeltypes.AttributeKeyPortID, record.PacketID.PortID),
			sdk.NewAttribute(channeltypes.AttributeKeyChannelID, record.PacketID.ChannelID),
			sdk.NewAttribute(channeltypes.AttributeKeySequence, fmt.Sprint(record.PacketID.Sequence)),
			sdk.NewAttribute(types.AttributeKeyStatus, record.Status.String()),
		),
	)
}

// emitSudoCallbackEvent emits an event describing the result of a sudo callback
func emitSudoCallbackEvent(ctx sdk.Context, contract string, packetID types.PacketID, err error) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyContract, contract),
		sdk.NewAttribute(channeltypes.AttributeKeyPortID, packetID.PortID),
		sdk.NewAttribute(channeltypes.AttributeKeyChannelID, packetID.ChannelID),
		sdk.NewAttribute(channeltypes.AttributeKeySequence, fmt.Sprint(packetID.Sequence)),
		sdk.NewAttribute(types.AttributeKeySuccess, fmt.Sprint(err == nil)),
	}
	if err != nil {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyError, err.Error()))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSudoCallback, attributes...))
}
