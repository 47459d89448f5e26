package packetforward

import (
	"github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
	"github.com/cosmos/ibc-go/v2/modules/core/exported"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/keeper"
	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
	porttypes "github.com/ibc-apps/fee-escrow/modules/core/05-port/types"
)

var _ porttypes.Middleware = &IBCMiddleware{}

// IBCMiddleware implements the ICS26 callbacks for the forward middleware given the
// forward keeper and the underlying application.
type IBCMiddleware struct {
	app         porttypes.IBCModule
	ics4Wrapper porttypes.ICS4Wrapper
	keeper      *keeper.Keeper
}

// NewIBCMiddleware creates a new IBCMiddleware given the keeper and underlying application.
func NewIBCMiddleware(app porttypes.IBCModule, ics4Wrapper porttypes.ICS4Wrapper, k *keeper.Keeper) IBCMiddleware {
	return IBCMiddleware{
		app:         app,
		ics4Wrapper: ics4Wrapper,
		keeper:      k,
	}
}

// OnRecvPacket checks the memo field on this packet and if the metadata inside's root key
// indicates this packet should be handled by the forward middleware, it passes the packet
// to the underlying application first and then sends the received tokens to the next hop.
//
// A forward that fails does not revert the receive: the tokens stay with the receiver
// of the inbound packet and the acknowledgement of the underlying application is returned.
func (im IBCMiddleware) OnRecvPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) exported.Acknowledgement {
	logger := im.keeper.Logger(ctx)

	data, err := transfertypes.UnmarshalPacketData(packet.GetData())
	if err != nil {
		logger.Debug("packetForwardMiddleware OnRecvPacket payload is not a FungibleTokenPacketData", "error", err)
		return im.app.OnRecvPacket(ctx, packet, relayer)
	}

	metadata, isPFM, err := types.GetPacketMetadataFromMemo(data.Memo)
	if !isPFM {
		return im.app.OnRecvPacket(ctx, packet, relayer)
	}

	if err != nil {
		logger.Error("packetForwardMiddleware OnRecvPacket error parsing forward metadata", "error", err)
		return channeltypes.NewErrorAcknowledgement(err.Error())
	}

	if err := metadata.Forward.Validate(); err != nil {
		logger.Error("packetForwardMiddleware OnRecvPacket forward metadata is invalid", "error", err)
		return channeltypes.NewErrorAcknowledgement(err.Error())
	}

	ack := im.app.OnRecvPacket(ctx, packet, relayer)
	if ack == nil || !ack.Success() {
		return ack
	}

	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	if _, err := im.keeper.ForwardTransferPacket(cacheCtx, packet, data, metadata.Forward); err != nil {
		logger.Error("packetForwardMiddleware OnRecvPacket error forwarding packet",
			"dst-channel", packet.GetDestChannel(), "sequence", packet.GetSequence(),
			"next-channel", metadata.Forward.Channel, "error", err,
		)

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeForwardFailed,
				sdk.NewAttribute(types.AttributeKeyInChannelID, packet.GetDestChannel()),
				sdk.NewAttribute(types.AttributeKeyReceiver, data.Receiver),
				sdk.NewAttribute(types.AttributeKeyError, err.Error()),
			),
		)

		telemetry.IncrCounterWithLabels(
			[]string{"ibc", types.ModuleName, "forward_failed"},
			1,
			[]metrics.Label{telemetry.NewLabel("channel", metadata.Forward.Channel)},
		)

		return ack
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	return ack
}

// OnAcknowledgementPacket implements the IBCModule interface.
func (im IBCMiddleware) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	return im.app.OnAcknowledgementPacket(ctx, packet, acknowledgement, relayer)
}

// OnTimeoutPacket implements the IBCModule interface.
func (im IBCMiddleware) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet, relayer sdk.AccAddress) error {
	return im.app.OnTimeoutPacket(ctx, packet, relayer)
}

// SendPacket implements the ICS4 Wrapper interface.
func (im IBCMiddleware) SendPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	return im.ics4Wrapper.SendPacket(ctx, packet)
}
