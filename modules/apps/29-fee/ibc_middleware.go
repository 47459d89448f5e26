package fee

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
	"github.com/cosmos/ibc-go/v2/modules/core/exported"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/keeper"
	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	porttypes "github.com/ibc-apps/fee-escrow/modules/core/05-port/types"
)

var _ porttypes.Middleware = &IBCMiddleware{}

// IBCMiddleware implements the ICS26 callbacks for the fee middleware given the
// fee keeper and the underlying application.
type IBCMiddleware struct {
	app    porttypes.IBCModule
	keeper keeper.Keeper
}

// NewIBCMiddleware creates a new IBCMiddlware given the keeper and underlying application
func NewIBCMiddleware(app porttypes.IBCModule, k keeper.Keeper) IBCMiddleware {
	return IBCMiddleware{
		app:    app,
		keeper: k,
	}
}

// OnRecvPacket implements the IBCMiddleware interface.
// Inbound packets carry no fee on this chain and are passed through.
func (im IBCMiddleware) OnRecvPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) exported.Acknowledgement {
	return im.app.OnRecvPacket(ctx, packet, relayer)
}

// OnAcknowledgementPacket implements the IBCMiddleware interface.
// The acknowledgement is classified, the packet outcome dispatched and the escrowed fee
// settled before the underlying application sees the acknowledgement. It never returns an error
// for a tracked packet.
func (im IBCMiddleware) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	packetID := types.PacketIDFromPacket(packet)

	record, found := im.keeper.GetPacketRecord(ctx, packetID)
	if !found {
		return im.app.OnAcknowledgementPacket(ctx, packet, acknowledgement, relayer)
	}

	if record.Status.IsTerminal() {
		return nil
	}

	status, ack := types.ClassifyAcknowledgement(acknowledgement)
	im.keeper.DispatchOutcome(ctx, packet, status, ack, relayer)

	// malformed payloads reach the application as the error acknowledgement they were classified as
	if status == types.PacketStatusAckError {
		acknowledgement = ack.Acknowledgement()
	}

	im.callApp(ctx, packetID, func(cacheCtx sdk.Context) error {
		return im.app.OnAcknowledgementPacket(cacheCtx, packet, acknowledgement, relayer)
	})

	return nil
}

// OnTimeoutPacket implements the IBCMiddleware interface.
// The timeout fee is paid to the relayer and the remaining fees are refunded before the
// underlying application handles the timeout. It never returns an error for a tracked packet.
func (im IBCMiddleware) OnTimeoutPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	packetID := types.PacketIDFromPacket(packet)

	record, found := im.keeper.GetPacketRecord(ctx, packetID)
	if !found {
		return im.app.OnTimeoutPacket(ctx, packet, relayer)
	}

	if record.Status.IsTerminal() {
		return nil
	}

	im.keeper.DispatchOutcome(ctx, packet, types.PacketStatusTimedOut, channeltypes.Acknowledgement{}, relayer)

	im.callApp(ctx, packetID, func(cacheCtx sdk.Context) error {
		return im.app.OnTimeoutPacket(cacheCtx, packet, relayer)
	})

	return nil
}

// callApp runs the underlying application callback in a cached context. Its state changes
// are written only on success, errors are logged.
func (im IBCMiddleware) callApp(ctx sdk.Context, packetID types.PacketID, fn func(cacheCtx sdk.Context) error) {
	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	if err := fn(cacheCtx); err != nil {
		im.keeper.Logger(ctx).Error("underlying application failed to handle packet outcome", "port-id", packetID.PortID,
			"channel-id", packetID.ChannelID, "sequence", packetID.Sequence, "error", err.Error())
		return
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
}

// SendPacket implements the ICS4 Wrapper interface
func (im IBCMiddleware) SendPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
) error {
	return im.keeper.SendPacket(ctx, packet)
}
