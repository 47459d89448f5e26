package ibchooks

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
	"github.com/cosmos/ibc-go/v2/modules/core/exported"

	"github.com/ibc-apps/fee-escrow/modules/apps/ibc-hooks/types"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
	porttypes "github.com/ibc-apps/fee-escrow/modules/core/05-port/types"
)

var _ porttypes.Middleware = &IBCMiddleware{}

// IBCMiddleware executes the contract call carried in the memo of an inbound transfer
// once the underlying application has credited the contract.
type IBCMiddleware struct {
	app            porttypes.IBCModule
	ics4Wrapper    porttypes.ICS4Wrapper
	contractKeeper types.ContractKeeper
}

// NewIBCMiddleware creates a new IBCMiddleware given the underlying application and contract keeper.
func NewIBCMiddleware(app porttypes.IBCModule, ics4Wrapper porttypes.ICS4Wrapper, contractKeeper types.ContractKeeper) IBCMiddleware {
	return IBCMiddleware{
		app:            app,
		ics4Wrapper:    ics4Wrapper,
		contractKeeper: contractKeeper,
	}
}

func (IBCMiddleware) logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+host.ModuleName+"-"+types.ModuleName)
}

// OnRecvPacket implements the IBCModule interface.
// When the memo requests a wasm hook the receive and the contract call succeed or fail
// together: a failed call discards the receive and returns an error acknowledgement.
func (im IBCMiddleware) OnRecvPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) exported.Acknowledgement {
	data, err := transfertypes.UnmarshalPacketData(packet.GetData())
	if err != nil {
		return im.app.OnRecvPacket(ctx, packet, relayer)
	}

	metadata, isWasm, err := types.GetWasmMetadataFromMemo(data.Memo)
	if !isWasm {
		return im.app.OnRecvPacket(ctx, packet, relayer)
	}

	if err != nil {
		return channeltypes.NewErrorAcknowledgement(err.Error())
	}

	if err := metadata.Validate(); err != nil {
		return channeltypes.NewErrorAcknowledgement(err.Error())
	}

	if data.Receiver != metadata.Contract {
		return channeltypes.NewErrorAcknowledgement(
			sdkerrors.Wrapf(types.ErrReceiverNotContract, "receiver %s, contract %s", data.Receiver, metadata.Contract).Error(),
		)
	}

	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	ack := im.app.OnRecvPacket(cacheCtx, packet, relayer)
	if ack == nil || !ack.Success() {
		ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
		return ack
	}

	// accepted by the transfer application
	amount, _ := sdk.NewIntFromString(data.Amount)
	denom := transfertypes.ReceivedDenom(
		packet.GetSourcePort(), packet.GetSourceChannel(),
		packet.GetDestPort(), packet.GetDestChannel(),
		data.Denom,
	)
	funds := sdk.NewCoins(sdk.NewCoin(denom, amount))

	contractAddr, _ := sdk.AccAddressFromBech32(metadata.Contract)
	caller := types.DeriveIntermediateSender(packet.GetDestChannel(), data.Sender)

	if _, err := im.contractKeeper.Execute(cacheCtx, contractAddr, caller, metadata.Msg, funds); err != nil {
		im.logger(ctx).Error("wasm hook execution failed", "contract", metadata.Contract,
			"channel-id", packet.GetDestChannel(), "sequence", packet.GetSequence(), "error", err)

		emitWasmHookEvent(ctx, metadata.Contract, caller, err)
		return channeltypes.NewErrorAcknowledgement(sdkerrors.Wrap(types.ErrWasmExecution, err.Error()).Error())
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
	emitWasmHookEvent(ctx, metadata.Contract, caller, nil)

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

func emitWasmHookEvent(ctx sdk.Context, contract string, caller sdk.AccAddress, err error) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyContract, contract),
		sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
		sdk.NewAttribute(types.AttributeKeySuccess, fmt.Sprintf("%t", err == nil)),
	}
	if err != nil {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyError, err.Error()))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeWasmHook, attributes...))
}
