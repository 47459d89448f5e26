package keeper

import (
	"fmt"

	"github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	failurestypes "github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// DispatchOutcome resolves a pending packet with the given terminal status. In order it
// transitions the lifecycle record, runs the sender's sudo callback, records a failure
// for error acknowledgements, timeouts and failed callbacks and settles the escrowed fee.
// It returns false and does nothing when the packet is not pending. Failures are never
// returned to the caller.
func (k Keeper) DispatchOutcome(
	ctx sdk.Context,
	packet channeltypes.Packet,
	status types.PacketStatus,
	ack channeltypes.Acknowledgement,
	relayer sdk.AccAddress,
) bool {
	packetID := types.PacketIDFromPacket(packet)

	record, resolved := k.ResolvePacket(ctx, packetID, status)
	if !resolved {
		k.Logger(ctx).Debug("packet outcome ignored", "port-id", packetID.PortID, "channel-id", packetID.ChannelID,
			"sequence", packetID.Sequence, "status", record.Status.String())
		return false
	}

	callbackErr := k.processCallback(ctx, record, packet, status, ack)

	if callbackErr != nil || status != types.PacketStatusAckSuccess {
		k.recordFailure(ctx, record, status, ack, callbackErr)
	}

	switch status {
	case types.PacketStatusTimedOut:
		k.DistributeTimeoutFee(ctx, packetID, relayer)
	default:
		k.DistributeAcknowledgementFee(ctx, packetID, relayer)
	}

	emitPacketResolvedEvent(ctx, record)

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "resolved"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(types.LabelPort, packetID.PortID),
			telemetry.NewLabel(types.LabelStatus, status.String()),
		},
	)

	return true
}

// recordFailure appends the failed outcome of a packet to the failure log
func (k Keeper) recordFailure(ctx sdk.Context, record types.PacketRecord, status types.PacketStatus, ack channeltypes.Acknowledgement, callbackErr error) {
	ackType := failurestypes.AckTypeAck
	if status == types.PacketStatusTimedOut {
		ackType = failurestypes.AckTypeTimeout
	}

	var errorText string
	switch status {
	case types.PacketStatusAckError:
		errorText = ack.GetError()
	case types.PacketStatusTimedOut:
		errorText = "packet timed out"
	}

	if callbackErr != nil {
		if errorText != "" {
			errorText = fmt.Sprintf("%s; callback failed: %s", errorText, callbackErr)
		} else {
			errorText = fmt.Sprintf("callback failed: %s", callbackErr)
		}
	}

	packetInfo := failurestypes.NewPacketInfo(record.PacketID.PortID, record.PacketID.ChannelID, record.PacketID.Sequence)
	id := k.failureKeeper.AddFailure(ctx, record.Sender, ackType, packetInfo, errorText)

	k.Logger(ctx).Error("packet outcome recorded as failure", "port-id", record.PacketID.PortID, "channel-id", record.PacketID.ChannelID,
		"sequence", record.PacketID.Sequence, "failure-id", id, "ack-type", ackType, "error", errorText)
}

// processCallback runs the sudo entry point of the packet sender, if it is a contract.
// The callback executes in a cached context bounded by the callback gas limit and its
// state changes are only written when it succeeds. Panics, including out of gas, are
// recovered and returned as errors.
func (k Keeper) processCallback(
	ctx sdk.Context,
	record types.PacketRecord,
	packet channeltypes.Packet,
	status types.PacketStatus,
	ack channeltypes.Acknowledgement,
) (err error) {
	if k.GetDispatcherMode(ctx) == types.DispatcherModeAlwaysFault {
		err = sdkerrors.Wrapf(types.ErrCallbackFault, "packet %s", record.PacketID)
		emitSudoCallbackEvent(ctx, record.Sender, record.PacketID, err)
		return err
	}

	if k.contractKeeper == nil {
		return nil
	}

	contractAddr, err := sdk.AccAddressFromBech32(record.Sender)
	if err != nil || !k.contractKeeper.HasContractInfo(ctx, contractAddr) {
		return nil
	}

	msg, err := types.NewSudoMessage(packet, status, ack).GetBytes()
	if err != nil {
		return err
	}

	gasLimit := k.GetCallbackGasLimit(ctx)

	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithGasMeter(sdk.NewGasMeter(gasLimit)).WithEventManager(sdk.NewEventManager())

	defer func() {
		if r := recover(); r != nil {
			if oogError, ok := r.(sdk.ErrorOutOfGas); ok {
				err = sdkerrors.Wrapf(types.ErrCallbackOutOfGas, "%s, gas limit %d", oogError.Descriptor, gasLimit)
			} else {
				err = sdkerrors.Wrapf(types.ErrCallbackPanic, "%v", r)
			}
		}

		// the callback gas is charged to the enclosing transaction in any case
		ctx.GasMeter().ConsumeGas(cacheCtx.GasMeter().GasConsumedToLimit(), "sudo callback")

		emitSudoCallbackEvent(ctx, record.Sender, record.PacketID, err)
	}()

	if _, err = k.contractKeeper.Sudo(cacheCtx, contractAddr, msg); err != nil {
		return err
	}

	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	return nil
}
