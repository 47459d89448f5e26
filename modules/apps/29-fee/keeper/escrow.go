package keeper

import (
	"bytes"

	"github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// ReservePacketFee escrows the fee configured by payer for the given packet.
// Nothing is debited when an error is returned.
func (k Keeper) ReservePacketFee(ctx sdk.Context, payer string, packetID types.PacketID) error {
	payerAddr, err := sdk.AccAddressFromBech32(payer)
	if err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	feeConfig, found := k.GetFeeConfig(ctx, payer)
	if !found {
		return sdkerrors.Wrapf(types.ErrFeeConfigNotFound, "payer %s", payer)
	}

	if k.HasFeeInEscrow(ctx, packetID) {
		return sdkerrors.Wrapf(types.ErrPacketAlreadyTracked, "fee already escrowed for packet %s", packetID)
	}

	fee := feeConfig.Fee()
	if err := fee.Validate(); err != nil {
		return err
	}

	if err := k.checkMinFee(ctx, fee); err != nil {
		return err
	}

	// check if payer has balance for each fee
	total := fee.Total()
	for _, coin := range total {
		if !k.bankKeeper.HasBalance(ctx, payerAddr, coin) {
			return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "payer %s cannot cover fee %s", payer, total)
		}
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payerAddr, types.ModuleName, total); err != nil {
		return err
	}

	packetFee := types.NewPacketFee(packetID, payer, fee)
	k.SetFeeInEscrow(ctx, packetFee)

	EmitIncentivizedPacket(ctx, packetFee)

	k.Logger(ctx).Info("packet fee reserved", "port-id", packetID.PortID, "channel-id", packetID.ChannelID,
		"sequence", packetID.Sequence, "payer", payer, "fee", total.String())

	return nil
}

// checkMinFee rejects fees below the configured MinFee. Empty minimums are not enforced.
func (k Keeper) checkMinFee(ctx sdk.Context, fee types.Fee) error {
	minFee := k.GetParams(ctx).MinFee

	if !minFee.AckFee.Empty() && !fee.AckFee.IsAnyGTE(minFee.AckFee) {
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFee, "provided ack fee is less than min governance set ack fee: %s < %s", fee.AckFee, minFee.AckFee)
	}

	if !minFee.TimeoutFee.Empty() && !fee.TimeoutFee.IsAnyGTE(minFee.TimeoutFee) {
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFee, "provided timeout fee is less than min governance set timeout fee: %s < %s", fee.TimeoutFee, minFee.TimeoutFee)
	}

	if !minFee.RecvFee.Empty() && !fee.RecvFee.IsAnyGTE(minFee.RecvFee) {
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFee, "provided recv fee is less than min governance set recv fee: %s < %s", fee.RecvFee, minFee.RecvFee)
	}

	return nil
}

// DistributeAcknowledgementFee pays the ack fee of the packet to the relayer and refunds
// the recv and timeout fees to the payer. It is a no-op if no fee is escrowed.
func (k Keeper) DistributeAcknowledgementFee(ctx sdk.Context, packetID types.PacketID, relayer sdk.AccAddress) {
	packetFee, found := k.GetFeeInEscrow(ctx, packetID)
	if !found {
		return
	}

	k.distributePacketFee(ctx, packetFee, relayer, packetFee.Fee.AckFee, packetFee.Fee.RecvFee.Add(packetFee.Fee.TimeoutFee...))
}

// DistributeTimeoutFee pays the timeout fee of the packet to the relayer and refunds
// the recv and ack fees to the payer. It is a no-op if no fee is escrowed.
func (k Keeper) DistributeTimeoutFee(ctx sdk.Context, packetID types.PacketID, relayer sdk.AccAddress) {
	packetFee, found := k.GetFeeInEscrow(ctx, packetID)
	if !found {
		return
	}

	k.distributePacketFee(ctx, packetFee, relayer, packetFee.Fee.TimeoutFee, packetFee.Fee.RecvFee.Add(packetFee.Fee.AckFee...))
}

func (k Keeper) distributePacketFee(ctx sdk.Context, packetFee types.PacketFee, relayer sdk.AccAddress, relayerFee, refund sdk.Coins) {
	// an escrow entry is settled at most once
	k.DeleteFeeInEscrow(ctx, packetFee.PacketID)

	payer, err := sdk.AccAddressFromBech32(packetFee.Payer)
	if err != nil {
		k.Logger(ctx).Error("failed to decode payer address, escrowed fee remains in module account", "packet", packetFee.PacketID.String(), "error", err.Error())
		return
	}

	k.distributeFee(ctx, relayer, payer, relayerFee)
	k.distributeFee(ctx, payer, payer, refund)

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "distribute"},
		1,
		[]metrics.Label{telemetry.NewLabel(types.LabelPort, packetFee.PacketID.PortID)},
	)
}

// distributeFee sends fee from the module account to receiver, falling back to
// refundAccAddress when the receiver cannot accept the coins.
func (k Keeper) distributeFee(ctx sdk.Context, receiver, refundAccAddress sdk.AccAddress, fee sdk.Coins) {
	if fee.IsZero() {
		return
	}

	// cache context before trying to distribute fees
	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, receiver, fee)
	if err != nil {
		if bytes.Equal(receiver, refundAccAddress) {
			k.Logger(ctx).Error("error distributing fee", "receiver address", receiver.String(), "fee", fee.String(), "error", err.Error())
			return // if sending to the refund address already failed, then return (no-op)
		}

		// if an error is returned from x/bank and the receiver is not the refundAccAddress
		// then attempt to refund the fee to the original sender
		err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, refundAccAddress, fee)
		if err != nil {
			k.Logger(ctx).Error("error refunding fee to the original sender", "refund address", refundAccAddress.String(), "fee", fee.String(), "error", err.Error())
			return // if sending to the refund address fails, no-op
		}

		receiver = refundAccAddress
	}

	// write the cache
	writeFn()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

	emitDistributeFeeEvent(ctx, receiver.String(), fee)
}
