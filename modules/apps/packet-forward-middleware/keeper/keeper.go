package keeper

import (
	"fmt"
	"time"

	"github.com/armon/go-metrics"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	clienttypes "github.com/cosmos/ibc-go/v2/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// DefaultForwardTransferPacketTimeout is the timeout of a forwarded packet when the memo sets none
var DefaultForwardTransferPacketTimeout = 10 * time.Minute

// Keeper defines the packet forward middleware keeper
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey sdk.StoreKey

	transferKeeper types.TransferKeeper
}

// NewKeeper creates a new forward Keeper instance
func NewKeeper(cdc *codec.LegacyAmino, key sdk.StoreKey, transferKeeper types.TransferKeeper) *Keeper {
	return &Keeper{
		cdc:            cdc,
		storeKey:       key,
		transferKeeper: transferKeeper,
	}
}

// Logger returns a module-specific logger.
func (k *Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+host.ModuleName+"-"+types.ModuleName)
}

// ForwardTransferPacket sends the tokens credited by an inbound transfer packet
// onward to the next hop described by metadata. The sender of the new packet is
// the receiver of the inbound one, so the tokens it received are the ones that move.
func (k *Keeper) ForwardTransferPacket(
	ctx sdk.Context,
	inPacket channeltypes.Packet,
	data transfertypes.FungibleTokenPacketData,
	metadata types.ForwardMetadata,
) (types.ForwardedPacket, error) {
	amount, ok := sdk.NewIntFromString(data.Amount)
	if !ok {
		return types.ForwardedPacket{}, sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "unable to parse transfer amount (%s) into sdk.Int", data.Amount)
	}

	denom := transfertypes.ReceivedDenom(
		inPacket.GetSourcePort(), inPacket.GetSourceChannel(),
		inPacket.GetDestPort(), inPacket.GetDestChannel(),
		data.Denom,
	)
	token := sdk.NewCoin(denom, amount)

	var memo string
	if metadata.Next != nil {
		var err error
		memo, err = metadata.Next.ToMemo()
		if err != nil {
			return types.ForwardedPacket{}, sdkerrors.Wrapf(types.ErrInvalidForwardMetadata, "failed to encode next memo: %s", err)
		}
	}

	timeout := metadata.Timeout
	if timeout <= 0 {
		timeout = DefaultForwardTransferPacketTimeout
	}

	msgTransfer := transfertypes.NewMsgTransfer(
		metadata.Port,
		metadata.Channel,
		token,
		data.Receiver,
		metadata.Receiver,
		clienttypes.ZeroHeight(),
		uint64(ctx.BlockTime().Add(timeout).UnixNano()),
		memo,
	)

	k.Logger(ctx).Debug("packetForwardMiddleware ForwardTransferPacket",
		"src-channel", inPacket.GetDestChannel(), "dst-channel", metadata.Channel,
		"amount", token.Amount.String(), "denom", token.Denom,
	)

	res, err := k.transferKeeper.Transfer(sdk.WrapSDKContext(ctx), msgTransfer)
	if err != nil {
		return types.ForwardedPacket{}, sdkerrors.Wrap(types.ErrForwardTransferFailed, err.Error())
	}

	forwarded := types.ForwardedPacket{
		InPortID:     inPacket.GetDestPort(),
		InChannelID:  inPacket.GetDestChannel(),
		InSequence:   inPacket.GetSequence(),
		OutPortID:    metadata.Port,
		OutChannelID: metadata.Channel,
		OutSequence:  res.Sequence,
		Sender:       data.Receiver,
		Receiver:     metadata.Receiver,
		Token:        token,
	}
	k.SetForwardedPacket(ctx, forwarded)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacketForwarded,
			sdk.NewAttribute(types.AttributeKeyInPortID, forwarded.InPortID),
			sdk.NewAttribute(types.AttributeKeyInChannelID, forwarded.InChannelID),
			sdk.NewAttribute(types.AttributeKeyInSequence, fmt.Sprint(forwarded.InSequence)),
			sdk.NewAttribute(types.AttributeKeyOutChannelID, forwarded.OutChannelID),
			sdk.NewAttribute(types.AttributeKeyOutSequence, fmt.Sprint(forwarded.OutSequence)),
			sdk.NewAttribute(types.AttributeKeyReceiver, forwarded.Receiver),
		),
	)

	defer func() {
		if token.Amount.IsInt64() {
			telemetry.SetGaugeWithLabels(
				[]string{"tx", "msg", "ibc", "transfer"},
				float32(token.Amount.Int64()),
				[]metrics.Label{telemetry.NewLabel("denom", denom)},
			)
		}

		telemetry.IncrCounterWithLabels(
			[]string{"ibc", types.ModuleName, "forward"},
			1,
			[]metrics.Label{
				telemetry.NewLabel("source-channel", inPacket.GetDestChannel()),
				telemetry.NewLabel("destination-channel", metadata.Channel),
			},
		)
	}()

	return forwarded, nil
}

// SetForwardedPacket stores the record of a forwarded packet
func (k *Keeper) SetForwardedPacket(ctx sdk.Context, packet types.ForwardedPacket) {
	store := ctx.KVStore(k.storeKey)
	key := types.ForwardedPacketKey(packet.InPortID, packet.InChannelID, packet.InSequence)
	store.Set(key, k.cdc.MustMarshal(&packet))
}

// GetForwardedPacket returns the record of the inbound packet received on portID/channelID with sequence
func (k *Keeper) GetForwardedPacket(ctx sdk.Context, portID, channelID string, sequence uint64) (types.ForwardedPacket, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ForwardedPacketKey(portID, channelID, sequence))
	if bz == nil {
		return types.ForwardedPacket{}, false
	}

	var packet types.ForwardedPacket
	k.cdc.MustUnmarshal(bz, &packet)

	return packet, true
}

// IterateForwardedPackets iterates over all forwarded packet records and calls cb on each.
// Iteration stops when cb returns true.
func (k *Keeper) IterateForwardedPackets(ctx sdk.Context, cb func(packet types.ForwardedPacket) (stop bool)) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ForwardedPacketPrefix))

	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var packet types.ForwardedPacket
		k.cdc.MustUnmarshal(iterator.Value(), &packet)

		if cb(packet) {
			break
		}
	}
}

// GetAllForwardedPackets returns every stored forwarded packet record
func (k *Keeper) GetAllForwardedPackets(ctx sdk.Context) []types.ForwardedPacket {
	packets := []types.ForwardedPacket{}
	k.IterateForwardedPackets(ctx, func(packet types.ForwardedPacket) bool {
		packets = append(packets, packet)
		return false
	})

	return packets
}
