package mock

import (
	"encoding/hex"
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// ChannelKeeper is a store backed stand-in for the IBC core channel keeper. It keeps
// channel ends, sequences, commitments, receipts and acknowledgements in its own store,
// so cached contexts revert it together with the application state.
// Proof verification is out of its scope: the testing coordinator relays packets directly.
type ChannelKeeper struct {
	storeKey sdk.StoreKey
	cdc      codec.BinaryCodec
}

// NewChannelKeeper creates a new ChannelKeeper instance
func NewChannelKeeper(cdc codec.BinaryCodec, key sdk.StoreKey) *ChannelKeeper {
	return &ChannelKeeper{
		storeKey: key,
		cdc:      cdc,
	}
}

// SetChannel stores a channel end
func (k *ChannelKeeper) SetChannel(ctx sdk.Context, portID, channelID string, channel channeltypes.Channel) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.ChannelKey(portID, channelID), k.cdc.MustMarshal(&channel))
}

// GetChannel returns a channel end
func (k *ChannelKeeper) GetChannel(ctx sdk.Context, portID, channelID string) (channeltypes.Channel, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.ChannelKey(portID, channelID))
	if bz == nil {
		return channeltypes.Channel{}, false
	}

	var channel channeltypes.Channel
	k.cdc.MustUnmarshal(bz, &channel)

	return channel, true
}

// GetAllChannels returns every stored channel end with its identifiers
func (k *ChannelKeeper) GetAllChannels(ctx sdk.Context) []channeltypes.IdentifiedChannel {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(host.KeyChannelEndPrefix))
	defer iterator.Close()

	var channels []channeltypes.IdentifiedChannel
	for ; iterator.Valid(); iterator.Next() {
		portID, channelID, err := host.ParseChannelPath(string(iterator.Key()))
		if err != nil {
			panic(err)
		}

		var channel channeltypes.Channel
		k.cdc.MustUnmarshal(iterator.Value(), &channel)

		channels = append(channels, channeltypes.NewIdentifiedChannel(portID, channelID, channel))
	}

	return channels
}

// SetNextSequenceSend sets the sequence of the next packet sent on a channel
func (k *ChannelKeeper) SetNextSequenceSend(ctx sdk.Context, portID, channelID string, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(host.NextSequenceSendKey(portID, channelID), sdk.Uint64ToBigEndian(sequence))
}

// GetNextSequenceSend returns the sequence of the next packet sent on a channel
func (k *ChannelKeeper) GetNextSequenceSend(ctx sdk.Context, portID, channelID string) (uint64, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.NextSequenceSendKey(portID, channelID))
	if bz == nil {
		return 0, false
	}

	return sdk.BigEndianToUint64(bz), true
}

// SendPacket checks the packet against its channel, stores its commitment and emits
// the send_packet event the relayer picks it up from.
func (k *ChannelKeeper) SendPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	if err := packet.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "packet failed basic validation")
	}

	channel, found := k.GetChannel(ctx, packet.GetSourcePort(), packet.GetSourceChannel())
	if !found {
		return sdkerrors.Wrap(channeltypes.ErrChannelNotFound, packet.GetSourceChannel())
	}

	if channel.State != channeltypes.OPEN {
		return sdkerrors.Wrapf(channeltypes.ErrInvalidChannelState, "channel is not OPEN (got %s)", channel.State)
	}

	if packet.GetDestPort() != channel.Counterparty.PortId || packet.GetDestChannel() != channel.Counterparty.ChannelId {
		return sdkerrors.Wrapf(channeltypes.ErrInvalidPacket, "packet destination %s/%s does not match the counterparty", packet.GetDestPort(), packet.GetDestChannel())
	}

	nextSequenceSend, found := k.GetNextSequenceSend(ctx, packet.GetSourcePort(), packet.GetSourceChannel())
	if !found {
		return channeltypes.ErrSequenceSendNotFound
	}

	if packet.GetSequence() != nextSequenceSend {
		return sdkerrors.Wrapf(channeltypes.ErrInvalidPacket, "packet sequence ≠ next send sequence (%d ≠ %d)", packet.GetSequence(), nextSequenceSend)
	}

	k.SetNextSequenceSend(ctx, packet.GetSourcePort(), packet.GetSourceChannel(), nextSequenceSend+1)

	store := ctx.KVStore(k.storeKey)
	store.Set(
		host.PacketCommitmentKey(packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetSequence()),
		channeltypes.CommitPacket(k.cdc, packet),
	)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			channeltypes.EventTypeSendPacket,
			sdk.NewAttribute(channeltypes.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			sdk.NewAttribute(channeltypes.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			sdk.NewAttribute(channeltypes.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			sdk.NewAttribute(channeltypes.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			sdk.NewAttribute(channeltypes.AttributeKeySrcPort, packet.GetSourcePort()),
			sdk.NewAttribute(channeltypes.AttributeKeySrcChannel, packet.GetSourceChannel()),
			sdk.NewAttribute(channeltypes.AttributeKeyDstPort, packet.GetDestPort()),
			sdk.NewAttribute(channeltypes.AttributeKeyDstChannel, packet.GetDestChannel()),
		),
	)

	return nil
}

// HasPacketCommitment reports whether a sent packet is still awaiting its acknowledgement or timeout
func (k *ChannelKeeper) HasPacketCommitment(ctx sdk.Context, portID, channelID string, sequence uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.PacketCommitmentKey(portID, channelID, sequence))
}

// RecvPacket stores the receipt of an inbound packet, rejecting a packet received before
// or one whose timeout has passed.
func (k *ChannelKeeper) RecvPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	if _, found := k.GetChannel(ctx, packet.GetDestPort(), packet.GetDestChannel()); !found {
		return sdkerrors.Wrap(channeltypes.ErrChannelNotFound, packet.GetDestChannel())
	}

	if k.HasPacketReceipt(ctx, packet.GetDestPort(), packet.GetDestChannel(), packet.GetSequence()) {
		return channeltypes.ErrNoOpMsg
	}

	if timeout := packet.GetTimeoutTimestamp(); timeout != 0 && uint64(ctx.BlockTime().UnixNano()) >= timeout {
		return sdkerrors.Wrapf(channeltypes.ErrPacketTimeout, "block timestamp >= packet timeout timestamp (%d >= %d)", ctx.BlockTime().UnixNano(), timeout)
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(host.PacketReceiptKey(packet.GetDestPort(), packet.GetDestChannel(), packet.GetSequence()), []byte{byte(1)})

	return nil
}

// HasPacketReceipt reports whether an inbound packet was received
func (k *ChannelKeeper) HasPacketReceipt(ctx sdk.Context, portID, channelID string, sequence uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.PacketReceiptKey(portID, channelID, sequence))
}

// WriteAcknowledgement stores the acknowledgement of a received packet and emits the write_acknowledgement event
func (k *ChannelKeeper) WriteAcknowledgement(ctx sdk.Context, packet channeltypes.Packet, ack []byte) error {
	if len(ack) == 0 {
		return sdkerrors.Wrap(channeltypes.ErrInvalidAcknowledgement, "acknowledgement cannot be empty")
	}

	store := ctx.KVStore(k.storeKey)
	key := host.PacketAcknowledgementKey(packet.GetDestPort(), packet.GetDestChannel(), packet.GetSequence())
	if store.Has(key) {
		return channeltypes.ErrAcknowledgementExists
	}
	store.Set(key, ack)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			channeltypes.EventTypeWriteAck,
			sdk.NewAttribute(channeltypes.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			sdk.NewAttribute(channeltypes.AttributeKeyDstPort, packet.GetDestPort()),
			sdk.NewAttribute(channeltypes.AttributeKeyDstChannel, packet.GetDestChannel()),
			sdk.NewAttribute(channeltypes.AttributeKeyAckHex, hex.EncodeToString(ack)),
		),
	)

	return nil
}

// GetPacketAcknowledgement returns the acknowledgement written for a received packet
func (k *ChannelKeeper) GetPacketAcknowledgement(ctx sdk.Context, portID, channelID string, sequence uint64) ([]byte, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.PacketAcknowledgementKey(portID, channelID, sequence))
	if bz == nil {
		return nil, false
	}

	return bz, true
}

// AcknowledgePacket deletes the commitment of an acknowledged packet
func (k *ChannelKeeper) AcknowledgePacket(ctx sdk.Context, packet channeltypes.Packet) error {
	return k.deletePacketCommitment(ctx, packet)
}

// TimeoutPacket deletes the commitment of a timed out packet
func (k *ChannelKeeper) TimeoutPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	return k.deletePacketCommitment(ctx, packet)
}

func (k *ChannelKeeper) deletePacketCommitment(ctx sdk.Context, packet channeltypes.Packet) error {
	store := ctx.KVStore(k.storeKey)
	key := host.PacketCommitmentKey(packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetSequence())

	commitment := store.Get(key)
	if commitment == nil {
		return channeltypes.ErrNoOpMsg
	}

	if string(commitment) != string(channeltypes.CommitPacket(k.cdc, packet)) {
		return sdkerrors.Wrapf(channeltypes.ErrInvalidPacket, "commitment bytes are not equal: got (%x), expected (%x)", channeltypes.CommitPacket(k.cdc, packet), commitment)
	}

	store.Delete(key)
	return nil
}
