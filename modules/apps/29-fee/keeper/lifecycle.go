package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// SetPacketRecord stores the lifecycle record of a packet
func (k Keeper) SetPacketRecord(ctx sdk.Context, record types.PacketRecord) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyPacketLifecycle(record.PacketID), k.cdc.MustMarshal(&record))
}

// GetPacketRecord returns the lifecycle record of a packet
func (k Keeper) GetPacketRecord(ctx sdk.Context, packetID types.PacketID) (types.PacketRecord, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.KeyPacketLifecycle(packetID))
	if bz == nil {
		return types.PacketRecord{}, false
	}

	var record types.PacketRecord
	k.cdc.MustUnmarshal(bz, &record)
	return record, true
}

// HasPacketRecord returns true if the packet is tracked
func (k Keeper) HasPacketRecord(ctx sdk.Context, packetID types.PacketID) bool {
	return ctx.KVStore(k.storeKey).Has(types.KeyPacketLifecycle(packetID))
}

// GetAllPacketRecords returns every lifecycle record
func (k Keeper) GetAllPacketRecords(ctx sdk.Context) []types.PacketRecord {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.PacketLifecyclePrefix+"/"))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var records []types.PacketRecord
	for ; iterator.Valid(); iterator.Next() {
		var record types.PacketRecord
		k.cdc.MustUnmarshal(iterator.Value(), &record)
		records = append(records, record)
	}

	return records
}

// SetPacketPending starts tracking an outbound packet
func (k Keeper) SetPacketPending(ctx sdk.Context, packetID types.PacketID, sender string) error {
	if k.HasPacketRecord(ctx, packetID) {
		return sdkerrors.Wrapf(types.ErrPacketAlreadyTracked, "packet %s", packetID)
	}

	k.SetPacketRecord(ctx, types.NewPacketRecord(packetID, sender, types.PacketStatusPending))
	return nil
}

// ResolvePacket moves a pending packet to the terminal status. It returns false
// without changing state when the packet is not tracked or already resolved.
func (k Keeper) ResolvePacket(ctx sdk.Context, packetID types.PacketID, status types.PacketStatus) (types.PacketRecord, bool) {
	if !status.IsTerminal() {
		return types.PacketRecord{}, false
	}

	record, found := k.GetPacketRecord(ctx, packetID)
	if !found || record.Status != types.PacketStatusPending {
		return record, false
	}

	record.Status = status
	k.SetPacketRecord(ctx, record)

	k.Logger(ctx).Info("packet resolved", "port-id", packetID.PortID, "channel-id", packetID.ChannelID,
		"sequence", packetID.Sequence, "status", status.String())

	return record, true
}
