package keeper

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// Keeper maintains the append-only log of failed packet outcomes
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.LegacyAmino
	authority string
}

// NewKeeper creates a new failure log Keeper instance
func NewKeeper(cdc *codec.LegacyAmino, key sdk.StoreKey, authority string) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		authority: authority,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+host.ModuleName+"-"+types.ModuleName)
}

// GetAuthority returns the address allowed to reset the failure log
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetNextFailureID returns the id the next failure record will be stored under
func (k Keeper) GetNextFailureID(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get([]byte(types.NextFailureIDKey))
	if bz == nil {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextFailureID sets the failure id counter
func (k Keeper) SetNextFailureID(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.storeKey).Set([]byte(types.NextFailureIDKey), sdk.Uint64ToBigEndian(id))
}

// AddFailure appends a failure record for address and returns its id.
// Ids are assigned from a counter that only ever grows, also across resets.
func (k Keeper) AddFailure(ctx sdk.Context, address, ackType string, packet types.PacketInfo, errorText string) uint64 {
	id := k.GetNextFailureID(ctx)
	failure := types.NewFailure(address, id, ackType, packet, errorText)

	k.SetFailure(ctx, failure)
	k.SetNextFailureID(ctx, id+1)

	k.Logger(ctx).Info("packet failure recorded", "address", address, "id", id, "ack-type", ackType,
		"port-id", packet.PortID, "channel-id", packet.ChannelID, "sequence", packet.Sequence)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFailure,
			sdk.NewAttribute(types.AttributeKeyAddress, address),
			sdk.NewAttribute(types.AttributeKeyID, fmt.Sprint(id)),
			sdk.NewAttribute(types.AttributeKeyAckType, ackType),
		),
	)

	return id
}

// SetFailure stores a failure record together with its address index entry
func (k Keeper) SetFailure(ctx sdk.Context, failure types.Failure) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyFailure(failure.ID), k.cdc.MustMarshal(&failure))
	store.Set(types.KeyFailureIndex(failure.Address, failure.ID), []byte{0x01})
}

// GetFailure returns the failure record with the given id
func (k Keeper) GetFailure(ctx sdk.Context, id uint64) (types.Failure, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.KeyFailure(id))
	if bz == nil {
		return types.Failure{}, false
	}

	var failure types.Failure
	k.cdc.MustUnmarshal(bz, &failure)
	return failure, true
}

// IterateFailures iterates over all failure records in ascending id order
func (k Keeper) IterateFailures(ctx sdk.Context, cb func(failure types.Failure) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.FailurePrefix))
	iterator := store.Iterator(nil, nil)

	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var failure types.Failure
		k.cdc.MustUnmarshal(iterator.Value(), &failure)

		if cb(failure) {
			break
		}
	}
}

// GetAllFailures returns every failure record in ascending id order
func (k Keeper) GetAllFailures(ctx sdk.Context) []types.Failure {
	var failures []types.Failure
	k.IterateFailures(ctx, func(failure types.Failure) bool {
		failures = append(failures, failure)
		return false
	})

	return failures
}

// DeleteFailures deletes the records of address, or every record when address is empty.
// The id counter is left untouched. It returns the number of removed records.
func (k Keeper) DeleteFailures(ctx sdk.Context, address string) uint64 {
	var ids []uint64
	if address == "" {
		k.IterateFailures(ctx, func(failure types.Failure) bool {
			ids = append(ids, failure.ID)
			return false
		})
	} else {
		store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyFailureIndexPrefix(address))
		iterator := store.Iterator(nil, nil)
		for ; iterator.Valid(); iterator.Next() {
			ids = append(ids, sdk.BigEndianToUint64(iterator.Key()))
		}
		iterator.Close()
	}

	store := ctx.KVStore(k.storeKey)
	for _, id := range ids {
		failure, found := k.GetFailure(ctx, id)
		if !found {
			continue
		}

		store.Delete(types.KeyFailure(id))
		store.Delete(types.KeyFailureIndex(failure.Address, id))
	}

	return uint64(len(ids))
}
