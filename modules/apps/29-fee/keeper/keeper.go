package keeper

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	porttypes "github.com/ibc-apps/fee-escrow/modules/core/05-port/types"
)

// the keeper sits between the transfer keeper and the channel on outbound packets
var _ porttypes.ICS4Wrapper = Keeper{}

// Keeper defines the IBC fee middleware keeper
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.LegacyAmino
	paramSpace paramtypes.Subspace
	authority  string

	// callbackGasLimit overrides the CallbackGasLimit param when non-zero
	callbackGasLimit uint64

	ics4Wrapper    porttypes.ICS4Wrapper
	authKeeper     types.AccountKeeper
	bankKeeper     types.BankKeeper
	contractKeeper types.ContractKeeper
	failureKeeper  types.FailureKeeper
}

// NewKeeper creates a new 29-fee Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino, key sdk.StoreKey, paramSpace paramtypes.Subspace, authority string,
	ics4Wrapper porttypes.ICS4Wrapper, authKeeper types.AccountKeeper, bankKeeper types.BankKeeper,
	contractKeeper types.ContractKeeper, failureKeeper types.FailureKeeper,
) Keeper {
	// ensure the fee module account is set
	if addr := authKeeper.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the IBC fee module account has not been set")
	}

	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return Keeper{
		cdc:            cdc,
		storeKey:       key,
		paramSpace:     paramSpace,
		authority:      authority,
		ics4Wrapper:    ics4Wrapper,
		authKeeper:     authKeeper,
		bankKeeper:     bankKeeper,
		contractKeeper: contractKeeper,
		failureKeeper:  failureKeeper,
	}
}

// WithCallbackGasLimit returns a copy of the keeper whose sudo callbacks are bounded by limit
// instead of the CallbackGasLimit param. A zero limit restores the param.
func (k Keeper) WithCallbackGasLimit(limit uint64) Keeper {
	k.callbackGasLimit = limit
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+host.ModuleName+"-"+types.ModuleName)
}

// GetAuthority returns the address allowed to change the dispatcher mode
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetFeeModuleAddress returns the ICS29 Fee ModuleAccount address
func (k Keeper) GetFeeModuleAddress() sdk.AccAddress {
	return k.authKeeper.GetModuleAddress(types.ModuleName)
}

// EscrowAccountHasBalance verifies if the escrow account has the provided fee.
func (k Keeper) EscrowAccountHasBalance(ctx sdk.Context, coins sdk.Coins) bool {
	for _, coin := range coins {
		if !k.bankKeeper.HasBalance(ctx, k.GetFeeModuleAddress(), coin) {
			return false
		}
	}

	return true
}

// SetFeeConfig replaces the fee configuration of the payer
func (k Keeper) SetFeeConfig(ctx sdk.Context, feeConfig types.FeeConfig) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyFeeConfig(feeConfig.Payer), k.cdc.MustMarshal(&feeConfig))
}

// GetFeeConfig returns the fee configuration of the payer
func (k Keeper) GetFeeConfig(ctx sdk.Context, payer string) (types.FeeConfig, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.KeyFeeConfig(payer))
	if bz == nil {
		return types.FeeConfig{}, false
	}

	var feeConfig types.FeeConfig
	k.cdc.MustUnmarshal(bz, &feeConfig)
	return feeConfig, true
}

// HasFeeConfig returns true if the payer has a fee configuration
func (k Keeper) HasFeeConfig(ctx sdk.Context, payer string) bool {
	return ctx.KVStore(k.storeKey).Has(types.KeyFeeConfig(payer))
}

// DeleteFeeConfig removes the fee configuration of the payer
func (k Keeper) DeleteFeeConfig(ctx sdk.Context, payer string) {
	ctx.KVStore(k.storeKey).Delete(types.KeyFeeConfig(payer))
}

// GetAllFeeConfigs returns every stored fee configuration
func (k Keeper) GetAllFeeConfigs(ctx sdk.Context) []types.FeeConfig {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.FeeConfigPrefix+"/"))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var feeConfigs []types.FeeConfig
	for ; iterator.Valid(); iterator.Next() {
		var feeConfig types.FeeConfig
		k.cdc.MustUnmarshal(iterator.Value(), &feeConfig)
		feeConfigs = append(feeConfigs, feeConfig)
	}

	return feeConfigs
}

// SetFeeInEscrow stores the escrow entry of a packet
func (k Keeper) SetFeeInEscrow(ctx sdk.Context, packetFee types.PacketFee) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyFeeInEscrow(packetFee.PacketID), k.cdc.MustMarshal(&packetFee))
}

// GetFeeInEscrow returns the escrow entry of a packet
func (k Keeper) GetFeeInEscrow(ctx sdk.Context, packetID types.PacketID) (types.PacketFee, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.KeyFeeInEscrow(packetID))
	if bz == nil {
		return types.PacketFee{}, false
	}

	var packetFee types.PacketFee
	k.cdc.MustUnmarshal(bz, &packetFee)
	return packetFee, true
}

// HasFeeInEscrow returns true if there is a fee escrowed for the packet
func (k Keeper) HasFeeInEscrow(ctx sdk.Context, packetID types.PacketID) bool {
	return ctx.KVStore(k.storeKey).Has(types.KeyFeeInEscrow(packetID))
}

// DeleteFeeInEscrow removes the escrow entry of a packet
func (k Keeper) DeleteFeeInEscrow(ctx sdk.Context, packetID types.PacketID) {
	ctx.KVStore(k.storeKey).Delete(types.KeyFeeInEscrow(packetID))
}

// IterateFeesInEscrow iterates over all escrow entries
func (k Keeper) IterateFeesInEscrow(ctx sdk.Context, cb func(packetFee types.PacketFee) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.FeeInEscrowPrefix+"/"))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var packetFee types.PacketFee
		k.cdc.MustUnmarshal(iterator.Value(), &packetFee)

		if cb(packetFee) {
			break
		}
	}
}

// GetAllPacketFees returns every escrow entry
func (k Keeper) GetAllPacketFees(ctx sdk.Context) []types.PacketFee {
	var packetFees []types.PacketFee
	k.IterateFeesInEscrow(ctx, func(packetFee types.PacketFee) bool {
		packetFees = append(packetFees, packetFee)
		return false
	})

	return packetFees
}

// GetDispatcherMode returns the current outcome dispatcher mode
func (k Keeper) GetDispatcherMode(ctx sdk.Context) types.DispatcherMode {
	bz := ctx.KVStore(k.storeKey).Get([]byte(types.DispatcherModeKey))
	if bz == nil {
		return types.DispatcherModeNormal
	}

	return types.DispatcherMode(sdk.BigEndianToUint64(bz))
}

// setDispatcherMode stores the outcome dispatcher mode
func (k Keeper) setDispatcherMode(ctx sdk.Context, mode types.DispatcherMode) {
	ctx.KVStore(k.storeKey).Set([]byte(types.DispatcherModeKey), sdk.Uint64ToBigEndian(uint64(mode)))
}

// EnableCallbackFault makes every subsequent sudo callback fail
func (k Keeper) EnableCallbackFault(ctx sdk.Context) {
	k.setDispatcherMode(ctx, types.DispatcherModeAlwaysFault)
}

// DisableCallbackFault restores normal sudo callback dispatch
func (k Keeper) DisableCallbackFault(ctx sdk.Context) {
	k.setDispatcherMode(ctx, types.DispatcherModeNormal)
}
