package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// RegisterInvariants registers all fee middleware invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-conservation", EscrowConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "escrow-pending", EscrowPendingInvariant(k))
}

// EscrowConservationInvariant checks that the fee module account holds at least the sum of all
// escrowed packet fees.
func EscrowConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var expectedEscrow sdk.Coins
		k.IterateFeesInEscrow(ctx, func(packetFee types.PacketFee) bool {
			expectedEscrow = expectedEscrow.Add(packetFee.Fee.Total()...)
			return false
		})

		moduleBalance := k.bankKeeper.GetAllBalances(ctx, k.GetFeeModuleAddress())
		broken := !moduleBalance.IsAllGTE(expectedEscrow)

		return sdk.FormatInvariant(
			types.ModuleName,
			"escrow conservation",
			fmt.Sprintf("\tmodule account balance: %s\n\tsum of escrowed fees: %s\n", moduleBalance, expectedEscrow),
		), broken
	}
}

// EscrowPendingInvariant checks that fees are only escrowed for packets that are still pending.
func EscrowPendingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)

		k.IterateFeesInEscrow(ctx, func(packetFee types.PacketFee) bool {
			record, found := k.GetPacketRecord(ctx, packetFee.PacketID)
			if !found || record.Status != types.PacketStatusPending {
				broken = true
				msg += fmt.Sprintf("\tfee escrowed for packet %s which is not pending\n", packetFee.PacketID)
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "escrow pending", msg), broken
	}
}
