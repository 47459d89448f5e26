package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global x/ibc-transfer module codec. It is used to
	// encode packet data, legacy queries and the module's own store values.
	ModuleCdc = amino
)

// RegisterLegacyAminoCodec registers the concrete transfer types on the provided
// LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgTransfer{}, "cosmos-sdk/MsgTransfer", nil)
}

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
