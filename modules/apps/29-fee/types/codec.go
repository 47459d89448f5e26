package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global fee middleware codec. It encodes the module's
	// store values, legacy queries and genesis state.
	ModuleCdc = amino
)

// RegisterLegacyAminoCodec registers the concrete 29-fee messages on the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSetFees{}, "feeibc/MsgSetFees", nil)
	cdc.RegisterConcrete(&MsgUnsetFees{}, "feeibc/MsgUnsetFees", nil)
	cdc.RegisterConcrete(&MsgSetDispatcherMode{}, "feeibc/MsgSetDispatcherMode", nil)
}

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
