package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global failure log codec
	ModuleCdc = amino
)

// RegisterLegacyAminoCodec registers the failure log messages on the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgResetFailures{}, "failures/MsgResetFailures", nil)
}

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
