package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global packet forward middleware codec.
	// The middleware has no messages, the codec only serves JSON genesis and queries.
	ModuleCdc = amino
)

func init() {
	amino.Seal()
}
