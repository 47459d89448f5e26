package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	ErrInvalidWasmMetadata = sdkerrors.Register(ModuleName, 2, "invalid wasm hook metadata")
	ErrReceiverNotContract = sdkerrors.Register(ModuleName, 3, "packet receiver must be the hook contract")
	ErrWasmExecution       = sdkerrors.Register(ModuleName, 4, "wasm hook execution failed")
)
