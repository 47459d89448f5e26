package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// failure log sentinel errors
var (
	ErrFailureNotFound = sdkerrors.Register(ModuleName, 2, "failure not found")
	ErrInvalidAckType  = sdkerrors.Register(ModuleName, 3, "invalid ack type")
)
