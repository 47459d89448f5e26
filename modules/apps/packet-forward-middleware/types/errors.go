package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	ErrMetadataKeyNotFound     = sdkerrors.Register(ModuleName, 2, "metadata key not found in packet data")
	ErrInvalidForwardMetadata  = sdkerrors.Register(ModuleName, 3, "invalid forward metadata")
	ErrForwardTransferFailed   = sdkerrors.Register(ModuleName, 4, "failed to forward transfer packet")
	ErrForwardedPacketNotFound = sdkerrors.Register(ModuleName, 5, "forwarded packet not found")
)
