package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// 29-fee sentinel errors
var (
	ErrFeeNotFound           = sdkerrors.Register(ModuleName, 2, "there is no fee escrowed for the given packetID")
	ErrFeeConfigNotFound     = sdkerrors.Register(ModuleName, 3, "there is no fee configuration for the given payer")
	ErrPacketRecordNotFound  = sdkerrors.Register(ModuleName, 4, "there is no lifecycle record for the given packetID")
	ErrInvalidPacketStatus   = sdkerrors.Register(ModuleName, 5, "invalid packet status")
	ErrPacketAlreadyTracked  = sdkerrors.Register(ModuleName, 6, "packet is already tracked")
	ErrInvalidDispatcherMode = sdkerrors.Register(ModuleName, 7, "invalid dispatcher mode")
	ErrCallbackFault         = sdkerrors.Register(ModuleName, 8, "callback fault injected")
	ErrCallbackOutOfGas      = sdkerrors.Register(ModuleName, 9, "callback out of gas")
	ErrCallbackPanic         = sdkerrors.Register(ModuleName, 10, "callback panicked")
)
