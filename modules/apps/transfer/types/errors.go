package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	ibctransfertypes "github.com/cosmos/ibc-go/v2/modules/apps/transfer/types"
)

// IBC transfer sentinel errors. The "transfer" codespace is owned by the ibc-go transfer types,
// so the sentinels are shared with it instead of being registered a second time.
var (
	ErrInvalidPacketTimeout    = ibctransfertypes.ErrInvalidPacketTimeout
	ErrInvalidDenomForTransfer = ibctransfertypes.ErrInvalidDenomForTransfer
	ErrInvalidAmount           = ibctransfertypes.ErrInvalidAmount
	ErrTraceNotFound           = ibctransfertypes.ErrTraceNotFound
	ErrSendDisabled            = ibctransfertypes.ErrSendDisabled
	ErrReceiveDisabled         = ibctransfertypes.ErrReceiveDisabled
	ErrInvalidPacketData       = sdkerrors.ErrUnknownRequest
)
