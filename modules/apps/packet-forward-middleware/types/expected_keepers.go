package types

import (
	"context"

	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// TransferKeeper defines the expected transfer keeper
type TransferKeeper interface {
	Transfer(goCtx context.Context, msg *transfertypes.MsgTransfer) (*transfertypes.MsgTransferResponse, error)
}
