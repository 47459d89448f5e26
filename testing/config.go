package ibctesting

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

const (
	// TransferPort is the port the transfer stack is bound to
	TransferPort = transfertypes.PortID

	// DefaultChannelVersion is the ICS-20 channel version
	DefaultChannelVersion = "ics20-1"

	// DefaultConnectionID is the connection every test channel is opened on
	DefaultConnectionID = "connection-0"

	// DefaultTimeoutPeriod is the timeout applied by SendTransfer helpers
	DefaultTimeoutPeriod = 10 * time.Minute
)

var (
	// DefaultGenesisCoins is the balance of every sender account at genesis
	DefaultGenesisCoins = sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 100_000_000))

	// DefaultCoinAmount is a transfer amount used throughout tests
	DefaultCoinAmount = sdk.NewInt(100)
)

// ChannelConfig is the channel an endpoint opens
type ChannelConfig struct {
	PortID  string
	Version string
	Order   channeltypes.Order
}

// NewChannelConfig returns an unordered transfer channel config
func NewChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		PortID:  TransferPort,
		Version: DefaultChannelVersion,
		Order:   channeltypes.UNORDERED,
	}
}
