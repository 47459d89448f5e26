package ibctesting

import (
	"testing"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
	"github.com/ibc-apps/fee-escrow/testing/simapp"
)

// TestChain is a testing struct that wraps a simapp with the latest header and the accounts
// the chain was funded with at genesis.
type TestChain struct {
	*testing.T

	Coordinator   *Coordinator
	App           *simapp.SimApp
	ChainID       string
	CurrentHeader tmproto.Header

	// SenderAccounts are funded with DefaultGenesisCoins, SenderAccount is the first of them
	SenderAccount  sdk.AccAddress
	SenderAccounts []sdk.AccAddress

	// RelayerAccount submits packets, acknowledgements and timeouts and earns relay fees
	RelayerAccount sdk.AccAddress

	nextChannelSequence uint64
}

// NewTestChain initializes a new test chain with a default simapp and funded sender accounts.
func NewTestChain(t *testing.T, coord *Coordinator, chainID string, appOpts servertypes.AppOptions) *TestChain {
	t.Helper()

	app := simapp.NewSimApp(log.NewNopLogger(), dbm.NewMemDB(), appOpts)

	chain := &TestChain{
		T:           t,
		Coordinator: coord,
		App:         app,
		ChainID:     chainID,
		CurrentHeader: tmproto.Header{
			ChainID: chainID,
			Height:  1,
			Time:    coord.CurrentTime.UTC(),
		},
		RelayerAccount: GenerateAddress(),
	}

	ctx := chain.GetContext()
	app.InitChain(ctx, simapp.DefaultGenesis())

	for i := 0; i < MaxAccounts; i++ {
		sender := GenerateAddress()
		require.NoError(t, app.FundAccount(ctx, sender, DefaultGenesisCoins))
		chain.SenderAccounts = append(chain.SenderAccounts, sender)
	}
	chain.SenderAccount = chain.SenderAccounts[0]

	chain.NextBlock()

	return chain
}

// GenerateAddress returns the address of a fresh secp256k1 key
func GenerateAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

// GetContext returns the context over the uncommitted state of the current block
func (chain *TestChain) GetContext() sdk.Context {
	return chain.App.NewContext(chain.CurrentHeader)
}

// NextBlock commits the current block and starts the next one at the coordinator time.
func (chain *TestChain) NextBlock() {
	chain.App.Commit()

	chain.CurrentHeader = tmproto.Header{
		ChainID: chain.ChainID,
		Height:  chain.CurrentHeader.Height + 1,
		Time:    chain.Coordinator.CurrentTime.UTC(),
	}
}

// DeliverTx runs fn the way a transaction runs: state and events are kept only if fn returns
// no error. The block is committed and the coordinator time is moved forward afterwards.
func (chain *TestChain) DeliverTx(fn func(ctx sdk.Context) error) ([]abci.Event, error) {
	ctx := chain.GetContext()

	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

	err := fn(cacheCtx)
	if err == nil {
		writeFn()
	}

	chain.NextBlock()
	chain.Coordinator.IncrementTime()

	if err != nil {
		return nil, err
	}

	return cacheCtx.EventManager().ABCIEvents(), nil
}

// SendMsgs delivers msgs in a single transaction through the message router of the app. Each
// message is checked with ValidateBasic first. The events of every message are returned.
func (chain *TestChain) SendMsgs(msgs ...sdk.Msg) ([]abci.Event, error) {
	var events []abci.Event

	_, err := chain.DeliverTx(func(ctx sdk.Context) error {
		for _, msg := range msgs {
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			legacyMsg, ok := msg.(legacytx.LegacyMsg)
			if !ok {
				return sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "message %T has no route", msg)
			}

			handler := chain.App.Router().Route(ctx, legacyMsg.Route())
			if handler == nil {
				return sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized message route: %s", legacyMsg.Route())
			}

			res, err := handler(ctx, msg)
			if err != nil {
				return err
			}

			events = append(events, res.Events...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// SendTransfer delivers a MsgTransfer and returns the packet it sent
func (chain *TestChain) SendTransfer(msg *transfertypes.MsgTransfer) (channeltypes.Packet, error) {
	events, err := chain.SendMsgs(msg)
	if err != nil {
		return channeltypes.Packet{}, err
	}

	return ParsePacketFromEvents(events)
}

// GetBalance returns the balance of addr in denom
func (chain *TestChain) GetBalance(addr sdk.AccAddress, denom string) sdk.Coin {
	return chain.App.BankKeeper.GetBalance(chain.GetContext(), addr, denom)
}

// FundAccount mints amounts to addr and commits the block
func (chain *TestChain) FundAccount(addr sdk.AccAddress, amounts sdk.Coins) {
	require.NoError(chain.T, chain.App.FundAccount(chain.GetContext(), addr, amounts))
	chain.NextBlock()
}

// NextChannelID returns the identifier of the next channel opened on this chain
func (chain *TestChain) NextChannelID() string {
	channelID := channeltypes.FormatChannelIdentifier(chain.nextChannelSequence)
	chain.nextChannelSequence++
	return channelID
}
