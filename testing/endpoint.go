package ibctesting

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	clienttypes "github.com/cosmos/ibc-go/v2/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// Endpoint is one end of a channel between two test chains. Endpoint functions use
// the channel config when opening the channel and sending transfers.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint
	ChannelID    string

	ChannelConfig *ChannelConfig
}

// NewEndpoint constructs a new endpoint without the counterparty.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewEndpoint(chain *TestChain, channelConfig *ChannelConfig) *Endpoint {
	return &Endpoint{
		Chain:         chain,
		ChannelConfig: channelConfig,
	}
}

// NewDefaultEndpoint constructs a new endpoint using default values.
// CONTRACT: the counterparty endpoint must be set by the caller.
func NewDefaultEndpoint(chain *TestChain) *Endpoint {
	return NewEndpoint(chain, NewChannelConfig())
}

// OpenChannel stores the OPEN channel end of this endpoint and starts its send sequence at 1.
// The channel identifiers of both endpoints must be set.
func (endpoint *Endpoint) OpenChannel() {
	channel := channeltypes.NewChannel(
		channeltypes.OPEN, endpoint.ChannelConfig.Order,
		channeltypes.NewCounterparty(endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID),
		[]string{DefaultConnectionID}, endpoint.ChannelConfig.Version,
	)

	ctx := endpoint.Chain.GetContext()
	endpoint.Chain.App.ChannelKeeper.SetChannel(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID, channel)
	endpoint.Chain.App.ChannelKeeper.SetNextSequenceSend(ctx, endpoint.ChannelConfig.PortID, endpoint.ChannelID, 1)

	endpoint.Chain.NextBlock()
}

// GetChannel retrieves the channel end of this endpoint
func (endpoint *Endpoint) GetChannel() channeltypes.Channel {
	channel, found := endpoint.Chain.App.ChannelKeeper.GetChannel(endpoint.Chain.GetContext(), endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	if !found {
		panic(fmt.Sprintf("channel %s/%s not found", endpoint.ChannelConfig.PortID, endpoint.ChannelID))
	}

	return channel
}

// NewMsgTransfer returns a MsgTransfer over this endpoint's channel timing out after DefaultTimeoutPeriod.
func (endpoint *Endpoint) NewMsgTransfer(token sdk.Coin, sender sdk.AccAddress, receiver, memo string) *transfertypes.MsgTransfer {
	timeout := endpoint.Chain.CurrentHeader.Time.Add(DefaultTimeoutPeriod)

	return transfertypes.NewMsgTransfer(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		token, sender.String(), receiver,
		clienttypes.ZeroHeight(), uint64(timeout.UnixNano()),
		memo,
	)
}

// RecvPacket receives a packet on the associated endpoint and writes its acknowledgement.
// The application state changes are kept only for a successful acknowledgement.
func (endpoint *Endpoint) RecvPacket(packet channeltypes.Packet) ([]byte, error) {
	ack, _, err := endpoint.RecvPacketWithResult(packet)
	return ack, err
}

// RecvPacketWithResult receives a packet on the associated endpoint and returns the written
// acknowledgement together with the events emitted while receiving it.
func (endpoint *Endpoint) RecvPacketWithResult(packet channeltypes.Packet) ([]byte, []abci.Event, error) {
	app := endpoint.Chain.App
	relayer := endpoint.Chain.RelayerAccount

	var ackBz []byte
	events, err := endpoint.Chain.DeliverTx(func(ctx sdk.Context) error {
		if err := app.ChannelKeeper.RecvPacket(ctx, packet); err != nil {
			return err
		}

		cacheCtx, writeFn := ctx.CacheContext()
		cacheCtx = cacheCtx.WithEventManager(sdk.NewEventManager())

		ack := app.IBCStack.OnRecvPacket(cacheCtx, packet, relayer)

		// events are emitted regardless of the acknowledgement
		ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())

		if ack == nil {
			writeFn()
			return nil
		}

		if ack.Success() {
			writeFn()
		}

		ackBz = ack.Acknowledgement()
		return app.ChannelKeeper.WriteAcknowledgement(ctx, packet, ackBz)
	})
	if err != nil {
		return nil, nil, err
	}

	return ackBz, events, nil
}

// AcknowledgePacket sends the acknowledgement of a packet sent from this endpoint.
func (endpoint *Endpoint) AcknowledgePacket(packet channeltypes.Packet, ack []byte) error {
	app := endpoint.Chain.App
	relayer := endpoint.Chain.RelayerAccount

	_, err := endpoint.Chain.DeliverTx(func(ctx sdk.Context) error {
		if err := app.ChannelKeeper.AcknowledgePacket(ctx, packet); err != nil {
			return err
		}

		return app.IBCStack.OnAcknowledgementPacket(ctx, packet, ack, relayer)
	})

	return err
}

// TimeoutPacket times out a packet sent from this endpoint. The counterparty must not have
// received the packet and its clock must have passed the packet timeout.
func (endpoint *Endpoint) TimeoutPacket(packet channeltypes.Packet) error {
	counterparty := endpoint.Counterparty.Chain

	if counterparty.App.ChannelKeeper.HasPacketReceipt(counterparty.GetContext(), packet.GetDestPort(), packet.GetDestChannel(), packet.GetSequence()) {
		return fmt.Errorf("packet %d was received by %s", packet.GetSequence(), counterparty.ChainID)
	}

	if counterpartyTime := uint64(counterparty.CurrentHeader.Time.UnixNano()); packet.GetTimeoutTimestamp() == 0 || counterpartyTime < packet.GetTimeoutTimestamp() {
		return fmt.Errorf("packet %d has not timed out on %s", packet.GetSequence(), counterparty.ChainID)
	}

	app := endpoint.Chain.App
	relayer := endpoint.Chain.RelayerAccount

	_, err := endpoint.Chain.DeliverTx(func(ctx sdk.Context) error {
		if err := app.ChannelKeeper.TimeoutPacket(ctx, packet); err != nil {
			return err
		}

		return app.IBCStack.OnTimeoutPacket(ctx, packet, relayer)
	})

	return err
}
