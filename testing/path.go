package ibctesting

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"
)

// Path contains two endpoints representing two chains connected over IBC
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for each chain using the default values
// for the endpoints. Each endpoint is updated to have a pointer to the
// counterparty endpoint.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewDefaultEndpoint(chainA)
	endpointB := NewDefaultEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// NewTransferPath constructs a new path between each chain suitable for use with
// the transfer module.
func NewTransferPath(chainA, chainB *TestChain) *Path {
	return NewPath(chainA, chainB)
}

// Setup opens a channel between the two endpoints.
func (path *Path) Setup() {
	path.EndpointA.ChannelID = path.EndpointA.Chain.NextChannelID()
	path.EndpointB.ChannelID = path.EndpointB.Chain.NextChannelID()

	path.EndpointA.OpenChannel()
	path.EndpointB.OpenChannel()
}

// RelayPacket attempts to relay the packet first on EndpointA and then on EndpointB
// if EndpointA does not contain a packet commitment for that packet. An error is returned
// if a relay step fails or the packet commitment does not exist on either endpoint.
func (path *Path) RelayPacket(packet channeltypes.Packet) error {
	_, _, err := path.RelayPacketWithResults(packet)
	return err
}

// RelayPacketWithResults relays the packet like RelayPacket and returns the acknowledgement
// together with the events emitted on the receiving chain.
func (path *Path) RelayPacketWithResults(packet channeltypes.Packet) ([]byte, []abci.Event, error) {
	for _, endpoint := range []*Endpoint{path.EndpointA, path.EndpointB} {
		ctx := endpoint.Chain.GetContext()
		if endpoint.ChannelID != packet.GetSourceChannel() ||
			!endpoint.Chain.App.ChannelKeeper.HasPacketCommitment(ctx, packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetSequence()) {
			continue
		}

		ack, events, err := endpoint.Counterparty.RecvPacketWithResult(packet)
		if err != nil {
			return nil, nil, err
		}

		if err := endpoint.AcknowledgePacket(packet, ack); err != nil {
			return nil, nil, err
		}

		return ack, events, nil
	}

	return nil, nil, fmt.Errorf("packet commitment does not exist on either endpoint for provided packet")
}
