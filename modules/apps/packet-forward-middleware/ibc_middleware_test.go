package packetforward_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	feetypes "github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
	ibctesting "github.com/ibc-apps/fee-escrow/testing"
)

const transferAmount = 1000

type ForwardTestSuite struct {
	suite.Suite

	coordinator *ibctesting.Coordinator

	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain
	chainC *ibctesting.TestChain
	chainD *ibctesting.TestChain

	pathAB *ibctesting.Path
	pathBC *ibctesting.Path
	pathCD *ibctesting.Path
}

func (s *ForwardTestSuite) SetupTest() {
	s.coordinator = ibctesting.NewCoordinator(s.T(), 4)
	s.chainA = s.coordinator.GetChain(ibctesting.GetChainID(1))
	s.chainB = s.coordinator.GetChain(ibctesting.GetChainID(2))
	s.chainC = s.coordinator.GetChain(ibctesting.GetChainID(3))
	s.chainD = s.coordinator.GetChain(ibctesting.GetChainID(4))

	s.pathAB = ibctesting.NewTransferPath(s.chainA, s.chainB)
	s.pathBC = ibctesting.NewTransferPath(s.chainB, s.chainC)
	s.pathCD = ibctesting.NewTransferPath(s.chainC, s.chainD)

	s.coordinator.Setup(s.pathAB)
	s.coordinator.Setup(s.pathBC)
	s.coordinator.Setup(s.pathCD)
}

func TestForwardTestSuite(t *testing.T) {
	suite.Run(t, new(ForwardTestSuite))
}

func forwardMemo(receiver string, endpoint *ibctesting.Endpoint, next string) string {
	return forwardMemoOnChannel(receiver, endpoint.ChannelConfig.PortID, endpoint.ChannelID, next)
}

func forwardMemoOnChannel(receiver, portID, channelID, next string) string {
	memo := fmt.Sprintf(`"receiver":%q,"port":%q,"channel":%q`, receiver, portID, channelID)
	if next != "" {
		memo += `,"next":` + next
	}

	return `{"forward":{` + memo + `}}`
}

// receivedDenom is the denomination the destination chain of packet credits
func (s *ForwardTestSuite) receivedDenom(packet channeltypes.Packet) string {
	data, err := transfertypes.UnmarshalPacketData(packet.GetData())
	s.Require().NoError(err)

	return transfertypes.ReceivedDenom(packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetDestPort(), packet.GetDestChannel(), data.Denom)
}

func (s *ForwardTestSuite) sendFromA(receiver, memo string) channeltypes.Packet {
	msg := s.pathAB.EndpointA.NewMsgTransfer(sdk.NewInt64Coin(sdk.DefaultBondDenom, transferAmount), s.chainA.SenderAccount, receiver, memo)

	packet, err := s.chainA.SendTransfer(msg)
	s.Require().NoError(err)

	return packet
}

func (s *ForwardTestSuite) isSuccessAck(bz []byte) bool {
	var ack channeltypes.Acknowledgement
	s.Require().NoError(channeltypes.SubModuleCdc.UnmarshalJSON(bz, &ack))

	return ack.Success()
}

func (s *ForwardTestSuite) TestSingleHopForward() {
	intermediate := ibctesting.GenerateAddress()
	finalReceiver := s.chainC.SenderAccounts[1]
	before := s.chainA.GetBalance(s.chainA.SenderAccount, sdk.DefaultBondDenom).Amount.Int64()

	packet := s.sendFromA(intermediate.String(), forwardMemo(finalReceiver.String(), s.pathBC.EndpointA, ""))

	ack, events, err := s.pathAB.RelayPacketWithResults(packet)
	s.Require().NoError(err)
	s.Require().True(s.isSuccessAck(ack))
	s.Require().True(ibctesting.ContainsEvent(events, types.EventTypePacketForwarded))

	// the intermediate receiver only passes the tokens through
	voucherB := s.receivedDenom(packet)
	s.Require().True(s.chainB.GetBalance(intermediate, voucherB).IsZero())

	forwardPacket, err := ibctesting.ParsePacketFromEvents(events)
	s.Require().NoError(err)
	s.Require().Equal(s.pathBC.EndpointA.ChannelID, forwardPacket.GetSourceChannel())

	data, err := transfertypes.UnmarshalPacketData(forwardPacket.GetData())
	s.Require().NoError(err)
	s.Require().Equal(intermediate.String(), data.Sender)
	s.Require().Equal(finalReceiver.String(), data.Receiver)
	s.Require().Equal(fmt.Sprint(transferAmount), data.Amount)

	ack, _, err = s.pathBC.RelayPacketWithResults(forwardPacket)
	s.Require().NoError(err)
	s.Require().True(s.isSuccessAck(ack))

	s.Require().Equal(int64(transferAmount), s.chainC.GetBalance(finalReceiver, s.receivedDenom(forwardPacket)).Amount.Int64())
	s.Require().Equal(before-transferAmount, s.chainA.GetBalance(s.chainA.SenderAccount, sdk.DefaultBondDenom).Amount.Int64())

	record, found := s.chainB.App.PacketForwardKeeper.GetForwardedPacket(
		s.chainB.GetContext(), packet.GetDestPort(), packet.GetDestChannel(), packet.GetSequence(),
	)
	s.Require().True(found)
	s.Require().Equal(forwardPacket.GetSequence(), record.OutSequence)
	s.Require().Equal(s.pathBC.EndpointA.ChannelID, record.OutChannelID)
	s.Require().Equal(intermediate.String(), record.Sender)
	s.Require().Equal(finalReceiver.String(), record.Receiver)
	s.Require().Equal(voucherB, record.Token.Denom)

	for _, chain := range []*ibctesting.TestChain{s.chainA, s.chainB, s.chainC} {
		s.Require().NoError(chain.App.AssertInvariants(chain.GetContext()))
	}
}

func (s *ForwardTestSuite) TestMultiHopForward() {
	finalReceiver := s.chainD.SenderAccount

	next := forwardMemo(finalReceiver.String(), s.pathCD.EndpointA, "")
	memo := forwardMemo(ibctesting.GenerateAddress().String(), s.pathBC.EndpointA, next)

	packet := s.sendFromA(ibctesting.GenerateAddress().String(), memo)

	_, events, err := s.pathAB.RelayPacketWithResults(packet)
	s.Require().NoError(err)

	packetBC, err := ibctesting.ParsePacketFromEvents(events)
	s.Require().NoError(err)

	// the remaining hops travel in the memo of the forwarded packet
	data, err := transfertypes.UnmarshalPacketData(packetBC.GetData())
	s.Require().NoError(err)
	metadata, isPFM, err := types.GetPacketMetadataFromMemo(data.Memo)
	s.Require().NoError(err)
	s.Require().True(isPFM)
	s.Require().Equal(finalReceiver.String(), metadata.Forward.Receiver)
	s.Require().Nil(metadata.Forward.Next)

	_, events, err = s.pathBC.RelayPacketWithResults(packetBC)
	s.Require().NoError(err)

	packetCD, err := ibctesting.ParsePacketFromEvents(events)
	s.Require().NoError(err)
	s.Require().Equal(s.pathCD.EndpointA.ChannelID, packetCD.GetSourceChannel())

	ack, _, err := s.pathCD.RelayPacketWithResults(packetCD)
	s.Require().NoError(err)
	s.Require().True(s.isSuccessAck(ack))

	s.Require().Equal(int64(transferAmount), s.chainD.GetBalance(finalReceiver, s.receivedDenom(packetCD)).Amount.Int64())

	s.Require().Len(s.chainB.App.PacketForwardKeeper.GetAllForwardedPackets(s.chainB.GetContext()), 1)
	s.Require().Len(s.chainC.App.PacketForwardKeeper.GetAllForwardedPackets(s.chainC.GetContext()), 1)
	s.Require().Empty(s.chainD.App.PacketForwardKeeper.GetAllForwardedPackets(s.chainD.GetContext()))
}

func (s *ForwardTestSuite) TestMultiHopForwardWithOriginFee() {
	const (
		ackFee     = 2333
		timeoutFee = 2666
	)

	sender := s.chainA.SenderAccount
	_, err := s.chainA.SendMsgs(feetypes.NewMsgSetFees(sender.String(), sdk.DefaultBondDenom, sdk.NewInt(ackFee), sdk.ZeroInt(), sdk.NewInt(timeoutFee)))
	s.Require().NoError(err)

	intermediate := ibctesting.GenerateAddress()
	finalReceiver := s.chainC.SenderAccounts[2]

	balance := func(chain *ibctesting.TestChain, addr sdk.AccAddress, denom string) int64 {
		return chain.GetBalance(addr, denom).Amount.Int64()
	}

	senderBefore := balance(s.chainA, sender, sdk.DefaultBondDenom)
	relayerABefore := balance(s.chainA, s.chainA.RelayerAccount, sdk.DefaultBondDenom)
	chainBSenders := make([]int64, len(s.chainB.SenderAccounts))
	for i, account := range s.chainB.SenderAccounts {
		chainBSenders[i] = balance(s.chainB, account, sdk.DefaultBondDenom)
	}

	packet := s.sendFromA(intermediate.String(), forwardMemo(finalReceiver.String(), s.pathBC.EndpointA, ""))

	// the full fee is reserved until the origin packet is acknowledged
	s.Require().Equal(senderBefore-transferAmount-ackFee-timeoutFee, balance(s.chainA, sender, sdk.DefaultBondDenom))

	ack, events, err := s.pathAB.RelayPacketWithResults(packet)
	s.Require().NoError(err)
	s.Require().True(s.isSuccessAck(ack))

	forwardPacket, err := ibctesting.ParsePacketFromEvents(events)
	s.Require().NoError(err)

	ack, _, err = s.pathBC.RelayPacketWithResults(forwardPacket)
	s.Require().NoError(err)
	s.Require().True(s.isSuccessAck(ack))

	// chainA: the sender pays the amount and the ack fee, the timeout fee is refunded
	s.Require().Equal(senderBefore-transferAmount-ackFee, balance(s.chainA, sender, sdk.DefaultBondDenom))
	s.Require().Equal(relayerABefore+ackFee, balance(s.chainA, s.chainA.RelayerAccount, sdk.DefaultBondDenom))
	s.Require().True(s.chainA.GetBalance(s.chainA.App.FeeKeeper.GetFeeModuleAddress(), sdk.DefaultBondDenom).IsZero())

	// chainB: the forward leg carries no fee and nothing is left with the intermediate
	ctxB := s.chainB.GetContext()
	s.Require().Empty(s.chainB.App.FeeKeeper.GetAllPacketFees(ctxB))
	s.Require().True(s.chainB.GetBalance(s.chainB.App.FeeKeeper.GetFeeModuleAddress(), sdk.DefaultBondDenom).IsZero())
	s.Require().True(s.chainB.GetBalance(s.chainB.RelayerAccount, sdk.DefaultBondDenom).IsZero())
	s.Require().True(s.chainB.GetBalance(intermediate, s.receivedDenom(packet)).IsZero())
	for i, account := range s.chainB.SenderAccounts {
		s.Require().Equal(chainBSenders[i], balance(s.chainB, account, sdk.DefaultBondDenom))
	}

	record, found := s.chainB.App.FeeKeeper.GetPacketRecord(ctxB, feetypes.PacketIDFromPacket(forwardPacket))
	s.Require().True(found)
	s.Require().Equal(feetypes.PacketStatusAckSuccess, record.Status)

	// chainC: the final receiver gains exactly the transferred amount
	s.Require().Equal(int64(transferAmount), balance(s.chainC, finalReceiver, s.receivedDenom(forwardPacket)))

	for _, chain := range []*ibctesting.TestChain{s.chainA, s.chainB, s.chainC} {
		s.Require().NoError(chain.App.AssertInvariants(chain.GetContext()))
	}
}

func (s *ForwardTestSuite) TestForwardFailureKeepsFunds() {
	intermediate := ibctesting.GenerateAddress()

	packet := s.sendFromA(intermediate.String(), forwardMemoOnChannel(s.chainC.SenderAccount.String(), "transfer", "channel-9", ""))

	ack, events, err := s.pathAB.RelayPacketWithResults(packet)
	s.Require().NoError(err)
	s.Require().True(s.isSuccessAck(ack))

	s.Require().True(ibctesting.ContainsEvent(events, types.EventTypeForwardFailed))
	s.Require().False(ibctesting.ContainsEvent(events, types.EventTypePacketForwarded))
	s.Require().False(ibctesting.ContainsEvent(events, channeltypes.EventTypeSendPacket))

	errText, found := ibctesting.GetEventAttribute(events, types.EventTypeForwardFailed, types.AttributeKeyError)
	s.Require().True(found)
	s.Require().Contains(errText, types.ErrForwardTransferFailed.Error())

	s.Require().Equal(int64(transferAmount), s.chainB.GetBalance(intermediate, s.receivedDenom(packet)).Amount.Int64())
	s.Require().Empty(s.chainB.App.PacketForwardKeeper.GetAllForwardedPackets(s.chainB.GetContext()))
}

func (s *ForwardTestSuite) TestInvalidForwardMetadata() {
	testCases := []struct {
		name string
		memo string
	}{
		{"missing receiver", `{"forward":{"port":"transfer","channel":"channel-1"}}`},
		{"invalid channel", `{"forward":{"receiver":"cosmos1","port":"transfer","channel":"c"}}`},
		{"forward is not an object", `{"forward":"channel-1"}`},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest()

			receiver := ibctesting.GenerateAddress()
			before := s.chainA.GetBalance(s.chainA.SenderAccount, sdk.DefaultBondDenom).Amount.Int64()

			packet := s.sendFromA(receiver.String(), tc.memo)

			ack, _, err := s.pathAB.RelayPacketWithResults(packet)
			s.Require().NoError(err)
			s.Require().False(s.isSuccessAck(ack))

			// nothing is credited on chainB and the sender is refunded on chainA
			s.Require().True(s.chainB.GetBalance(receiver, s.receivedDenom(packet)).IsZero())
			s.Require().Equal(before, s.chainA.GetBalance(s.chainA.SenderAccount, sdk.DefaultBondDenom).Amount.Int64())
		})
	}
}

func (s *ForwardTestSuite) TestForwardedPacketRejectedDownstream() {
	intermediate := ibctesting.GenerateAddress()

	_, err := s.chainC.DeliverTx(func(ctx sdk.Context) error {
		s.chainC.App.TransferKeeper.SetParams(ctx, transfertypes.NewParams(true, false))
		return nil
	})
	s.Require().NoError(err)

	packet := s.sendFromA(intermediate.String(), forwardMemo(s.chainC.SenderAccount.String(), s.pathBC.EndpointA, ""))

	_, events, err := s.pathAB.RelayPacketWithResults(packet)
	s.Require().NoError(err)

	forwardPacket, err := ibctesting.ParsePacketFromEvents(events)
	s.Require().NoError(err)

	ack, _, err := s.pathBC.RelayPacketWithResults(forwardPacket)
	s.Require().NoError(err)
	s.Require().False(s.isSuccessAck(ack))

	// the refund of the failed hop lands with the intermediate receiver
	s.Require().Equal(int64(transferAmount), s.chainB.GetBalance(intermediate, s.receivedDenom(packet)).Amount.Int64())
}
