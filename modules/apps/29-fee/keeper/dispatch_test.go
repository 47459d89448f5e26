package keeper_test

import (
	"encoding/json"

	"github.com/spf13/viper"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	clienttypes "github.com/cosmos/ibc-go/v2/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	failurestypes "github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
	ibctesting "github.com/ibc-apps/fee-escrow/testing"
	"github.com/ibc-apps/fee-escrow/testing/mock"
	"github.com/ibc-apps/fee-escrow/testing/simapp"
)

func (s *KeeperTestSuite) setDispatcherMode(mode types.DispatcherMode) {
	msg := types.NewMsgSetDispatcherMode(s.chainA.App.FeeKeeper.GetAuthority(), mode)

	_, err := s.chainA.SendMsgs(msg)
	s.Require().NoError(err)
}

func (s *KeeperTestSuite) TestCallbackFaultMode() {
	contract := s.newPayer(50_000)
	s.chainA.App.ContractKeeper.RegisterContract(contract, mock.ContractSucceeds)
	s.setFees(contract, sdk.DefaultBondDenom, 2333, 0, 2666)

	s.setDispatcherMode(types.DispatcherModeAlwaysFault)

	var packets []channeltypes.Packet
	for i := 0; i < 4; i++ {
		packet, err := s.sendTransfer(contract, 1000)
		s.Require().NoError(err)
		packets = append(packets, packet)
	}

	s.Require().NoError(s.path.RelayPacket(packets[0]))
	s.Require().NoError(s.path.RelayPacket(packets[1]))

	s.coordinator.IncrementTimeBy(ibctesting.DefaultTimeoutPeriod)
	s.chainB.NextBlock()
	s.Require().NoError(s.path.EndpointA.TimeoutPacket(packets[2]))
	s.Require().NoError(s.path.EndpointA.TimeoutPacket(packets[3]))

	// the contract is never called while faults are injected
	s.Require().Empty(s.chainA.App.ContractKeeper.SudoCalls)
	s.Require().Zero(s.chainA.App.ContractKeeper.CallCount(s.chainA.GetContext(), contract))

	res, err := s.chainA.App.FailuresKeeper.Failures(sdk.WrapSDKContext(s.chainA.GetContext()), &failurestypes.QueryFailuresRequest{
		Address: contract.String(),
	})
	s.Require().NoError(err)
	s.Require().Len(res.Failures, 4)

	expAckTypes := []string{"ack", "ack", "timeout", "timeout"}
	for i, failure := range res.Failures {
		s.Require().Equal(uint64(i), failure.ID)
		s.Require().Equal(contract.String(), failure.Address)
		s.Require().Equal(expAckTypes[i], failure.AckType)
		s.Require().Equal(packets[i].GetSequence(), failure.Packet.Sequence)
		s.Require().Contains(failure.ErrorText, types.ErrCallbackFault.Error())
	}

	// fees are settled as usual: two ack fees and two timeout fees
	s.Require().Equal(int64(2*2333+2*2666), s.balanceOf(s.chainA.RelayerAccount))
	s.Require().Equal(int64(50_000-2*1000-2*2333-2*2666), s.balanceOf(contract))
	s.Require().NoError(s.chainA.App.AssertInvariants(s.chainA.GetContext()))

	// the failure log is paginated
	res, err = s.chainA.App.FailuresKeeper.Failures(sdk.WrapSDKContext(s.chainA.GetContext()), &failurestypes.QueryFailuresRequest{
		Address:    contract.String(),
		Pagination: &query.PageRequest{Limit: 1},
	})
	s.Require().NoError(err)
	s.Require().Len(res.Failures, 1)
	s.Require().Equal(uint64(0), res.Failures[0].ID)
	s.Require().NotNil(res.Pagination.NextKey)

	_, err = s.chainA.App.FailuresKeeper.Failures(sdk.WrapSDKContext(s.chainA.GetContext()), &failurestypes.QueryFailuresRequest{
		Address:    contract.String(),
		Pagination: &query.PageRequest{Limit: 10000},
	})
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "limit is more than maximum allowed")

	// back to normal dispatch
	s.setDispatcherMode(types.DispatcherModeNormal)

	packet, err := s.sendTransfer(contract, 1000)
	s.Require().NoError(err)
	s.Require().NoError(s.path.RelayPacket(packet))

	s.Require().Len(s.chainA.App.ContractKeeper.SudoCalls, 1)
	s.Require().Len(s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext()), 4)
}

func (s *KeeperTestSuite) TestSudoCallback() {
	testCases := []struct {
		name         string
		behaviour    mock.ContractBehaviour
		expPass      bool
		expErrorText string
	}{
		{"contract succeeds", mock.ContractSucceeds, true, ""},
		{"contract returns an error", mock.ContractErrors, false, mock.ErrMockContract.Error()},
		{"contract panics", mock.ContractPanics, false, types.ErrCallbackPanic.Error()},
		{"contract runs out of gas", mock.ContractOutOfGas, false, types.ErrCallbackOutOfGas.Error()},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset

			contract := s.newPayer(50_000)
			s.chainA.App.ContractKeeper.RegisterContract(contract, tc.behaviour)
			s.setFees(contract, sdk.DefaultBondDenom, 2333, 0, 2666)

			packet, err := s.sendTransfer(contract, 1000)
			s.Require().NoError(err)
			s.Require().NoError(s.path.RelayPacket(packet))

			record, found := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), types.PacketIDFromPacket(packet))
			s.Require().True(found)
			s.Require().Equal(types.PacketStatusAckSuccess, record.Status)

			// the fee is distributed whatever the callback outcome
			s.Require().Equal(int64(2333), s.balanceOf(s.chainA.RelayerAccount))
			s.Require().Equal(int64(50_000-1000-2333), s.balanceOf(contract))

			failures := s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext())
			callCount := s.chainA.App.ContractKeeper.CallCount(s.chainA.GetContext(), contract)

			if tc.expPass {
				s.Require().Empty(failures)
				s.Require().Equal(uint64(1), callCount)
				s.Require().Len(s.chainA.App.ContractKeeper.SudoCalls, 1)

				var msg types.SudoMessage
				s.Require().NoError(json.Unmarshal(s.chainA.App.ContractKeeper.SudoCalls[0].Msg, &msg))
				s.Require().NotNil(msg.Response)
				s.Require().Equal(packet.GetSequence(), msg.Response.Request.Sequence)
				s.Require().Equal(packet.GetSourceChannel(), msg.Response.Request.SourceChannel)
			} else {
				s.Require().Len(failures, 1)
				s.Require().Equal("ack", failures[0].AckType)
				s.Require().Contains(failures[0].ErrorText, "callback failed")
				s.Require().Contains(failures[0].ErrorText, tc.expErrorText)

				// state written by a failed callback is discarded
				s.Require().Zero(callCount)
			}

			s.Require().NoError(s.chainA.App.AssertInvariants(s.chainA.GetContext()))
		})
	}
}

func (s *KeeperTestSuite) TestSudoCallbackMessages() {
	contract := s.newPayer(50_000)
	s.chainA.App.ContractKeeper.RegisterContract(contract, mock.ContractSucceeds)

	// error acknowledgement
	msg := s.path.EndpointA.NewMsgTransfer(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1000), contract, "not-an-address", "")
	errPacket, err := s.chainA.SendTransfer(msg)
	s.Require().NoError(err)
	s.Require().NoError(s.path.RelayPacket(errPacket))

	// timeout
	timeoutPacket, err := s.sendTransfer(contract, 1000)
	s.Require().NoError(err)
	s.timeoutPacket(timeoutPacket)

	calls := s.chainA.App.ContractKeeper.SudoCalls
	s.Require().Len(calls, 2)

	var errMsg types.SudoMessage
	s.Require().NoError(json.Unmarshal(calls[0].Msg, &errMsg))
	s.Require().Nil(errMsg.Response)
	s.Require().NotNil(errMsg.Error)
	s.Require().Equal(errPacket.GetSequence(), errMsg.Error.Request.Sequence)
	s.Require().NotEmpty(errMsg.Error.Details)

	var timeoutMsg types.SudoMessage
	s.Require().NoError(json.Unmarshal(calls[1].Msg, &timeoutMsg))
	s.Require().NotNil(timeoutMsg.Timeout)
	s.Require().Equal(timeoutPacket.GetSequence(), timeoutMsg.Timeout.Request.Sequence)

	// both outcomes are failures even though the callbacks succeeded
	failures := s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext())
	s.Require().Len(failures, 2)
	s.Require().Equal("ack", failures[0].AckType)
	s.Require().Equal("timeout", failures[1].AckType)
	s.Require().Equal(uint64(2), s.chainA.App.ContractKeeper.CallCount(s.chainA.GetContext(), contract))
}

func (s *KeeperTestSuite) TestCallbackGasLimitOverride() {
	appOpts := viper.New()
	appOpts.Set(simapp.FlagCallbackGasLimit, mock.CallGasCost/2)

	s.coordinator = ibctesting.NewCoordinatorWithAppOptions(s.T(), 2, appOpts)
	s.chainA = s.coordinator.GetChain(ibctesting.GetChainID(1))
	s.chainB = s.coordinator.GetChain(ibctesting.GetChainID(2))
	s.path = ibctesting.NewTransferPath(s.chainA, s.chainB)
	s.coordinator.Setup(s.path)

	s.Require().Equal(mock.CallGasCost/2, s.chainA.App.FeeKeeper.GetCallbackGasLimit(s.chainA.GetContext()))

	contract := s.newPayer(50_000)
	s.chainA.App.ContractKeeper.RegisterContract(contract, mock.ContractSucceeds)

	packet, err := s.sendTransfer(contract, 1000)
	s.Require().NoError(err)
	s.Require().NoError(s.path.RelayPacket(packet))

	failures := s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext())
	s.Require().Len(failures, 1)
	s.Require().Contains(failures[0].ErrorText, types.ErrCallbackOutOfGas.Error())
	s.Require().Zero(s.chainA.App.ContractKeeper.CallCount(s.chainA.GetContext(), contract))
}

func (s *KeeperTestSuite) TestRedeliveredOutcome() {
	contract := s.newPayer(50_000)
	s.chainA.App.ContractKeeper.RegisterContract(contract, mock.ContractSucceeds)
	s.setFees(contract, sdk.DefaultBondDenom, 2333, 0, 2666)

	packet, err := s.sendTransfer(contract, 1000)
	s.Require().NoError(err)

	ack, err := s.path.EndpointB.RecvPacket(packet)
	s.Require().NoError(err)
	s.Require().NoError(s.path.EndpointA.AcknowledgePacket(packet, ack))

	payerBalance := s.balanceOf(contract)
	relayerBalance := s.balanceOf(s.chainA.RelayerAccount)

	// the same outcome delivered again, then a conflicting one
	events, err := s.chainA.DeliverTx(func(ctx sdk.Context) error {
		if err := s.chainA.App.IBCStack.OnAcknowledgementPacket(ctx, packet, ack, s.chainA.RelayerAccount); err != nil {
			return err
		}
		return s.chainA.App.IBCStack.OnTimeoutPacket(ctx, packet, s.chainA.RelayerAccount)
	})
	s.Require().NoError(err)
	s.Require().False(ibctesting.ContainsEvent(events, types.EventTypePacketResolved))
	s.Require().False(ibctesting.ContainsEvent(events, types.EventTypeDistributeFee))

	s.Require().Equal(payerBalance, s.balanceOf(contract))
	s.Require().Equal(relayerBalance, s.balanceOf(s.chainA.RelayerAccount))
	s.Require().Len(s.chainA.App.ContractKeeper.SudoCalls, 1)
	s.Require().Empty(s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext()))

	record, _ := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), types.PacketIDFromPacket(packet))
	s.Require().Equal(types.PacketStatusAckSuccess, record.Status)
}

func (s *KeeperTestSuite) TestMalformedAcknowledgement() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)

	_, err = s.path.EndpointB.RecvPacket(packet)
	s.Require().NoError(err)

	events, err := s.chainA.DeliverTx(func(ctx sdk.Context) error {
		if err := s.chainA.App.ChannelKeeper.AcknowledgePacket(ctx, packet); err != nil {
			return err
		}
		return s.chainA.App.IBCStack.OnAcknowledgementPacket(ctx, packet, []byte("not an acknowledgement"), s.chainA.RelayerAccount)
	})
	s.Require().NoError(err)

	status, found := ibctesting.GetEventAttribute(events, types.EventTypePacketResolved, types.AttributeKeyStatus)
	s.Require().True(found)
	s.Require().Equal(types.PacketStatusAckError.String(), status)

	// the transfer application refunds the tokens of an error acknowledgement
	s.Require().Equal(int64(50_000-2333), s.balanceOf(payer))

	failures := s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext())
	s.Require().Len(failures, 1)
	s.Require().Equal("ack", failures[0].AckType)
}

func (s *KeeperTestSuite) TestUntrackedPacketPassesThrough() {
	// a packet the fee keeper never saw leaving the chain
	packet := channeltypes.NewPacket(
		[]byte("not transfer data"), 99,
		s.path.EndpointA.ChannelConfig.PortID, s.path.EndpointA.ChannelID,
		s.path.EndpointB.ChannelConfig.PortID, s.path.EndpointB.ChannelID,
		clienttypes.ZeroHeight(), uint64(s.chainA.CurrentHeader.Time.UnixNano()),
	)

	ctx := s.chainA.GetContext()

	// errors of the underlying application are returned for untracked packets
	err := s.chainA.App.IBCStack.OnTimeoutPacket(ctx, packet, s.chainA.RelayerAccount)
	s.Require().Error(err)

	ack := channeltypes.NewResultAcknowledgement([]byte{1})
	err = s.chainA.App.IBCStack.OnAcknowledgementPacket(ctx, packet, ack.Acknowledgement(), s.chainA.RelayerAccount)
	s.Require().Error(err)

	s.Require().False(s.chainA.App.FeeKeeper.HasPacketRecord(ctx, types.PacketIDFromPacket(packet)))
	s.Require().Empty(s.chainA.App.FailuresKeeper.GetAllFailures(ctx))
}
