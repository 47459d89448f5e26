package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// ibcAtomDenom is the voucher denom of uatom received over transfer/channel-0
const ibcAtomDenom = "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"

func (s *KeeperTestSuite) TestIncentivizedTransfers() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	var packets []channeltypes.Packet
	for _, amount := range []int64{1000, 2000} {
		packet, err := s.sendTransfer(payer, amount)
		s.Require().NoError(err)
		packets = append(packets, packet)
	}

	// both fees are held in escrow until the packets resolve
	s.Require().Equal(int64(50_000-3000-2*(2333+2666)), s.balanceOf(payer))
	s.Require().True(s.chainA.App.FeeKeeper.EscrowAccountHasBalance(s.chainA.GetContext(), sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 2*(2333+2666)))))

	for _, packet := range packets {
		packetID := types.PacketIDFromPacket(packet)
		record, found := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), packetID)
		s.Require().True(found)
		s.Require().Equal(types.PacketStatusPending, record.Status)
		s.Require().True(s.chainA.App.FeeKeeper.HasFeeInEscrow(s.chainA.GetContext(), packetID))

		s.Require().NoError(s.path.RelayPacket(packet))
	}

	s.Require().Equal(int64(50_000-3000-2*2333), s.balanceOf(payer))
	s.Require().Equal(int64(2*2333), s.balanceOf(s.chainA.RelayerAccount))
	s.Require().Zero(s.balanceOf(s.chainA.App.FeeKeeper.GetFeeModuleAddress()))

	for _, packet := range packets {
		packetID := types.PacketIDFromPacket(packet)
		record, found := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), packetID)
		s.Require().True(found)
		s.Require().Equal(types.PacketStatusAckSuccess, record.Status)
		s.Require().False(s.chainA.App.FeeKeeper.HasFeeInEscrow(s.chainA.GetContext(), packetID))
	}

	// successful acknowledgements are not failures
	s.Require().Empty(s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext()))
	s.Require().NoError(s.chainA.App.AssertInvariants(s.chainA.GetContext()))
}

func (s *KeeperTestSuite) TestReservePacketFeeRejected() {
	var payer sdk.AccAddress

	testCases := []struct {
		name     string
		malleate func()
		expErr   *sdkerrors.Error
	}{
		{
			"all fees are zero",
			func() {
				s.setFees(payer, sdk.DefaultBondDenom, 0, 0, 0)
			},
			sdkerrors.ErrInvalidCoins,
		},
		{
			"fee below the governance minimum",
			func() {
				minFee := types.NewFee(nil, sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1000)), sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1000)))
				s.chainA.App.FeeKeeper.SetParams(s.chainA.GetContext(), types.NewParams(minFee, types.DefaultCallbackGasLimit))

				s.setFees(payer, ibcAtomDenom, 1000, 0, 1000)
			},
			sdkerrors.ErrInsufficientFee,
		},
		{
			"payer cannot cover the fee",
			func() {
				s.setFees(payer, sdk.DefaultBondDenom, 100_000_000_000, 0, 100_000_000_000)
			},
			sdkerrors.ErrInsufficientFunds,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset

			payer = s.newPayer(50_000)
			tc.malleate()

			nextSeq, found := s.chainA.App.ChannelKeeper.GetNextSequenceSend(s.chainA.GetContext(), s.path.EndpointA.ChannelConfig.PortID, s.path.EndpointA.ChannelID)
			s.Require().True(found)

			_, err := s.sendTransfer(payer, 1000)
			s.Require().Error(err)
			s.Require().ErrorIs(err, tc.expErr)

			// nothing is debited and no packet is sent
			s.Require().Equal(int64(50_000), s.balanceOf(payer))
			s.Require().Empty(s.chainA.App.FeeKeeper.GetAllPacketFees(s.chainA.GetContext()))
			s.Require().Empty(s.chainA.App.FeeKeeper.GetAllPacketRecords(s.chainA.GetContext()))

			seq, _ := s.chainA.App.ChannelKeeper.GetNextSequenceSend(s.chainA.GetContext(), s.path.EndpointA.ChannelConfig.PortID, s.path.EndpointA.ChannelID)
			s.Require().Equal(nextSeq, seq)
		})
	}
}

func (s *KeeperTestSuite) TestErrorMessages() {
	payer := s.newPayer(50_000)

	s.setFees(payer, sdk.DefaultBondDenom, 0, 0, 0)
	_, err := s.sendTransfer(payer, 1000)
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "invalid coins")

	minFee := types.NewFee(nil, sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1000)), sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1000)))
	s.chainA.App.FeeKeeper.SetParams(s.chainA.GetContext(), types.NewParams(minFee, types.DefaultCallbackGasLimit))

	s.setFees(payer, ibcAtomDenom, 1000, 0, 1000)
	_, err = s.sendTransfer(payer, 1000)
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "insufficient fee")

	s.setFees(payer, sdk.DefaultBondDenom, 100_000_000_000, 0, 100_000_000_000)
	_, err = s.sendTransfer(payer, 1000)
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "insufficient funds")
}

func (s *KeeperTestSuite) TestUnincentivizedTransfer() {
	payer := s.newPayer(50_000)

	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)

	packetID := types.PacketIDFromPacket(packet)
	s.Require().False(s.chainA.App.FeeKeeper.HasFeeInEscrow(s.chainA.GetContext(), packetID))

	// the packet is tracked even without a fee
	record, found := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), packetID)
	s.Require().True(found)
	s.Require().Equal(types.PacketStatusPending, record.Status)

	s.Require().NoError(s.path.RelayPacket(packet))

	record, _ = s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), packetID)
	s.Require().Equal(types.PacketStatusAckSuccess, record.Status)
	s.Require().Equal(int64(49_000), s.balanceOf(payer))
	s.Require().Zero(s.balanceOf(s.chainA.RelayerAccount))
}

func (s *KeeperTestSuite) TestDistributeTimeoutFee() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 100, 2666)

	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)
	s.Require().Equal(int64(50_000-1000-(2333+100+2666)), s.balanceOf(payer))

	s.timeoutPacket(packet)

	// the transfer and the recv and ack fees are refunded
	s.Require().Equal(int64(50_000-2666), s.balanceOf(payer))
	s.Require().Equal(int64(2666), s.balanceOf(s.chainA.RelayerAccount))

	record, _ := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), types.PacketIDFromPacket(packet))
	s.Require().Equal(types.PacketStatusTimedOut, record.Status)
	s.Require().NoError(s.chainA.App.AssertInvariants(s.chainA.GetContext()))
}

func (s *KeeperTestSuite) TestDistributeAcknowledgementFeeOnErrorAck() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	// the receiver cannot be decoded on chainB which answers with an error acknowledgement
	msg := s.path.EndpointA.NewMsgTransfer(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1000), payer, "not-an-address", "")
	packet, err := s.chainA.SendTransfer(msg)
	s.Require().NoError(err)

	s.Require().NoError(s.path.RelayPacket(packet))

	// the ack fee is earned on error acknowledgements too, the transfer is refunded
	s.Require().Equal(int64(50_000-2333), s.balanceOf(payer))
	s.Require().Equal(int64(2333), s.balanceOf(s.chainA.RelayerAccount))

	record, _ := s.chainA.App.FeeKeeper.GetPacketRecord(s.chainA.GetContext(), types.PacketIDFromPacket(packet))
	s.Require().Equal(types.PacketStatusAckError, record.Status)

	failures := s.chainA.App.FailuresKeeper.GetAllFailures(s.chainA.GetContext())
	s.Require().Len(failures, 1)
	s.Require().Equal(payer.String(), failures[0].Address)
	s.Require().Equal("ack", failures[0].AckType)
	s.Require().Equal(packet.GetSequence(), failures[0].Packet.Sequence)
	s.Require().NotEmpty(failures[0].ErrorText)
}

func (s *KeeperTestSuite) TestDistributeFeeToBlockedRelayer() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)

	ack, err := s.path.EndpointB.RecvPacket(packet)
	s.Require().NoError(err)

	// module accounts are blocked from receiving funds, the ack fee goes back to the payer
	blocked := s.chainA.App.FeeKeeper.GetFeeModuleAddress()
	_, err = s.chainA.DeliverTx(func(ctx sdk.Context) error {
		if err := s.chainA.App.ChannelKeeper.AcknowledgePacket(ctx, packet); err != nil {
			return err
		}
		return s.chainA.App.IBCStack.OnAcknowledgementPacket(ctx, packet, ack, blocked)
	})
	s.Require().NoError(err)

	s.Require().Equal(int64(50_000-1000), s.balanceOf(payer))
	s.Require().Zero(s.balanceOf(blocked))
	s.Require().NoError(s.chainA.App.AssertInvariants(s.chainA.GetContext()))
}
