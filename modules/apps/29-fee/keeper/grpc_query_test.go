package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	ibctesting "github.com/ibc-apps/fee-escrow/testing"
)

func (s *KeeperTestSuite) TestQueryFeeConfig() {
	var req *types.QueryFeeConfigRequest

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {
				feeConfig := types.NewFeeConfig(s.chainA.SenderAccount.String(), sdk.DefaultBondDenom, sdk.NewInt(2333), sdk.ZeroInt(), sdk.NewInt(2666))
				s.chainA.App.FeeKeeper.SetFeeConfig(s.chainA.GetContext(), feeConfig)
			},
			true,
		},
		{
			"fee config not found",
			func() {},
			false,
		},
		{
			"invalid payer",
			func() {
				req.Payer = "invalid"
			},
			false,
		},
		{
			"nil request",
			func() {
				req = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset

			req = &types.QueryFeeConfigRequest{Payer: s.chainA.SenderAccount.String()}

			tc.malleate() // malleate mutates test data

			ctx := sdk.WrapSDKContext(s.chainA.GetContext())
			res, err := s.chainA.App.FeeKeeper.FeeConfig(ctx, req)

			if tc.expPass {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(s.chainA.SenderAccount.String(), res.FeeConfig.Payer)
				s.Require().Equal(int64(2333), res.FeeConfig.AckFee.Int64())
			} else {
				s.Require().Error(err)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryIncentivizedPackets() {
	var (
		req             *types.QueryIncentivizedPacketsRequest
		expectedPackets []types.PacketID
	)

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {
				fee := types.NewFee(defaultRecvFee, defaultAckFee, defaultTimeoutFee)

				for i := 0; i < 3; i++ {
					// escrow packet fees for three different packets
					packetID := types.NewPacketID(ibctesting.TransferPort, s.path.EndpointA.ChannelID, uint64(i+1))
					s.chainA.App.FeeKeeper.SetFeeInEscrow(s.chainA.GetContext(), types.NewPacketFee(packetID, s.chainA.SenderAccount.String(), fee))

					expectedPackets = append(expectedPackets, packetID)
				}

				req = &types.QueryIncentivizedPacketsRequest{
					Pagination: &query.PageRequest{
						Limit:      5,
						CountTotal: false,
					},
				}
			},
			true,
		},
		{
			"empty pagination",
			func() {
				expectedPackets = nil
				req = &types.QueryIncentivizedPacketsRequest{}
			},
			true,
		},
		{
			"nil request",
			func() {
				req = nil
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset
			expectedPackets = nil

			tc.malleate() // malleate mutates test data

			ctx := sdk.WrapSDKContext(s.chainA.GetContext())
			res, err := s.chainA.App.FeeKeeper.IncentivizedPackets(ctx, req)

			if tc.expPass {
				s.Require().NoError(err)
				s.Require().NotNil(res)

				var packetIDs []types.PacketID
				for _, packetFee := range res.IncentivizedPackets {
					packetIDs = append(packetIDs, packetFee.PacketID)
				}
				s.Require().Equal(expectedPackets, packetIDs)
			} else {
				s.Require().Error(err)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryIncentivizedPacket() {
	var req *types.QueryIncentivizedPacketRequest

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success",
			func() {},
			true,
		},
		{
			"fee not found",
			func() {
				req.PacketID.Sequence = 100
			},
			false,
		},
		{
			"invalid channel identifier",
			func() {
				req.PacketID.ChannelID = "#"
			},
			false,
		},
		{
			"zero sequence",
			func() {
				req.PacketID.Sequence = 0
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset

			payer := s.newPayer(50_000)
			s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

			packet, err := s.sendTransfer(payer, 1000)
			s.Require().NoError(err)

			req = &types.QueryIncentivizedPacketRequest{PacketID: types.PacketIDFromPacket(packet)}

			tc.malleate() // malleate mutates test data

			ctx := sdk.WrapSDKContext(s.chainA.GetContext())
			res, err := s.chainA.App.FeeKeeper.IncentivizedPacket(ctx, req)

			if tc.expPass {
				s.Require().NoError(err)
				s.Require().NotNil(res)
				s.Require().Equal(payer.String(), res.IncentivizedPacket.Payer)
				s.Require().True(res.IncentivizedPacket.Fee.Total().IsEqual(sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 2333+2666))))
			} else {
				s.Require().Error(err)
			}
		})
	}
}

func (s *KeeperTestSuite) TestQueryPacketStatus() {
	payer := s.newPayer(50_000)

	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)

	req := &types.QueryPacketStatusRequest{PacketID: types.PacketIDFromPacket(packet)}

	res, err := s.chainA.App.FeeKeeper.PacketStatus(sdk.WrapSDKContext(s.chainA.GetContext()), req)
	s.Require().NoError(err)
	s.Require().Equal(types.PacketStatusPending, res.Record.Status)
	s.Require().Equal(payer.String(), res.Record.Sender)

	s.Require().NoError(s.path.RelayPacket(packet))

	res, err = s.chainA.App.FeeKeeper.PacketStatus(sdk.WrapSDKContext(s.chainA.GetContext()), req)
	s.Require().NoError(err)
	s.Require().Equal(types.PacketStatusAckSuccess, res.Record.Status)

	req.PacketID.Sequence++
	_, err = s.chainA.App.FeeKeeper.PacketStatus(sdk.WrapSDKContext(s.chainA.GetContext()), req)
	s.Require().Error(err)
}

func (s *KeeperTestSuite) TestQueryParamsAndDispatcherMode() {
	ctx := sdk.WrapSDKContext(s.chainA.GetContext())

	paramsRes, err := s.chainA.App.FeeKeeper.Params(ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultCallbackGasLimit, paramsRes.Params.CallbackGasLimit)

	modeRes, err := s.chainA.App.FeeKeeper.DispatcherMode(ctx, &types.QueryDispatcherModeRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.DispatcherModeNormal, modeRes.Mode)

	s.setDispatcherMode(types.DispatcherModeAlwaysFault)

	modeRes, err = s.chainA.App.FeeKeeper.DispatcherMode(sdk.WrapSDKContext(s.chainA.GetContext()), &types.QueryDispatcherModeRequest{})
	s.Require().NoError(err)
	s.Require().Equal(types.DispatcherModeAlwaysFault, modeRes.Mode)
}
