package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
	ibctesting "github.com/ibc-apps/fee-escrow/testing"
)

func (s *KeeperTestSuite) TestSetFees() {
	var msg *types.MsgSetFees

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
			"success: replaces an existing configuration",
			func() {
				feeConfig := types.NewFeeConfig(msg.Payer, "uatom", sdk.NewInt(1), sdk.NewInt(1), sdk.NewInt(1))
				s.chainA.App.FeeKeeper.SetFeeConfig(s.chainA.GetContext(), feeConfig)
			},
			true,
		},
		{
			"success: zero fees are accepted until a packet is sent",
			func() {
				msg.AckFee = sdk.ZeroInt()
				msg.TimeoutFee = sdk.ZeroInt()
			},
			true,
		},
		{
			"invalid payer",
			func() {
				msg.Payer = "invalid"
			},
			false,
		},
		{
			"invalid denom",
			func() {
				msg.Denom = "1"
			},
			false,
		},
		{
			"negative fee",
			func() {
				msg.RecvFee = sdk.NewInt(-1)
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset

			msg = types.NewMsgSetFees(s.chainA.SenderAccount.String(), sdk.DefaultBondDenom, sdk.NewInt(2333), sdk.ZeroInt(), sdk.NewInt(2666))

			tc.malleate()

			ctx := s.chainA.GetContext()
			_, err := s.chainA.App.FeeKeeper.SetFees(sdk.WrapSDKContext(ctx), msg)

			if tc.expPass {
				s.Require().NoError(err)

				feeConfig, found := s.chainA.App.FeeKeeper.GetFeeConfig(ctx, msg.Payer)
				s.Require().True(found)
				s.Require().Equal(msg.Denom, feeConfig.Denom)
				s.Require().True(msg.AckFee.Equal(feeConfig.AckFee))
				s.Require().True(msg.TimeoutFee.Equal(feeConfig.TimeoutFee))
			} else {
				s.Require().Error(err)
				s.Require().False(s.chainA.App.FeeKeeper.HasFeeConfig(ctx, s.chainA.SenderAccount.String()))
			}
		})
	}
}

func (s *KeeperTestSuite) TestUnsetFees() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	// in-flight fees are not affected by removing the configuration
	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)

	ctx := s.chainA.GetContext()
	_, err = s.chainA.App.FeeKeeper.UnsetFees(sdk.WrapSDKContext(ctx), types.NewMsgUnsetFees(payer.String()))
	s.Require().NoError(err)
	s.Require().False(s.chainA.App.FeeKeeper.HasFeeConfig(ctx, payer.String()))

	_, err = s.chainA.App.FeeKeeper.UnsetFees(sdk.WrapSDKContext(ctx), types.NewMsgUnsetFees(payer.String()))
	s.Require().ErrorIs(err, types.ErrFeeConfigNotFound)

	s.Require().NoError(s.path.RelayPacket(packet))
	s.Require().Equal(int64(2333), s.balanceOf(s.chainA.RelayerAccount))

	// subsequent packets carry no fee
	packet, err = s.sendTransfer(payer, 1000)
	s.Require().NoError(err)
	s.Require().False(s.chainA.App.FeeKeeper.HasFeeInEscrow(s.chainA.GetContext(), types.PacketIDFromPacket(packet)))
}

func (s *KeeperTestSuite) TestSetDispatcherMode() {
	var msg *types.MsgSetDispatcherMode

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"unauthorized",
			func() {
				msg.Authority = ibctesting.GenerateAddress().String()
			},
			sdkerrors.ErrUnauthorized,
		},
		{
			"unknown mode",
			func() {
				msg.Mode = types.DispatcherMode(7)
			},
			types.ErrInvalidDispatcherMode,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest() // reset

			msg = types.NewMsgSetDispatcherMode(s.chainA.App.FeeKeeper.GetAuthority(), types.DispatcherModeAlwaysFault)

			tc.malleate()

			ctx := s.chainA.GetContext()
			_, err := s.chainA.App.FeeKeeper.SetDispatcherMode(sdk.WrapSDKContext(ctx), msg)

			if tc.expErr == nil {
				s.Require().NoError(err)
				s.Require().Equal(types.DispatcherModeAlwaysFault, s.chainA.App.FeeKeeper.GetDispatcherMode(ctx))
			} else {
				s.Require().ErrorIs(err, tc.expErr)
				s.Require().Equal(types.DispatcherModeNormal, s.chainA.App.FeeKeeper.GetDispatcherMode(ctx))
			}
		})
	}
}
