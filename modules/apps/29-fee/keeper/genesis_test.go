package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

func (s *KeeperTestSuite) TestExportImportGenesis() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	acked, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)
	s.Require().NoError(s.path.RelayPacket(acked))

	pending, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)

	s.setDispatcherMode(types.DispatcherModeAlwaysFault)

	genesisState := s.chainA.App.FeeKeeper.ExportGenesis(s.chainA.GetContext())
	s.Require().NoError(genesisState.Validate())

	s.Require().Len(genesisState.FeeConfigs, 1)
	s.Require().Len(genesisState.PacketRecords, 2)
	s.Require().Len(genesisState.PacketFees, 1)
	s.Require().Equal(types.PacketIDFromPacket(pending), genesisState.PacketFees[0].PacketID)
	s.Require().Equal(types.DispatcherModeAlwaysFault, genesisState.DispatcherMode)

	// import the state into a fresh chain
	s.SetupTest()
	ctx := s.chainA.GetContext()
	s.chainA.App.FeeKeeper.InitGenesis(ctx, *genesisState)

	feeConfig, found := s.chainA.App.FeeKeeper.GetFeeConfig(ctx, payer.String())
	s.Require().True(found)
	s.Require().Equal(int64(2666), feeConfig.TimeoutFee.Int64())

	record, found := s.chainA.App.FeeKeeper.GetPacketRecord(ctx, types.PacketIDFromPacket(acked))
	s.Require().True(found)
	s.Require().Equal(types.PacketStatusAckSuccess, record.Status)

	record, found = s.chainA.App.FeeKeeper.GetPacketRecord(ctx, types.PacketIDFromPacket(pending))
	s.Require().True(found)
	s.Require().Equal(types.PacketStatusPending, record.Status)
	s.Require().True(s.chainA.App.FeeKeeper.HasFeeInEscrow(ctx, types.PacketIDFromPacket(pending)))

	s.Require().Equal(types.DispatcherModeAlwaysFault, s.chainA.App.FeeKeeper.GetDispatcherMode(ctx))
	s.Require().Equal(genesisState.Params.CallbackGasLimit, s.chainA.App.FeeKeeper.GetCallbackGasLimit(ctx))
}

func (s *KeeperTestSuite) TestInvariants() {
	payer := s.newPayer(50_000)
	s.setFees(payer, sdk.DefaultBondDenom, 2333, 0, 2666)

	packet, err := s.sendTransfer(payer, 1000)
	s.Require().NoError(err)
	s.Require().NoError(s.chainA.App.AssertInvariants(s.chainA.GetContext()))

	packetID := types.PacketIDFromPacket(packet)

	s.Run("escrow without a pending record", func() {
		ctx, _ := s.chainA.GetContext().CacheContext()
		record, _ := s.chainA.App.FeeKeeper.GetPacketRecord(ctx, packetID)
		record.Status = types.PacketStatusAckSuccess
		s.chainA.App.FeeKeeper.SetPacketRecord(ctx, record)

		s.Require().Error(s.chainA.App.AssertInvariants(ctx))
	})

	s.Run("escrow not backed by the module account", func() {
		ctx, _ := s.chainA.GetContext().CacheContext()
		packetFee, _ := s.chainA.App.FeeKeeper.GetFeeInEscrow(ctx, packetID)
		packetFee.Fee.AckFee = packetFee.Fee.AckFee.Add(sdk.NewInt64Coin(sdk.DefaultBondDenom, 1))
		s.chainA.App.FeeKeeper.SetFeeInEscrow(ctx, packetFee)

		s.Require().Error(s.chainA.App.AssertInvariants(ctx))
	})
}
