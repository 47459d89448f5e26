package ibchooks_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v2/modules/core/04-channel/types"

	"github.com/ibc-apps/fee-escrow/modules/apps/ibc-hooks/types"
	transfertypes "github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
	ibctesting "github.com/ibc-apps/fee-escrow/testing"
	"github.com/ibc-apps/fee-escrow/testing/mock"
)

const transferAmount = 1000

type HooksTestSuite struct {
	suite.Suite

	coordinator *ibctesting.Coordinator

	chainA *ibctesting.TestChain
	chainB *ibctesting.TestChain

	path *ibctesting.Path
}

func (s *HooksTestSuite) SetupTest() {
	s.coordinator = ibctesting.NewCoordinator(s.T(), 2)
	s.chainA = s.coordinator.GetChain(ibctesting.GetChainID(1))
	s.chainB = s.coordinator.GetChain(ibctesting.GetChainID(2))

	s.path = ibctesting.NewTransferPath(s.chainA, s.chainB)
	s.coordinator.Setup(s.path)
}

func TestHooksTestSuite(t *testing.T) {
	suite.Run(t, new(HooksTestSuite))
}

func wasmMemo(contract, msg string) string {
	return fmt.Sprintf(`{"wasm":{"contract":%q,"msg":%s}}`, contract, msg)
}

// relay sends stake from chainA to receiver and relays it, returning the acknowledgement
// and the events emitted on chainB
func (s *HooksTestSuite) relay(receiver, memo string) (channeltypes.Packet, channeltypes.Acknowledgement, []string) {
	msg := s.path.EndpointA.NewMsgTransfer(sdk.NewInt64Coin(sdk.DefaultBondDenom, transferAmount), s.chainA.SenderAccount, receiver, memo)

	packet, err := s.chainA.SendTransfer(msg)
	s.Require().NoError(err)

	ackBz, events, err := s.path.RelayPacketWithResults(packet)
	s.Require().NoError(err)

	var ack channeltypes.Acknowledgement
	s.Require().NoError(channeltypes.SubModuleCdc.UnmarshalJSON(ackBz, &ack))

	var hookResults []string
	for _, event := range events {
		if event.Type != types.EventTypeWasmHook {
			continue
		}

		for _, attr := range event.Attributes {
			if string(attr.Key) == types.AttributeKeySuccess {
				hookResults = append(hookResults, string(attr.Value))
			}
		}
	}

	return packet, ack, hookResults
}

func (s *HooksTestSuite) voucherDenom(packet channeltypes.Packet) string {
	return transfertypes.ReceivedDenom(packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetDestPort(), packet.GetDestChannel(), sdk.DefaultBondDenom)
}

func (s *HooksTestSuite) TestWasmHookExecutes() {
	contract := ibctesting.GenerateAddress()
	s.chainB.App.ContractKeeper.RegisterContract(contract, mock.ContractSucceeds)

	packet, ack, hookResults := s.relay(contract.String(), wasmMemo(contract.String(), `{"deposit":{}}`))
	s.Require().True(ack.Success())
	s.Require().Equal([]string{"true"}, hookResults)

	voucher := s.voucherDenom(packet)
	s.Require().Equal(int64(transferAmount), s.chainB.GetBalance(contract, voucher).Amount.Int64())
	s.Require().Equal(uint64(1), s.chainB.App.ContractKeeper.CallCount(s.chainB.GetContext(), contract))

	calls := s.chainB.App.ContractKeeper.ExecuteCalls
	s.Require().Len(calls, 1)
	s.Require().Equal(contract.String(), calls[0].Contract)
	s.Require().JSONEq(`{"deposit":{}}`, string(calls[0].Msg))
	s.Require().True(calls[0].Funds.IsEqual(sdk.NewCoins(sdk.NewInt64Coin(voucher, transferAmount))))

	caller := types.DeriveIntermediateSender(packet.GetDestChannel(), s.chainA.SenderAccount.String())
	s.Require().Equal(caller.String(), calls[0].Caller)
}

func (s *HooksTestSuite) TestWasmHookFailureRevertsReceive() {
	testCases := []struct {
		name      string
		behaviour mock.ContractBehaviour
		register  bool
		memo      func(contract sdk.AccAddress) string
		hookRan   bool
	}{
		{
			"contract returns an error",
			mock.ContractErrors,
			true,
			func(contract sdk.AccAddress) string { return wasmMemo(contract.String(), `{"deposit":{}}`) },
			true,
		},
		{
			"contract is not registered",
			mock.ContractSucceeds,
			false,
			func(contract sdk.AccAddress) string { return wasmMemo(contract.String(), `{"deposit":{}}`) },
			true,
		},
		{
			"receiver is not the contract",
			mock.ContractSucceeds,
			true,
			func(_ sdk.AccAddress) string {
				return wasmMemo(ibctesting.GenerateAddress().String(), `{"deposit":{}}`)
			},
			false,
		},
		{
			"msg is not an object",
			mock.ContractSucceeds,
			true,
			func(contract sdk.AccAddress) string { return wasmMemo(contract.String(), `"deposit"`) },
			false,
		},
		{
			"wasm is not an object",
			mock.ContractSucceeds,
			true,
			func(_ sdk.AccAddress) string { return `{"wasm":"contract"}` },
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		s.Run(tc.name, func() {
			s.SetupTest()

			contract := ibctesting.GenerateAddress()
			if tc.register {
				s.chainB.App.ContractKeeper.RegisterContract(contract, tc.behaviour)
			}

			before := s.chainA.GetBalance(s.chainA.SenderAccount, sdk.DefaultBondDenom).Amount.Int64()

			packet, ack, hookResults := s.relay(contract.String(), tc.memo(contract))
			s.Require().False(ack.Success())

			if tc.hookRan {
				s.Require().Equal([]string{"false"}, hookResults)
				s.Require().Contains(ack.GetError(), types.ErrWasmExecution.Error())
			} else {
				s.Require().Empty(hookResults)
			}

			// the receive is discarded together with the call
			s.Require().True(s.chainB.GetBalance(contract, s.voucherDenom(packet)).IsZero())
			s.Require().Zero(s.chainB.App.ContractKeeper.CallCount(s.chainB.GetContext(), contract))
			s.Require().Empty(s.chainB.App.ContractKeeper.ExecuteCalls)

			// and the sender is refunded by the error acknowledgement
			s.Require().Equal(before, s.chainA.GetBalance(s.chainA.SenderAccount, sdk.DefaultBondDenom).Amount.Int64())
		})
	}
}

func (s *HooksTestSuite) TestMemoWithoutHookPassesThrough() {
	receiver := ibctesting.GenerateAddress()

	packet, ack, hookResults := s.relay(receiver.String(), `{"note":"hello"}`)
	s.Require().True(ack.Success())
	s.Require().Empty(hookResults)
	s.Require().Equal(int64(transferAmount), s.chainB.GetBalance(receiver, s.voucherDenom(packet)).Amount.Int64())
}
