package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

const (
	flagRecvFee    = "recv-fee"
	flagAckFee     = "ack-fee"
	flagTimeoutFee = "timeout-fee"
)

// NewSetFeesCmd returns the command to create a MsgSetFees
func NewSetFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set-fees [denom]",
		Short:   "Set the fees attached to every packet sent by the signer",
		Long:    strings.TrimSpace(`Set the fee configuration of the signer. Every transfer it sends afterwards escrows the ack, recv and timeout fees in the given denomination.`),
		Example: fmt.Sprintf("%s tx ibc-fee set-fees stake --ack-fee 2333 --timeout-fee 2666", version.AppName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var fees []sdk.Int
			for _, flag := range []string{flagAckFee, flagRecvFee, flagTimeoutFee} {
				fee, err := parseFeeFlag(cmd, flag)
				if err != nil {
					return err
				}

				fees = append(fees, fee)
			}

			msg := types.NewMsgSetFees(clientCtx.GetFromAddress().String(), args[0], fees[0], fees[1], fees[2])

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagRecvFee, "0", "Fee paid to a relayer for relaying a packet receive.")
	cmd.Flags().String(flagAckFee, "0", "Fee paid to a relayer for relaying a packet acknowledgement.")
	cmd.Flags().String(flagTimeoutFee, "0", "Fee paid to a relayer for relaying a packet timeout.")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewUnsetFeesCmd returns the command to create a MsgUnsetFees
func NewUnsetFeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unset-fees",
		Short:   "Stop attaching fees to packets sent by the signer",
		Long:    strings.TrimSpace(`Remove the fee configuration of the signer. Fees already escrowed for in-flight packets are still paid out.`),
		Example: fmt.Sprintf("%s tx ibc-fee unset-fees", version.AppName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgUnsetFees(clientCtx.GetFromAddress().String())

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewSetDispatcherModeCmd returns the command to create a MsgSetDispatcherMode
func NewSetDispatcherModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set-dispatcher-mode [normal|always_fault]",
		Short:   "Switch callback fault injection on or off",
		Long:    strings.TrimSpace(`Switch the outcome dispatcher mode. In always_fault mode every sudo callback fails and is recorded in the failure log. Only the module authority may sign this message.`),
		Example: fmt.Sprintf("%s tx ibc-fee set-dispatcher-mode always_fault", version.AppName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			mode, err := types.ParseDispatcherMode(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgSetDispatcherMode(clientCtx.GetFromAddress().String(), mode)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func parseFeeFlag(cmd *cobra.Command, flag string) (sdk.Int, error) {
	value, err := cmd.Flags().GetString(flag)
	if err != nil {
		return sdk.Int{}, err
	}

	fee, ok := sdk.NewIntFromString(value)
	if !ok {
		return sdk.Int{}, sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "invalid --%s amount %q", flag, value)
	}

	return fee, nil
}
