package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// NewResetFailuresCmd returns the command to create a MsgResetFailures
func NewResetFailuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reset [address]",
		Short:   "Remove the failures recorded for an address, or every failure when no address is given",
		Args:    cobra.MaximumNArgs(1),
		Example: fmt.Sprintf("%s tx failures reset cosmos1...", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var address string
			if len(args) == 1 {
				address = args[0]
			}

			msg := types.NewMsgResetFailures(clientCtx.GetFromAddress().String(), address)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}
