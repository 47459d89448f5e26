package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// GetQueryCmd returns the query commands for 29-fee
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "ibc-fee",
		Short:                      "IBC relayer incentivization query subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		GetCmdFeeConfig(),
		GetCmdIncentivizedPacket(),
		GetCmdIncentivizedPackets(),
		GetCmdPacketStatus(),
		GetCmdParams(),
		GetCmdDispatcherMode(),
	)

	return queryCmd
}

// NewTxCmd returns the transaction commands for 29-fee
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "ibc-fee",
		Short:                      "IBC relayer incentivization transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		NewSetFeesCmd(),
		NewUnsetFeesCmd(),
		NewSetDispatcherModeCmd(),
	)

	return txCmd
}

func queryRaw(clientCtx client.Context, endpoint string, req interface{}) error {
	bz, err := types.ModuleCdc.MarshalJSON(req)
	if err != nil {
		return err
	}

	res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint), bz)
	if err != nil {
		return err
	}

	return clientCtx.PrintBytes(res)
}
