package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
)

// GetQueryCmd returns the query commands for the failure log
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "failures",
		Short:                      "Querying commands for the packet failure log",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdFailures(),
		GetCmdFailure(),
	)

	return queryCmd
}

// NewTxCmd returns the transaction commands for the failures module
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "failures",
		Short:                      "Transaction commands for the packet failure log",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(NewResetFailuresCmd())

	return txCmd
}
