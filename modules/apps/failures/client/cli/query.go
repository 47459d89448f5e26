package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// GetCmdFailures returns the command to list recorded packet failures
func GetCmdFailures() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [address]",
		Short:   "Query the packet failures, optionally only those of an address",
		Long:    "Query the packet failures in ascending id order, optionally only those of an address.",
		Args:    cobra.MaximumNArgs(1),
		Example: fmt.Sprintf("%s query failures list cosmos1...", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			req := &types.QueryFailuresRequest{Pagination: pageReq}
			if len(args) == 1 {
				req.Address = args[0]
			}

			bz, err := types.ModuleCdc.MarshalJSON(req)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryFailures), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "failures")

	return cmd
}

// GetCmdFailure returns the command to query a single failure by id
func GetCmdFailure() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show [id]",
		Short:   "Query a packet failure by id",
		Long:    "Query a packet failure by id",
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("%s query failures show 0", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(&types.QueryFailureRequest{ID: id})
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryFailure), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}
