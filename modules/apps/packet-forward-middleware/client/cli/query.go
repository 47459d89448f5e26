package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
)

// GetQueryCmd returns the query commands for the packet forward middleware
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "packetforward",
		Short:                      "Querying commands for the packet forward middleware",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdForwardedPacket(),
		GetCmdForwardedPackets(),
	)

	return queryCmd
}

// GetCmdForwardedPacket returns the command to query the forward record of an inbound packet
func GetCmdForwardedPacket() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forwarded [port-id] [channel-id] [sequence]",
		Short:   "Query where an inbound transfer packet was forwarded to",
		Long:    "Query where an inbound transfer packet was forwarded to, given its destination port, channel and sequence on this chain.",
		Args:    cobra.ExactArgs(3),
		Example: fmt.Sprintf("%s query packetforward forwarded transfer channel-0 1", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			seq, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(&types.QueryForwardedPacketRequest{
				PortID:    args[0],
				ChannelID: args[1],
				Sequence:  seq,
			})
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryForwardedPacket), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdForwardedPackets returns the command to list all forwarded packets
func GetCmdForwardedPackets() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "forwarded-packets",
		Short:   "Query all forwarded packets",
		Long:    "Query all forwarded packets",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query packetforward forwarded-packets", version.AppName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(&types.QueryForwardedPacketsRequest{Pagination: pageReq})
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryForwardedPackets), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "forwarded packets")

	return cmd
}
