package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// GetCmdFeeConfig returns the fee configuration of a payer
func GetCmdFeeConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fees [payer]",
		Short:   "Query the fee configuration of a payer",
		Long:    "Query the denomination and the ack, recv and timeout fees a payer attaches to its outbound packets.",
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("%s query ibc-fee fees cosmos1...", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			return queryRaw(clientCtx, types.QueryFeeConfig, &types.QueryFeeConfigRequest{Payer: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdIncentivizedPacket returns the unrelayed incentivized packet for a given packetID
func GetCmdIncentivizedPacket() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packet [port-id] [channel-id] [sequence]",
		Short:   "Query for an unrelayed incentivized packet by port-id, channel-id and packet sequence.",
		Long:    "Query for an unrelayed incentivized packet by port-id, channel-id and packet sequence.",
		Args:    cobra.ExactArgs(3),
		Example: fmt.Sprintf("%s query ibc-fee packet transfer channel-0 1", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			packetID, err := parsePacketID(args)
			if err != nil {
				return err
			}

			return queryRaw(clientCtx, types.QueryIncentivizedPacket, &types.QueryIncentivizedPacketRequest{PacketID: packetID})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdIncentivizedPackets returns all of the unrelayed incentivized packets
func GetCmdIncentivizedPackets() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packets",
		Short:   "Query for all of the unrelayed incentivized packets and associated fees across all channels.",
		Long:    "Query for all of the unrelayed incentivized packets and associated fees across all channels.",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query ibc-fee packets", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			return queryRaw(clientCtx, types.QueryIncentivizedPackets, &types.QueryIncentivizedPacketsRequest{Pagination: pageReq})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "packets")

	return cmd
}

// GetCmdPacketStatus returns the lifecycle status of an outbound packet
func GetCmdPacketStatus() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packet-status [port-id] [channel-id] [sequence]",
		Short:   "Query the lifecycle status of an outbound packet",
		Long:    "Query whether an outbound packet is pending, acknowledged with a result or an error, or timed out.",
		Args:    cobra.ExactArgs(3),
		Example: fmt.Sprintf("%s query ibc-fee packet-status transfer channel-0 1", version.AppName),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			packetID, err := parsePacketID(args)
			if err != nil {
				return err
			}

			return queryRaw(clientCtx, types.QueryPacketStatus, &types.QueryPacketStatusRequest{PacketID: packetID})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdParams returns the fee middleware parameters
func GetCmdParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Query the current ibc-fee parameters",
		Long:    "Query the current ibc-fee parameters",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query ibc-fee params", version.AppName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			return queryRaw(clientCtx, types.QueryParameters, &types.QueryParamsRequest{})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdDispatcherMode returns the current outcome dispatcher mode
func GetCmdDispatcherMode() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dispatcher-mode",
		Short:   "Query whether sudo callbacks are dispatched normally or forced to fail",
		Long:    "Query whether sudo callbacks are dispatched normally or forced to fail",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query ibc-fee dispatcher-mode", version.AppName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			return queryRaw(clientCtx, types.QueryDispatcherMode, &types.QueryDispatcherModeRequest{})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

func parsePacketID(args []string) (types.PacketID, error) {
	seq, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return types.PacketID{}, err
	}

	packetID := types.NewPacketID(args[0], args[1], seq)
	if err := packetID.Validate(); err != nil {
		return types.PacketID{}, err
	}

	return packetID, nil
}
