package keeper

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// NewQuerier returns a legacy querier that serves the fee middleware queries over ABCI.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		var (
			res interface{}
			err error
		)

		if len(path) == 0 {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "missing %s query endpoint", types.ModuleName)
		}

		goCtx := sdk.WrapSDKContext(ctx)

		switch path[0] {
		case types.QueryFeeConfig:
			var params types.QueryFeeConfigRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.FeeConfig(goCtx, &params)

		case types.QueryIncentivizedPacket:
			var params types.QueryIncentivizedPacketRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.IncentivizedPacket(goCtx, &params)

		case types.QueryIncentivizedPackets:
			var params types.QueryIncentivizedPacketsRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.IncentivizedPackets(goCtx, &params)

		case types.QueryPacketStatus:
			var params types.QueryPacketStatusRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.PacketStatus(goCtx, &params)

		case types.QueryParameters:
			res, err = k.Params(goCtx, &types.QueryParamsRequest{})

		case types.QueryDispatcherMode:
			res, err = k.DispatcherMode(goCtx, &types.QueryDispatcherModeRequest{})

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}

		if err != nil {
			return nil, err
		}

		return codec.MarshalJSONIndent(legacyQuerierCdc, res)
	}
}
