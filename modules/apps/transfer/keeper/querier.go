package keeper

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/transfer/types"
)

// NewQuerier returns a legacy querier that serves the transfer queries over ABCI.
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
		case types.QueryDenomTrace:
			var params types.QueryDenomTraceRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.DenomTrace(goCtx, &params)

		case types.QueryDenomTraces:
			var params types.QueryDenomTracesRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.DenomTraces(goCtx, &params)

		case types.QueryParameters:
			res, err = k.Params(goCtx, &types.QueryParamsRequest{})

		case types.QueryEscrowAddress:
			var params types.QueryEscrowAddressRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.EscrowAddress(goCtx, &params)

		case types.QueryTotalEscrowForDenom:
			var params types.QueryTotalEscrowForDenomRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.TotalEscrowForDenom(goCtx, &params)

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}

		if err != nil {
			return nil, err
		}

		return codec.MarshalJSONIndent(legacyQuerierCdc, res)
	}
}
