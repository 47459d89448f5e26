package keeper

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// NewQuerier returns a legacy querier that serves the failure log over ABCI.
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
		case types.QueryFailures:
			var params types.QueryFailuresRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.Failures(goCtx, &params)

		case types.QueryFailure:
			var params types.QueryFailureRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.Failure(goCtx, &params)

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}

		if err != nil {
			return nil, err
		}

		return codec.MarshalJSONIndent(legacyQuerierCdc, res)
	}
}
