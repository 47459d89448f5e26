package keeper

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ibc-apps/fee-escrow/modules/apps/packet-forward-middleware/types"
)

// NewQuerier returns a legacy querier for the forwarded packet records.
func NewQuerier(k *Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
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
		case types.QueryForwardedPacket:
			var params types.QueryForwardedPacketRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.ForwardedPacket(goCtx, &params)

		case types.QueryForwardedPackets:
			var params types.QueryForwardedPacketsRequest
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.ForwardedPackets(goCtx, &params)

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}

		if err != nil {
			return nil, err
		}

		return codec.MarshalJSONIndent(legacyQuerierCdc, res)
	}
}
