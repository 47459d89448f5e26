package rest

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/cosmos/cosmos-sdk/types/rest"

	"github.com/ibc-apps/fee-escrow/modules/apps/failures/types"
)

// RestAddress is the path variable holding the failure owner
const RestAddress = "address"

// RegisterRoutes registers the failure log REST routes on the router
func RegisterRoutes(clientCtx client.Context, rtr *mux.Router) {
	rtr.HandleFunc("/failures", failuresHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc(fmt.Sprintf("/failures/{%s}", RestAddress), failuresHandlerFn(clientCtx)).Methods("GET")
}

func failuresHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, page, limit, err := rest.ParseHTTPArgsWithLimit(r, 0)
		if rest.CheckBadRequestError(w, err) {
			return
		}

		clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
		if !ok {
			return
		}

		req := types.QueryFailuresRequest{
			Address: mux.Vars(r)[RestAddress],
		}
		if limit > 0 {
			req.Pagination = &query.PageRequest{
				Offset: uint64((page - 1) * limit),
				Limit:  uint64(limit),
			}
		}

		bz, err := types.ModuleCdc.MarshalJSON(req)
		if rest.CheckBadRequestError(w, err) {
			return
		}

		res, height, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryFailures), bz)
		if rest.CheckInternalServerError(w, err) {
			return
		}

		clientCtx = clientCtx.WithHeight(height)
		rest.PostProcessResponse(w, clientCtx, res)
	}
}
