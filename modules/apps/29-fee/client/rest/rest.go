package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/cosmos/cosmos-sdk/types/rest"

	"github.com/ibc-apps/fee-escrow/modules/apps/29-fee/types"
)

// path variables of the fee middleware REST routes
const (
	RestPayer     = "payer"
	RestPortID    = "port-id"
	RestChannelID = "channel-id"
	RestSequence  = "sequence"
)

// RegisterRoutes registers the fee middleware REST routes on the router
func RegisterRoutes(clientCtx client.Context, rtr *mux.Router) {
	packetPath := fmt.Sprintf("{%s}/{%s}/{%s}", RestPortID, RestChannelID, RestSequence)

	rtr.HandleFunc(fmt.Sprintf("/ibc-fee/fees/{%s}", RestPayer), feeConfigHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/ibc-fee/packets", incentivizedPacketsHandlerFn(clientCtx)).Methods("GET")
	rtr.HandleFunc("/ibc-fee/packets/"+packetPath, packetHandlerFn(clientCtx, types.QueryIncentivizedPacket)).Methods("GET")
	rtr.HandleFunc("/ibc-fee/status/"+packetPath, packetHandlerFn(clientCtx, types.QueryPacketStatus)).Methods("GET")
	rtr.HandleFunc("/ibc-fee/params", emptyRequestHandlerFn(clientCtx, types.QueryParameters)).Methods("GET")
	rtr.HandleFunc("/ibc-fee/dispatcher-mode", emptyRequestHandlerFn(clientCtx, types.QueryDispatcherMode)).Methods("GET")
}

func feeConfigHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queryAndRespond(w, r, clientCtx, types.QueryFeeConfig, types.QueryFeeConfigRequest{Payer: mux.Vars(r)[RestPayer]})
	}
}

func incentivizedPacketsHandlerFn(clientCtx client.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, page, limit, err := rest.ParseHTTPArgsWithLimit(r, 0)
		if rest.CheckBadRequestError(w, err) {
			return
		}

		var req types.QueryIncentivizedPacketsRequest
		if limit > 0 {
			req.Pagination = &query.PageRequest{
				Offset: uint64((page - 1) * limit),
				Limit:  uint64(limit),
			}
		}

		queryAndRespond(w, r, clientCtx, types.QueryIncentivizedPackets, req)
	}
}

// packetHandlerFn serves the queries keyed by a packet identifier
func packetHandlerFn(clientCtx client.Context, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		seq, err := strconv.ParseUint(vars[RestSequence], 10, 64)
		if rest.CheckBadRequestError(w, err) {
			return
		}

		packetID := types.NewPacketID(vars[RestPortID], vars[RestChannelID], seq)
		if rest.CheckBadRequestError(w, packetID.Validate()) {
			return
		}

		var req interface{} = types.QueryIncentivizedPacketRequest{PacketID: packetID}
		if endpoint == types.QueryPacketStatus {
			req = types.QueryPacketStatusRequest{PacketID: packetID}
		}

		queryAndRespond(w, r, clientCtx, endpoint, req)
	}
}

func emptyRequestHandlerFn(clientCtx client.Context, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queryAndRespond(w, r, clientCtx, endpoint, struct{}{})
	}
}

func queryAndRespond(w http.ResponseWriter, r *http.Request, clientCtx client.Context, endpoint string, req interface{}) {
	clientCtx, ok := rest.ParseQueryHeightOrReturnBadRequest(w, clientCtx, r)
	if !ok {
		return
	}

	bz, err := types.ModuleCdc.MarshalJSON(req)
	if rest.CheckBadRequestError(w, err) {
		return
	}

	res, height, err := clientCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", types.QuerierRoute, endpoint), bz)
	if rest.CheckInternalServerError(w, err) {
		return
	}

	clientCtx = clientCtx.WithHeight(height)
	rest.PostProcessResponse(w, clientCtx, res)
}
