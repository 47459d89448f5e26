package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	ibctransfertypes "github.com/cosmos/ibc-go/v2/modules/apps/transfer/types"
)

// query endpoints supported by the transfer legacy querier
const (
	QueryDenomTrace          = "denom_trace"
	QueryDenomTraces         = "denom_traces"
	QueryParameters          = "params"
	QueryEscrowAddress       = "escrow_address"
	QueryTotalEscrowForDenom = "total_escrow"
)

// QueryDenomTraceRequest is the request type for the Query/DenomTrace method
type QueryDenomTraceRequest struct {
	// hash (in hex format) or denom (full denom with ibc prefix) of the denomination trace information.
	Hash string `json:"hash" yaml:"hash"`
}

// QueryDenomTraceResponse is the response type for the Query/DenomTrace method
type QueryDenomTraceResponse struct {
	DenomTrace *ibctransfertypes.DenomTrace `json:"denom_trace" yaml:"denom_trace"`
}

// QueryDenomTracesRequest is the request type for the Query/DenomTraces method
type QueryDenomTracesRequest struct {
	Pagination *query.PageRequest `json:"pagination" yaml:"pagination"`
}

// QueryDenomTracesResponse is the response type for the Query/DenomTraces method
type QueryDenomTracesResponse struct {
	DenomTraces []ibctransfertypes.DenomTrace `json:"denom_traces" yaml:"denom_traces"`
	Pagination  *query.PageResponse           `json:"pagination" yaml:"pagination"`
}

// QueryParamsRequest is the request type for the Query/Params method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params method
type QueryParamsResponse struct {
	Params *Params `json:"params" yaml:"params"`
}

// QueryEscrowAddressRequest is the request type for the EscrowAddress method
type QueryEscrowAddressRequest struct {
	PortID    string `json:"port_id" yaml:"port_id"`
	ChannelID string `json:"channel_id" yaml:"channel_id"`
}

// QueryEscrowAddressResponse is the response type of the EscrowAddress method
type QueryEscrowAddressResponse struct {
	EscrowAddress string `json:"escrow_address" yaml:"escrow_address"`
}

// QueryTotalEscrowForDenomRequest is the request type for TotalEscrowForDenom method
type QueryTotalEscrowForDenomRequest struct {
	Denom string `json:"denom" yaml:"denom"`
}

// QueryTotalEscrowForDenomResponse is the response type for TotalEscrowForDenom method
type QueryTotalEscrowForDenomResponse struct {
	Amount sdk.Coin `json:"amount" yaml:"amount"`
}
