package types

import (
	"github.com/cosmos/cosmos-sdk/types/query"
)

// query endpoints supported by the failure log legacy querier
const (
	QueryFailures = "failures"
	QueryFailure  = "failure"
)

// QueryFailuresRequest is the request type for the Query/Failures method.
// An empty Address lists the failures of every address.
type QueryFailuresRequest struct {
	Address    string             `json:"address" yaml:"address"`
	Pagination *query.PageRequest `json:"pagination" yaml:"pagination"`
}

// QueryFailuresResponse is the response type for the Query/Failures method
type QueryFailuresResponse struct {
	Failures   []Failure           `json:"failures" yaml:"failures"`
	Pagination *query.PageResponse `json:"pagination" yaml:"pagination"`
}

// QueryFailureRequest is the request type for the Query/Failure method
type QueryFailureRequest struct {
	ID uint64 `json:"id" yaml:"id"`
}

// QueryFailureResponse is the response type for the Query/Failure method
type QueryFailureResponse struct {
	Failure Failure `json:"failure" yaml:"failure"`
}
