package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the failure log module name
	ModuleName = "failures"

	// StoreKey is the store key string for the failure log
	StoreKey = ModuleName

	// RouterKey is the message route for the failure log
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the failure log
	QuerierRoute = ModuleName

	// FailurePrefix is the key prefix for failure records ordered by id
	FailurePrefix = "failure/"

	// FailureIndexPrefix is the key prefix for the address index of failure records
	FailureIndexPrefix = "failureIndex/"

	// NextFailureIDKey is the key of the monotonic failure id counter
	NextFailureIDKey = "nextFailureId"
)

// KeyFailure returns the key of the failure record with the given id
func KeyFailure(id uint64) []byte {
	return append([]byte(FailurePrefix), sdk.Uint64ToBigEndian(id)...)
}

// KeyFailureIndexPrefix returns the prefix of the index entries of an address
func KeyFailureIndexPrefix(address string) []byte {
	return []byte(FailureIndexPrefix + address + "/")
}

// KeyFailureIndex returns the index key of a failure record owned by address
func KeyFailureIndex(address string, id uint64) []byte {
	return append(KeyFailureIndexPrefix(address), sdk.Uint64ToBigEndian(id)...)
}
