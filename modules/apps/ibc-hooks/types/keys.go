package types

const (
	// ModuleName defines the ibc hooks middleware name
	ModuleName = "ibchooks"

	// SenderPrefix is the prefix of the derived caller address of a wasm hook
	SenderPrefix = "ibc-wasm-hook-intermediary"
)
