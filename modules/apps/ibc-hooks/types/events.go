package types

// ibc hooks events
const (
	EventTypeWasmHook = "ibc_wasm_hook"

	AttributeKeyContract = "contract"
	AttributeKeyCaller   = "caller"
	AttributeKeySuccess  = "success"
	AttributeKeyError    = "error"
)
