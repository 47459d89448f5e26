package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// WasmMetadataKey is the root memo key of a wasm hook
const WasmMetadataKey = "wasm"

// WasmMetadata is the contract call requested by a transfer memo
type WasmMetadata struct {
	Contract string          `json:"contract"`
	Msg      json.RawMessage `json:"msg"`
}

// GetWasmMetadataFromMemo decodes a transfer memo. The boolean is true when the memo
// requests a wasm hook, even if the request is malformed.
func GetWasmMetadataFromMemo(memo string) (WasmMetadata, bool, error) {
	if memo == "" {
		return WasmMetadata{}, false, nil
	}

	var memoMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(memo), &memoMap); err != nil {
		return WasmMetadata{}, false, nil
	}

	raw, ok := memoMap[WasmMetadataKey]
	if !ok {
		return WasmMetadata{}, false, nil
	}

	var metadata WasmMetadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return WasmMetadata{}, true, sdkerrors.Wrapf(ErrInvalidWasmMetadata, "key %s is not an object: %s", WasmMetadataKey, err)
	}

	return metadata, true, nil
}

// Validate checks the contract address and that msg is a JSON object.
func (m WasmMetadata) Validate() error {
	if _, err := sdk.AccAddressFromBech32(m.Contract); err != nil {
		return sdkerrors.Wrapf(ErrInvalidWasmMetadata, "invalid contract address: %s", err)
	}

	var msg map[string]interface{}
	if err := json.Unmarshal(m.Msg, &msg); err != nil || msg == nil {
		return sdkerrors.Wrap(ErrInvalidWasmMetadata, "msg must be a json object")
	}

	return nil
}

// DeriveIntermediateSender returns the address a wasm hook is executed as, unique per
// channel and original sender.
func DeriveIntermediateSender(channelID, originalSender string) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/%s/%s", SenderPrefix, channelID, originalSender))
}
