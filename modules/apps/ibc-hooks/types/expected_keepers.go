package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ContractKeeper defines the contract runtime wasm hooks are executed against
type ContractKeeper interface {
	Execute(ctx sdk.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)
}
