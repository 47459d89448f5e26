package mock

import (
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ContractBehaviour selects how a registered mock contract reacts to a call
type ContractBehaviour int

const (
	// ContractSucceeds handles every call without error
	ContractSucceeds ContractBehaviour = iota
	// ContractErrors returns an error from every call
	ContractErrors
	// ContractPanics panics on every call
	ContractPanics
	// ContractOutOfGas consumes more gas than the call is given
	ContractOutOfGas
)

// CallGasCost is the gas every contract call consumes before it runs
const CallGasCost uint64 = 10_000

// ErrMockContract is the error returned by contracts registered with ContractErrors
var ErrMockContract = errors.New("mock contract error")

// ContractCall is a call received by a mock contract
type ContractCall struct {
	Contract string
	Caller   string
	Msg      []byte
	Funds    sdk.Coins
}

// ContractKeeper is an in-memory contract runtime. Contracts are plain addresses with
// a behaviour, successful calls are recorded in order and write a marker in the store
// of the contract keeper so tests can see whether the call state was committed.
type ContractKeeper struct {
	storeKey  sdk.StoreKey
	contracts map[string]ContractBehaviour

	SudoCalls    []ContractCall
	ExecuteCalls []ContractCall
}

// NewContractKeeper creates a contract keeper without contracts
func NewContractKeeper(key sdk.StoreKey) *ContractKeeper {
	return &ContractKeeper{
		storeKey:  key,
		contracts: make(map[string]ContractBehaviour),
	}
}

// RegisterContract registers a contract address with the given behaviour
func (k *ContractKeeper) RegisterContract(contract sdk.AccAddress, behaviour ContractBehaviour) {
	k.contracts[contract.String()] = behaviour
}

// Reset clears the recorded calls
func (k *ContractKeeper) Reset() {
	k.SudoCalls = nil
	k.ExecuteCalls = nil
}

// HasContractInfo reports whether the address is a registered contract
func (k *ContractKeeper) HasContractInfo(_ sdk.Context, contractAddress sdk.AccAddress) bool {
	_, found := k.contracts[contractAddress.String()]
	return found
}

// Sudo runs the privileged entry point of a contract
func (k *ContractKeeper) Sudo(ctx sdk.Context, contractAddress sdk.AccAddress, msg []byte) ([]byte, error) {
	call := ContractCall{Contract: contractAddress.String(), Msg: msg}
	if err := k.call(ctx, call); err != nil {
		return nil, err
	}

	k.SudoCalls = append(k.SudoCalls, call)
	return []byte(`{}`), nil
}

// Execute runs a contract call on behalf of caller with funds already sent to the contract
func (k *ContractKeeper) Execute(ctx sdk.Context, contractAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error) {
	call := ContractCall{Contract: contractAddress.String(), Caller: caller.String(), Msg: msg, Funds: coins}
	if err := k.call(ctx, call); err != nil {
		return nil, err
	}

	k.ExecuteCalls = append(k.ExecuteCalls, call)
	return []byte(`{}`), nil
}

// CallCount returns how many calls of a contract were committed to state
func (k *ContractKeeper) CallCount(ctx sdk.Context, contractAddress sdk.AccAddress) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(contractAddress)
	if bz == nil {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

func (k *ContractKeeper) call(ctx sdk.Context, call ContractCall) error {
	behaviour, found := k.contracts[call.Contract]
	if !found {
		return fmt.Errorf("no such contract: %s", call.Contract)
	}

	ctx.GasMeter().ConsumeGas(CallGasCost, "mock contract call")

	if !json.Valid(call.Msg) {
		return fmt.Errorf("contract %s: msg is not valid json", call.Contract)
	}

	switch behaviour {
	case ContractErrors:
		return ErrMockContract
	case ContractPanics:
		panic(fmt.Sprintf("mock contract %s panicked", call.Contract))
	case ContractOutOfGas:
		ctx.GasMeter().ConsumeGas(ctx.GasMeter().Limit()+1, "mock contract")
	}

	contractAddress, err := sdk.AccAddressFromBech32(call.Contract)
	if err != nil {
		return err
	}

	ctx.KVStore(k.storeKey).Set(contractAddress, sdk.Uint64ToBigEndian(k.CallCount(ctx, contractAddress)+1))
	return nil
}
