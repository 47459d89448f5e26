package types

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

// DefaultCallbackGasLimit is the default gas limit of a single sudo callback
const DefaultCallbackGasLimit uint64 = 1_000_000

var (
	// KeyMinFee is the store key for the MinFee param
	KeyMinFee = []byte("MinFee")
	// KeyCallbackGasLimit is the store key for the CallbackGasLimit param
	KeyCallbackGasLimit = []byte("CallbackGasLimit")
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Params defines the parameters for the fee middleware
type Params struct {
	// MinFee is the minimum ack and timeout fee an incentivized packet must carry.
	// Empty coin sets disable the check.
	MinFee           Fee    `json:"min_fee" yaml:"min_fee"`
	CallbackGasLimit uint64 `json:"callback_gas_limit" yaml:"callback_gas_limit"`
}

// ParamKeyTable type declaration for parameters
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new parameter configuration for the fee middleware
func NewParams(minFee Fee, callbackGasLimit uint64) Params {
	return Params{
		MinFee:           minFee,
		CallbackGasLimit: callbackGasLimit,
	}
}

// DefaultParams is the default parameter configuration for the fee middleware
func DefaultParams() Params {
	return NewParams(Fee{}, DefaultCallbackGasLimit)
}

// Validate validates all fee middleware parameters
func (p Params) Validate() error {
	if err := validateMinFee(p.MinFee); err != nil {
		return err
	}

	return validateCallbackGasLimit(p.CallbackGasLimit)
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// ParamSetPairs implements params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyMinFee, &p.MinFee, validateMinFee),
		paramtypes.NewParamSetPair(KeyCallbackGasLimit, &p.CallbackGasLimit, validateCallbackGasLimit),
	}
}

func validateMinFee(i interface{}) error {
	fee, ok := i.(Fee)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if !fee.RecvFee.IsValid() || !fee.AckFee.IsValid() || !fee.TimeoutFee.IsValid() {
		return fmt.Errorf("invalid minimum fee: %v", fee)
	}

	return nil
}

func validateCallbackGasLimit(i interface{}) error {
	limit, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if limit == 0 {
		return fmt.Errorf("callback gas limit cannot be zero")
	}

	return nil
}
