package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	yaml "gopkg.in/yaml.v2"

	ibctransfertypes "github.com/cosmos/ibc-go/v2/modules/apps/transfer/types"
	host "github.com/cosmos/ibc-go/v2/modules/core/24-host"
)

// GenesisState defines the ibc-transfer genesis state
type GenesisState struct {
	PortID        string                        `json:"port_id" yaml:"port_id"`
	DenomTraces   []ibctransfertypes.DenomTrace `json:"denom_traces" yaml:"denom_traces"`
	Params        Params                        `json:"params" yaml:"params"`
	TotalEscrowed sdk.Coins                     `json:"total_escrowed" yaml:"total_escrowed"`
}

// NewGenesisState creates a new ibc-transfer GenesisState instance.
func NewGenesisState(portID string, denomTraces []ibctransfertypes.DenomTrace, params Params, totalEscrowed sdk.Coins) *GenesisState {
	return &GenesisState{
		PortID:        portID,
		DenomTraces:   denomTraces,
		Params:        params,
		TotalEscrowed: totalEscrowed,
	}
}

// DefaultGenesisState returns a GenesisState with "transfer" as the default PortID.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		PortID:        PortID,
		DenomTraces:   []ibctransfertypes.DenomTrace{},
		Params:        DefaultParams(),
		TotalEscrowed: sdk.Coins{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := host.PortIdentifierValidator(gs.PortID); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i, trace := range gs.DenomTraces {
		if err := trace.Validate(); err != nil {
			return fmt.Errorf("invalid denom trace at index %d: %w", i, err)
		}
		hash := trace.Hash().String()
		if seen[hash] {
			return fmt.Errorf("duplicated denomination trace with hash %s", hash)
		}
		seen[hash] = true
	}

	if err := gs.TotalEscrowed.Validate(); err != nil {
		return err
	}

	return gs.Params.Validate()
}

// String implements the Stringer interface.
func (gs GenesisState) String() string {
	out, _ := yaml.Marshal(gs)
	return string(out)
}
