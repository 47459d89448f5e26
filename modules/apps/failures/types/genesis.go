package types

import (
	yaml "gopkg.in/yaml.v2"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisState defines the failure log genesis state
type GenesisState struct {
	Failures      []Failure `json:"failures" yaml:"failures"`
	NextFailureID uint64    `json:"next_failure_id" yaml:"next_failure_id"`
}

// NewGenesisState creates a new GenesisState instance
func NewGenesisState(failures []Failure, nextFailureID uint64) *GenesisState {
	return &GenesisState{
		Failures:      failures,
		NextFailureID: nextFailureID,
	}
}

// DefaultGenesisState returns an empty failure log
func DefaultGenesisState() *GenesisState {
	return NewGenesisState([]Failure{}, 0)
}

// Validate checks every record and that the counter is ahead of all stored ids.
func (gs GenesisState) Validate() error {
	ids := make(map[uint64]bool)
	for _, failure := range gs.Failures {
		if err := failure.Validate(); err != nil {
			return err
		}

		if ids[failure.ID] {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate failure id %d", failure.ID)
		}
		ids[failure.ID] = true

		if failure.ID >= gs.NextFailureID {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "failure id %d is not below next failure id %d", failure.ID, gs.NextFailureID)
		}
	}

	return nil
}

// String implements the Stringer interface.
func (gs GenesisState) String() string {
	out, _ := yaml.Marshal(gs)
	return string(out)
}
