package types

import (
	yaml "gopkg.in/yaml.v2"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GenesisState defines the ICS29 fee middleware genesis state
type GenesisState struct {
	Params         Params         `json:"params" yaml:"params"`
	FeeConfigs     []FeeConfig    `json:"fee_configs" yaml:"fee_configs"`
	PacketFees     []PacketFee    `json:"packet_fees" yaml:"packet_fees"`
	PacketRecords  []PacketRecord `json:"packet_records" yaml:"packet_records"`
	DispatcherMode DispatcherMode `json:"dispatcher_mode" yaml:"dispatcher_mode"`
}

// NewGenesisState creates a 29-fee GenesisState instance.
func NewGenesisState(params Params, feeConfigs []FeeConfig, packetFees []PacketFee, packetRecords []PacketRecord, mode DispatcherMode) *GenesisState {
	return &GenesisState{
		Params:         params,
		FeeConfigs:     feeConfigs,
		PacketFees:     packetFees,
		PacketRecords:  packetRecords,
		DispatcherMode: mode,
	}
}

// DefaultGenesisState returns a GenesisState with default values.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		FeeConfigs:     []FeeConfig{},
		PacketFees:     []PacketFee{},
		PacketRecords:  []PacketRecord{},
		DispatcherMode: DispatcherModeNormal,
	}
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	payers := make(map[string]bool)
	for _, feeConfig := range gs.FeeConfigs {
		if err := feeConfig.Validate(); err != nil {
			return err
		}

		if payers[feeConfig.Payer] {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate fee configuration for payer %s", feeConfig.Payer)
		}
		payers[feeConfig.Payer] = true
	}

	records := make(map[PacketID]PacketRecord)
	for _, record := range gs.PacketRecords {
		if err := record.Validate(); err != nil {
			return err
		}

		if _, found := records[record.PacketID]; found {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate lifecycle record for packet %s", record.PacketID)
		}
		records[record.PacketID] = record
	}

	for _, packetFee := range gs.PacketFees {
		if err := packetFee.Validate(); err != nil {
			return err
		}

		record, found := records[packetFee.PacketID]
		if !found || record.Status != PacketStatusPending {
			return sdkerrors.Wrapf(ErrPacketRecordNotFound, "escrowed fee for packet %s has no pending lifecycle record", packetFee.PacketID)
		}
	}

	return gs.DispatcherMode.Validate()
}

// String implements the Stringer interface.
func (gs GenesisState) String() string {
	out, _ := yaml.Marshal(gs)
	return string(out)
}
