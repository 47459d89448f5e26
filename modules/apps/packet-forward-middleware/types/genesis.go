package types

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"
)

// GenesisState defines the packet forward middleware genesis state
type GenesisState struct {
	ForwardedPackets []ForwardedPacket `json:"forwarded_packets" yaml:"forwarded_packets"`
}

// NewGenesisState creates a new GenesisState instance
func NewGenesisState(forwardedPackets []ForwardedPacket) *GenesisState {
	return &GenesisState{
		ForwardedPackets: forwardedPackets,
	}
}

// DefaultGenesisState returns a GenesisState with no forwarded packets
func DefaultGenesisState() *GenesisState {
	return NewGenesisState([]ForwardedPacket{})
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]bool)
	for _, packet := range gs.ForwardedPackets {
		if err := packet.Validate(); err != nil {
			return err
		}

		key := string(ForwardedPacketKey(packet.InPortID, packet.InChannelID, packet.InSequence))
		if seen[key] {
			return fmt.Errorf("duplicate forwarded packet %s", key)
		}
		seen[key] = true
	}

	return nil
}

// String implements the Stringer interface.
func (gs GenesisState) String() string {
	out, _ := yaml.Marshal(gs)
	return string(out)
}
