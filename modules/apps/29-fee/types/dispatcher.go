package types

import (
	"fmt"
	"strings"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// DispatcherMode selects how the outcome dispatcher invokes application callbacks
type DispatcherMode int32

const (
	// DispatcherModeNormal invokes the callback of the packet sender
	DispatcherModeNormal DispatcherMode = iota
	// DispatcherModeAlwaysFault makes every callback invocation fail
	DispatcherModeAlwaysFault
)

// String implements fmt.Stringer
func (m DispatcherMode) String() string {
	switch m {
	case DispatcherModeNormal:
		return "normal"
	case DispatcherModeAlwaysFault:
		return "always_fault"
	default:
		return fmt.Sprintf("DispatcherMode(%d)", int32(m))
	}
}

// Validate returns an error if the mode is unknown
func (m DispatcherMode) Validate() error {
	switch m {
	case DispatcherModeNormal, DispatcherModeAlwaysFault:
		return nil
	default:
		return sdkerrors.Wrapf(ErrInvalidDispatcherMode, "unknown mode %d", int32(m))
	}
}

// ParseDispatcherMode returns the mode matching its string form
func ParseDispatcherMode(s string) (DispatcherMode, error) {
	switch strings.ToLower(s) {
	case "normal":
		return DispatcherModeNormal, nil
	case "always_fault", "always-fault":
		return DispatcherModeAlwaysFault, nil
	default:
		return DispatcherModeNormal, sdkerrors.Wrapf(ErrInvalidDispatcherMode, "unknown mode %s", s)
	}
}
