package types

import (
	"gopkg.in/yaml.v2"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = &MsgResetFailures{}

// TypeMsgResetFailures is the type of MsgResetFailures
const TypeMsgResetFailures = "reset_failures"

// MsgResetFailures clears the failure log. An empty Address clears every record.
type MsgResetFailures struct {
	Authority string `json:"authority" yaml:"authority"`
	Address   string `json:"address" yaml:"address"`
}

// MsgResetFailuresResponse defines the response type for the ResetFailures rpc
type MsgResetFailuresResponse struct {
	Removed uint64 `json:"removed" yaml:"removed"`
}

// NewMsgResetFailures creates a new instance of MsgResetFailures
func NewMsgResetFailures(authority, address string) *MsgResetFailures {
	return &MsgResetFailures{
		Authority: authority,
		Address:   address,
	}
}

// Route implements sdk.Msg
func (msg MsgResetFailures) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg MsgResetFailures) Type() string {
	return TypeMsgResetFailures
}

// ValidateBasic implements sdk.Msg
func (msg MsgResetFailures) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if msg.Address == "" {
		return nil
	}

	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	return nil
}

// GetSignBytes implements sdk.Msg.
func (msg MsgResetFailures) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgResetFailures) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{signer}
}

// Reset implements proto.Message
func (msg *MsgResetFailures) Reset() { *msg = MsgResetFailures{} }

// String implements proto.Message
func (msg MsgResetFailures) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgResetFailures) ProtoMessage() {}
