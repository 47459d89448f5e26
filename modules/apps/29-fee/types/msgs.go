package types

import (
	"gopkg.in/yaml.v2"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = &MsgSetFees{}
	_ sdk.Msg = &MsgUnsetFees{}
	_ sdk.Msg = &MsgSetDispatcherMode{}
)

// msg types
const (
	TypeMsgSetFees           = "set_fees"
	TypeMsgUnsetFees         = "unset_fees"
	TypeMsgSetDispatcherMode = "set_dispatcher_mode"
)

// MsgSetFees replaces the fee configuration of the payer
type MsgSetFees struct {
	Payer      string  `json:"payer" yaml:"payer"`
	Denom      string  `json:"denom" yaml:"denom"`
	AckFee     sdk.Int `json:"ack_fee" yaml:"ack_fee"`
	RecvFee    sdk.Int `json:"recv_fee" yaml:"recv_fee"`
	TimeoutFee sdk.Int `json:"timeout_fee" yaml:"timeout_fee"`
}

// MsgSetFeesResponse defines the response type for the SetFees rpc
type MsgSetFeesResponse struct{}

// NewMsgSetFees creates a new instance of MsgSetFees
func NewMsgSetFees(payer, denom string, ackFee, recvFee, timeoutFee sdk.Int) *MsgSetFees {
	return &MsgSetFees{
		Payer:      payer,
		Denom:      denom,
		AckFee:     ackFee,
		RecvFee:    recvFee,
		TimeoutFee: timeoutFee,
	}
}

// Route implements sdk.Msg
func (msg MsgSetFees) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg MsgSetFees) Type() string {
	return TypeMsgSetFees
}

// ValidateBasic implements sdk.Msg
func (msg MsgSetFees) ValidateBasic() error {
	return NewFeeConfig(msg.Payer, msg.Denom, msg.AckFee, msg.RecvFee, msg.TimeoutFee).Validate()
}

// GetSignBytes implements sdk.Msg.
func (msg MsgSetFees) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgSetFees) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{signer}
}

// MsgUnsetFees removes the fee configuration of the payer
type MsgUnsetFees struct {
	Payer string `json:"payer" yaml:"payer"`
}

// MsgUnsetFeesResponse defines the response type for the UnsetFees rpc
type MsgUnsetFeesResponse struct{}

// NewMsgUnsetFees creates a new instance of MsgUnsetFees
func NewMsgUnsetFees(payer string) *MsgUnsetFees {
	return &MsgUnsetFees{Payer: payer}
}

// Route implements sdk.Msg
func (msg MsgUnsetFees) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg MsgUnsetFees) Type() string {
	return TypeMsgUnsetFees
}

// ValidateBasic implements sdk.Msg
func (msg MsgUnsetFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Payer); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	return nil
}

// GetSignBytes implements sdk.Msg.
func (msg MsgUnsetFees) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgUnsetFees) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{signer}
}

// MsgSetDispatcherMode switches the outcome dispatcher between normal and fault injecting callbacks
type MsgSetDispatcherMode struct {
	Authority string         `json:"authority" yaml:"authority"`
	Mode      DispatcherMode `json:"mode" yaml:"mode"`
}

// MsgSetDispatcherModeResponse defines the response type for the SetDispatcherMode rpc
type MsgSetDispatcherModeResponse struct{}

// NewMsgSetDispatcherMode creates a new instance of MsgSetDispatcherMode
func NewMsgSetDispatcherMode(authority string, mode DispatcherMode) *MsgSetDispatcherMode {
	return &MsgSetDispatcherMode{
		Authority: authority,
		Mode:      mode,
	}
}

// Route implements sdk.Msg
func (msg MsgSetDispatcherMode) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (msg MsgSetDispatcherMode) Type() string {
	return TypeMsgSetDispatcherMode
}

// ValidateBasic implements sdk.Msg
func (msg MsgSetDispatcherMode) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	return msg.Mode.Validate()
}

// GetSignBytes implements sdk.Msg.
func (msg MsgSetDispatcherMode) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgSetDispatcherMode) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}

	return []sdk.AccAddress{signer}
}

// Reset implements proto.Message
func (msg *MsgSetFees) Reset() { *msg = MsgSetFees{} }

// String implements proto.Message
func (msg MsgSetFees) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgSetFees) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgUnsetFees) Reset() { *msg = MsgUnsetFees{} }

// String implements proto.Message
func (msg MsgUnsetFees) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgUnsetFees) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSetDispatcherMode) Reset() { *msg = MsgSetDispatcherMode{} }

// String implements proto.Message
func (msg MsgSetDispatcherMode) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgSetDispatcherMode) ProtoMessage() {}
