package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	ibctransfertypes "github.com/cosmos/ibc-go/v2/modules/apps/transfer/types"
)

// FungibleTokenPacketData defines a struct for the packet payload
// See FungibleTokenPacketData spec:
// https://github.com/cosmos/ibc/tree/master/spec/app/ics-020-fungible-token-transfer#data-structures
type FungibleTokenPacketData struct {
	// the token denomination to be transferred
	Denom string `json:"denom" yaml:"denom"`
	// the token amount to be transferred
	Amount string `json:"amount" yaml:"amount"`
	// the sender address
	Sender string `json:"sender" yaml:"sender"`
	// the recipient address on the destination chain
	Receiver string `json:"receiver" yaml:"receiver"`
	// optional memo, interpreted by middleware such as packet forwarding
	Memo string `json:"memo,omitempty" yaml:"memo"`
}

// NewFungibleTokenPacketData contructs a new FungibleTokenPacketData instance
func NewFungibleTokenPacketData(
	denom string, amount string,
	sender, receiver string,
	memo string,
) FungibleTokenPacketData {
	return FungibleTokenPacketData{
		Denom:    denom,
		Amount:   amount,
		Sender:   sender,
		Receiver: receiver,
		Memo:     memo,
	}
}

// ValidateBasic is used for validating the token transfer.
// NOTE: The addresses formats are not validated as the sender and recipient can have different
// formats defined by their corresponding chains that are not known to IBC.
func (ftpd FungibleTokenPacketData) ValidateBasic() error {
	amount, ok := sdk.NewIntFromString(ftpd.Amount)
	if !ok {
		return sdkerrors.Wrapf(ErrInvalidAmount, "unable to parse transfer amount (%s) into sdk.Int", ftpd.Amount)
	}
	if !amount.IsPositive() {
		return sdkerrors.Wrapf(ErrInvalidAmount, "amount must be strictly positive: got %d", amount)
	}
	if strings.TrimSpace(ftpd.Sender) == "" {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "sender address cannot be blank")
	}
	if strings.TrimSpace(ftpd.Receiver) == "" {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "receiver address cannot be blank")
	}
	return ibctransfertypes.ValidatePrefixedDenom(ftpd.Denom)
}

// GetBytes is a helper for serialising
func (ftpd FungibleTokenPacketData) GetBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&ftpd))
}

// UnmarshalPacketData decodes the packet payload of an ICS-20 packet.
func UnmarshalPacketData(bz []byte) (FungibleTokenPacketData, error) {
	var data FungibleTokenPacketData
	if err := ModuleCdc.UnmarshalJSON(bz, &data); err != nil {
		return FungibleTokenPacketData{}, sdkerrors.Wrapf(ErrInvalidPacketData, "cannot unmarshal ICS-20 transfer packet data: %s", err)
	}

	return data, nil
}
