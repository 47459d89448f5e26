package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// FeeConfig is the fee schedule a payer attaches to each of its outbound packets.
// All three fees are denominated in Denom.
type FeeConfig struct {
	Payer      string  `json:"payer" yaml:"payer"`
	Denom      string  `json:"denom" yaml:"denom"`
	AckFee     sdk.Int `json:"ack_fee" yaml:"ack_fee"`
	RecvFee    sdk.Int `json:"recv_fee" yaml:"recv_fee"`
	TimeoutFee sdk.Int `json:"timeout_fee" yaml:"timeout_fee"`
}

// NewFeeConfig creates a new FeeConfig instance
func NewFeeConfig(payer, denom string, ackFee, recvFee, timeoutFee sdk.Int) FeeConfig {
	return FeeConfig{
		Payer:      payer,
		Denom:      denom,
		AckFee:     ackFee,
		RecvFee:    recvFee,
		TimeoutFee: timeoutFee,
	}
}

// Validate checks the payer address, the denomination and that every fee is a
// non-negative integer. Zero fees are accepted here and rejected on send.
func (fc FeeConfig) Validate() error {
	if _, err := sdk.AccAddressFromBech32(fc.Payer); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	if err := sdk.ValidateDenom(fc.Denom); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}

	if err := validateFeeAmount("ack", fc.AckFee); err != nil {
		return err
	}
	if err := validateFeeAmount("recv", fc.RecvFee); err != nil {
		return err
	}

	return validateFeeAmount("timeout", fc.TimeoutFee)
}

// Fee converts the configuration into the coins reserved for a single packet
func (fc FeeConfig) Fee() Fee {
	return NewFee(
		feeCoins(fc.Denom, fc.RecvFee),
		feeCoins(fc.Denom, fc.AckFee),
		feeCoins(fc.Denom, fc.TimeoutFee),
	)
}

func feeCoins(denom string, amount sdk.Int) sdk.Coins {
	if amount.IsNil() || !amount.IsPositive() {
		return sdk.NewCoins()
	}

	return sdk.NewCoins(sdk.NewCoin(denom, amount))
}

func validateFeeAmount(name string, amount sdk.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidCoins, "%s fee must be a non-negative integer", name)
	}

	return nil
}
