package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// MsgServer is the asset module's message service.
type MsgServer interface {
	CreateMint(context.Context, *MsgCreateMint) (*MsgCreateMintResponse, error)
	CreateAccount(context.Context, *MsgCreateAccount) (*MsgCreateAccountResponse, error)
	MintTo(context.Context, *MsgMintTo) (*MsgMintToResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	UpdateInterestRate(context.Context, *MsgUpdateInterestRate) (*MsgUpdateInterestRateResponse, error)
}

// MsgCreateMint creates a mint with the transfer hook and interest bearing
// extensions.
type MsgCreateMint struct {
	Payer         address.Address `json:"payer"`
	Mint          address.Address `json:"mint"`
	MintAuthority address.Address `json:"mint_authority"`
	Decimals      uint8           `json:"decimals"`
	HookProgram   address.Address `json:"hook_program"`
	RateAuthority address.Address `json:"rate_authority"`
	InterestRate  int16           `json:"interest_rate"`
}

type MsgCreateMintResponse struct {
	Mint Mint `json:"mint"`
}

// ValidateBasic performs basic validation of MsgCreateMint
func (msg *MsgCreateMint) ValidateBasic() error {
	if msg.Payer.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "payer cannot be empty")
	}
	if msg.Mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint cannot be empty")
	}
	if msg.MintAuthority.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint authority cannot be empty")
	}
	if err := ValidateRate(msg.InterestRate); err != nil {
		return errorsmod.Wrap(ErrInvalidInterestRate, err.Error())
	}
	return nil
}

// MsgCreateAccount creates the associated balance account of Owner for Mint.
type MsgCreateAccount struct {
	Payer address.Address `json:"payer"`
	Owner address.Address `json:"owner"`
	Mint  address.Address `json:"mint"`
}

type MsgCreateAccountResponse struct {
	Account Account `json:"account"`
}

// ValidateBasic performs basic validation of MsgCreateAccount
func (msg *MsgCreateAccount) ValidateBasic() error {
	if msg.Payer.IsZero() || msg.Owner.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "payer and owner cannot be empty")
	}
	if msg.Mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint cannot be empty")
	}
	return nil
}

// MsgMintTo issues new supply into a balance account.
type MsgMintTo struct {
	Authority   address.Address `json:"authority"`
	Mint        address.Address `json:"mint"`
	Destination address.Address `json:"destination"`
	Amount      uint64          `json:"amount"`
}

type MsgMintToResponse struct{}

// ValidateBasic performs basic validation of MsgMintTo
func (msg *MsgMintTo) ValidateBasic() error {
	if msg.Authority.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "authority cannot be empty")
	}
	if msg.Mint.IsZero() || msg.Destination.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint and destination cannot be empty")
	}
	if msg.Amount == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be positive")
	}
	return nil
}

// MsgTransfer moves value between two balance accounts of the same mint on
// behalf of the source account's owner.
type MsgTransfer struct {
	Owner       address.Address `json:"owner"`
	Source      address.Address `json:"source"`
	Mint        address.Address `json:"mint"`
	Destination address.Address `json:"destination"`
	Amount      uint64          `json:"amount"`
	Decimals    uint8           `json:"decimals"`
}

type MsgTransferResponse struct{}

// ValidateBasic performs basic validation of MsgTransfer
func (msg *MsgTransfer) ValidateBasic() error {
	if msg.Owner.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "owner cannot be empty")
	}
	if msg.Source.IsZero() || msg.Destination.IsZero() || msg.Mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "source, destination and mint cannot be empty")
	}
	if msg.Amount == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be positive")
	}
	return nil
}

// MsgUpdateInterestRate changes a mint's current interest rate.
type MsgUpdateInterestRate struct {
	RateAuthority address.Address `json:"rate_authority"`
	Mint          address.Address `json:"mint"`
	Rate          int16           `json:"rate"`
}

type MsgUpdateInterestRateResponse struct{}

// ValidateBasic performs basic validation of MsgUpdateInterestRate
func (msg *MsgUpdateInterestRate) ValidateBasic() error {
	if msg.RateAuthority.IsZero() || msg.Mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "rate authority and mint cannot be empty")
	}
	if err := ValidateRate(msg.Rate); err != nil {
		return errorsmod.Wrap(ErrInvalidInterestRate, err.Error())
	}
	return nil
}
