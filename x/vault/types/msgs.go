package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// MsgServer is the vault module's message service.
type MsgServer interface {
	InitializeVault(context.Context, *MsgInitializeVault) (*MsgInitializeVaultResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
}

// MsgInitializeVault creates the vault of Authority for Asset.
type MsgInitializeVault struct {
	Authority address.Address `json:"authority"`
	Asset     address.Address `json:"asset"`
}

type MsgInitializeVaultResponse struct {
	Vault   address.Address `json:"vault"`
	Reserve address.Address `json:"reserve"`
}

// ValidateBasic performs basic validation of MsgInitializeVault
func (msg *MsgInitializeVault) ValidateBasic() error {
	if msg.Authority.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "authority cannot be empty")
	}
	if msg.Asset.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "asset cannot be empty")
	}
	return nil
}

// MsgDeposit moves Amount from the depositor's account into the vault.
type MsgDeposit struct {
	Depositor address.Address `json:"depositor"`
	Vault     address.Address `json:"vault"`
	Amount    uint64          `json:"amount"`
}

type MsgDepositResponse struct {
	ReserveAmount uint64 `json:"reserve_amount"`
	Balance       uint64 `json:"balance"`
}

// ValidateBasic performs basic validation of MsgDeposit
func (msg *MsgDeposit) ValidateBasic() error {
	if msg.Depositor.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "depositor cannot be empty")
	}
	if msg.Vault.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "vault cannot be empty")
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}

// MsgWithdraw moves Amount from the vault reserve to the authority.
type MsgWithdraw struct {
	Requester address.Address `json:"requester"`
	Vault     address.Address `json:"vault"`
	Amount    uint64          `json:"amount"`
}

type MsgWithdrawResponse struct {
	ReserveAmount uint64 `json:"reserve_amount"`
	Balance       uint64 `json:"balance"`
}

// ValidateBasic performs basic validation of MsgWithdraw. A zero amount is
// left to the keeper so that an unauthorized requester is reported first.
func (msg *MsgWithdraw) ValidateBasic() error {
	if msg.Requester.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "requester cannot be empty")
	}
	if msg.Vault.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "vault cannot be empty")
	}
	return nil
}
