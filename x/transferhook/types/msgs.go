package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/Zanda256/interest-bearing-vault/types/address"
)

// MsgServer is the transferhook module's message service.
type MsgServer interface {
	InitializeExtraAccountMetaList(context.Context, *MsgInitializeExtraAccountMetaList) (*MsgInitializeExtraAccountMetaListResponse, error)
	AddToWhitelist(context.Context, *MsgAddToWhitelist) (*MsgAddToWhitelistResponse, error)
	RemoveFromWhitelist(context.Context, *MsgRemoveFromWhitelist) (*MsgRemoveFromWhitelistResponse, error)
	Execute(context.Context, *MsgExecute) (*MsgExecuteResponse, error)
}

// MsgInitializeExtraAccountMetaList declares the extra accounts transfers of
// Mint must carry.
type MsgInitializeExtraAccountMetaList struct {
	Payer address.Address `json:"payer"`
	Mint  address.Address `json:"mint"`
}

type MsgInitializeExtraAccountMetaListResponse struct {
	MetaList address.Address `json:"meta_list"`
}

// ValidateBasic performs basic validation of MsgInitializeExtraAccountMetaList
func (msg *MsgInitializeExtraAccountMetaList) ValidateBasic() error {
	if msg.Payer.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "payer cannot be empty")
	}
	if msg.Mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint cannot be empty")
	}
	return nil
}

// MsgAddToWhitelist approves Address to send Mint.
type MsgAddToWhitelist struct {
	Admin   address.Address `json:"admin"`
	Mint    address.Address `json:"mint"`
	Address address.Address `json:"address"`
}

type MsgAddToWhitelistResponse struct {
	Entry address.Address `json:"entry"`
}

// ValidateBasic performs basic validation of MsgAddToWhitelist
func (msg *MsgAddToWhitelist) ValidateBasic() error {
	if msg.Admin.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "admin cannot be empty")
	}
	if msg.Mint.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "mint cannot be empty")
	}
	if msg.Address.IsZero() {
		return errorsmod.Wrap(ErrInvalidWhitelistAccount, "address cannot be empty")
	}
	return nil
}

// MsgRemoveFromWhitelist deletes the whitelist entry at Entry.
type MsgRemoveFromWhitelist struct {
	Admin address.Address `json:"admin"`
	Entry address.Address `json:"entry"`
}

type MsgRemoveFromWhitelistResponse struct{}

// ValidateBasic performs basic validation of MsgRemoveFromWhitelist
func (msg *MsgRemoveFromWhitelist) ValidateBasic() error {
	if msg.Admin.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "admin cannot be empty")
	}
	if msg.Entry.IsZero() {
		return errorsmod.Wrap(ErrInvalidWhitelistAccount, "entry cannot be empty")
	}
	return nil
}

// MsgExecute invokes the hook directly. Outside of a transfer it always
// fails with ErrNotTransferring.
type MsgExecute struct {
	Source      address.Address `json:"source"`
	Mint        address.Address `json:"mint"`
	Destination address.Address `json:"destination"`
	Owner       address.Address `json:"owner"`
	Amount      uint64          `json:"amount"`
}

type MsgExecuteResponse struct{}

// ValidateBasic performs basic validation of MsgExecute
func (msg *MsgExecute) ValidateBasic() error {
	if msg.Source.IsZero() || msg.Mint.IsZero() || msg.Destination.IsZero() || msg.Owner.IsZero() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "source, mint, destination and owner cannot be empty")
	}
	return nil
}
