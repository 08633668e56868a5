package types

import (
	errorsmod "cosmossdk.io/errors"
)

// asset module sentinel errors
var (
	ErrInvalidGenesis           = errorsmod.Register(ModuleName, 1, "invalid genesis state")
	ErrMintExists               = errorsmod.Register(ModuleName, 2, "mint already exists")
	ErrMintNotFound             = errorsmod.Register(ModuleName, 3, "mint not found")
	ErrAccountNotFound          = errorsmod.Register(ModuleName, 4, "account not found")
	ErrMintMismatch             = errorsmod.Register(ModuleName, 5, "account does not belong to mint")
	ErrOwnerMismatch            = errorsmod.Register(ModuleName, 6, "authorization does not match account owner")
	ErrInsufficientFunds        = errorsmod.Register(ModuleName, 7, "insufficient funds")
	ErrOverflow                 = errorsmod.Register(ModuleName, 8, "arithmetic overflow")
	ErrDecimalsMismatch         = errorsmod.Register(ModuleName, 9, "mint decimals mismatch")
	ErrInvalidAmount            = errorsmod.Register(ModuleName, 10, "amount must be greater than zero")
	ErrUnauthorized             = errorsmod.Register(ModuleName, 11, "unauthorized")
	ErrHookNotRegistered        = errorsmod.Register(ModuleName, 12, "transfer hook program not registered")
	ErrExtraAccountMetasMissing = errorsmod.Register(ModuleName, 13, "extra account meta list not initialized")
	ErrInvalidInterestRate      = errorsmod.Register(ModuleName, 14, "invalid interest rate")
)
