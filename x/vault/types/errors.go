package types

import (
	errorsmod "cosmossdk.io/errors"
)

// vault module sentinel errors
var (
	ErrInvalidGenesis     = errorsmod.Register(ModuleName, 1, "invalid genesis state")
	ErrInvalidAmount      = errorsmod.Register(ModuleName, 2, "amount must be greater than zero")
	ErrInsufficientFunds  = errorsmod.Register(ModuleName, 3, "insufficient funds")
	ErrOverflow           = errorsmod.Register(ModuleName, 4, "arithmetic overflow")
	ErrUnderflow          = errorsmod.Register(ModuleName, 5, "arithmetic underflow")
	ErrUnauthorized       = errorsmod.Register(ModuleName, 6, "unauthorized: only vault authority can perform this action")
	ErrAlreadyInitialized = errorsmod.Register(ModuleName, 7, "vault already initialized")
	ErrVaultNotFound      = errorsmod.Register(ModuleName, 8, "vault not found")
	ErrInvalidAsset       = errorsmod.Register(ModuleName, 9, "asset is not governed by the transfer hook")
)
