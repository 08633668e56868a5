package types

import (
	errorsmod "cosmossdk.io/errors"
)

// transferhook module sentinel errors
var (
	ErrInvalidWhitelistAccount  = errorsmod.Register(ModuleName, 1, "invalid whitelist account")
	ErrAccountAlreadyExists     = errorsmod.Register(ModuleName, 2, "account already exists")
	ErrAccountDoesNotExist      = errorsmod.Register(ModuleName, 3, "account does not exist")
	ErrAccountDoesNotMatch      = errorsmod.Register(ModuleName, 4, "account does not match")
	ErrAccountNotWhitelisted    = errorsmod.Register(ModuleName, 5, "account is not whitelisted")
	ErrDeserializeWhitelistData = errorsmod.Register(ModuleName, 6, "failed to deserialize whitelist data")
	ErrNotTransferring          = errorsmod.Register(ModuleName, 7, "hook invoked outside of a transfer")
	ErrInvalidExtraAccountMeta  = errorsmod.Register(ModuleName, 8, "invalid extra account meta")
	ErrInvalidGenesis           = errorsmod.Register(ModuleName, 10, "invalid genesis state")
)
