package app

import (
	errorsmod "cosmossdk.io/errors"
)

// app sentinel errors
var (
	ErrLedgerInitialized = errorsmod.Register(AppName, 1, "ledger already initialized")
)
