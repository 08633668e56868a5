// Package errors defines the vaultd command line errors and helpers to report
// ledger errors by their registered code.
package errors

import (
	"errors"
	"fmt"

	sdkerrors "cosmossdk.io/errors"

	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	vaulttypes "github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

// Codespace of command line errors.
const Codespace = "vaultd_client"

// Error codes for the command line
const (
	// Argument errors
	CodeInvalidAddress uint32 = 1001 + iota
	CodeInvalidArgument
	CodeMissingSigner

	// Configuration errors
	CodeInvalidConfig uint32 = 2001 + iota
	CodeLedgerUnavailable
)

var (
	// Argument errors
	ErrInvalidAddress  = sdkerrors.Register(Codespace, CodeInvalidAddress, "invalid address")
	ErrInvalidArgument = sdkerrors.Register(Codespace, CodeInvalidArgument, "invalid argument")
	ErrMissingSigner   = sdkerrors.Register(Codespace, CodeMissingSigner, "missing signer")

	// Configuration errors
	ErrInvalidConfig     = sdkerrors.Register(Codespace, CodeInvalidConfig, "invalid configuration")
	ErrLedgerUnavailable = sdkerrors.Register(Codespace, CodeLedgerUnavailable, "ledger unavailable")
)

// WrapError wraps an existing error with additional context and a command
// line error code.
func WrapError(err error, sdkErr *sdkerrors.Error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)
	return sdkerrors.Wrapf(sdkErr, "%s: %v", msg, err)
}

// IsRetryable returns true if the same message may succeed once the ledger
// state changes, e.g. after the account is funded.
func IsRetryable(err error) bool {
	return errors.Is(err, vaulttypes.ErrInsufficientFunds) ||
		errors.Is(err, assettypes.ErrInsufficientFunds)
}

// GetErrorCode extracts the error code from a registered error.
// Returns 0 if the error is not registered.
func GetErrorCode(err error) uint32 {
	var sdkErr *sdkerrors.Error
	if errors.As(err, &sdkErr) {
		return sdkErr.ABCICode()
	}
	return 0
}

// Describe formats err with its codespace and code, e.g.
// "vault/3: withdraw 300: insufficient funds".
func Describe(err error) string {
	codespace, code, log := sdkerrors.ABCIInfo(err, false)
	if codespace == sdkerrors.UndefinedCodespace {
		return err.Error()
	}
	return fmt.Sprintf("%s/%d: %s", codespace, code, log)
}
