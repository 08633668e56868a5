package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sdkerrors "cosmossdk.io/errors"

	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	vaulttypes "github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

func TestDescribe(t *testing.T) {
	err := sdkerrors.Wrap(vaulttypes.ErrInsufficientFunds, "withdraw 300")
	require.Equal(t, "vault/3: withdraw 300: insufficient funds", Describe(err))

	require.Equal(t, "plain failure", Describe(errors.New("plain failure")))
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(sdkerrors.Wrap(vaulttypes.ErrInsufficientFunds, "withdraw")))
	require.True(t, IsRetryable(assettypes.ErrInsufficientFunds))
	require.False(t, IsRetryable(vaulttypes.ErrUnauthorized))
	require.False(t, IsRetryable(nil))
}

func TestWrapError(t *testing.T) {
	require.NoError(t, WrapError(nil, ErrInvalidAddress, "ignored"))

	err := WrapError(errors.New("bad checksum"), ErrInvalidAddress, "parse %s", "abc")
	require.ErrorIs(t, err, ErrInvalidAddress)
	require.Equal(t, CodeInvalidAddress, GetErrorCode(err))
	require.Zero(t, GetErrorCode(errors.New("other")))
}
