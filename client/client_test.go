package client_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	dbm "github.com/cosmos/cosmos-db"

	"cosmossdk.io/log"

	"github.com/Zanda256/interest-bearing-vault/app"
	"github.com/Zanda256/interest-bearing-vault/client"
	clienterrors "github.com/Zanda256/interest-bearing-vault/client/errors"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

func TestParseAddress(t *testing.T) {
	alice := address.FromName("alice")

	tests := []struct {
		name    string
		input   string
		want    address.Address
		wantErr error
	}{
		{name: "base58", input: alice.String(), want: alice},
		{name: "by name", input: "name:alice", want: alice},
		{name: "empty name", input: "name:", wantErr: clienterrors.ErrInvalidAddress},
		{name: "not base58", input: "0OIl", wantErr: clienterrors.ErrInvalidAddress},
		{name: "short", input: "abc", wantErr: clienterrors.ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.ParseAddress(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGetFromAddress(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	client.AddTxFlagsToCmd(cmd)

	_, err := client.GetFromAddress(cmd)
	require.ErrorIs(t, err, clienterrors.ErrMissingSigner)

	require.NoError(t, cmd.Flags().Set(client.FlagFrom, "name:bob"))
	from, err := client.GetFromAddress(cmd)
	require.NoError(t, err)
	require.Equal(t, address.FromName("bob"), from)
}

func TestClientContext(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	_, err := client.GetClientContext(cmd)
	require.ErrorIs(t, err, clienterrors.ErrLedgerUnavailable)

	ledger, err := app.New(log.NewTestLogger(t), dbm.NewMemDB())
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	client.SetCmdContext(cmd, &client.Context{App: ledger})

	clientCtx, err := client.GetClientContext(cmd)
	require.NoError(t, err)

	payer := address.FromName("payer")
	err = clientCtx.Execute(&assettypes.MsgCreateMint{
		Payer:         payer,
		Mint:          address.FromName("usdv"),
		MintAuthority: payer,
		Decimals:      assettypes.DefaultDecimals,
		HookProgram:   hooktypes.ProgramID,
		RateAuthority: payer,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), `"height": 1`)
	require.Contains(t, out.String(), address.FromName("usdv").String())

	err = clientCtx.Execute(&assettypes.MsgCreateMint{
		Payer:         payer,
		Mint:          address.FromName("usdv"),
		MintAuthority: payer,
	})
	require.ErrorIs(t, err, assettypes.ErrMintExists)
}
