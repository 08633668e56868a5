package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zanda256/interest-bearing-vault/app"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
	vaulttypes "github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

type cli struct {
	t    *testing.T
	home string
}

func (c cli) run(args ...string) (string, error) {
	c.t.Helper()
	rootCmd, clientCtx := NewRootCmd()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--home", c.home))

	err := rootCmd.Execute()
	if clientCtx.App != nil {
		require.NoError(c.t, clientCtx.App.Close())
	}
	return out.String(), err
}

func (c cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "vaultd %v", args)
	return out
}

func TestVaultScenario(t *testing.T) {
	c := cli{t: t, home: t.TempDir()}
	const from = "--from=name:authority"

	c.mustRun("init")
	require.FileExists(t, filepath.Join(c.home, "config.toml"))

	_, err := c.run("init")
	require.Error(t, err)

	c.mustRun("tx", "asset", "create-mint", "name:usdv", "--interest-rate", "500", from)
	c.mustRun("tx", "transferhook", "init-metas", "name:usdv", from)
	c.mustRun("tx", "asset", "create-account", "name:authority", "name:usdv", from)
	c.mustRun("tx", "asset", "mint-to", "name:usdv", "name:authority", "1000", from)
	c.mustRun("tx", "vault", "init", "name:usdv", from)

	var derived derivedAddresses
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("address", "name:authority", "--mint", "name:usdv")), &derived))
	require.NotNil(t, derived.WhitelistEntry)

	c.mustRun("tx", "transferhook", "add", "name:usdv", "name:authority", from)
	c.mustRun("tx", "transferhook", "add", "name:usdv", derived.Vault.String(), from)

	c.mustRun("tx", "vault", "deposit", "name:authority", "500", from)
	c.mustRun("tx", "vault", "withdraw", "name:authority", "300", from)

	_, err = c.run("tx", "vault", "withdraw", "name:authority", "300", from)
	require.ErrorIs(t, err, vaulttypes.ErrInsufficientFunds)

	var vault vaulttypes.QueryVaultResponse
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("query", "vault", "vault", "name:authority")), &vault))
	require.Equal(t, derived.Vault, vault.Address)
	require.Equal(t, uint64(200), vault.Vault.ReserveAmount)
	require.Equal(t, uint64(1), vault.Vault.DepositEventCount)

	var whitelisted hooktypes.QueryIsWhitelistedResponse
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("q", "transferhook", "whitelisted", "name:usdv", "name:authority")), &whitelisted))
	require.True(t, whitelisted.Whitelisted)

	_, err = c.run("tx", "vault", "withdraw", "name:authority", "10", "--from=name:mallory")
	require.ErrorIs(t, err, vaulttypes.ErrUnauthorized)

	_, err = c.run("tx", "transferhook", "execute", "name:usdv", "name:authority", "1", from)
	require.ErrorIs(t, err, hooktypes.ErrNotTransferring)

	exportFile := filepath.Join(t.TempDir(), "genesis.json")
	c.mustRun("export", "--output", exportFile)
	bz, err := os.ReadFile(exportFile)
	require.NoError(t, err)
	gs, err := app.ParseGenesis(bz)
	require.NoError(t, err)
	require.Len(t, gs.Vault.Vaults, 1)

	imported := cli{t: t, home: t.TempDir()}
	imported.mustRun("init", "--genesis", exportFile)
	require.NoError(t, json.Unmarshal([]byte(imported.mustRun("query", "vault", "vault", "name:authority")), &vault))
	require.Equal(t, uint64(200), vault.Vault.ReserveAmount)
}

func TestMissingSigner(t *testing.T) {
	c := cli{t: t, home: t.TempDir()}
	_, err := c.run("tx", "vault", "init", "name:usdv")
	require.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	c := cli{t: t, home: t.TempDir()}
	_, err := c.run("status", "--log_format", "yaml")
	require.Error(t, err)

	out := c.mustRun("status", "--db_backend", "memdb")
	require.Contains(t, out, `"height": 0`)
}
