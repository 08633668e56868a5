package cli

import (
	"context"
	"fmt"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/Zanda256/interest-bearing-vault/client"
	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

// NewQueryCmd creates and returns the query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       sdkclient.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryVault(),
		CmdQueryRegistryEntry(),
		CmdQueryRegistryEntries(),
	)

	return cmd
}

// CmdQueryVault queries the vault of an authority
func CmdQueryVault() *cobra.Command {
	return &cobra.Command{
		Use:   "vault [authority]",
		Short: "Query the vault of authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			authority, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.VaultQuery.Vault(ctx, &types.QueryVaultRequest{Authority: authority})
			})
		},
	}
}

// CmdQueryRegistryEntry queries a depositor's registry entry
func CmdQueryRegistryEntry() *cobra.Command {
	return &cobra.Command{
		Use:   "entry [vault-authority] [depositor]",
		Short: "Query the registry entry of depositor in the vault of vault-authority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			vault, err := vaultOf(args[0])
			if err != nil {
				return err
			}
			depositor, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.VaultQuery.RegistryEntry(ctx, &types.QueryRegistryEntryRequest{Vault: vault, Depositor: depositor})
			})
		},
	}
}

// CmdQueryRegistryEntries queries every registry entry of a vault
func CmdQueryRegistryEntries() *cobra.Command {
	return &cobra.Command{
		Use:   "entries [vault-authority]",
		Short: "Query all registry entries of the vault of vault-authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			vault, err := vaultOf(args[0])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.VaultQuery.RegistryEntries(ctx, &types.QueryRegistryEntriesRequest{Vault: vault})
			})
		},
	}
}
