package cli

import (
	"context"
	"fmt"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/Zanda256/interest-bearing-vault/client"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
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
		CmdQueryWhitelistEntry(),
		CmdQueryIsWhitelisted(),
		CmdQueryExtraAccountMetas(),
	)

	return cmd
}

// CmdQueryWhitelistEntry queries the whitelist entry of an address
func CmdQueryWhitelistEntry() *cobra.Command {
	return &cobra.Command{
		Use:   "entry [mint] [address]",
		Short: "Query the whitelist entry of address for mint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			mint, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}
			addr, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.TransferHookQuery.WhitelistEntry(ctx, &types.QueryWhitelistEntryRequest{Mint: mint, Address: addr})
			})
		},
	}
}

// CmdQueryIsWhitelisted queries whether an address may send a mint
func CmdQueryIsWhitelisted() *cobra.Command {
	return &cobra.Command{
		Use:   "whitelisted [mint] [address]",
		Short: "Query whether address may send mint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			mint, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}
			addr, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.TransferHookQuery.IsWhitelisted(ctx, &types.QueryIsWhitelistedRequest{Mint: mint, Address: addr})
			})
		},
	}
}

// CmdQueryExtraAccountMetas queries the extra accounts declared for a mint
func CmdQueryExtraAccountMetas() *cobra.Command {
	return &cobra.Command{
		Use:   "metas [mint]",
		Short: "Query the extra account meta list of mint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			mint, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.TransferHookQuery.ExtraAccountMetas(ctx, &types.QueryExtraAccountMetasRequest{Mint: mint})
			})
		},
	}
}
