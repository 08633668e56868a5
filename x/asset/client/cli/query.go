package cli

import (
	"context"
	"fmt"
	"strconv"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/Zanda256/interest-bearing-vault/client"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
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
		CmdQueryMint(),
		CmdQueryAccount(),
		CmdQueryUIAmount(),
	)

	return cmd
}

// CmdQueryMint queries a mint
func CmdQueryMint() *cobra.Command {
	return &cobra.Command{
		Use:   "mint [mint]",
		Short: "Query a mint and its extensions",
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
				return clientCtx.App.AssetQuery.Mint(ctx, &types.QueryMintRequest{Mint: mint})
			})
		},
	}
}

// CmdQueryAccount queries the associated account of an owner
func CmdQueryAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "account [owner] [mint]",
		Short: "Query the associated balance account of owner for mint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			owner, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}
			mint, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.AssetQuery.Account(ctx, &types.QueryAccountRequest{Owner: owner, Mint: mint})
			})
		},
	}
}

// CmdQueryUIAmount converts a raw amount to its interest accrued display value
func CmdQueryUIAmount() *cobra.Command {
	return &cobra.Command{
		Use:   "ui-amount [mint] [amount]",
		Short: "Convert a raw amount to its display value with accrued interest",
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
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			return clientCtx.Query(func(ctx context.Context) (any, error) {
				return clientCtx.App.AssetQuery.UIAmount(ctx, &types.QueryUIAmountRequest{Mint: mint, Amount: amount})
			})
		},
	}
}
