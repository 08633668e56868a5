package cli

import (
	"fmt"
	"strconv"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/Zanda256/interest-bearing-vault/client"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	"github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

// NewTxCmd creates and returns the tx command
func NewTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       sdkclient.ValidateCmd,
	}

	cmd.AddCommand(
		CmdInitializeExtraAccountMetaList(),
		CmdAddToWhitelist(),
		CmdRemoveFromWhitelist(),
		CmdExecute(),
	)

	return cmd
}

// CmdInitializeExtraAccountMetaList returns a command to declare the extra
// accounts of a mint's transfers
func CmdInitializeExtraAccountMetaList() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-metas [mint]",
		Short: "Declare the whitelist entry as the extra account of every transfer of mint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			from, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}

			mint, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgInitializeExtraAccountMetaList{Payer: from, Mint: mint})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddToWhitelist returns a command to approve a sender
func CmdAddToWhitelist() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [mint] [address]",
		Short: "Approve address to send mint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			from, err := client.GetFromAddress(cmd)
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

			return clientCtx.Execute(&types.MsgAddToWhitelist{Admin: from, Mint: mint, Address: addr})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveFromWhitelist returns a command to revoke a sender
func CmdRemoveFromWhitelist() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [mint] [address]",
		Short: "Revoke the approval of address to send mint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			from, err := client.GetFromAddress(cmd)
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

			entry, _, err := types.WhitelistAddress(mint, addr)
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgRemoveFromWhitelist{Admin: from, Entry: entry})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecute returns a command invoking the hook outside of a transfer. The
// hook accepts only transfers in progress, so this always reports
// ErrNotTransferring.
func CmdExecute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [mint] [recipient] [amount]",
		Short: "Invoke the transfer hook directly for the signer's associated account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			from, err := client.GetFromAddress(cmd)
			if err != nil {
				return err
			}

			mint, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}
			recipient, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			source, _, err := assettypes.AssociatedAddress(from, mint)
			if err != nil {
				return err
			}
			destination, _, err := assettypes.AssociatedAddress(recipient, mint)
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgExecute{
				Source:      source,
				Mint:        mint,
				Destination: destination,
				Owner:       from,
				Amount:      amount,
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}
