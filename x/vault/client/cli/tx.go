package cli

import (
	"fmt"
	"strconv"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/Zanda256/interest-bearing-vault/client"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/vault/types"
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
		CmdInitializeVault(),
		CmdDeposit(),
		CmdWithdraw(),
	)

	return cmd
}

// CmdInitializeVault returns a command to create the signer's vault
func CmdInitializeVault() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [asset]",
		Short: "Create the vault of the signer for a hooked asset",
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

			asset, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgInitializeVault{Authority: from, Asset: asset})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a command to deposit into a vault
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [vault-authority] [amount]",
		Short: "Deposit amount from the signer's associated account into the vault of vault-authority",
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

			vault, err := vaultOf(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			return clientCtx.Execute(&types.MsgDeposit{Depositor: from, Vault: vault, Amount: amount})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a command to withdraw from the signer's vault
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [vault-authority] [amount]",
		Short: "Withdraw amount from the vault of vault-authority to the authority",
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

			vault, err := vaultOf(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			return clientCtx.Execute(&types.MsgWithdraw{Requester: from, Vault: vault, Amount: amount})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

func vaultOf(authority string) (address.Address, error) {
	addr, err := client.ParseAddress(authority)
	if err != nil {
		return address.Address{}, err
	}
	vault, _, err := types.VaultAddress(addr)
	return vault, err
}
