package cli

import (
	"fmt"
	"strconv"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"

	"github.com/Zanda256/interest-bearing-vault/client"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	"github.com/Zanda256/interest-bearing-vault/x/asset/types"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
)

const (
	FlagDecimals      = "decimals"
	FlagInterestRate  = "interest-rate"
	FlagHookProgram   = "hook-program"
	FlagMintAuthority = "mint-authority"
	FlagRateAuthority = "rate-authority"
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
		CmdCreateMint(),
		CmdCreateAccount(),
		CmdMintTo(),
		CmdTransfer(),
		CmdUpdateInterestRate(),
	)

	return cmd
}

// CmdCreateMint returns a command to create a hooked, interest bearing mint
func CmdCreateMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-mint [mint]",
		Short: "Create a mint with the transfer hook and interest bearing extensions",
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

			decimals, err := cmd.Flags().GetUint8(FlagDecimals)
			if err != nil {
				return err
			}
			rate, err := cmd.Flags().GetInt16(FlagInterestRate)
			if err != nil {
				return err
			}
			hookProgram, err := addressFlag(cmd, FlagHookProgram, hooktypes.ProgramID)
			if err != nil {
				return err
			}
			mintAuthority, err := addressFlag(cmd, FlagMintAuthority, from)
			if err != nil {
				return err
			}
			rateAuthority, err := addressFlag(cmd, FlagRateAuthority, from)
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgCreateMint{
				Payer:         from,
				Mint:          mint,
				MintAuthority: mintAuthority,
				Decimals:      decimals,
				HookProgram:   hookProgram,
				RateAuthority: rateAuthority,
				InterestRate:  rate,
			})
		},
	}

	cmd.Flags().Uint8(FlagDecimals, types.DefaultDecimals, "Number of base units per whole token, as a power of ten")
	cmd.Flags().Int16(FlagInterestRate, 0, "Initial interest rate in basis points")
	cmd.Flags().String(FlagHookProgram, "", "Transfer hook program (defaults to the transferhook module)")
	cmd.Flags().String(FlagMintAuthority, "", "Mint authority (defaults to --from)")
	cmd.Flags().String(FlagRateAuthority, "", "Interest rate authority (defaults to --from)")
	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateAccount returns a command to create an associated balance account
func CmdCreateAccount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-account [owner] [mint]",
		Short: "Create the associated balance account of owner for mint",
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

			owner, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}
			mint, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgCreateAccount{Payer: from, Owner: owner, Mint: mint})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMintTo returns a command to issue supply to an owner's associated account
func CmdMintTo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint-to [mint] [owner] [amount]",
		Short: "Issue new supply into the associated account of owner",
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
			owner, err := client.ParseAddress(args[1])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			destination, _, err := types.AssociatedAddress(owner, mint)
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgMintTo{
				Authority:   from,
				Mint:        mint,
				Destination: destination,
				Amount:      amount,
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransfer returns a command to transfer between associated accounts
func CmdTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer [mint] [recipient] [amount]",
		Short: "Transfer from the signer's associated account to the recipient's",
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
			decimals, err := cmd.Flags().GetUint8(FlagDecimals)
			if err != nil {
				return err
			}

			source, _, err := types.AssociatedAddress(from, mint)
			if err != nil {
				return err
			}
			destination, _, err := types.AssociatedAddress(recipient, mint)
			if err != nil {
				return err
			}

			return clientCtx.Execute(&types.MsgTransfer{
				Owner:       from,
				Source:      source,
				Mint:        mint,
				Destination: destination,
				Amount:      amount,
				Decimals:    decimals,
			})
		},
	}

	cmd.Flags().Uint8(FlagDecimals, types.DefaultDecimals, "Expected mint decimals")
	client.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateInterestRate returns a command to change a mint's interest rate
func CmdUpdateInterestRate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-rate [mint] [rate]",
		Short: "Set the interest rate of a mint, in basis points",
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
			rate, err := strconv.ParseInt(args[1], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid rate: %w", err)
			}

			return clientCtx.Execute(&types.MsgUpdateInterestRate{
				RateAuthority: from,
				Mint:          mint,
				Rate:          int16(rate),
			})
		},
	}

	client.AddTxFlagsToCmd(cmd)
	return cmd
}

func addressFlag(cmd *cobra.Command, name string, fallback address.Address) (address.Address, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return address.Address{}, err
	}
	if value == "" {
		return fallback, nil
	}
	return client.ParseAddress(value)
}
