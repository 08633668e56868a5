package main

import (
	"os"

	cmtcli "github.com/cometbft/cometbft/libs/cli"
	sdkclient "github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zanda256/interest-bearing-vault/app"
	"github.com/Zanda256/interest-bearing-vault/client"
	"github.com/Zanda256/interest-bearing-vault/client/config"
	clienterrors "github.com/Zanda256/interest-bearing-vault/client/errors"
	"github.com/Zanda256/interest-bearing-vault/types/address"
	assetcli "github.com/Zanda256/interest-bearing-vault/x/asset/client/cli"
	assettypes "github.com/Zanda256/interest-bearing-vault/x/asset/types"
	hookcli "github.com/Zanda256/interest-bearing-vault/x/transferhook/client/cli"
	hooktypes "github.com/Zanda256/interest-bearing-vault/x/transferhook/types"
	vaultcli "github.com/Zanda256/interest-bearing-vault/x/vault/client/cli"
	vaulttypes "github.com/Zanda256/interest-bearing-vault/x/vault/types"
)

const (
	flagGenesis   = "genesis"
	flagOverwrite = "overwrite"
	flagOutput    = "output"
	flagMint      = "mint"

	// commands annotated with annotationNoLedger run without opening the ledger
	annotationNoLedger = "no-ledger"
)

// NewRootCmd creates the vaultd root command. The returned context holds the
// ledger opened for the executed command; the caller closes it.
func NewRootCmd() (*cobra.Command, *client.Context) {
	v := viper.New()
	clientCtx := &client.Context{}

	rootCmd := &cobra.Command{
		Use:           app.AppName,
		Short:         "Interest bearing vault ledger with a whitelisting transfer hook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return clienterrors.WrapError(err, clienterrors.ErrInvalidConfig, "load")
			}
			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return clienterrors.WrapError(err, clienterrors.ErrInvalidConfig, "logger")
			}

			clientCtx.Config = cfg
			clientCtx.Logger = logger
			clientCtx.Output = cmd.OutOrStdout()

			if _, ok := cmd.Annotations[annotationNoLedger]; !ok {
				db, err := cfg.OpenDB()
				if err != nil {
					return clienterrors.WrapError(err, clienterrors.ErrLedgerUnavailable, "open %s", cfg.DataDir())
				}
				ledger, err := app.New(logger, db)
				if err != nil {
					_ = db.Close()
					return clienterrors.WrapError(err, clienterrors.ErrLedgerUnavailable, "load")
				}
				clientCtx.App = ledger
			}

			client.SetCmdContext(cmd, clientCtx)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flags.FlagHome, config.DefaultNodeHome, "Directory for config and data")
	pf.String(config.KeyDBBackend, "", "Ledger database backend (goleveldb, pebbledb, memdb)")
	pf.String(config.KeyLogLevel, "", "Log level (trace, debug, info, warn, error)")
	pf.String(config.KeyLogFormat, "", "Log format (plain, json)")
	for key, name := range map[string]string{
		config.KeyHome:      flags.FlagHome,
		config.KeyDBBackend: config.KeyDBBackend,
		config.KeyLogLevel:  config.KeyLogLevel,
		config.KeyLogFormat: config.KeyLogFormat,
	} {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		InitCmd(),
		ExportCmd(),
		StatusCmd(),
		AddressCmd(),
		queryCommand(),
		txCommand(),
		noLedger(cmtcli.NewCompletionCmd(rootCmd, true)),
	)

	return rootCmd, clientCtx
}

func noLedger(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationNoLedger] = "true"
	return cmd
}

func queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       sdkclient.ValidateCmd,
	}

	cmd.AddCommand(
		assetcli.NewQueryCmd(),
		hookcli.NewQueryCmd(),
		vaultcli.NewQueryCmd(),
	)

	return cmd
}

func txCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Transactions subcommands",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       sdkclient.ValidateCmd,
	}

	cmd.AddCommand(
		assetcli.NewTxCmd(),
		hookcli.NewTxCmd(),
		vaultcli.NewTxCmd(),
	)

	return cmd
}

// InitCmd writes the configuration file and optionally imports a genesis
// document into the empty ledger.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the config file and, with --genesis, the ledger state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}
			cfg := clientCtx.Config

			overwrite, err := cmd.Flags().GetBool(flagOverwrite)
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.File()); err == nil && !overwrite {
				return clienterrors.ErrInvalidConfig.Wrapf("%s exists, use --%s to replace it", cfg.File(), flagOverwrite)
			}
			if err := cfg.Save(); err != nil {
				return clienterrors.WrapError(err, clienterrors.ErrInvalidConfig, "save")
			}
			clientCtx.Logger.Info("config written", "file", cfg.File())

			genesisFile, err := cmd.Flags().GetString(flagGenesis)
			if err != nil {
				return err
			}
			if genesisFile == "" {
				return clientCtx.PrintJSON(cfg)
			}

			bz, err := os.ReadFile(genesisFile)
			if err != nil {
				return clienterrors.WrapError(err, clienterrors.ErrInvalidArgument, "read genesis")
			}
			gs, err := app.ParseGenesis(bz)
			if err != nil {
				return err
			}
			height, err := clientCtx.App.InitGenesis(gs)
			if err != nil {
				return err
			}
			return clientCtx.PrintJSON(map[string]any{"config": cfg, "height": height})
		},
	}

	cmd.Flags().String(flagGenesis, "", "Genesis JSON file to import")
	cmd.Flags().Bool(flagOverwrite, false, "Replace an existing config file")
	return cmd
}

// ExportCmd prints the committed state as a genesis document.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger state as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}

			gs, err := clientCtx.App.ExportGenesis()
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString(flagOutput)
			if err != nil {
				return err
			}
			if output == "" {
				return clientCtx.PrintJSON(gs)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			fileCtx := *clientCtx
			fileCtx.Output = f
			return fileCtx.PrintJSON(gs)
		},
	}

	cmd.Flags().String(flagOutput, "", "Write the document to a file instead of stdout")
	return cmd
}

// StatusCmd prints the ledger height and location.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last committed height of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientContext(cmd)
			if err != nil {
				return err
			}
			return clientCtx.PrintJSON(map[string]any{
				"chain_id": app.ChainID,
				"height":   clientCtx.App.LastHeight(),
				"home":     clientCtx.Config.Home,
				"backend":  clientCtx.Config.DBBackend,
			})
		},
	}
}

type derivedAddresses struct {
	Address           address.Address  `json:"address"`
	Vault             address.Address  `json:"vault"`
	AssociatedAccount *address.Address `json:"associated_account,omitempty"`
	WhitelistEntry    *address.Address `json:"whitelist_entry,omitempty"`
	MetaList          *address.Address `json:"meta_list,omitempty"`
}

// AddressCmd resolves an account and the records derived from it.
func AddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address [name-or-address]",
		Short: "Show an address and its derived vault, account and whitelist entry",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			annotationNoLedger: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := client.ParseAddress(args[0])
			if err != nil {
				return err
			}

			out := derivedAddresses{Address: owner}
			if out.Vault, _, err = vaulttypes.VaultAddress(owner); err != nil {
				return err
			}

			mintArg, err := cmd.Flags().GetString(flagMint)
			if err != nil {
				return err
			}
			if mintArg != "" {
				mint, err := client.ParseAddress(mintArg)
				if err != nil {
					return err
				}
				account, _, err := assettypes.AssociatedAddress(owner, mint)
				if err != nil {
					return err
				}
				entry, _, err := hooktypes.WhitelistAddress(mint, owner)
				if err != nil {
					return err
				}
				metaList, _, err := hooktypes.MetaListAddress(mint)
				if err != nil {
					return err
				}
				out.AssociatedAccount, out.WhitelistEntry, out.MetaList = &account, &entry, &metaList
			}

			clientCtx := &client.Context{Output: cmd.OutOrStdout()}
			return clientCtx.PrintJSON(out)
		},
	}

	cmd.Flags().String(flagMint, "", "Also derive the records of the address for this mint")
	return cmd
}
