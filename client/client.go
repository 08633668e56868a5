// Package client provides the command line context shared by the module
// commands: the opened ledger, the signer and output helpers.
package client

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cosmossdk.io/log"

	"github.com/Zanda256/interest-bearing-vault/app"
	"github.com/Zanda256/interest-bearing-vault/client/config"
	clienterrors "github.com/Zanda256/interest-bearing-vault/client/errors"
	"github.com/Zanda256/interest-bearing-vault/types/address"
)

const (
	// FlagFrom names the account that authorizes a message.
	FlagFrom = "from"

	// NamePrefix marks an address given by name instead of base58.
	NamePrefix = "name:"
)

type contextKey struct{}

// Context is attached to every command by the root command.
type Context struct {
	App    *app.App
	Config *config.Config
	Logger log.Logger
	Output io.Writer
}

// SetCmdContext attaches clientCtx to cmd.
func SetCmdContext(cmd *cobra.Command, clientCtx *Context) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, contextKey{}, clientCtx))
}

// GetClientContext returns the context attached to cmd.
func GetClientContext(cmd *cobra.Command) (*Context, error) {
	if ctx := cmd.Context(); ctx != nil {
		if clientCtx, ok := ctx.Value(contextKey{}).(*Context); ok && clientCtx.App != nil {
			if clientCtx.Output == nil {
				clientCtx.Output = cmd.OutOrStdout()
			}
			return clientCtx, nil
		}
	}
	return nil, clienterrors.ErrLedgerUnavailable
}

// Execute runs msg on the ledger and prints the result.
func (c *Context) Execute(msg app.Msg) error {
	res, err := c.App.Execute(msg)
	if err != nil {
		return err
	}
	return c.PrintJSON(res)
}

// Query runs fn on the last committed state and prints its response.
func (c *Context) Query(fn func(ctx context.Context) (any, error)) error {
	var res any
	err := c.App.Query(func(ctx context.Context) error {
		var err error
		res, err = fn(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return c.PrintJSON(res)
}

// PrintJSON writes v as indented JSON.
func (c *Context) PrintJSON(v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	bz = append(bz, '\n')
	_, err = c.Output.Write(bz)
	return err
}

// ParseAddress parses a base58 address, or derives one from a name given as
// "name:<name>".
func ParseAddress(s string) (address.Address, error) {
	if name, ok := strings.CutPrefix(s, NamePrefix); ok {
		if name == "" {
			return address.Address{}, clienterrors.ErrInvalidAddress.Wrap("empty name")
		}
		return address.FromName(name), nil
	}
	addr, err := address.Parse(s)
	if err != nil {
		return address.Address{}, clienterrors.WrapError(err, clienterrors.ErrInvalidAddress, "%q", s)
	}
	return addr, nil
}

// AddTxFlagsToCmd adds the signer flag to a message command.
func AddTxFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().String(FlagFrom, "", "Account authorizing the message (base58 or name:<name>)")
	_ = cmd.MarkFlagRequired(FlagFrom)
}

// GetFromAddress returns the signer given with --from.
func GetFromAddress(cmd *cobra.Command) (address.Address, error) {
	from, err := cmd.Flags().GetString(FlagFrom)
	if err != nil {
		return address.Address{}, err
	}
	if from == "" {
		return address.Address{}, clienterrors.ErrMissingSigner
	}
	return ParseAddress(from)
}
