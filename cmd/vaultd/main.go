package main

import (
	"fmt"
	"os"

	clienterrors "github.com/Zanda256/interest-bearing-vault/client/errors"
)

func main() {
	rootCmd, clientCtx := NewRootCmd()
	err := rootCmd.Execute()

	if clientCtx.App != nil {
		if closeErr := clientCtx.App.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, clienterrors.Describe(err))
		if clienterrors.IsRetryable(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
