package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entropass/entropass/internal/hashing"
)

var errHashMismatch = errors.New("password does not match hash")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <password> <hash>",
		Short: "Check a password against an argon2id hash printed by generate --hash",
		Args:  cobra.ExactArgs(2),
		// hashing needs neither config nor the audit database
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := hashing.Verify(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return errHashMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password matches hash.")
			return nil
		},
	}
}
