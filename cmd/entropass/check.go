package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entropass/entropass/internal/cli"
)

var errEmptyPassword = errors.New("password is required")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Report weaknesses in a password read from the argument or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				p := cli.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				line, err := p.ReadLine("Password: ")
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}
			if password == "" {
				return errEmptyPassword
			}

			cli.RenderCheck(cmd.OutOrStdout(), a.svc.Check(password))
			return nil
		},
	}
}
