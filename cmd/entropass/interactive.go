package main

import (
	"github.com/spf13/cobra"

	"github.com/entropass/entropass/internal/cli"
	"github.com/entropass/entropass/internal/model"
	"github.com/entropass/entropass/internal/service"
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Answer prompts to generate a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Ask()
			if err != nil {
				return err
			}

			out, err := a.svc.Generate(a.context(cmd), service.GenerateInput{
				Letters:          &answers.Composition.Letters,
				Symbols:          &answers.Composition.Symbols,
				Numbers:          &answers.Composition.Numbers,
				MinEntropyBits:   &answers.MinEntropyBits,
				ExcludeAmbiguous: &answers.ExcludeAmbiguous,
				Source:           model.SourceCLI,
			})
			if err != nil {
				return err
			}

			cli.RenderResult(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
