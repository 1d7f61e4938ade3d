package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entropass/entropass/internal/cli"
	"github.com/entropass/entropass/internal/generator"
	"github.com/entropass/entropass/internal/hashing"
	"github.com/entropass/entropass/internal/model"
	"github.com/entropass/entropass/internal/service"
)

type generateOptions struct {
	letters          int
	symbols          int
	numbers          int
	minEntropyBits   float64
	excludeAmbiguous bool
	attempts         int
	count            int
	qr               bool
	hash             bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords from flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.letters, "letters", "l", 0, "number of letters (min 4, default from config)")
	f.IntVarP(&opts.symbols, "symbols", "s", 0, "number of symbols (min 2, default from config)")
	f.IntVarP(&opts.numbers, "numbers", "n", 0, "number of digits (min 2, default from config)")
	f.Float64VarP(&opts.minEntropyBits, "entropy", "e", 0, "minimum entropy in bits (default from config)")
	f.BoolVarP(&opts.excludeAmbiguous, "exclude-ambiguous", "x", false, "leave out look-alike characters such as l, I, O, 0 and 1")
	f.IntVar(&opts.attempts, "attempts", 0, "candidates to try before giving up (default from config)")
	f.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	f.BoolVar(&opts.qr, "qr", false, "also print each password as a QR code")
	f.BoolVar(&opts.hash, "hash", false, "also print an argon2id hash of each password")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts generateOptions) error {
	in := service.GenerateInput{Source: model.SourceCLI}
	f := cmd.Flags()
	if f.Changed("letters") {
		in.Letters = &opts.letters
	}
	if f.Changed("symbols") {
		in.Symbols = &opts.symbols
	}
	if f.Changed("numbers") {
		in.Numbers = &opts.numbers
	}
	if f.Changed("entropy") {
		in.MinEntropyBits = &opts.minEntropyBits
	}
	if f.Changed("exclude-ambiguous") {
		in.ExcludeAmbiguous = &opts.excludeAmbiguous
	}
	if f.Changed("attempts") {
		if opts.attempts < 1 || opts.attempts > generator.MaxAttemptsLimit {
			return fmt.Errorf("attempts must be between 1 and %d", generator.MaxAttemptsLimit)
		}
		in.MaxAttempts = &opts.attempts
	}
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	w := cmd.OutOrStdout()
	for i := 0; i < opts.count; i++ {
		out, err := a.svc.Generate(a.context(cmd), in)
		if err != nil {
			return err
		}
		cli.RenderResult(w, out)

		if opts.hash {
			encoded, err := hashing.Hash(out.Password, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "- Argon2id: %s\n", encoded)
		}
		if opts.qr {
			fmt.Fprintln(w)
			if err := cli.RenderQR(w, out.Password); err != nil {
				return err
			}
		}
	}
	return nil
}
