package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/entropass/entropass/internal/config"
	"github.com/entropass/entropass/internal/database"
	"github.com/entropass/entropass/internal/logger"
	"github.com/entropass/entropass/internal/repository"
	"github.com/entropass/entropass/internal/service"
)

// app is the state shared by all subcommands
type app struct {
	configPath string
	logLevel   string

	cfg     *config.Config
	log     *logger.Logger
	svc     *service.PasswordService
	closers []func()
}

// run executes the command tree and releases whatever setup opened, also
// when the command fails.
func run(a *app, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "entropass",
		Short:         "Generate passwords that meet an entropy target",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./config.yaml, ./config/config.yaml, /etc/entropass/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newInteractiveCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newVerifyCmd())

	return root
}

// setup loads configuration and wires the password service. The audit trail
// is connected only when enabled in config.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewWithWriter(a.logLevel, "console", stderr)

	var audit service.AuditRecorder
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to audit database: %w", err)
		}
		a.closers = append(a.closers, func() { db.Close() })
		audit = repository.NewAuditRepository(db)
	}

	a.svc = service.NewPasswordService(nil, audit, cfg.Generator, a.log)
	return nil
}

func (a *app) context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
