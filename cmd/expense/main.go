package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/goexpense/internal/adapter/idgen"
	"github.com/iho/goexpense/internal/adapter/repository/jsonfile"
	"github.com/iho/goexpense/internal/adapter/terminal"
	"github.com/iho/goexpense/internal/domain"
	"github.com/iho/goexpense/internal/infrastructure/config"
	"github.com/iho/goexpense/internal/infrastructure/logger"
	"github.com/iho/goexpense/internal/infrastructure/metrics"
	"github.com/iho/goexpense/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	file string
}

// app is everything a command needs after configuration is resolved.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
	store   *jsonfile.Store
	console *terminal.Console
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "expense",
		Short: "Personal expense tracker",
		Long: `Record expenses and summarise them by category or month.

Run without a subcommand to open the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			return a.runSession(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "Expense store file (overrides EXPENSE_FILE)")

	rootCmd.AddCommand(listCmd(opts), reportCmd(opts))

	return rootCmd
}

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, func(r *usecase.Reporter, e []domain.Expense) { r.PrintAll(e) })
		},
	}
}

func reportCmd(opts *options) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise expenses",
	}

	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Total spent per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, func(r *usecase.Reporter, e []domain.Expense) { r.PrintByCategory(e) })
		},
	}

	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Total spent per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, func(r *usecase.Reporter, e []domain.Expense) { r.PrintByMonth(e) })
		},
	}

	reportCmd.AddCommand(categoryCmd, monthCmd)
	return reportCmd
}

func setup(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.file != "" {
		cfg.ExpenseFile = opts.file
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	return &app{
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
		store:   jsonfile.NewStore(cfg.ExpenseFile),
		console: terminal.New(cmd.InOrStdin(), cmd.OutOrStdout()),
	}, nil
}

func (a *app) runSession(ctx context.Context) error {
	session := usecase.NewSession(usecase.SessionDeps{
		Store:    a.store,
		Console:  a.console,
		Clock:    usecase.SystemClock{},
		Recorder: a.metrics,
		IDGen:    idgen.NewULIDGenerator(),
		Logger:   a.log,
	})

	log := a.log.With().Str("session_id", session.ID()).Logger()
	log.Debug().Str("file", a.store.Path()).Msg("starting session")

	err := session.Run(ctx)
	a.flushMetrics()
	if err != nil {
		log.Error().Err(err).Str("file", a.store.Path()).Msg("session failed")
		return err
	}

	return nil
}

func runReport(cmd *cobra.Command, opts *options, render func(*usecase.Reporter, []domain.Expense)) error {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	expenses, err := a.store.Load(cmd.Context())
	if err != nil {
		a.log.Error().Err(err).Str("file", a.store.Path()).Msg("failed to load expenses")
		return fmt.Errorf("load expenses: %w", err)
	}

	render(usecase.NewReporter(a.console, a.metrics), expenses)
	a.flushMetrics()

	return nil
}

func (a *app) flushMetrics() {
	if a.cfg.MetricsTextfile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		a.log.Warn().Err(err).Str("path", a.cfg.MetricsTextfile).Msg("failed to write metrics textfile")
	}
}
