package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pure-Company/fundamentals"
	"github.com/Pure-Company/fundamentals/internal/config"
	"github.com/Pure-Company/fundamentals/internal/logging"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "fundamentals",
		Short: "A tour of Go fundamentals, one demonstration at a time",
		Long: `Runs every demonstration in order and prints the results to stdout.

Each demonstration is independent: values and records, a closed sum type,
control flow, result and option style error handling, closures, iterators,
generics, boxed and reference-counted values, and one concurrent worker.

Run "fundamentals list" to see the demonstration names.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Optional YAML file overriding demonstration parameters")

	runCmd := &cobra.Command{
		Use:   "run [name...]",
		Short: "Run only the named demonstrations, in the given order",
		Long: `Runs the named demonstrations only.

Example:
  fundamentals run basic-types concurrency`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List demonstration titles and names",
		Args:  cobra.NoArgs,
		RunE:  a.list,
	}

	rootCmd.AddCommand(runCmd, listCmd)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		Encoding: cfg.Logging.Encoding,
		Verbose:  a.verbose,
	})
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("path", a.configPath))
	return nil
}

func (a *app) demos() ([]fundamentals.Demo, error) {
	settings, err := a.cfg.Settings()
	if err != nil {
		return nil, err
	}
	return fundamentals.Demos(settings), nil
}

func (a *app) run(cmd *cobra.Command, names []string) error {
	demos, err := a.demos()
	if err != nil {
		return err
	}
	if len(names) > 0 {
		if demos, err = fundamentals.Select(demos, names); err != nil {
			return err
		}
	}
	return fundamentals.RunAll(cmd.Context(), cmd.OutOrStdout(), a.logger, demos)
}

func (a *app) list(cmd *cobra.Command, args []string) error {
	demos, err := a.demos()
	if err != nil {
		return err
	}

	width := 0
	for _, d := range demos {
		width = max(width, runewidth.StringWidth(d.Title))
	}

	out := cmd.OutOrStdout()
	for i, d := range demos {
		fmt.Fprintf(out, "%2d  %s  %s\n", i+1, runewidth.FillRight(d.Title, width), d.Name)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
