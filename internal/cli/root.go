// Package cli defines the estimate-cli cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"estimate_agent/internal/app"
	"estimate_agent/internal/config"
	"estimate_agent/pkg/logger"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	sessionID string
	verbose   bool
}

// openApp builds the dependency container for a command run.
var openApp = func(ctx context.Context, verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := &logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if verbose {
		logCfg.Level = "debug"
	}
	logger.Init(logCfg)

	return app.New(ctx, cfg, verbose)
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "estimate-cli",
		Short:         "Manage the estimate agent from the command line",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&opts.sessionID, "session", "s", "", "Wizard session id")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output and debug logging")

	root.AddCommand(
		newServeCommand(opts),
		newSetupCommand(opts),
		newListEstimatesCommand(opts),
		newCreateEstimateCommand(opts),
		newEmbedCategoriesCommand(opts),
	)
	return root
}

// Execute runs the root command. Called from main.
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withApp opens the container, runs fn and closes it.
func withApp(cmd *cobra.Command, opts *options, fn func(a *app.App) error) error {
	a, err := openApp(cmd.Context(), opts.verbose)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn(cmd.Context(), "closing resources", "error", err)
		}
	}()
	return fn(a)
}
