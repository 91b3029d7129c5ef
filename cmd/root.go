// Package cmd provides the command-line interface for dryspot
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kedare/dryspot/internal/cache"
	"github.com/kedare/dryspot/internal/config"
	"github.com/kedare/dryspot/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	logLevel   string
	noCache    bool
	transition time.Duration

	// appConfig holds the DRYSPOT_* defaults, with flags applied on top.
	appConfig config.Config

	// isTerminal decides whether the bare command opens the interactive UI.
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

var rootCmd = &cobra.Command{
	Use:   "dryspot",
	Short: "Find dry places to escape the rain",
	Long: `dryspot suggests nearby destinations where it stays dry all day.

Run without arguments in a terminal to open the interactive screen. When stdout is
not a terminal the results for your current location are printed instead.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level '%s': %w", logLevel, err)
		}
		logger.Log.Debugf("Log level set to: %s", logLevel)

		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if isTerminal() {
			return runInteractive(cmd.Context(), "")
		}

		return runList(cmd, "", true)
	},
}

// loadConfig reads the environment and lets explicit flags win over it.
func loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("no-cache") {
		cfg.NoCache = noCache
	}

	if cmd.Flags().Changed("transition") {
		if transition < 0 {
			return fmt.Errorf("--transition must not be negative")
		}
		cfg.Transition = transition
	}

	cache.SetEnabled(!cfg.NoCache)
	appConfig = cfg

	logger.Log.Debugf("Configuration: transition=%s addr=%s no-cache=%t output=%s",
		cfg.Transition, cfg.Addr, cfg.NoCache, cfg.Output)

	return nil
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Do not read or record the recent locations history")
	rootCmd.PersistentFlags().DurationVar(&transition, "transition", 0, "Delay before results appear after choosing a location (default 150ms)")
}
