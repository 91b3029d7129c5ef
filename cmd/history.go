package cmd

import (
	"fmt"
	"time"

	"github.com/kedare/dryspot/internal/cache"
	"github.com/kedare/dryspot/internal/logger"
	"github.com/kedare/dryspot/internal/output"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	historyLimit        int
	historyOutputFormat string
	historyTTLReset     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show and manage recently used locations",
	Long: `Locations you search for are remembered locally and offered again as you type.
The history lives in ~/.dryspot/dryspot.db. Entries unused for longer than the
history TTL are removed automatically.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently used locations, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every recently used location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer closeHistory(c)

		removed, err := c.ClearHistory()
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Removed %d locations from history", removed)

		if result, err := c.Compact(); err != nil {
			logger.Log.Warnf("Failed to compact history database: %v", err)
		} else {
			logger.Log.Debugf("Reclaimed %d bytes", result.Reclaimed())
		}

		return nil
	},
}

var historyTTLCmd = &cobra.Command{
	Use:   "ttl [duration]",
	Short: "Show or change how long unused locations are kept",
	Long: `Without arguments, print the current history TTL.
With a duration, store it. Use Go duration strings such as "720h" (30 days) or "168h" (7 days).

Examples:
  dryspot history ttl
  dryspot history ttl 168h
  dryspot history ttl --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyTTLReset && len(args) == 1 {
			return fmt.Errorf("use either a duration or --reset, not both")
		}

		c, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer closeHistory(c)

		switch {
		case historyTTLReset:
			if err := c.ResetHistoryTTL(); err != nil {
				return err
			}
			pterm.Success.Printfln("History TTL reset to %s", formatDuration(cache.DefaultHistoryTTL))
		case len(args) == 1:
			ttl, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("invalid duration: %w. Use format like '720h' or '24h'", err)
			}

			if err := c.SetHistoryTTL(ttl); err != nil {
				return err
			}
			pterm.Success.Printfln("History TTL set to %s", formatDuration(ttl))
		default:
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "History TTL: %s\n", formatDuration(c.HistoryTTL()))

			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyClearCmd, historyTTLCmd)

	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", cache.DefaultHistoryLimit, "Maximum number of locations to show")
	historyCmd.PersistentFlags().StringVarP(&historyOutputFormat, "output", "o", output.FormatText, "Output format: text, json")
	historyTTLCmd.Flags().BoolVar(&historyTTLReset, "reset", false, "Restore the default TTL")
}

// openHistoryStore opens the cache for commands that cannot do anything without it.
func openHistoryStore() (*cache.Cache, error) {
	if !cache.Enabled() {
		return nil, fmt.Errorf("location history: %w", cache.ErrCacheDisabled)
	}

	c, err := openCache()
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	return c, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	format, err := validateFormat(historyOutputFormat)
	if err != nil {
		return err
	}

	c, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer closeHistory(c)

	entries, err := c.History(historyLimit)
	if err != nil {
		return err
	}

	return output.DisplayHistory(cmd.OutOrStdout(), entries, format)
}

// formatDuration prints whole days when the duration has no smaller remainder.
func formatDuration(d time.Duration) string {
	day := 24 * time.Hour
	if d >= day && d%day == 0 {
		days := int(d / day)
		if days == 1 {
			return "1 day"
		}

		return fmt.Sprintf("%d days", days)
	}

	return d.String()
}
