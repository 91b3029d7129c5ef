package cmd

import (
	"context"
	"fmt"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/selection"
	"github.com/kedare/dryspot/internal/tui"
	"github.com/spf13/cobra"
)

var noAnimation bool

var interactiveCmd = &cobra.Command{
	Use:   "interactive [location]",
	Short: "Launch the interactive escape-the-rain screen",
	Long: `Start the terminal UI. Type a location or use your current location to see
dry destinations nearby, laid out as cards with a map.

When a location is given it is submitted straight away.

Press '?' at any time to see keyboard shortcuts.`,
	Aliases: []string{"i"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := ""
		if len(args) == 1 {
			location = args[0]
		}

		return runInteractive(cmd.Context(), location)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().BoolVar(&noAnimation, "no-animation", false, "Disable the weather animation")
}

func runInteractive(ctx context.Context, location string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	history := openHistory()
	defer closeHistory(history)

	controller := selection.NewController(selection.WithDelay(appConfig.Transition))
	defer controller.Close()

	tuiConfig := &tui.Config{
		Controller:      controller,
		Provider:        destination.NewStaticProvider(),
		NoAnimation:     noAnimation,
		InitialLocation: location,
	}

	if history != nil {
		tuiConfig.History = history
		selection.RecordSettled(controller, history)
	}

	if err := tui.Run(ctx, tuiConfig); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
