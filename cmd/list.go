package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/output"
	"github.com/kedare/dryspot/internal/selection"
	"github.com/spf13/cobra"
)

var (
	listOutputFormat string
	listHere         bool
)

var listCmd = &cobra.Command{
	Use:   "list [location]",
	Short: "Print the dry destinations for a location",
	Long: `Print the results screen without the interactive UI: the selected location,
a card per destination and the map.

The location is shown as given; it does not change which destinations are suggested.

Examples:
  dryspot list "Bury St Edmunds"
  dryspot list --here
  dryspot list Cambridge -o json`,
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := ""
		if len(args) == 1 {
			location = args[0]
		}

		return runList(cmd, location, listHere)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listHere, "here", false, "Use your current location")
	listCmd.Flags().StringVarP(&listOutputFormat, "output", "o",
		output.DefaultFormat(output.FormatText, output.Formats),
		"Output format: text, json")
}

// resolveLocation picks the location to commit from the argument and --here.
func resolveLocation(location string, here bool) (string, error) {
	if here {
		if location != "" {
			return "", errors.New("use either a location or --here, not both")
		}

		return selection.CurrentLocation, nil
	}

	if strings.TrimSpace(location) == "" {
		return "", fmt.Errorf("a location or --here is required: %w", destination.ErrNoLocation)
	}

	return location, nil
}

// listFormat returns --output when given, the DRYSPOT_OUTPUT default otherwise.
func listFormat(cmd *cobra.Command) (string, error) {
	format := appConfig.Output
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		format = strings.ToLower(strings.TrimSpace(listOutputFormat))
	}

	format, err := validateFormat(format)
	if err != nil {
		return "", err
	}

	output.SetFormat(format)

	return format, nil
}

// validateFormat normalises an --output value and rejects unsupported ones. Blank means text.
func validateFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return output.FormatText, nil
	}

	if !slices.Contains(output.Formats, format) {
		return "", fmt.Errorf("unsupported output format %q (use %s)", format, strings.Join(output.Formats, ", "))
	}

	return format, nil
}

func runList(cmd *cobra.Command, location string, here bool) error {
	format, err := listFormat(cmd)
	if err != nil {
		return err
	}

	location, err = resolveLocation(location, here)
	if err != nil {
		return err
	}

	history := openHistory()
	defer closeHistory(history)

	// There is no screen to animate, so the selection settles at once.
	controller := selection.NewController(selection.WithDelay(0))
	defer controller.Close()

	if history != nil {
		selection.RecordSettled(controller, history)
	}

	spin := output.NewSpinner(fmt.Sprintf("Finding dry places near %s", location))
	spin.Start()

	if !controller.Commit(location) {
		spin.Fail("No location given")

		return destination.ErrNoLocation
	}

	selected := controller.State().Location

	dests, err := destination.NewStaticProvider().Destinations(cmd.Context(), selected)
	if err != nil {
		spin.Fail("Failed to find destinations")

		return fmt.Errorf("failed to load destinations: %w", err)
	}

	spin.Success(fmt.Sprintf("Found %d dry destinations", len(dests)))

	return output.DisplayDestinations(cmd.OutOrStdout(), selected, dests, format)
}
