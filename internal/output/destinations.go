// Package output renders destinations, the map and the location history for
// non-interactive use, as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kedare/dryspot/internal/cache"
	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/mapgrid"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

const (
	// Title and Subtitle head the results screen.
	Title    = "Escape the Rain"
	Subtitle = "Can't go outside? Find the nearest places where it's not raining"

	defaultWidth = 80
	maxWidth     = 100
	mapHeight    = 14
	tagSeparator = " · "
)

// Results is the JSON document for a rendered results screen.
type Results struct {
	Location     string                    `json:"location"`
	Destinations []destination.Destination `json:"destinations"`
}

// DisplayDestinations renders the results screen for location.
//
// Supported formats:
//   - "json": the Results document
//   - "text" (default): title, selected location, one card per destination, map and credits
func DisplayDestinations(w io.Writer, location string, dests []destination.Destination, format string) error {
	if strings.ToLower(format) == FormatJSON {
		if dests == nil {
			dests = []destination.Destination{}
		}

		return displayJSON(w, Results{Location: location, Destinations: dests})
	}

	width, ok := detectTerminalWidth()
	if !ok {
		width = defaultWidth
	}

	return renderDestinationsText(w, location, dests, min(width, maxWidth))
}

func renderDestinationsText(w io.Writer, location string, dests []destination.Destination, width int) error {
	var b strings.Builder

	b.WriteString(pterm.Bold.Sprint(Title) + "\n")
	b.WriteString(pterm.FgGray.Sprint(Subtitle) + "\n\n")
	b.WriteString("Selected: " + pterm.FgCyan.Sprint(location) + "\n\n")

	b.WriteString(pterm.Bold.Sprint("Dry destinations nearby") + "\n")

	if len(dests) == 0 {
		b.WriteString("No destinations.\n")
	}

	for _, d := range dests {
		b.WriteString(pterm.DefaultBox.WithTitle(d.Name).Sprint(strings.Join(CardLines(d, width-4), "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n" + pterm.Bold.Sprint("Map") + "\n")

	layout := mapgrid.Compute(width-4, mapHeight, dests)
	b.WriteString(pterm.DefaultBox.Sprint(strings.Join(padLines(layout.Lines(), width-4), "\n")))
	b.WriteString("\n\n")

	b.WriteString(pterm.FgGray.Sprint(destination.CreditsLine()) + "\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// CardLines returns the plain text body of a destination card wrapped to width.
func CardLines(d destination.Destination, width int) []string {
	lines := []string{
		d.DistanceLabel + " away",
		"☀ " + d.WeatherStatus,
		"Things to do:",
	}

	return append(lines, WrapTags(d.Activities, width)...)
}

// WrapTags joins tags with a separator, breaking lines so none is wider than width.
// A single tag wider than width gets a line of its own.
func WrapTags(tags []string, width int) []string {
	var (
		lines   []string
		current string
	)

	for _, tag := range tags {
		if current == "" {
			current = tag

			continue
		}

		candidate := current + tagSeparator + tag
		if width > 0 && runewidth.StringWidth(candidate) > width {
			lines = append(lines, current)
			current = tag

			continue
		}

		current = candidate
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// padLines right-pads lines so the map box keeps its full width.
func padLines(lines []string, width int) []string {
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = runewidth.FillRight(line, width)
	}

	return padded
}

// DisplayHistory renders recently used locations.
func DisplayHistory(w io.Writer, entries []cache.HistoryEntry, format string) error {
	if strings.ToLower(format) == FormatJSON {
		type row struct {
			Location  string    `json:"location"`
			LastUsed  time.Time `json:"lastUsed"`
			UseCount  int       `json:"useCount"`
			SessionID string    `json:"sessionId,omitempty"`
		}

		rows := make([]row, len(entries))
		for i, e := range entries {
			rows[i] = row{Location: e.Location, LastUsed: e.LastUsed, UseCount: e.UseCount, SessionID: e.SessionID}
		}

		return displayJSON(w, rows)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No recent locations.")

		return err
	}

	data := pterm.TableData{{"Location", "Last used", "Uses"}}
	for _, e := range entries {
		data = append(data, []string{e.Location, e.LastUsed.Local().Format(time.DateTime), fmt.Sprint(e.UseCount)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}

	_, err = fmt.Fprintln(w, table)

	return err
}

func displayJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}
