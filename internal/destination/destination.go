// Package destination holds the dry destination records shown on the results screen
// and the provider capability that supplies them.
package destination

import (
	"context"
	"errors"
	"strings"
)

// WeatherDryAllDay is the weather status every catalogue entry currently carries.
const WeatherDryAllDay = "Dry all day"

// ErrNoLocation is returned when destinations are requested for a blank location.
var ErrNoLocation = errors.New("location is required")

// Destination is a single place shown as a card on the results screen.
type Destination struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	DistanceLabel string   `json:"distance"`
	WeatherStatus string   `json:"weatherStatus"`
	Activities    []string `json:"thingsToDo"`
}

// clone returns a deep copy so callers can never mutate the catalogue.
func (d Destination) clone() Destination {
	c := d
	if d.Activities != nil {
		c.Activities = append([]string(nil), d.Activities...)
	}

	return c
}

// Provider produces the ordered destinations for a location.
type Provider interface {
	// Destinations returns the destinations to show for location, nearest first.
	Destinations(ctx context.Context, location string) ([]Destination, error)
}

// StaticProvider serves the fixed catalogue regardless of the location asked for.
type StaticProvider struct {
	entries []Destination
}

// NewStaticProvider creates a provider backed by the built-in catalogue.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{entries: catalogue}
}

// NewStaticProviderWith creates a provider serving the given entries in order.
func NewStaticProviderWith(entries []Destination) *StaticProvider {
	return &StaticProvider{entries: cloneAll(entries)}
}

// Destinations returns a copy of the fixed entries. The location only has to be non-blank.
func (p *StaticProvider) Destinations(ctx context.Context, location string) ([]Destination, error) {
	if strings.TrimSpace(location) == "" {
		return nil, ErrNoLocation
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return cloneAll(p.entries), nil
}

func cloneAll(entries []Destination) []Destination {
	out := make([]Destination, len(entries))
	for i, d := range entries {
		out[i] = d.clone()
	}

	return out
}
