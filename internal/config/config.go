// Package config loads dryspot settings from DRYSPOT_* environment variables.
// Command-line flags override these values in cmd.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kedare/dryspot/internal/selection"
)

// Config holds the environment-derived defaults for every command.
type Config struct {
	// Transition is the delay between committing a location and showing results.
	// Defaults to 150ms. Set DRYSPOT_TRANSITION to any time.ParseDuration value.
	Transition time.Duration

	// Addr is the listen address of the HTTP API. Defaults to "127.0.0.1:8080".
	Addr string

	// NoCache disables the recent locations history when DRYSPOT_NO_CACHE is truthy.
	NoCache bool

	// Output is the preferred output format of the list command ("text" or "json").
	Output string
}

// Load reads configuration from the environment.
// It returns an error naming every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Transition: selection.DefaultTransitionDelay,
		Addr:       getEnv("DRYSPOT_ADDR", "127.0.0.1:8080"),
		Output:     strings.ToLower(getEnv("DRYSPOT_OUTPUT", "text")),
	}

	var invalid []string

	if raw := os.Getenv("DRYSPOT_TRANSITION"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, "DRYSPOT_TRANSITION")
		} else {
			cfg.Transition = d
		}
	}

	if raw := os.Getenv("DRYSPOT_NO_CACHE"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, "DRYSPOT_NO_CACHE")
		} else {
			cfg.NoCache = v
		}
	}

	if cfg.Output != "text" && cfg.Output != "json" {
		invalid = append(invalid, "DRYSPOT_OUTPUT")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
