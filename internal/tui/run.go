package tui

import (
	"context"
	"os"

	"github.com/kedare/dryspot/internal/logger"
	"golang.org/x/sync/errgroup"
)

// outputRedirector manages stdout/stderr redirection while the TUI owns the terminal
type outputRedirector struct {
	origStdout *os.File
	origStderr *os.File
	devNull    *os.File
}

// newOutputRedirector redirects stdout/stderr to /dev/null
func newOutputRedirector() *outputRedirector {
	r := &outputRedirector{
		origStdout: os.Stdout,
		origStderr: os.Stderr,
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return r
	}
	r.devNull = devNull

	os.Stdout = devNull
	os.Stderr = devNull

	return r
}

// Restore restores the original stdout/stderr
func (r *outputRedirector) Restore() {
	if r.origStdout != nil {
		os.Stdout = r.origStdout
	}
	if r.origStderr != nil {
		os.Stderr = r.origStderr
	}
	if r.devNull != nil {
		_ = r.devNull.Close()
	}
}

// Run runs the interactive UI until the user quits or ctx is cancelled
func Run(ctx context.Context, config *Config) error {
	// Log output would corrupt the screen.
	logger.Log.Disable()
	defer logger.Log.Restore()

	redirect := newOutputRedirector()
	defer redirect.Restore()

	app := NewApp(config)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)

		return app.Run()
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			app.Shutdown()
		case <-done:
		}

		return nil
	})

	return g.Wait()
}
