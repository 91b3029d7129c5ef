package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpinner(t *testing.T, message string) (*Spinner, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	s := NewSpinner(message)
	s.enabled = false
	s.writer = &buf

	return s, &buf
}

func TestNewSpinner(t *testing.T) {
	t.Run("creates spinner with message", func(t *testing.T) {
		spinner := NewSpinner("test message")
		require.NotNil(t, spinner)
		assert.Equal(t, "test message", spinner.message)
		assert.NotNil(t, spinner.writer)
		assert.False(t, spinner.active)
		assert.False(t, spinner.stopped)
	})

	t.Run("disables spinner in JSON mode", func(t *testing.T) {
		SetFormat("json")
		t.Cleanup(func() { SetFormat("text") })

		spinner := NewSpinner("test message")
		assert.True(t, spinner.jsonMode)
		assert.False(t, spinner.enabled)
	})
}

func TestSpinnerStartAndStop(t *testing.T) {
	t.Run("start marks spinner as active", func(t *testing.T) {
		spinner, buf := newTestSpinner(t, "Finding dry places")
		spinner.Start()
		assert.True(t, spinner.active)
		assert.Equal(t, "Finding dry places...\n", buf.String())
	})

	t.Run("start is idempotent", func(t *testing.T) {
		spinner, buf := newTestSpinner(t, "test")
		spinner.Start()
		spinner.Start()
		assert.True(t, spinner.active)
		assert.Equal(t, "test...\n", buf.String())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		spinner, _ := newTestSpinner(t, "test")
		spinner.Start()
		spinner.Stop()
		spinner.Stop()
		assert.True(t, spinner.stopped)
	})

	t.Run("cannot start after stop", func(t *testing.T) {
		spinner, buf := newTestSpinner(t, "test")
		spinner.Stop()
		spinner.Start()
		assert.False(t, spinner.active)
		assert.Empty(t, buf.String())
	})
}

func TestSpinnerUpdate(t *testing.T) {
	spinner, buf := newTestSpinner(t, "initial")
	spinner.Update("before start")
	assert.Empty(t, buf.String())

	spinner.Start()
	spinner.Update("updated")
	assert.Equal(t, "updated", spinner.message)
	assert.Equal(t, "before start...\nupdated...\n", buf.String())

	spinner.Stop()
	spinner.Update("after stop")
	assert.NotContains(t, buf.String(), "after stop")
}

func TestSpinnerSuccessFailInfo(t *testing.T) {
	for name, finish := range map[string]func(*Spinner, string){
		"success": (*Spinner).Success,
		"fail":    (*Spinner).Fail,
		"info":    (*Spinner).Info,
	} {
		t.Run(name, func(t *testing.T) {
			spinner, buf := newTestSpinner(t, "test")
			spinner.Start()
			finish(spinner, "done")
			assert.True(t, spinner.stopped)
			assert.Contains(t, buf.String(), "done")
		})
	}
}

func TestSpinnerJSONModeIsSilent(t *testing.T) {
	SetFormat("json")
	t.Cleanup(func() { SetFormat("text") })

	spinner, buf := newTestSpinner(t, "test")
	spinner.Start()
	spinner.Update("still quiet")
	spinner.Success("done")

	assert.True(t, spinner.stopped)
	assert.Empty(t, buf.String())
}
