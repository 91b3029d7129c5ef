package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputRedirectorRestores(t *testing.T) {
	stdout, stderr := os.Stdout, os.Stderr

	r := newOutputRedirector()
	assert.NotSame(t, stdout, os.Stdout)
	assert.NotSame(t, stderr, os.Stderr)

	r.Restore()
	assert.Same(t, stdout, os.Stdout)
	assert.Same(t, stderr, os.Stderr)
}
