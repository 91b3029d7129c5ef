package logger

import (
	"os"

	"github.com/pterm/pterm"
)

// InitPterm configures pterm to write all diagnostic output to stderr,
// leaving stdout clean for rendered results and JSON.
func InitPterm() {
	pterm.Info.Writer = os.Stderr
	pterm.Success.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Debug.Writer = os.Stderr

	// Boxes and tables stay on stdout: the plain renderer writes them there.
}
