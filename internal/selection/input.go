package selection

import "strings"

// CurrentLocation is the fixed place the "use my location" shortcut commits.
// No positioning service is queried.
const CurrentLocation = "Braintree, England, United Kingdom"

// CommitFunc hands a location to the owner of the selection and reports whether it was accepted.
type CommitFunc func(location string) bool

// Input is the location entry control. It keeps its own editable buffer and
// only reports upward when a location is committed.
type Input struct {
	buffer  string
	editing bool
	commit  CommitFunc
}

// NewInput creates an input that commits through fn.
func NewInput(fn CommitFunc) *Input {
	return &Input{commit: fn}
}

// SetBuffer replaces the text being edited.
func (in *Input) SetBuffer(text string) {
	in.buffer = text
}

// Buffer returns the text being edited.
func (in *Input) Buffer() string {
	return in.buffer
}

// Submit commits the buffer. A blank buffer is left untouched and nothing is committed.
func (in *Input) Submit() bool {
	if strings.TrimSpace(in.buffer) == "" {
		return false
	}

	return in.send(in.buffer)
}

// UseCurrentLocation commits CurrentLocation.
func (in *Input) UseCurrentLocation() bool {
	return in.send(CurrentLocation)
}

func (in *Input) send(location string) bool {
	if in.commit == nil || !in.commit(location) {
		return false
	}

	in.buffer = ""
	in.editing = false

	return true
}

// Collapsed reports whether the read-only presentation should be shown for
// the externally held location.
func (in *Input) Collapsed(current string) bool {
	return current != "" && !in.editing
}

// Editing reports whether the input was reopened from the collapsed view.
func (in *Input) Editing() bool {
	return in.editing
}

// Edit reopens the input from the collapsed view.
func (in *Input) Edit() {
	in.editing = true
}

// CancelEdit collapses the input again without committing.
func (in *Input) CancelEdit() {
	in.editing = false
	in.buffer = ""
}
