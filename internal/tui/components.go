package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Component is a screen managed by the PageStack
type Component interface {
	// Name identifies the page and appears in the breadcrumbs
	Name() string

	// Init is called once, before the first Start
	Init(ctx context.Context) error

	// Start is called every time the component becomes the visible page
	Start(ctx context.Context)

	// Stop is called when the component is hidden or removed
	Stop()

	Primitive() tview.Primitive

	// Actions returns the keyboard actions shown in the status bar
	Actions() *KeyActions

	// HandleKey handles keyboard events not covered by actions
	HandleKey(event *tcell.EventKey) *tcell.EventKey
}

// BaseComponent provides default implementations for Component
type BaseComponent struct {
	name    string
	actions KeyActions
	started bool
}

// NewBaseComponent creates a new base component
func NewBaseComponent(name string) *BaseComponent {
	return &BaseComponent{
		name:    name,
		actions: NewKeyActions(),
	}
}

// Name returns the component name
func (b *BaseComponent) Name() string {
	return b.name
}

// Init provides default initialization
func (b *BaseComponent) Init(ctx context.Context) error {
	return nil
}

// Start marks the component as visible
func (b *BaseComponent) Start(ctx context.Context) {
	b.started = true
}

// Stop marks the component as hidden
func (b *BaseComponent) Stop() {
	b.started = false
}

// Started reports whether the component is the visible page
func (b *BaseComponent) Started() bool {
	return b.started
}

// Actions returns the keyboard actions
func (b *BaseComponent) Actions() *KeyActions {
	return &b.actions
}

// HandleKey provides default key handling (pass-through)
func (b *BaseComponent) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	return event
}
