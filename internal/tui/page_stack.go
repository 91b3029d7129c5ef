package tui

import (
	"context"
	"sync"

	"github.com/rivo/tview"
)

// PageStack manages a stack of components for navigation
type PageStack struct {
	pages  *tview.Pages
	stack  []Component
	inited map[Component]bool
	app    *App
	mx     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPageStack creates a new page stack
func NewPageStack(app *App) *PageStack {
	ctx, cancel := context.WithCancel(app.ctx)

	return &PageStack{
		pages:  tview.NewPages(),
		stack:  make([]Component, 0),
		inited: make(map[Component]bool),
		app:    app,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Pages returns the underlying tview.Pages
func (ps *PageStack) Pages() *tview.Pages {
	return ps.pages
}

// Push adds a new component on top of the stack
func (ps *PageStack) Push(component Component) error {
	ps.mx.Lock()

	if err := ps.initLocked(component); err != nil {
		ps.mx.Unlock()

		return err
	}

	if len(ps.stack) > 0 {
		ps.stack[len(ps.stack)-1].Stop()
	}

	ps.stack = append(ps.stack, component)
	ps.showLocked(component)
	ps.mx.Unlock()

	ps.app.onStackChanged()

	return nil
}

// Reset replaces the whole stack with component
func (ps *PageStack) Reset(component Component) error {
	ps.mx.Lock()

	if err := ps.initLocked(component); err != nil {
		ps.mx.Unlock()

		return err
	}

	for i := len(ps.stack) - 1; i >= 0; i-- {
		ps.stack[i].Stop()
		if ps.stack[i] != component {
			ps.pages.RemovePage(ps.stack[i].Name())
		}
	}

	ps.stack = []Component{component}
	ps.showLocked(component)
	ps.mx.Unlock()

	ps.app.onStackChanged()

	return nil
}

// Pop removes the top component from the stack. The last component is never removed.
func (ps *PageStack) Pop() Component {
	ps.mx.Lock()

	if len(ps.stack) < 2 {
		ps.mx.Unlock()

		return nil
	}

	component := ps.stack[len(ps.stack)-1]
	ps.stack = ps.stack[:len(ps.stack)-1]

	component.Stop()
	ps.pages.RemovePage(component.Name())

	ps.showLocked(ps.stack[len(ps.stack)-1])
	ps.mx.Unlock()

	ps.app.onStackChanged()

	return component
}

func (ps *PageStack) initLocked(component Component) error {
	if ps.inited[component] {
		return nil
	}

	if err := component.Init(ps.ctx); err != nil {
		return err
	}
	ps.inited[component] = true

	return nil
}

func (ps *PageStack) showLocked(component Component) {
	if !ps.pages.HasPage(component.Name()) {
		ps.pages.AddPage(component.Name(), component.Primitive(), true, true)
	}
	ps.pages.SwitchToPage(component.Name())
	ps.app.SetFocus(component.Primitive())

	component.Start(ps.ctx)
}

// Top returns the top component without removing it
func (ps *PageStack) Top() Component {
	ps.mx.RLock()
	defer ps.mx.RUnlock()

	if len(ps.stack) == 0 {
		return nil
	}

	return ps.stack[len(ps.stack)-1]
}

// Depth returns the current stack depth
func (ps *PageStack) Depth() int {
	ps.mx.RLock()
	defer ps.mx.RUnlock()

	return len(ps.stack)
}

// GetCrumbs returns breadcrumb path
func (ps *PageStack) GetCrumbs() []string {
	ps.mx.RLock()
	defer ps.mx.RUnlock()

	crumbs := make([]string, len(ps.stack))
	for i, component := range ps.stack {
		crumbs[i] = component.Name()
	}

	return crumbs
}

// Stop stops every component and cancels their context
func (ps *PageStack) Stop() {
	ps.cancel()

	ps.mx.Lock()
	for _, component := range ps.stack {
		component.Stop()
	}
	ps.mx.Unlock()
}
