// Package tui is the interactive terminal UI: the empty screen with the location
// input, the results screen with destination cards and the decorative map.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/logger"
	"github.com/kedare/dryspot/internal/selection"
	"github.com/rivo/tview"
)

const (
	// DefaultRevealStep is the delay between two cards appearing on the results screen.
	DefaultRevealStep = 75 * time.Millisecond

	flashDuration     = 3 * time.Second
	maxSuggestions    = 8
	suggestionHistory = 50
)

// HistorySource supplies previously used locations, most recent first.
type HistorySource interface {
	RecentLocations(limit int) ([]string, error)
}

// Config holds the TUI configuration
type Config struct {
	Controller *selection.Controller
	Provider   destination.Provider
	History    HistorySource
	// Scheduler drives the staggered reveal; nil uses the wall clock.
	Scheduler  selection.Scheduler
	RevealStep time.Duration
	// NoAnimation disables the weather animation ticker.
	NoAnimation bool
	// OpenInMaps is called in addition to logging when a card is opened.
	OpenInMaps func(d destination.Destination)
	// InitialLocation, when not blank, is submitted as soon as the app is built.
	InitialLocation string
}

// App is the main TUI application
type App struct {
	*tview.Application
	config     *Config
	styles     *Styles
	pageStack  *PageStack
	header     *tview.TextView
	statusBar  *tview.TextView
	flash      *tview.TextView
	footer     *tview.TextView
	globalKeys KeyActions
	ctx        context.Context
	cancel     context.CancelFunc
	flashMx    sync.Mutex
	flashGen   uint64

	input   *selection.Input
	home    *HomeView
	results *ResultsView
	screen  Component
	state   selection.State

	// queue runs f on the UI goroutine.
	queue func(f func())
}

// NewApp creates the application and shows the screen matching the controller state
func NewApp(config *Config) *App {
	if config.Controller == nil {
		config.Controller = selection.NewController()
	}
	if config.Provider == nil {
		config.Provider = destination.NewStaticProvider()
	}
	if config.Scheduler == nil {
		config.Scheduler = selection.WallClock()
	}
	if config.RevealStep <= 0 {
		config.RevealStep = DefaultRevealStep
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Application: tview.NewApplication(),
		config:      config,
		styles:      DefaultStyles(),
		globalKeys:  NewKeyActions(),
		ctx:         ctx,
		cancel:      cancel,
		input:       selection.NewInput(config.Controller.Commit),
	}
	app.queue = func(f func()) { app.QueueUpdateDraw(f) }
	app.EnableMouse(true)

	app.pageStack = NewPageStack(app)
	app.home = NewHomeView(app)
	app.results = NewResultsView(app)

	app.setupGlobalKeys()
	app.buildUI()

	config.Controller.Subscribe(func(s selection.State) {
		app.queue(func() { app.render(s) })
	})
	app.render(config.Controller.State())

	if config.InitialLocation != "" {
		app.input.SetBuffer(config.InitialLocation)
		app.input.Submit()
	}

	return app
}

// setupGlobalKeys configures global keyboard shortcuts
func (a *App) setupGlobalKeys() {
	a.globalKeys.Add(tcell.KeyCtrlC, KeyAction{
		Description: "Quit",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			a.Stop()
			return nil
		},
		Visible: true,
	})

	a.globalKeys.AddRune('q', KeyAction{
		Description: "Quit",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			a.Stop()
			return nil
		},
	})

	a.globalKeys.AddRune('?', KeyAction{
		Description: "Help",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			a.ShowHelp()
			return nil
		},
		Visible: true,
	})

	a.globalKeys.Add(tcell.KeyEscape, KeyAction{
		Description: "Back",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			if a.pageStack.Depth() > 1 {
				a.pageStack.Pop()
				return nil
			}
			return evt
		},
	})
}

// buildUI constructs the UI layout
func (a *App) buildUI() {
	a.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.header.SetBackgroundColor(a.styles.BgColor)

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.statusBar.SetBackgroundColor(a.styles.BgColor)

	a.flash = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.flash.SetBackgroundColor(a.styles.BgColor)

	a.footer = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(colorize(a.styles.MutedColor, destination.CreditsLine()))
	a.footer.SetBackgroundColor(a.styles.BgColor)

	mainFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 1, 0, false).
		AddItem(a.pageStack.Pages(), 0, 1, true).
		AddItem(a.footer, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.flash, 1, 0, false)

	a.SetRoot(mainFlex, true)
	a.SetInputCapture(a.handleGlobalKeys)
}

// typing reports whether keystrokes currently go to a text field.
func (a *App) typing() bool {
	_, ok := a.GetFocus().(*tview.InputField)

	return ok
}

// handleGlobalKeys routes an event through the global keys, then the visible component.
// Printable keys are left alone while a text field has focus.
func (a *App) handleGlobalKeys(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyRune && a.typing() {
		return event
	}

	if action, ok := a.globalKeys.Get(event); ok {
		if result := action.Action(event); result == nil {
			return nil
		}
	}

	comp := a.pageStack.Top()
	if comp == nil {
		return event
	}

	if result := comp.Actions().Handle(event); result == nil {
		return nil
	}

	return comp.HandleKey(event)
}

// render brings the screens in line with a controller snapshot. It runs on the UI goroutine.
func (a *App) render(s selection.State) {
	a.state = s

	target := Component(a.home)
	if s.Phase == selection.PhaseShowing {
		a.results.SetLocation(s.Location)
		target = a.results
	} else {
		a.home.SetLeaving(s.Transitioning, s.Pending)
	}

	if a.screen != target {
		a.screen = target
		if target == Component(a.results) {
			a.results.Enter()
		}
		if err := a.pageStack.Reset(target); err != nil {
			a.Flash(fmt.Sprintf("Failed to show %s: %v", target.Name(), err), true)
		}

		return
	}

	a.updateStatusBar()
}

// Run starts the TUI event loop
func (a *App) Run() error {
	return a.Application.Run()
}

// Stop stops the TUI application. It must run on the event loop; use Shutdown elsewhere.
func (a *App) Stop() {
	a.cancel()
	a.pageStack.Stop()
	a.config.Controller.Close()
	a.Application.Stop()
}

// Shutdown stops the app from any goroutine. The teardown itself runs on the event loop.
func (a *App) Shutdown() {
	a.cancel()
	a.queue(a.Stop)
}

// onStackChanged refreshes the chrome after navigation
func (a *App) onStackChanged() {
	a.updateCrumbs()
	a.updateStatusBar()
}

// updateCrumbs updates the header breadcrumbs
func (a *App) updateCrumbs() {
	text := "[aqua::b]dryspot[-::-]"
	if crumbs := a.pageStack.GetCrumbs(); len(crumbs) > 0 {
		text += " [gray]> " + strings.Join(crumbs, " > ") + "[-]"
	}

	a.header.SetText(text)
}

// updateStatusBar updates the status bar with hints
func (a *App) updateStatusBar() {
	var hints []string

	if comp := a.pageStack.Top(); comp != nil {
		hints = comp.Actions().Hints()
	}

	hints = append(hints, a.globalKeys.Hints()...)

	a.statusBar.SetText(" " + strings.Join(hints, "  "))
}

// Flash displays a temporary message
func (a *App) Flash(message string, isError bool) {
	a.flashMx.Lock()
	a.flashGen++
	gen := a.flashGen
	a.flashMx.Unlock()

	color := a.styles.FlashOK
	if isError {
		color = a.styles.FlashError
	}

	a.flash.SetText(fmt.Sprintf("[%s::b] %s ", ColorName(color), tview.Escape(message)))

	go func() {
		select {
		case <-a.ctx.Done():
			return
		case <-time.After(flashDuration):
			a.clearFlash(gen)
		}
	}()
}

// clearFlash clears the flash message unless a newer one replaced it
func (a *App) clearFlash(gen uint64) {
	a.flashMx.Lock()
	current := a.flashGen == gen
	a.flashMx.Unlock()

	if current {
		a.queue(func() { a.flash.SetText("") })
	}
}

// ShowHelp displays the help view
func (a *App) ShowHelp() {
	if top := a.pageStack.Top(); top != nil && top.Name() == helpPageName {
		return
	}

	if err := a.pageStack.Push(NewHelpView(a)); err != nil {
		a.Flash("Failed to show help", true)
	}
}

// openInMaps is the card affordance. There is no maps integration; it only reports.
func (a *App) openInMaps(d destination.Destination) {
	logger.Log.Infof("Opening %s in maps", d.Name)

	if a.config.OpenInMaps != nil {
		a.config.OpenInMaps(d)
	}

	a.Flash(fmt.Sprintf("Opening %s in maps", d.Name), false)
}

// suggest offers recently used locations matching the typed query for autocompletion.
func (a *App) suggest(current string) []string {
	query := parseQuery(current)
	if query.empty() || a.config.History == nil {
		return nil
	}
	typed := strings.ToLower(strings.TrimSpace(current))

	recent, err := a.config.History.RecentLocations(suggestionHistory)
	if err != nil {
		logger.Log.Debugf("Failed to load location history: %v", err)

		return nil
	}

	var matches []string
	for _, loc := range recent {
		if strings.ToLower(loc) == typed || !query.matches(loc) {
			continue
		}

		matches = append(matches, loc)
		if len(matches) == maxSuggestions {
			break
		}
	}

	return matches
}

// GetStyles returns the app styles
func (a *App) GetStyles() *Styles {
	return a.styles
}

// GetContext returns the app context
func (a *App) GetContext() context.Context {
	return a.ctx
}
