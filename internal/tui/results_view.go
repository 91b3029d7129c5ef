package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/logger"
	"github.com/kedare/dryspot/internal/mapgrid"
	"github.com/kedare/dryspot/internal/output"
	"github.com/kedare/dryspot/internal/selection"
	"github.com/rivo/tview"
)

const (
	resultsPageName = "Results"
	resultsTitle    = "Escape the Rain"
	resultsSubtitle = "Can't go outside? Find the nearest places where it's not raining"
	cardsTitle      = " Dry destinations nearby "
	cardTagWidth    = 60
)

// ResultsView is the results screen: the collapsed location control, the
// destination cards and the map
type ResultsView struct {
	*BaseComponent
	app      *App
	layout   *tview.Flex
	header   *tview.TextView
	control  *tview.Pages
	selected *tview.TextView
	form     *LocationForm
	cards    *tview.TextView
	mapView  *MapView

	location string
	dests    []destination.Destination
	index    int
	revealed int

	revealGen   uint64
	timers      []selection.Timer
	needsReveal bool
}

// NewResultsView creates the results screen
func NewResultsView(app *App) *ResultsView {
	v := &ResultsView{
		BaseComponent: NewBaseComponent(resultsPageName),
		app:           app,
	}

	v.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(fmt.Sprintf("[%s::b]%s[-::-]\n[%s]%s[-]",
			ColorName(app.styles.TitleFg), resultsTitle,
			ColorName(app.styles.MutedColor), tview.Escape(resultsSubtitle)))

	v.selected = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	v.form = NewLocationForm(app).SetCancelFunc(v.cancelEdit)

	v.control = tview.NewPages().
		AddPage("collapsed", v.selected, true, true).
		AddPage("editing", v.form, true, false)

	v.cards = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true).
		SetScrollable(true)
	v.cards.SetBorder(true).
		SetTitle(cardsTitle).
		SetBorderColor(app.styles.CardBorder).
		SetBackgroundColor(app.styles.BgColor)

	v.mapView = NewMapView(app.styles)

	body := tview.NewFlex().
		AddItem(v.cards, 0, 3, false).
		AddItem(v.mapView, 0, 2, false)

	v.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.header, 2, 0, false).
		AddItem(v.control, 3, 0, false).
		AddItem(body, 0, 1, true)
	v.layout.SetBackgroundColor(app.styles.BgColor)

	v.setupActions()

	return v
}

func (v *ResultsView) setupActions() {
	next := KeyAction{
		Description: "Next",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			if v.editing() {
				return evt
			}
			v.Select(v.index + 1)
			return nil
		},
	}
	prev := KeyAction{
		Description: "Previous",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			if v.editing() {
				return evt
			}
			v.Select(v.index - 1)
			return nil
		},
	}
	open := KeyAction{
		Description: "Open in Maps",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			if v.editing() {
				return evt
			}
			v.OpenSelected()
			return nil
		},
		Visible: true,
	}

	v.actions.Add(tcell.KeyEnter, open)
	v.actions.AddRune('o', KeyAction{Description: open.Description, Action: open.Action})
	v.actions.AddRune('e', KeyAction{
		Description: "Edit location",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			v.Edit()
			return nil
		},
		Visible: true,
	})
	v.actions.Add(tcell.KeyDown, next)
	v.actions.AddRune('j', next)
	v.actions.Add(tcell.KeyUp, prev)
	v.actions.AddRune('k', prev)
	v.actions.Add(tcell.KeyEscape, KeyAction{
		Description: "Cancel edit",
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			if !v.editing() {
				return evt
			}
			v.cancelEdit()
			return nil
		},
	})
}

// Primitive returns the tview primitive
func (v *ResultsView) Primitive() tview.Primitive {
	return v.layout
}

// Start plays the staggered reveal of the cards and the map when the screen is entered
// from the search screen. Returning from help keeps what was already revealed.
func (v *ResultsView) Start(ctx context.Context) {
	v.BaseComponent.Start(ctx)
	v.syncControl()

	if v.needsReveal {
		v.needsReveal = false
		v.startReveal()
	}
}

// Enter arms the reveal for the next Start
func (v *ResultsView) Enter() {
	v.needsReveal = true
}

// SetLocation shows location in the collapsed control and loads the destinations
func (v *ResultsView) SetLocation(location string) {
	if location != v.location {
		v.location = location

		dests, err := v.app.config.Provider.Destinations(v.app.ctx, location)
		if err != nil {
			logger.Log.Warnf("Failed to load destinations for %q: %v", location, err)
			v.app.Flash(fmt.Sprintf("Failed to load destinations: %v", err), true)
			dests = nil
		}

		v.dests = dests
		v.mapView.SetDestinations(dests)
		v.index = min(v.index, max(len(dests)-1, 0))
	}

	v.selected.SetText(fmt.Sprintf("Selected: [%s::b]%s[-::-]  [%s](e to edit)[-]",
		ColorName(v.app.styles.AccentFg), tview.Escape(location), ColorName(v.app.styles.MutedColor)))

	v.syncControl()
	v.drawCards()
}

// Location returns the location shown
func (v *ResultsView) Location() string {
	return v.location
}

// Edit reopens the location input
func (v *ResultsView) Edit() {
	v.app.input.Edit()
	v.syncControl()
}

func (v *ResultsView) cancelEdit() {
	v.app.input.CancelEdit()
	v.syncControl()
}

func (v *ResultsView) editing() bool {
	return !v.app.input.Collapsed(v.location)
}

// syncControl shows the collapsed or the editing control
func (v *ResultsView) syncControl() {
	if v.editing() {
		v.control.SwitchToPage("editing")
		v.form.Sync()
		if v.Started() {
			v.form.FocusField()
		}

		return
	}

	v.control.SwitchToPage("collapsed")
	if v.Started() {
		v.app.SetFocus(v.layout)
	}
}

// startReveal shows card i after i*step and the map after the last card
func (v *ResultsView) startReveal() {
	v.stopReveal()
	v.revealGen++
	gen := v.revealGen

	v.revealed = 0
	v.mapView.SetVisible(false)

	step := v.app.config.RevealStep
	for i := 0; i <= len(v.dests); i++ {
		count := i + 1
		delay := time.Duration(i) * step
		if i == 0 {
			v.reveal(gen, count)

			continue
		}

		v.timers = append(v.timers, v.app.config.Scheduler.AfterFunc(delay, func() {
			v.app.queue(func() { v.reveal(gen, count) })
		}))
	}

	v.drawCards()
}

func (v *ResultsView) stopReveal() {
	for _, t := range v.timers {
		t.Stop()
	}
	v.timers = nil
}

// reveal shows count cards; one more than the number of cards also shows the map
func (v *ResultsView) reveal(gen uint64, count int) {
	if gen != v.revealGen {
		return
	}

	v.revealed = min(count, len(v.dests))
	if count > len(v.dests) {
		v.mapView.SetVisible(true)
	}

	v.drawCards()
}

// Revealed returns how many cards are visible and whether the map is
func (v *ResultsView) Revealed() (int, bool) {
	return v.revealed, v.mapView.Visible()
}

// Select moves the highlight to card i, clamped to the visible cards
func (v *ResultsView) Select(i int) {
	if v.revealed == 0 {
		return
	}

	v.index = max(0, min(i, v.revealed-1))
	v.drawCards()
}

// Selected returns the highlighted destination
func (v *ResultsView) Selected() (destination.Destination, bool) {
	if v.index >= v.revealed || v.index >= len(v.dests) {
		return destination.Destination{}, false
	}

	return v.dests[v.index], true
}

// OpenSelected triggers the "Open in Maps" affordance of the highlighted card
func (v *ResultsView) OpenSelected() {
	if d, ok := v.Selected(); ok {
		v.app.openInMaps(d)
	}
}

func (v *ResultsView) drawCards() {
	var b strings.Builder

	for i := 0; i < v.revealed && i < len(v.dests); i++ {
		fmt.Fprintf(&b, `["card-%d"]`, i)
		b.WriteString(cardText(v.dests[i], i, i == v.index, v.app.styles))
		b.WriteString(`[""]` + "\n")
	}

	if v.revealed == 0 && len(v.dests) == 0 {
		b.WriteString(colorize(v.app.styles.MutedColor, "No destinations."))
	}

	v.cards.SetText(b.String())

	if v.revealed > 0 {
		v.cards.Highlight(fmt.Sprintf("card-%d", v.index)).ScrollToHighlight()
	}
}

// cardText renders one destination card as tview-tagged text
func cardText(d destination.Destination, i int, selected bool, s *Styles) string {
	var b strings.Builder

	marker := "  "
	if selected {
		marker = colorize(s.CardSelectedBorder, "▶ ")
	}

	letter := "   "
	if i < mapgrid.MaxMarkers {
		letter = fmt.Sprintf("[%s::b]%c[-::-]  ", ColorName(s.CardSelectedBorder), rune('A'+i))
	}

	fmt.Fprintf(&b, "%s%s[::b]%s[::-]\n", marker, letter, tview.Escape(d.Name))
	fmt.Fprintf(&b, "     %s away  %s\n", tview.Escape(d.DistanceLabel), colorize(s.DryFg, "☀ "+tview.Escape(d.WeatherStatus)))
	fmt.Fprintf(&b, "     %s\n", colorize(s.MutedColor, "Things to do:"))

	for _, line := range output.WrapTags(d.Activities, cardTagWidth) {
		fmt.Fprintf(&b, "     %s\n", colorize(s.TagFg, tview.Escape(line)))
	}

	open := "Open in Maps"
	if selected {
		open = "[::u]" + open + "[::-] (Enter)"
	}
	fmt.Fprintf(&b, "     ↗ %s\n", open)

	return b.String()
}
