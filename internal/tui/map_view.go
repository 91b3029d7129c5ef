package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/mapgrid"
	"github.com/rivo/tview"
)

// MapView draws the decorative map inside a bordered box
type MapView struct {
	*tview.Box
	styles  *Styles
	dests   []destination.Destination
	visible bool
}

// NewMapView creates an empty, hidden map
func NewMapView(styles *Styles) *MapView {
	m := &MapView{
		Box:    tview.NewBox(),
		styles: styles,
	}

	m.SetBorder(true).
		SetTitle(" Map ").
		SetBorderColor(styles.BorderColor).
		SetBackgroundColor(styles.BgColor)

	return m
}

// SetDestinations replaces the pinned destinations
func (m *MapView) SetDestinations(dests []destination.Destination) {
	m.dests = dests
}

// SetVisible shows or hides the map content. The border is always drawn.
func (m *MapView) SetVisible(visible bool) {
	m.visible = visible
}

// Visible reports whether the map content is drawn
func (m *MapView) Visible() bool {
	return m.visible
}

// layout computes the map for the current inner rectangle
func (m *MapView) layout() mapgrid.Layout {
	_, _, width, height := m.GetInnerRect()

	return mapgrid.Compute(width, height, m.dests)
}

// Draw draws the box, then the map cells
func (m *MapView) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)

	if !m.visible {
		return
	}

	x, y, _, _ := m.GetInnerRect()
	for row, cells := range m.layout().Cells() {
		for col, cell := range cells {
			if cell.Rune == 0 {
				continue
			}

			screen.SetContent(x+col, y+row, cell.Rune, nil, m.styles.MapStyle(cell.Kind))
		}
	}
}
