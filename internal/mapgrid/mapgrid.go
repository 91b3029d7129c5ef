// Package mapgrid lays out the decorative map: a dotted grid, up to three lettered
// destination markers at fixed relative positions, and the current position marker.
// Nothing here is derived from coordinates.
package mapgrid

import (
	"strings"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/mattn/go-runewidth"
)

const (
	// MaxMarkers is how many destinations the map pins.
	MaxMarkers = 3
	// LabelWidth caps the display width of a marker label.
	LabelWidth = 14
	// Attribution is printed in the bottom-right corner.
	Attribution = "Maps © OpenStreetMap"
	// CurrentRune marks the current position.
	CurrentRune = '◉'

	gridStepX = 6
	gridStepY = 3
)

// Kind tells the renderer how to style a cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindGrid
	KindMarker
	KindLabel
	KindCurrent
	KindAttribution
)

// Cell is one terminal cell of the map. A zero Rune is the trailing half of a wide rune.
type Cell struct {
	Rune rune
	Kind Kind
}

// anchor is a marker position as fractions of the marker area.
// fromRight anchors the marker's right edge instead of its left.
type anchor struct {
	top       float64
	side      float64
	fromRight bool
}

// anchors mirror top 20%/left 30%, top 15%/right 25% and top 40%/right 20%.
var anchors = [MaxMarkers]anchor{
	{top: 0.20, side: 0.30},
	{top: 0.15, side: 0.25, fromRight: true},
	{top: 0.40, side: 0.20, fromRight: true},
}

// Marker is a pinned destination.
type Marker struct {
	Letter rune
	Name   string
	Label  string
	X, Y   int
}

// Point is a cell position.
type Point struct {
	X, Y int
}

// Layout is the computed map for a canvas size.
type Layout struct {
	Width, Height int
	Markers       []Marker
	Current       Point
}

// Compute places the first MaxMarkers destinations on a width x height canvas.
// The markers occupy the centred area four fifths of the canvas in each direction.
func Compute(width, height int, dests []destination.Destination) Layout {
	l := Layout{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return l
	}

	ax, ay := width/10, height/10
	aw, ah := width*4/5, height*4/5
	if aw < 1 {
		aw = 1
	}
	if ah < 1 {
		ah = 1
	}

	for i, d := range dests {
		if i >= MaxMarkers {
			break
		}

		a := anchors[i]
		x := ax + int(a.side*float64(aw))
		if a.fromRight {
			x = ax + aw - 1 - int(a.side*float64(aw))
		}

		l.Markers = append(l.Markers, Marker{
			Letter: rune('A' + i),
			Name:   d.Name,
			Label:  runewidth.Truncate(d.Name, LabelWidth, "…"),
			X:      clamp(x, 0, width-1),
			Y:      clamp(ay+int(a.top*float64(ah)), 0, height-1),
		})
	}

	l.Current = Point{
		X: clamp(ax+aw/2, 0, width-1),
		Y: clamp(ay+ah*3/4, 0, height-1),
	}

	return l
}

// Cells renders the layout into a grid of styled cells, row major.
func (l Layout) Cells() [][]Cell {
	if l.Width <= 0 || l.Height <= 0 {
		return nil
	}

	cells := make([][]Cell, l.Height)
	for y := range cells {
		cells[y] = make([]Cell, l.Width)
		for x := range cells[y] {
			cells[y][x] = Cell{Rune: ' ', Kind: KindEmpty}
			if x%gridStepX == 0 && y%gridStepY == 0 {
				cells[y][x] = Cell{Rune: '·', Kind: KindGrid}
			}
		}
	}

	put := func(x, y int, s string, kind Kind) {
		if y < 0 || y >= l.Height {
			return
		}
		for _, r := range s {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x < 0 || x+w > l.Width {
				return
			}
			for i := 0; i < w; i++ {
				clearGlyph(cells[y], x+i)
			}
			cells[y][x] = Cell{Rune: r, Kind: kind}
			for i := 1; i < w; i++ {
				cells[y][x+i] = Cell{Rune: 0, Kind: kind}
			}
			x += w
		}
	}

	attrX := l.Width - runewidth.StringWidth(Attribution) - 1
	if attrX >= 0 && l.Height > 1 {
		put(attrX, l.Height-1, Attribution, KindAttribution)
	}

	put(l.Current.X, l.Current.Y, string(CurrentRune), KindCurrent)

	for _, m := range l.Markers {
		put(m.X, m.Y, string(m.Letter), KindMarker)

		labelWidth := runewidth.StringWidth(m.Label)
		lx := clamp(m.X-labelWidth/2, 0, max(l.Width-labelWidth, 0))
		put(lx, m.Y+1, m.Label, KindLabel)
	}

	return cells
}

// clearGlyph blanks every cell of the glyph covering column x, so overwriting
// half of a wide rune never leaves the other half behind.
func clearGlyph(row []Cell, x int) {
	start := x
	for start > 0 && row[start].Rune == 0 {
		start--
	}

	width := max(runewidth.RuneWidth(row[start].Rune), 1)
	for i := start; i < start+width && i < len(row); i++ {
		row[i] = Cell{Rune: ' ', Kind: KindEmpty}
	}
}

// Lines renders the layout as plain text, one string per row.
func (l Layout) Lines() []string {
	cells := l.Cells()
	lines := make([]string, len(cells))

	for y, row := range cells {
		var b strings.Builder
		for _, c := range row {
			if c.Rune != 0 {
				b.WriteRune(c.Rune)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}

	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
