package mapgrid

import (
	"strings"
	"testing"

	"github.com/kedare/dryspot/internal/destination"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePinsFirstThree(t *testing.T) {
	l := Compute(60, 20, destination.Catalogue())

	require.Len(t, l.Markers, MaxMarkers)
	assert.Equal(t, 'A', l.Markers[0].Letter)
	assert.Equal(t, "Whittlesford", l.Markers[0].Name)
	assert.Equal(t, 'B', l.Markers[1].Letter)
	assert.Equal(t, "Cambridge", l.Markers[1].Name)
	assert.Equal(t, 'C', l.Markers[2].Letter)
	assert.Equal(t, "Saffron Walden", l.Markers[2].Name)
}

func TestComputeFixedPositions(t *testing.T) {
	// Marker area is x 6..53, y 2..17 on a 60x20 canvas.
	l := Compute(60, 20, destination.Catalogue())

	assert.Equal(t, Marker{Letter: 'A', Name: "Whittlesford", Label: "Whittlesford", X: 20, Y: 5}, l.Markers[0])
	assert.Equal(t, 41, l.Markers[1].X)
	assert.Equal(t, 4, l.Markers[1].Y)
	assert.Equal(t, 44, l.Markers[2].X)
	assert.Equal(t, 8, l.Markers[2].Y)
	assert.Equal(t, Point{X: 30, Y: 14}, l.Current)

	// B sits higher than A, C lower than both.
	assert.Less(t, l.Markers[1].Y, l.Markers[0].Y)
	assert.Greater(t, l.Markers[2].Y, l.Markers[0].Y)
	// The current position is below every destination.
	for _, m := range l.Markers {
		assert.Greater(t, l.Current.Y, m.Y)
	}
}

func TestComputeIsIndependentOfNames(t *testing.T) {
	a := Compute(80, 24, destination.Catalogue())
	other := destination.Catalogue()
	other[0].Name = "Elsewhere"
	b := Compute(80, 24, other)

	for i := range a.Markers {
		assert.Equal(t, a.Markers[i].X, b.Markers[i].X)
		assert.Equal(t, a.Markers[i].Y, b.Markers[i].Y)
	}
	assert.Equal(t, a.Current, b.Current)
}

func TestComputeFewerDestinations(t *testing.T) {
	l := Compute(40, 12, destination.Catalogue()[:1])
	require.Len(t, l.Markers, 1)

	l = Compute(40, 12, nil)
	assert.Empty(t, l.Markers)
	assert.NotZero(t, l.Current.Y)
}

func TestComputeDegenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {-5, 10}, {10, -1}} {
		l := Compute(size[0], size[1], destination.Catalogue())
		assert.Empty(t, l.Markers)
		assert.Nil(t, l.Cells())
		assert.Empty(t, l.Lines())
	}

	// Tiny but positive canvases clamp everything inside.
	l := Compute(3, 2, destination.Catalogue())
	for _, m := range l.Markers {
		assert.GreaterOrEqual(t, m.X, 0)
		assert.Less(t, m.X, 3)
		assert.GreaterOrEqual(t, m.Y, 0)
		assert.Less(t, m.Y, 2)
	}
	assert.Len(t, l.Lines(), 2)
}

func TestLabelsAreTruncated(t *testing.T) {
	dests := []destination.Destination{{Name: "Llanfairpwllgwyngyllgogerychwyrndrobwll"}}
	l := Compute(80, 24, dests)

	require.Len(t, l.Markers, 1)
	assert.LessOrEqual(t, runewidth.StringWidth(l.Markers[0].Label), LabelWidth)
	assert.True(t, strings.HasSuffix(l.Markers[0].Label, "…"))
}

func TestLinesContainMarkersAndAttribution(t *testing.T) {
	l := Compute(60, 20, destination.Catalogue())
	lines := l.Lines()
	require.Len(t, lines, 20)

	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "Whittlesford")
	assert.Contains(t, text, "Cambridge")
	assert.Contains(t, text, "Saffron Walden")
	assert.NotContains(t, text, "Colchester")
	assert.Contains(t, text, string(CurrentRune))
	assert.True(t, strings.HasSuffix(lines[19], Attribution))

	assert.Equal(t, "A", string([]rune(lines[5])[20]))
}

func TestCellsKinds(t *testing.T) {
	l := Compute(60, 20, destination.Catalogue())
	cells := l.Cells()

	assert.Equal(t, KindMarker, cells[5][20].Kind)
	assert.Equal(t, KindCurrent, cells[14][30].Kind)
	assert.Equal(t, KindGrid, cells[0][0].Kind)
	assert.Equal(t, KindAttribution, cells[19][58].Kind)
}

func TestOverwritingWideRuneClearsBothHalves(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		cleared int
	}{
		{name: "trailing_half", x: 5, cleared: 4},
		{name: "leading_half", x: 6, cleared: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A's label spans columns 2..9 of row 1 as four double-width runes.
			l := Layout{
				Width:  12,
				Height: 3,
				Markers: []Marker{
					{Letter: 'A', Label: "東京東京", X: 6, Y: 0},
					{Letter: 'B', X: tt.x, Y: 1},
				},
				Current: Point{X: 11, Y: 2},
			}

			row := l.Cells()[1]
			assert.Equal(t, 'B', row[tt.x].Rune)
			assert.Equal(t, Cell{Rune: ' ', Kind: KindEmpty}, row[tt.cleared])

			for x, c := range row {
				if c.Rune != 0 {
					continue
				}
				require.Positive(t, x)
				assert.Equal(t, 2, runewidth.RuneWidth(row[x-1].Rune), "orphan trailing half at %d", x)
			}

			line := l.Lines()[1]
			idx := strings.IndexRune(line, 'B')
			require.GreaterOrEqual(t, idx, 0)
			assert.Equal(t, tt.x, runewidth.StringWidth(line[:idx]), "text columns stay aligned with cells")
		})
	}
}
