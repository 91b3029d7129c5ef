package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/dryspot/internal/mapgrid"
	"github.com/stretchr/testify/assert"
)

func TestMapStyleDistinguishesKinds(t *testing.T) {
	s := DefaultStyles()

	fg := func(kind mapgrid.Kind) tcell.Color {
		color, _, _ := s.MapStyle(kind).Decompose()
		return color
	}

	assert.Equal(t, s.MapGridFg, fg(mapgrid.KindGrid))
	assert.Equal(t, s.MapMarkerFg, fg(mapgrid.KindMarker))
	assert.Equal(t, s.MapLabelFg, fg(mapgrid.KindLabel))
	assert.Equal(t, s.MapCurrentFg, fg(mapgrid.KindCurrent))
	assert.Equal(t, s.FgColor, fg(mapgrid.KindEmpty))

	_, bg, attrs := s.MapStyle(mapgrid.KindMarker).Decompose()
	assert.Equal(t, s.MapMarkerBg, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "[green]Dry all day[-]", colorize(tcell.ColorGreen, "Dry all day"))
	assert.Equal(t, "white", ColorName(tcell.ColorPurple))
}
