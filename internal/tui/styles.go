package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kedare/dryspot/internal/mapgrid"
)

// Styles holds the colour scheme for the TUI
type Styles struct {
	// Base colors
	BgColor     tcell.Color
	FgColor     tcell.Color
	BorderColor tcell.Color
	MutedColor  tcell.Color

	// Accents
	TitleFg   tcell.Color
	AccentFg  tcell.Color
	DryFg     tcell.Color
	LeavingFg tcell.Color

	// Flash colors
	FlashOK    tcell.Color
	FlashError tcell.Color

	// Cards
	CardBorder         tcell.Color
	CardSelectedBorder tcell.Color
	TagFg              tcell.Color

	// Map
	MapGridFg        tcell.Color
	MapMarkerFg      tcell.Color
	MapMarkerBg      tcell.Color
	MapLabelFg       tcell.Color
	MapCurrentFg     tcell.Color
	MapAttributionFg tcell.Color
}

// DefaultStyles returns the default dark colour scheme
func DefaultStyles() *Styles {
	return &Styles{
		BgColor:     tcell.ColorBlack,
		FgColor:     tcell.ColorWhite,
		BorderColor: tcell.ColorDarkCyan,
		MutedColor:  tcell.ColorGray,

		TitleFg:   tcell.ColorAqua,
		AccentFg:  tcell.ColorDodgerBlue,
		DryFg:     tcell.ColorGreen,
		LeavingFg: tcell.ColorGray,

		FlashOK:    tcell.ColorGreen,
		FlashError: tcell.ColorRed,

		CardBorder:         tcell.ColorDarkCyan,
		CardSelectedBorder: tcell.ColorYellow,
		TagFg:              tcell.ColorDodgerBlue,

		MapGridFg:        tcell.ColorGray,
		MapMarkerFg:      tcell.ColorBlack,
		MapMarkerBg:      tcell.ColorYellow,
		MapLabelFg:       tcell.ColorWhite,
		MapCurrentFg:     tcell.ColorDodgerBlue,
		MapAttributionFg: tcell.ColorGray,
	}
}

// MapStyle returns the cell style for a map cell kind
func (s *Styles) MapStyle(kind mapgrid.Kind) tcell.Style {
	base := tcell.StyleDefault.Background(s.BgColor)

	switch kind {
	case mapgrid.KindGrid:
		return base.Foreground(s.MapGridFg)
	case mapgrid.KindMarker:
		return base.Foreground(s.MapMarkerFg).Background(s.MapMarkerBg).Bold(true)
	case mapgrid.KindLabel:
		return base.Foreground(s.MapLabelFg)
	case mapgrid.KindCurrent:
		return base.Foreground(s.MapCurrentFg).Bold(true)
	case mapgrid.KindAttribution:
		return base.Foreground(s.MapAttributionFg).Italic(true)
	default:
		return base.Foreground(s.FgColor)
	}
}

// ColorName converts tcell.Color to tview color name
func ColorName(color tcell.Color) string {
	switch color {
	case tcell.ColorGreen:
		return "green"
	case tcell.ColorRed:
		return "red"
	case tcell.ColorYellow:
		return "yellow"
	case tcell.ColorDodgerBlue:
		return "dodgerblue"
	case tcell.ColorWhite:
		return "white"
	case tcell.ColorGray:
		return "gray"
	case tcell.ColorAqua:
		return "aqua"
	case tcell.ColorDarkCyan:
		return "darkcyan"
	default:
		return "white"
	}
}

// colorize wraps text in a tview colour tag
func colorize(color tcell.Color, text string) string {
	return "[" + ColorName(color) + "]" + text + "[-]"
}
