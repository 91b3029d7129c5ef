package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

const helpPageName = "Help"

// HelpView displays keyboard shortcuts
type HelpView struct {
	*BaseComponent
	app      *App
	textView *tview.TextView
}

// NewHelpView creates a new help view
func NewHelpView(app *App) *HelpView {
	view := &HelpView{
		BaseComponent: NewBaseComponent(helpPageName),
		app:           app,
	}

	view.textView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)

	view.textView.SetBorder(true).
		SetTitle(" Keyboard Shortcuts ").
		SetBackgroundColor(app.styles.BgColor)

	return view
}

// Primitive returns the tview primitive
func (v *HelpView) Primitive() tview.Primitive {
	return v.textView
}

// Start renders the help text
func (v *HelpView) Start(ctx context.Context) {
	v.BaseComponent.Start(ctx)
	v.textView.SetText(v.helpText())
}

func (v *HelpView) helpText() string {
	var b strings.Builder

	b.WriteString("[aqua::b]dryspot - Keyboard Shortcuts[-::-]\n")

	section := func(title string, actions *KeyActions) {
		fmt.Fprintf(&b, "\n[yellow]%s[-]\n", title)
		for _, line := range actions.HelpLines() {
			fmt.Fprintf(&b, "  [white]%-10s[-] %s\n", tview.Escape(line[0]), line[1])
		}
	}

	section("Global", &v.app.globalKeys)
	section("Search screen", v.app.home.Actions())
	section("Results screen", v.app.results.Actions())

	b.WriteString("\n[yellow]Location input[-]\n")
	b.WriteString("  Type any place and press Enter. Blank input is ignored.\n")
	b.WriteString("  Recently used locations are suggested while typing.\n")
	b.WriteString("\n[gray]Press Esc to close this help screen[-]\n")

	return b.String()
}
