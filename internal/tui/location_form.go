package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	placeholderText = "Enter any location..."
	useLocationText = "Use my location"
	searchText      = "Search"
	dividerText     = "── or search ──"
)

// LocationForm is the expanded location input: a "use my location" button,
// a divider, the free-text field and a search button. It edits the shared
// selection.Input model; the screen owning it decides when it is shown.
type LocationForm struct {
	*tview.Flex
	app          *App
	useButton    *tview.Button
	divider      *tview.TextView
	field        *tview.InputField
	searchButton *tview.Button
	disabled     bool
	onCancel     func()
}

// NewLocationForm creates the form bound to the app's location input
func NewLocationForm(app *App) *LocationForm {
	f := &LocationForm{app: app}

	f.useButton = tview.NewButton(useLocationText).SetSelectedFunc(f.useCurrentLocation)
	f.useButton.SetExitFunc(f.moveFocus)

	f.divider = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(dividerText).
		SetTextColor(app.styles.MutedColor)

	f.field = tview.NewInputField().
		SetPlaceholder(placeholderText).
		SetFieldWidth(0).
		SetFieldBackgroundColor(tcell.ColorDarkSlateGray).
		SetChangedFunc(func(text string) {
			app.input.SetBuffer(text)
		}).
		SetAutocompleteFunc(app.suggest).
		SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEnter:
				f.submit()
			case tcell.KeyEscape:
				if f.onCancel != nil {
					f.onCancel()
				}
			default:
				f.moveFocus(key)
			}
		})

	f.searchButton = tview.NewButton(searchText).SetSelectedFunc(f.submit)
	f.searchButton.SetExitFunc(f.moveFocus)

	row := tview.NewFlex().
		AddItem(f.field, 0, 1, true).
		AddItem(nil, 1, 0, false).
		AddItem(f.searchButton, len(searchText)+4, 0, false)

	f.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(f.useButton, 1, 0, false).
		AddItem(f.divider, 1, 0, false).
		AddItem(row, 1, 0, true)

	return f
}

// SetCancelFunc sets the handler for Esc in the text field
func (f *LocationForm) SetCancelFunc(fn func()) *LocationForm {
	f.onCancel = fn

	return f
}

// SetDisabled blocks commits while the screen is handing over
func (f *LocationForm) SetDisabled(disabled bool) {
	f.disabled = disabled
	f.field.SetDisabled(disabled)
}

// FocusField puts the cursor in the text field
func (f *LocationForm) FocusField() {
	f.app.SetFocus(f.field)
}

// Sync shows the model's buffer in the field
func (f *LocationForm) Sync() {
	if f.field.GetText() != f.app.input.Buffer() {
		f.field.SetText(f.app.input.Buffer())
	}
}

// submit commits the typed text. Blank text is left in place.
func (f *LocationForm) submit() {
	if f.disabled {
		return
	}

	if f.app.input.Submit() {
		f.Sync()
	}
}

// useCurrentLocation commits the fixed current location
func (f *LocationForm) useCurrentLocation() {
	if f.disabled {
		return
	}

	if f.app.input.UseCurrentLocation() {
		f.Sync()
	}
}

// moveFocus cycles through field, search button and use-my-location button
func (f *LocationForm) moveFocus(key tcell.Key) {
	order := []tview.Primitive{f.field, f.searchButton, f.useButton}

	current := 0
	for i, p := range order {
		if p.HasFocus() {
			current = i
		}
	}

	switch key {
	case tcell.KeyTab:
		f.app.SetFocus(order[(current+1)%len(order)])
	case tcell.KeyBacktab:
		f.app.SetFocus(order[(current+len(order)-1)%len(order)])
	case tcell.KeyEscape:
		f.FocusField()
	}
}
