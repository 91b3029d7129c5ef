package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	homePageName = "Home"
	homeTitle    = "Escape the rain"
	homeSubtitle = "Too wet go outside? Find the nearest places where it's dry"
)

// HomeView is the empty screen shown until a location is selected
type HomeView struct {
	*BaseComponent
	app      *App
	layout   *tview.Flex
	title    *tview.TextView
	subtitle *tview.TextView
	form     *LocationForm
	weather  *tview.TextView
	status   *tview.TextView
	frame    int
	leaving  bool
	stopAnim func()
}

// NewHomeView creates the empty screen
func NewHomeView(app *App) *HomeView {
	v := &HomeView{
		BaseComponent: NewBaseComponent(homePageName),
		app:           app,
	}

	v.title = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	v.subtitle = tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(homeSubtitle).
		SetTextColor(app.styles.MutedColor)

	v.form = NewLocationForm(app)

	v.weather = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	v.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	formRow := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(v.form, 0, 2, true).
		AddItem(nil, 0, 1, false)

	v.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(v.title, 1, 0, false).
		AddItem(v.subtitle, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(formRow, 3, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(v.status, 1, 0, false).
		AddItem(v.weather, 5, 0, false).
		AddItem(nil, 0, 1, false)
	v.layout.SetBorder(true).
		SetBorderColor(app.styles.BorderColor).
		SetBackgroundColor(app.styles.BgColor)

	v.setupActions()
	v.draw()

	return v
}

func (v *HomeView) setupActions() {
	v.actions.Add(tcell.KeyEnter, KeyAction{
		Description: searchText,
		Visible:     true,
	})

	v.actions.Add(tcell.KeyCtrlL, KeyAction{
		Description: useLocationText,
		Action: func(evt *tcell.EventKey) *tcell.EventKey {
			v.form.useCurrentLocation()
			return nil
		},
		Visible: true,
	})

	v.actions.Add(tcell.KeyTab, KeyAction{
		Description: "Next field",
	})
}

// Primitive returns the tview primitive
func (v *HomeView) Primitive() tview.Primitive {
	return v.layout
}

// Start focuses the input and starts the weather animation
func (v *HomeView) Start(ctx context.Context) {
	v.BaseComponent.Start(ctx)
	v.form.Sync()
	v.form.FocusField()

	if !v.app.config.NoAnimation && v.stopAnim == nil {
		v.stopAnim = startTicker(v.app.queue, frameInterval, func(frame int) {
			v.frame = frame
			v.draw()
		})
	}
}

// Stop stops the weather animation
func (v *HomeView) Stop() {
	v.BaseComponent.Stop()

	if v.stopAnim != nil {
		v.stopAnim()
		v.stopAnim = nil
	}
}

// SetLeaving plays or cancels the exit animation while a commit is pending
func (v *HomeView) SetLeaving(leaving bool, pending string) {
	v.leaving = leaving
	v.form.SetDisabled(leaving)

	if leaving {
		v.status.SetText(colorize(v.app.styles.MutedColor, "Finding dry places near "+tview.Escape(pending)+"…"))
	} else {
		v.status.SetText("")
	}

	v.draw()
}

// Leaving reports whether the exit animation is playing
func (v *HomeView) Leaving() bool {
	return v.leaving
}

func (v *HomeView) draw() {
	titleColor := v.app.styles.TitleFg
	if v.leaving {
		titleColor = v.app.styles.LeavingFg
	}

	v.title.SetText("[" + ColorName(titleColor) + "::b]" + homeTitle + "[-::-]")
	v.weather.SetText(weatherFrame(v.frame, v.leaving))
}
