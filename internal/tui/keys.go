package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ActionHandler is a function that handles a key action
type ActionHandler func(evt *tcell.EventKey) *tcell.EventKey

// KeyAction represents a keyboard action
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// keyID identifies a binding. Rune is only set for tcell.KeyRune.
type keyID struct {
	key  tcell.Key
	rune rune
}

// KeyActions manages keyboard bindings in registration order
type KeyActions struct {
	actions map[keyID]KeyAction
	order   []keyID
	mx      *sync.RWMutex
}

// NewKeyActions creates a new key actions manager
func NewKeyActions() KeyActions {
	return KeyActions{
		actions: make(map[keyID]KeyAction),
		mx:      &sync.RWMutex{},
	}
}

// Add binds a special key
func (k *KeyActions) Add(key tcell.Key, action KeyAction) {
	k.add(keyID{key: key}, action)
}

// AddRune binds a character key
func (k *KeyActions) AddRune(r rune, action KeyAction) {
	k.add(keyID{key: tcell.KeyRune, rune: r}, action)
}

func (k *KeyActions) add(id keyID, action KeyAction) {
	k.mx.Lock()
	defer k.mx.Unlock()

	if _, exists := k.actions[id]; !exists {
		k.order = append(k.order, id)
	}
	k.actions[id] = action
}

// Get retrieves the action bound to an event
func (k *KeyActions) Get(event *tcell.EventKey) (KeyAction, bool) {
	id := keyID{key: event.Key()}
	if id.key == tcell.KeyRune {
		id.rune = event.Rune()
	}

	k.mx.RLock()
	defer k.mx.RUnlock()
	action, ok := k.actions[id]

	return action, ok
}

// Handle runs the action bound to event. Unbound events are returned unchanged.
func (k *KeyActions) Handle(event *tcell.EventKey) *tcell.EventKey {
	if action, ok := k.Get(event); ok && action.Action != nil {
		return action.Action(event)
	}

	return event
}

// Hints returns visible action hints for the status bar, in registration order
func (k *KeyActions) Hints() []string {
	k.mx.RLock()
	defer k.mx.RUnlock()

	var hints []string
	for _, id := range k.order {
		if action := k.actions[id]; action.Visible {
			hints = append(hints, "<"+keyName(id)+"> "+action.Description)
		}
	}

	return hints
}

// HelpLines returns "key  description" pairs for every described action
func (k *KeyActions) HelpLines() [][2]string {
	k.mx.RLock()
	defer k.mx.RUnlock()

	lines := make([][2]string, 0, len(k.order))
	for _, id := range k.order {
		if action := k.actions[id]; action.Description != "" {
			lines = append(lines, [2]string{keyName(id), action.Description})
		}
	}

	return lines
}

func keyName(id keyID) string {
	if id.key == tcell.KeyRune {
		return string(id.rune)
	}

	switch id.key {
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEscape:
		return "Esc"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBacktab:
		return "Shift+Tab"
	case tcell.KeyUp:
		return "↑"
	case tcell.KeyDown:
		return "↓"
	case tcell.KeyCtrlC:
		return "^C"
	case tcell.KeyCtrlL:
		return "^L"
	default:
		if name, ok := tcell.KeyNames[id.key]; ok {
			return name
		}

		return "?"
	}
}
