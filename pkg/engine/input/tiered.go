// Package input turns device events into game intents in four layers:
// raw device events, debounced events, bound actions and intents.
package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceMouse
	DeviceKeyboard
	DeviceTerminal
)

// String returns the device name used in logs
func (d Device) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DeviceKeyboard:
		return "keyboard"
	case DeviceTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Board
	ActionReveal
	ActionFlag
	ActionReset

	// Cursor movement (keyboard play in the terminal)
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Meta
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// X and Y are board coordinates for pointer actions; they are ignored otherwise.
type Intent struct {
	Action Action
	X      int
	Y      int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "mouse_left", "r", "arrow_up").
// X and Y carry the board cell under the pointer, if any.
type RawInput struct {
	Device    Device
	Code      string
	X         int
	Y         int
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
	X      int
	Y      int
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		X:      raw.X,
		Y:      raw.Y,
	}
}

// Debouncer drops a raw event that repeats the previous one (same device, code
// and cell) within Window. Terminals report a held mouse button as a burst of
// identical events; this collapses them into one.
type Debouncer struct {
	Window time.Duration

	last    RawInput
	hasLast bool
}

// Accept returns the debounced event and true, or false if raw is a repeat
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	repeat := d.hasLast &&
		raw.Device == d.last.Device &&
		raw.Code == d.last.Code &&
		raw.X == d.last.X && raw.Y == d.last.Y &&
		raw.Timestamp.Sub(d.last.Timestamp) < d.Window

	d.last = raw
	d.hasLast = true
	if repeat {
		return DebouncedInput{}, false
	}
	return NewDebouncedInput(raw), true
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Pointer
	"mouse_left":  ActionReveal,
	"mouse_right": ActionFlag,

	// Keyboard reveal / flag at the cursor
	"space": ActionReveal,
	"enter": ActionReveal,
	"f":     ActionFlag,

	// New game
	"r": ActionReset,
	"R": ActionReset,

	// Cursor (arrows, Vim)
	"arrow_up":    ActionCursorUp,
	"k":           ActionCursorUp,
	"arrow_down":  ActionCursorDown,
	"j":           ActionCursorDown,
	"arrow_left":  ActionCursorLeft,
	"h":           ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"l":           ActionCursorRight,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, X: ev.X, Y: ev.Y}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionReset:
		return "New Game"
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
