package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "minesweeper/pkg/engine/input"
)

// Board geometry on the terminal
const (
	cellWidth  = 2 // glyph plus a spacer column
	headerRows = 4 // status lines above the board
	footerRows = 7 // help line and message log below the board
)

// helpActions are the actions listed in the help line, in display order
var helpActions = []engineinput.Action{
	engineinput.ActionReveal,
	engineinput.ActionFlag,
	engineinput.ActionReset,
	engineinput.ActionQuit,
}

// helpLine lists the current bindings of the main actions
func helpLine() string {
	byAction := engineinput.GetBindingsByAction()
	parts := make([]string, 0, len(helpActions))
	for _, act := range helpActions {
		parts = append(parts, fmt.Sprintf("%s %s", engineinput.ActionName(act), strings.Join(byAction[act], "/")))
	}
	return gotext.Get("TUI_HELP") + ": " + strings.Join(parts, "  ")
}

// keyCode converts a key event to a raw input code, or "" for keys with no code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "escape"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	}
	return ""
}

// cellAt maps a terminal position to a board cell
func cellAt(col, row, width, height int) (x, y int, ok bool) {
	row -= headerRows
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	x, y = col/cellWidth, row
	if x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

// mouseTracker turns tcell's button-state reports into click-on-release events
type mouseTracker struct {
	held tcell.ButtonMask
}

// Update records the new button state and returns the code of a button that
// was just released, or "" if none was
func (m *mouseTracker) Update(buttons tcell.ButtonMask) string {
	released := m.held &^ buttons
	m.held = buttons & (tcell.Button1 | tcell.Button2)

	switch {
	case released&tcell.Button1 != 0:
		return "mouse_left"
	case released&tcell.Button2 != 0:
		return "mouse_right"
	}
	return ""
}

// rawKey builds the raw input for a key event, aimed at the keyboard cursor
func rawKey(ev *tcell.EventKey, cursorX, cursorY int) (engineinput.RawInput, bool) {
	code := keyCode(ev)
	if code == "" {
		return engineinput.RawInput{}, false
	}
	return engineinput.RawInput{
		Device:    engineinput.DeviceTerminal,
		Code:      code,
		X:         cursorX,
		Y:         cursorY,
		Timestamp: ev.When(),
	}, true
}

// rawMouse builds the raw input for a released button over the board
func rawMouse(code string, col, row, width, height int, when time.Time) (engineinput.RawInput, bool) {
	if code == "" {
		return engineinput.RawInput{}, false
	}
	x, y, ok := cellAt(col, row, width, height)
	if !ok {
		return engineinput.RawInput{}, false
	}
	return engineinput.RawInput{
		Device:    engineinput.DeviceMouse,
		Code:      code,
		X:         x,
		Y:         y,
		Timestamp: when,
	}, true
}
