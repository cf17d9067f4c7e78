package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/renderer"
)

func TestKeyCode(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "arrow_left"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), "R"},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyCode(tc.ev); got != tc.want {
				t.Errorf("keyCode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRawKey_AimsAtCursor(t *testing.T) {
	raw, ok := rawKey(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), 4, 2)
	if !ok {
		t.Fatal("rawKey(f) not ok")
	}
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
	if intent.Action != engineinput.ActionFlag || intent.X != 4 || intent.Y != 2 {
		t.Errorf("intent = %+v, want Flag at (4,2)", intent)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		name     string
		col, row int
		x, y     int
		ok       bool
	}{
		{"first cell", 0, headerRows, 0, 0, true},
		{"spacer column", 1, headerRows, 0, 0, true},
		{"third cell", 5, headerRows + 2, 2, 2, true},
		{"header", 3, 1, 0, 0, false},
		{"right of board", 10 * cellWidth, headerRows, 0, 0, false},
		{"below board", 0, headerRows + 5, 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := cellAt(tc.col, tc.row, 10, 5)
			if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
				t.Errorf("cellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.col, tc.row, x, y, ok, tc.x, tc.y, tc.ok)
			}
		})
	}
}

func TestMouseTracker_FiresOnRelease(t *testing.T) {
	var m mouseTracker
	if got := m.Update(tcell.Button1); got != "" {
		t.Errorf("press reported %q, want nothing", got)
	}
	if got := m.Update(tcell.Button1); got != "" {
		t.Errorf("drag reported %q, want nothing", got)
	}
	if got := m.Update(tcell.ButtonNone); got != "mouse_left" {
		t.Errorf("release reported %q, want mouse_left", got)
	}
	if got := m.Update(tcell.ButtonNone); got != "" {
		t.Errorf("idle reported %q, want nothing", got)
	}

	m.Update(tcell.Button2)
	if got := m.Update(tcell.ButtonNone); got != "mouse_right" {
		t.Errorf("right release reported %q, want mouse_right", got)
	}

	m.Update(tcell.WheelUp)
	if got := m.Update(tcell.ButtonNone); got != "" {
		t.Errorf("wheel reported %q, want nothing", got)
	}
}

func TestRawMouse_OnlyOverBoard(t *testing.T) {
	now := time.Now()
	if _, ok := rawMouse("mouse_left", 0, 0, 10, 5, now); ok {
		t.Error("click on the header produced input")
	}
	if _, ok := rawMouse("", 0, headerRows, 10, 5, now); ok {
		t.Error("no button produced input")
	}
	raw, ok := rawMouse("mouse_right", 7, headerRows+3, 10, 5, now)
	if !ok || raw.X != 3 || raw.Y != 3 || raw.Device != engineinput.DeviceMouse {
		t.Errorf("rawMouse() = %+v, %v; want right click at (3,3)", raw, ok)
	}
}

func TestCellStyle_NumbersUseTheirColour(t *testing.T) {
	one := cellStyle(renderer.Glyph{Kind: renderer.GlyphNumber, Number: 1})
	three := cellStyle(renderer.Glyph{Kind: renderer.GlyphNumber, Number: 3})
	if one == three {
		t.Error("counts 1 and 3 share a style")
	}
	if cellStyle(renderer.Glyph{Kind: renderer.GlyphHidden}) != styleHidden {
		t.Error("hidden glyph not drawn with styleHidden")
	}
}

func TestHelpLine_ListsCurrentBindings(t *testing.T) {
	if err := i18n.Init("en"); err != nil {
		t.Fatalf("i18n.Init(en) error: %v", err)
	}
	got := helpLine()
	for _, want := range []string{
		"Controls: ",
		"Reveal enter/mouse_left/space",
		"Flag f/mouse_right",
		"New Game R/r",
		"Quit escape/q",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("helpLine() = %q, missing %q", got, want)
		}
	}
}
