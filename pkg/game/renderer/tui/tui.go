// Package tui provides a tcell-based terminal renderer with mouse support.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/logging"
	"minesweeper/pkg/game/renderer"
	"minesweeper/pkg/game/state"
)

// mouseDebounce collapses the repeated reports some terminals send for one click
const mouseDebounce = 30 * time.Millisecond

var (
	styleDefault  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHidden   = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorSilver)
	styleRevealed = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	styleFlag     = styleHidden.Foreground(tcell.ColorRed).Bold(true)
	styleMine     = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorYellow).Bold(true)
	styleBanner   = styleDefault.Bold(true)
	styleWarning  = styleDefault.Foreground(tcell.ColorRed)
	styleSubtle   = styleDefault.Foreground(tcell.ColorGray)
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	screen   *Screen
	mouse    mouseTracker
	debounce engineinput.Debouncer
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{
		debounce: engineinput.Debouncer{Window: mouseDebounce},
	}
}

// Init takes over the terminal
func (t *TUIRenderer) Init(g *state.Game) error {
	if !terminal.Fits(g.Board.Width(), g.Board.Height(), cellWidth, headerRows+footerRows) {
		logging.Log.Warn("terminal is smaller than the board; resize it to see everything")
	}

	s, err := NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal screen: %w", err)
	}
	t.screen = s
	return nil
}

// Run handles terminal events until the player quits or ctx is cancelled.
// Ticks arrive as interrupt events so the board is only touched from this goroutine.
func (t *TUIRenderer) Run(ctx context.Context, g *state.Game) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go t.tick(ctx, t.screen)

	for !g.Quit {
		t.draw(g)

		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
			gameplay.Tick(g)
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if raw, ok := rawKey(ev, g.CursorX, g.CursorY); ok {
				t.dispatch(ctx, g, raw)
			}
		case *tcell.EventMouse:
			col, row := ev.Position()
			code := t.mouse.Update(ev.Buttons())
			if raw, ok := rawMouse(code, col, row, g.Board.Width(), g.Board.Height(), ev.When()); ok {
				g.CursorX, g.CursorY = raw.X, raw.Y
				t.dispatch(ctx, g, raw)
			}
		}
	}
	return nil
}

// tick posts one interrupt per board tick until ctx is done
func (t *TUIRenderer) tick(ctx context.Context, s *Screen) {
	ticker := time.NewTicker(time.Second / board.DefaultTicksPerSecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// Wake the event loop so it notices the cancellation.
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
			return
		case <-ticker.C:
			// A full queue just drops the tick.
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

func (t *TUIRenderer) dispatch(ctx context.Context, g *state.Game, raw engineinput.RawInput) {
	ev, ok := t.debounce.Accept(raw)
	if !ok {
		return
	}
	gameplay.ProcessIntent(ctx, g, engineinput.MapToIntent(ev))
}

// Shutdown restores the terminal
func (t *TUIRenderer) Shutdown() {
	if t.screen != nil {
		t.screen.Close()
		t.screen = nil
	}
}

// draw renders the status lines, the board and the message log
func (t *TUIRenderer) draw(g *state.Game) {
	s := t.screen
	s.Clear()

	b := g.Board
	w, h := s.Size()
	if w < b.Width()*cellWidth || h < b.Height()+headerRows {
		s.DrawString(0, 0, fmt.Sprintf(gotext.Get("TUI_TOO_SMALL"), b.Width()*cellWidth, b.Height()+headerRows+footerRows), styleWarning)
		s.Show()
		return
	}

	st := renderer.StatusFor(g)
	s.DrawString(0, 0, st.Tiles+"  "+st.MinesAdded, styleDefault)
	s.DrawString(max(0, w-len([]rune(st.Time))), 0, st.Time, styleDefault)
	if st.Banner != "" {
		s.DrawString(0, 1, st.Banner+"  "+st.Hint, styleBanner)
	} else {
		s.DrawString(0, 1, st.MinesLeft, styleDefault)
	}
	if st.Notice != "" {
		s.DrawString(0, 2, st.Notice, styleWarning)
	}

	b.ForEachCell(func(c board.CellState) {
		glyph := renderer.Describe(c)
		style := cellStyle(glyph)
		if c.X == g.CursorX && c.Y == g.CursorY && !b.IsEnded() {
			style = style.Reverse(true)
		}
		col, row := c.X*cellWidth, headerRows+c.Y
		s.SetContent(col, row, []rune(glyph.Text())[0], style)
		s.SetContent(col+1, row, ' ', style)
	})

	footer := headerRows + b.Height() + 1
	s.DrawString(0, footer, helpLine(), styleSubtle)
	for i, msg := range g.Messages {
		s.DrawString(0, footer+1+i, msg, styleDefault)
	}

	s.Show()
}

// cellStyle picks the colours for a glyph
func cellStyle(glyph renderer.Glyph) tcell.Style {
	switch glyph.Kind {
	case renderer.GlyphFlag:
		return styleFlag
	case renderer.GlyphMine:
		return styleMine
	case renderer.GlyphNumber:
		c := renderer.NumberColor(glyph.Number)
		return styleRevealed.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).Bold(true)
	case renderer.GlyphEmpty:
		return styleRevealed
	default:
		return styleHidden
	}
}
