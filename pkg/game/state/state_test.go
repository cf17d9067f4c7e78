package state

import (
	"fmt"
	"testing"

	"minesweeper/pkg/game/board"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	b, err := board.NewWithMines(4, 3, nil)
	if err != nil {
		t.Fatalf("NewWithMines() error: %v", err)
	}
	return NewGame(b)
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", len(g.Messages))
	}
}

func TestNotice_ExpiresAfterNoticeTicks(t *testing.T) {
	g := newTestGame(t)
	g.SetNotice("careful")

	for i := 0; i < NoticeTicks-1; i++ {
		g.Tick()
	}
	if got := g.ActiveNotice(); got != "careful" {
		t.Fatalf("ActiveNotice() after %d ticks = %q, want %q", NoticeTicks-1, got, "careful")
	}
	g.Tick()
	if got := g.ActiveNotice(); got != "" {
		t.Errorf("ActiveNotice() after %d ticks = %q, want empty", NoticeTicks, got)
	}
}

func TestTick_DrivesBoardTimer(t *testing.T) {
	g := newTestGame(t)
	g.Tick()
	if got := g.Board.ElapsedSeconds(); got != 1 {
		t.Errorf("ElapsedSeconds() = %d, want 1", got)
	}
}

func TestMoveCursor_ClampsToBoard(t *testing.T) {
	g := newTestGame(t)
	g.MoveCursor(-1, -1)
	if g.CursorX != 0 || g.CursorY != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", g.CursorX, g.CursorY)
	}
	g.MoveCursor(10, 10)
	if g.CursorX != 3 || g.CursorY != 2 {
		t.Errorf("cursor = (%d,%d), want (3,2)", g.CursorX, g.CursorY)
	}
}
