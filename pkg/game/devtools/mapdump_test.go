package devtools

import (
	"bytes"
	"strings"
	"testing"

	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/board"
)

func dumpLines(t *testing.T, b *board.Board, opts DumpOptions) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := DumpBoard(&buf, b, opts); err != nil {
		t.Fatalf("DumpBoard() error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("dump too short: %q", buf.String())
	}
	return lines
}

func TestDumpBoard_RevealAll(t *testing.T) {
	b, err := board.NewWithMines(4, 4, []world.Position{{X: 0, Y: 0}, {X: 3, Y: 3}})
	if err != nil {
		t.Fatal(err)
	}
	lines := dumpLines(t, b, DumpOptions{RevealAll: true})

	if !strings.HasPrefix(lines[0], "Board: 4x4  Mines: 2") {
		t.Errorf("header = %q", lines[0])
	}
	want := []string{
		"*1..",
		"11..",
		"..11",
		"..1*",
	}
	grid := lines[3:]
	if len(grid) != len(want) {
		t.Fatalf("grid = %q, want %q", grid, want)
	}
	for i := range want {
		if grid[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, grid[i], want[i])
		}
	}
}

func TestDumpBoard_PlayerView(t *testing.T) {
	b, err := board.NewWithMines(3, 1, []world.Position{{X: 2, Y: 0}})
	if err != nil {
		t.Fatal(err)
	}
	b.ToggleFlag(2, 0)
	b.RevealAt(1, 0)

	lines := dumpLines(t, b, DumpOptions{})
	if got := lines[len(lines)-1]; got != "#1F" {
		t.Errorf("grid = %q, want %q", got, "#1F")
	}
}
