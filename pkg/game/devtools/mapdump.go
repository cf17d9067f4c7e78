// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/renderer"
)

// DumpOptions controls DumpBoard
type DumpOptions struct {
	// RevealAll shows every cell as if uncovered; otherwise concealed cells print '#'
	RevealAll bool
	// Color adds ANSI colours (numbers in their board colours, mines in red)
	Color bool
}

var (
	styleMine   = color.Style{color.FgRed, color.OpBold}
	styleFlag   = color.Style{color.FgYellow, color.OpBold}
	styleHidden = color.Style{color.FgGray}
	styleHeader = color.Style{color.FgMagenta, color.OpBold}
)

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(s board.CellState, revealAll bool) rune {
	switch {
	case s.Flagged && !revealAll:
		return 'F'
	case !s.Revealed && !revealAll:
		return '#'
	case s.HasMine:
		return '*'
	case s.AdjacentMines > 0:
		return rune('0' + s.AdjacentMines)
	default:
		return '.'
	}
}

func styled(sym rune, s board.CellState) string {
	str := string(sym)
	switch sym {
	case '*':
		return styleMine.Sprint(str)
	case 'F':
		return styleFlag.Sprint(str)
	case '#':
		return styleHidden.Sprint(str)
	case '.':
		return str
	}
	c := renderer.NumberColor(s.AdjacentMines)
	return color.RGB(c.R, c.G, c.B).Sprint(str)
}

// DumpBoard writes a human-readable board: a metadata header, a legend and the grid.
func DumpBoard(w io.Writer, b *board.Board, opts DumpOptions) error {
	header := fmt.Sprintf("Board: %dx%d  Mines: %d  Flags: %d  Hidden safe cells: %d",
		b.Width(), b.Height(), b.MineCount(), b.FlagCount(), b.RemainingNonMineCells())
	if opts.Color {
		header = styleHeader.Sprint(header)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString("Legend: * mine, 1-8 adjacent mines, . empty, # hidden, F flag\n\n")

	b.ForEachCell(func(s board.CellState) {
		sym := cellSymbol(s, opts.RevealAll)
		if opts.Color {
			sb.WriteString(styled(sym, s))
		} else {
			sb.WriteRune(sym)
		}
		if s.X == b.Width()-1 {
			sb.WriteString("\n")
		}
	})

	_, err := io.WriteString(w, sb.String())
	return err
}
