// Package renderer holds the backend-independent view of the game:
// what each cell shows and what the status strip says.
package renderer

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/state"
)

// ErrNoRenderer is returned when no renderer has been selected
var ErrNoRenderer = errors.New("no renderer selected")

// GlyphKind is what a cell looks like to the player
type GlyphKind int

const (
	GlyphHidden GlyphKind = iota
	GlyphFlag
	GlyphEmpty
	GlyphNumber
	GlyphMine
)

// Glyph describes how to draw one cell
type Glyph struct {
	Kind   GlyphKind
	Number int // adjacent mines, for GlyphNumber
	Sprite int // explosion sprite index, for GlyphMine
}

// Text icons shared by the text backends
const (
	IconHidden = "■"
	IconFlag   = "⚑"
	IconEmpty  = " "
)

// MineIcons are the ten explosion stages of a mine, from spark to crater
var MineIcons = [board.MaxExplosionFrame/board.FramesPerSprite + 1]string{
	"·", "∘", "○", "◎", "●", "✶", "✷", "✸", "✹", "✺",
}

// NumberColors are the colours of the adjacent-mine counts 1 through 8
var NumberColors = [8]color.RGBA{
	{0, 0, 255, 255},
	{0, 133, 0, 255},
	{255, 0, 0, 255},
	{0, 0, 132, 255},
	{132, 0, 0, 255},
	{0, 132, 132, 255},
	{132, 0, 132, 255},
	{32, 32, 32, 255},
}

// NumberColor returns the colour for an adjacent-mine count
func NumberColor(n int) color.RGBA {
	if n < 1 || n > len(NumberColors) {
		return color.RGBA{0, 0, 0, 255}
	}
	return NumberColors[n-1]
}

// Describe decides how a cell is drawn
func Describe(s board.CellState) Glyph {
	switch {
	case s.Flagged:
		return Glyph{Kind: GlyphFlag}
	case !s.Revealed:
		return Glyph{Kind: GlyphHidden}
	case s.HasMine:
		return Glyph{Kind: GlyphMine, Sprite: s.SpriteIndex()}
	case s.AdjacentMines > 0:
		return Glyph{Kind: GlyphNumber, Number: s.AdjacentMines}
	default:
		return Glyph{Kind: GlyphEmpty}
	}
}

// Text returns the glyph as a single terminal cell
func (gl Glyph) Text() string {
	switch gl.Kind {
	case GlyphFlag:
		return IconFlag
	case GlyphEmpty:
		return IconEmpty
	case GlyphNumber:
		return string(rune('0' + gl.Number))
	case GlyphMine:
		return MineIcons[min(gl.Sprite, len(MineIcons)-1)]
	default:
		return IconHidden
	}
}

// Status is the translated text of the status strip
type Status struct {
	Tiles      string
	MinesAdded string
	MinesLeft  string
	Time       string
	Banner     string // win/lose message, empty while playing
	Hint       string // shown once the game has ended
	Notice     string // mine-count warning, empty once expired
}

// StatusFor builds the status strip for g
func StatusFor(g *state.Game) Status {
	b := g.Board
	st := Status{
		Tiles:      fmt.Sprintf(gotext.Get("STATUS_TILES"), b.Width()*b.Height()),
		MinesAdded: fmt.Sprintf(gotext.Get("STATUS_MINES_ADDED"), b.MineCount()),
		MinesLeft:  fmt.Sprintf(gotext.Get("STATUS_FLAGS"), b.MinesRemaining()),
		Time:       fmt.Sprintf(gotext.Get("STATUS_TIME"), b.ElapsedSeconds()),
		Notice:     g.ActiveNotice(),
	}
	switch {
	case b.IsWon():
		st.Banner = gotext.Get("YOU_WIN")
	case b.IsLost():
		st.Banner = gotext.Get("YOU_LOSE")
	}
	if b.IsEnded() {
		st.Hint = gotext.Get("PLAY_AGAIN")
	}
	return st
}
