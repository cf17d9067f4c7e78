package ebiten

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/layout"
	"minesweeper/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.game == nil || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without game state or fonts
		return
	}

	hx, hy, hovering := e.hoveredCell()
	hovering = hovering && !e.game.Board.IsEnded()

	e.game.Board.ForEachCell(func(s board.CellState) {
		hovered := hovering && s.X == hx && s.Y == hy
		e.drawCell(screen, s, hovered)
	})

	e.drawStatus(screen)
}

// drawCell draws one tile and whatever sits on it
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, s board.CellState, hovered bool) {
	px, py := e.layout.CellOrigin(s.X, s.Y)
	size := float32(e.layout.CellSize)
	glyph := renderer.Describe(s)

	bg := colorTileRevealed
	switch glyph.Kind {
	case renderer.GlyphHidden, renderer.GlyphFlag:
		bg = colorTileHidden
		if hovered {
			bg = colorTileHover
		}
	case renderer.GlyphMine:
		bg = colorTileMine
	}

	vector.DrawFilledRect(screen, float32(px)+tileInset, float32(py)+tileInset,
		size-2*tileInset, size-2*tileInset, bg, false)
	vector.StrokeRect(screen, float32(px), float32(py), size, size, tileBorderWidth, colorTileBorder, false)

	switch glyph.Kind {
	case renderer.GlyphFlag:
		e.drawFlag(screen, px, py)
	case renderer.GlyphMine:
		e.drawMine(screen, px, py, glyph.Sprite)
	case renderer.GlyphNumber:
		half := float64(e.layout.CellSize) / 2
		e.drawText(screen, strconv.Itoa(glyph.Number), e.getNumberFontFace(),
			float64(px)+half, float64(py)+half, renderer.NumberColor(glyph.Number), text.AlignCenter)
	}
}

// drawStatus draws the strip above the board: counts on the left, banner in the
// middle, timer on the right and any warning underneath
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image) {
	st := renderer.StatusFor(e.game)
	face := e.getStatusFontFace()
	w := float64(e.layout.WindowWidth)
	row := float64(layout.TopBar) / 3

	e.drawTextLines(screen, []string{st.Tiles, st.MinesAdded}, face, 10, row, colorText)
	e.drawText(screen, st.Time, face, w-10, row, colorText, text.AlignEnd)
	e.drawText(screen, st.MinesLeft, face, w-10, 2*row, colorText, text.AlignEnd)

	if st.Banner != "" {
		e.drawText(screen, st.Banner, e.getBannerFontFace(), w/2, row, colorText, text.AlignCenter)
		e.drawText(screen, st.Hint, face, w/2, 2.3*row, colorHint, text.AlignCenter)
	}
	if st.Notice != "" {
		e.drawText(screen, st.Notice, face, 10, float64(layout.TopBar)-row/2, colorWarning, text.AlignStart)
	}
}

// drawText draws a single line vertically centred on y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// drawTextLines stacks lines downwards from a first line centred on y
func (e *EbitenRenderer) drawTextLines(screen *ebiten.Image, lines []string, face *text.GoTextFace, x, y float64, clr color.Color) {
	_, lineHeight := text.Measure("Mg", face, 0)
	for i, line := range lines {
		e.drawText(screen, line, face, x, y+float64(i)*lineHeight, clr, text.AlignStart)
	}
}
