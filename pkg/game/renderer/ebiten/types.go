// Package ebiten provides an Ebiten-based 2D graphical renderer for Minesweeper.
package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"minesweeper/pkg/game/layout"
	"minesweeper/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	layout layout.Layout

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for cell numbers
	sansFontSource *text.GoTextFaceSource // Sans-serif font for status text

	// Cached font faces, keyed by size
	faces map[faceKey]*text.GoTextFace

	// Game state driven from Update; Ebiten calls Update and Draw on one goroutine
	game *state.Game
	ctx  context.Context

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

type faceKey struct {
	source *text.GoTextFaceSource
	size   float64
}
