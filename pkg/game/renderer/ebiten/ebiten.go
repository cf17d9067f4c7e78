package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/layout"
	"minesweeper/pkg/game/logging"
	"minesweeper/pkg/game/state"
)

// New creates a new Ebiten renderer for the given layout
func New(l layout.Layout) *EbitenRenderer {
	return &EbitenRenderer{
		layout: l,
		ctx:    context.Background(),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init(g *state.Game) error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	e.game = g

	ebiten.SetWindowSize(e.layout.WindowWidth, e.layout.WindowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetTPS(board.DefaultTicksPerSecond)

	logging.Log.WithField("cell", e.layout.CellSize).Debug("ebiten renderer initialised")
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or the player quits
func (e *EbitenRenderer) Run(ctx context.Context, g *state.Game) error {
	e.ctx = ctx
	e.game = g
	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(e)
}

// Shutdown releases renderer resources
func (e *EbitenRenderer) Shutdown() {
	e.faces = nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.layout.WindowWidth, e.layout.WindowHeight
}
