package renderer

import (
	"context"

	"minesweeper/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations own their event loop and call into gameplay from a single goroutine.
type Renderer interface {
	// Init prepares the backend (window, screen, fonts)
	Init(g *state.Game) error

	// Run drives input, ticks and drawing until the player quits or ctx is cancelled
	Run(ctx context.Context, g *state.Game) error

	// Shutdown releases the backend's resources
	Shutdown()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init(g *state.Game) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Init(g)
}

// Run runs the current renderer
func Run(ctx context.Context, g *state.Game) error {
	if Current == nil {
		return ErrNoRenderer
	}
	return Current.Run(ctx, g)
}

// Shutdown shuts the current renderer down
func Shutdown() {
	if Current != nil {
		Current.Shutdown()
	}
}
