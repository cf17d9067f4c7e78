// Package board implements the Minesweeper board: mine placement, flood reveal,
// flagging, win/lose detection, the post-loss explosion sequence and the game timer.
//
// A Board is not safe for concurrent use; renderers drive it from one goroutine.
package board

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/zyedidia/generic/queue"

	"minesweeper/pkg/engine/world"
)

// DefaultTicksPerSecond matches the frame rate the renderers run at
const DefaultTicksPerSecond = 30

// Config describes the board to build
type Config struct {
	Width          int
	Height         int
	Mines          int
	TicksPerSecond int
}

// RevealOutcome reports what a reveal did
type RevealOutcome int

// Reveal outcomes
const (
	RevealNoEffect RevealOutcome = iota
	RevealContinue
	RevealHitMine
	RevealWon
	RevealAlreadyEnded
)

// String returns the outcome name, used in logs and traces
func (o RevealOutcome) String() string {
	switch o {
	case RevealNoEffect:
		return "no_effect"
	case RevealContinue:
		return "continue"
	case RevealHitMine:
		return "hit_mine"
	case RevealWon:
		return "won"
	case RevealAlreadyEnded:
		return "already_ended"
	default:
		return "unknown"
	}
}

// CellState is a read-only snapshot of one cell, for renderers
type CellState struct {
	X              int
	Y              int
	Revealed       bool
	Flagged        bool
	HasMine        bool
	AdjacentMines  int
	ExplosionFrame int
}

// SpriteIndex returns which of the explosion sprites to draw
func (s CellState) SpriteIndex() int {
	return s.ExplosionFrame / FramesPerSprite
}

// Board is the Minesweeper playing field
type Board struct {
	grid      *world.Grid[Cell]
	mineCount int

	revealedSafe int
	ended        bool
	won          bool

	explosions       *queue.Queue[world.Position]
	pending          int
	explosionCounter int

	ticks          int
	elapsed        int
	ticksPerSecond int

	rng *rand.Rand
}

// NewRand returns a PCG-backed random source. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// New creates a board and places its mines with rng.
// A nil rng gets a time-seeded source.
func New(cfg Config, rng *rand.Rand) (*Board, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	b := &Board{
		rng:            rng,
		ticksPerSecond: cfg.TicksPerSecond,
	}
	if b.ticksPerSecond <= 0 {
		b.ticksPerSecond = DefaultTicksPerSecond
	}
	if err := b.Reset(cfg.Width, cfg.Height, cfg.Mines); err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithMines creates a board with mines at exactly the given positions
func NewWithMines(width, height int, mines []world.Position) (*Board, error) {
	if err := validate(width, height, len(mines)); err != nil {
		return nil, err
	}

	b := &Board{
		rng:            NewRand(1),
		ticksPerSecond: DefaultTicksPerSecond,
	}
	b.clear(width, height, len(mines))
	for _, p := range mines {
		cell := b.grid.GetCell(p.X, p.Y)
		if cell == nil {
			return nil, fmt.Errorf("%w: mine at %v is outside %dx%d", ErrInvalidConfiguration, p, width, height)
		}
		if cell.hasMine {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidConfiguration, p)
		}
		cell.hasMine = true
	}
	return b, nil
}

// Reset discards the current game and deals a fresh board.
// On error the board is left untouched.
func (b *Board) Reset(width, height, mineCount int) error {
	if err := validate(width, height, mineCount); err != nil {
		return err
	}
	b.clear(width, height, mineCount)
	b.placeMines(mineCount)
	return nil
}

// Restart deals a fresh board with the current dimensions and mine count
func (b *Board) Restart() {
	// Dimensions were validated when they were set, so this cannot fail.
	_ = b.Reset(b.Width(), b.Height(), b.mineCount)
}

func (b *Board) clear(width, height, mineCount int) {
	b.grid = world.NewGrid(width, height, newCell)
	b.mineCount = mineCount
	b.revealedSafe = 0
	b.ended = false
	b.won = false
	b.explosions = queue.New[world.Position]()
	b.pending = 0
	b.explosionCounter = 0
	b.ticks = 0
	b.elapsed = 0
}

// placeMines shuffles the flat position list and mines the first count entries
func (b *Board) placeMines(count int) {
	width := b.grid.Width()
	for _, idx := range b.rng.Perm(b.grid.Size())[:count] {
		b.grid.GetCell(idx%width, idx/width).hasMine = true
	}
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.grid.Width()
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.grid.Height()
}

// MineCount returns the number of mines on the board
func (b *Board) MineCount() int {
	return b.mineCount
}

// Cell returns a copy of the cell at (x, y); ok is false when out of bounds
func (b *Board) Cell(x, y int) (Cell, bool) {
	c := b.grid.GetCell(x, y)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// CellState returns a snapshot of the cell at (x, y); ok is false when out of bounds
func (b *Board) CellState(x, y int) (CellState, bool) {
	c := b.grid.GetCell(x, y)
	if c == nil {
		return CellState{}, false
	}
	return b.stateOf(c), true
}

func (b *Board) stateOf(c *Cell) CellState {
	return CellState{
		X:              c.pos.X,
		Y:              c.pos.Y,
		Revealed:       c.revealed,
		Flagged:        c.flagged,
		HasMine:        c.hasMine,
		AdjacentMines:  b.CountAdjacentMines(c.pos.X, c.pos.Y),
		ExplosionFrame: c.explosionFrame,
	}
}

// ForEachCell calls fn for every cell in row-major order
func (b *Board) ForEachCell(fn func(state CellState)) {
	b.grid.ForEachCell(func(x, y int, c *Cell) {
		fn(b.stateOf(c))
	})
}

// AdjacentCells returns the in-bounds neighbours of (x, y)
// in the order N, NE, E, SE, S, SW, W, NW
func (b *Board) AdjacentCells(x, y int) []world.Position {
	return b.grid.Neighbors(x, y)
}

// CountAdjacentMines returns how many neighbours of (x, y) hold a mine; 0 when out of bounds
func (b *Board) CountAdjacentMines(x, y int) int {
	count := 0
	for _, p := range b.AdjacentCells(x, y) {
		if b.grid.GetCell(p.X, p.Y).hasMine {
			count++
		}
	}
	return count
}

// ToggleFlag flips the flag on a concealed cell while the game is in progress.
// It returns false when nothing changed.
func (b *Board) ToggleFlag(x, y int) bool {
	if b.ended {
		return false
	}
	c := b.grid.GetCell(x, y)
	if c == nil || c.revealed {
		return false
	}
	c.flagged = !c.flagged
	return true
}

// FlagCount returns the number of flagged cells
func (b *Board) FlagCount() int {
	return b.grid.CountWhere(func(c *Cell) bool { return c.flagged })
}

// MinesRemaining returns mines minus flags, which goes negative on over-flagging
func (b *Board) MinesRemaining() int {
	return b.mineCount - b.FlagCount()
}

// RemainingNonMineCells returns how many safe cells are still concealed
func (b *Board) RemainingNonMineCells() int {
	return b.grid.Size() - b.mineCount - b.revealedSafe
}

// IsEnded returns true once the game has been won or lost
func (b *Board) IsEnded() bool {
	return b.ended
}

// IsWon returns true if every safe cell was revealed without hitting a mine
func (b *Board) IsWon() bool {
	return b.won
}

// IsLost returns true if a mine was revealed
func (b *Board) IsLost() bool {
	return b.ended && !b.won
}

// ElapsedSeconds returns the game timer
func (b *Board) ElapsedSeconds() int {
	return b.elapsed
}

// Ticks returns the number of ticks since the last reset
func (b *Board) Ticks() int {
	return b.ticks
}

// Tick advances the explosion sequence and the game timer by one frame
func (b *Board) Tick() {
	b.AdvanceExplosion()
	if !b.ended && b.ticks%b.ticksPerSecond == 0 {
		b.elapsed++
	}
	b.ticks++
}
