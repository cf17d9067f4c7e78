package board

import "minesweeper/pkg/engine/world"

// MaxExplosionFrame is the last frame of a mine's explosion animation
const MaxExplosionFrame = 27

// FramesPerSprite is the number of explosion frames each sprite is shown for
const FramesPerSprite = 3

// Cell is a single square of the board.
// It holds no reference to the board; adjacency is answered by Board.
type Cell struct {
	pos            world.Position
	hasMine        bool
	revealed       bool
	flagged        bool
	explosionFrame int
}

func newCell(x, y int) Cell {
	return Cell{pos: world.Position{X: x, Y: y}}
}

// Position returns the cell's column and row
func (c Cell) Position() world.Position {
	return c.pos
}

// HasMine returns true if the cell hides a mine
func (c Cell) HasMine() bool {
	return c.hasMine
}

// IsRevealed returns true once the cell has been uncovered
func (c Cell) IsRevealed() bool {
	return c.revealed
}

// IsFlagged returns true if the player has marked the cell
func (c Cell) IsFlagged() bool {
	return c.flagged
}

// ExplosionFrame returns the current explosion animation frame (0..MaxExplosionFrame)
func (c Cell) ExplosionFrame() int {
	return c.explosionFrame
}

// SpriteIndex returns which of the explosion sprites to draw
func (c Cell) SpriteIndex() int {
	return c.explosionFrame / FramesPerSprite
}

// reveal uncovers the cell. A revealed cell is never flagged.
func (c *Cell) reveal() {
	c.revealed = true
	c.flagged = false
}

func (c *Cell) advanceExplosion() {
	if c.hasMine && c.revealed && c.explosionFrame < MaxExplosionFrame {
		c.explosionFrame++
	}
}
