package board

import "minesweeper/pkg/engine/world"

// ExplosionInterval is the number of ticks between two mines going off
const ExplosionInterval = 3

// triggerExplosion ends the game and queues every mine, in row-major order, to go off
func (b *Board) triggerExplosion() {
	b.grid.ForEachCell(func(x, y int, c *Cell) {
		c.flagged = false
		if c.hasMine {
			b.explosions.Enqueue(world.Position{X: x, Y: y})
			b.pending++
		}
	})
	b.ended = true
	b.won = false
}

// AdvanceExplosion runs one tick of the explosion sequence.
// Revealed mines step their animation, then every third tick the next queued mine is revealed.
func (b *Board) AdvanceExplosion() {
	b.grid.ForEachCell(func(x, y int, c *Cell) {
		c.advanceExplosion()
	})

	if b.pending == 0 {
		return
	}
	if b.explosionCounter%ExplosionInterval == 0 {
		p := b.explosions.Dequeue()
		b.pending--
		b.grid.GetCell(p.X, p.Y).reveal()
	}
	b.explosionCounter++
}

// ExplosionPending returns the number of mines still waiting to go off
func (b *Board) ExplosionPending() int {
	return b.pending
}

// PendingExplosions returns the queued mine positions in the order they will go off
func (b *Board) PendingExplosions() []world.Position {
	out := make([]world.Position, 0, b.pending)
	if b.pending == 0 {
		return out
	}
	b.explosions.Each(func(p world.Position) {
		out = append(out, p)
	})
	return out
}
