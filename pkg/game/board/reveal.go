package board

import (
	"github.com/zyedidia/generic/stack"

	"minesweeper/pkg/engine/world"
)

// RevealAt uncovers the cell at (x, y).
// Revealing a cell with no adjacent mines spreads to its neighbours.
func (b *Board) RevealAt(x, y int) RevealOutcome {
	if b.ended {
		return RevealAlreadyEnded
	}

	c := b.grid.GetCell(x, y)
	if c == nil || c.flagged || c.revealed {
		return RevealNoEffect
	}

	if c.hasMine {
		c.reveal()
		b.triggerExplosion()
		return RevealHitMine
	}

	b.floodReveal(c.pos)

	if b.RemainingNonMineCells() == 0 {
		b.ended = true
		b.won = true
		return RevealWon
	}
	return RevealContinue
}

// floodReveal walks outward from start with an explicit worklist.
// Cells are marked revealed as they are pushed, so none is scheduled twice.
func (b *Board) floodReveal(start world.Position) {
	work := stack.New[world.Position]()

	b.revealSafe(start)
	work.Push(start)

	for work.Size() > 0 {
		p := work.Pop()
		if b.CountAdjacentMines(p.X, p.Y) != 0 {
			continue
		}
		for _, n := range b.grid.Neighbors(p.X, p.Y) {
			nc := b.grid.GetCell(n.X, n.Y)
			if nc.revealed || nc.hasMine {
				continue
			}
			b.revealSafe(n)
			work.Push(n)
		}
	}
}

func (b *Board) revealSafe(p world.Position) {
	b.grid.GetCell(p.X, p.Y).reveal()
	b.revealedSafe++
}
