// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Position is a column/row coordinate on a grid
type Position struct {
	X int
	Y int
}

// String returns the "x,y" form of the position
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Step returns the position one cell away in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular, row-major store of cells.
// Cells are addressed by (x, y) and stored as cells[y][x].
type Grid[T any] struct {
	cells  [][]T
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions, filling each slot with init(x, y)
func NewGrid[T any](width, height int, init func(x, y int) T) *Grid[T] {
	g := &Grid[T]{}
	g.Build(width, height, init)
	return g
}

// Build (re)initializes the grid with the given dimensions
func (g *Grid[T]) Build(width, height int, init func(x, y int) T) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]T, height)

	for y := 0; y < height; y++ {
		g.cells[y] = make([]T, width)
		if init == nil {
			continue
		}
		for x := 0; x < width; x++ {
			g.cells[y][x] = init(x, y)
		}
	}
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// Size returns the total number of cells
func (g *Grid[T]) Size() int {
	return g.width * g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid[T]) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// GetCell returns a pointer to the cell at the given position, or nil if out of bounds
func (g *Grid[T]) GetCell(x, y int) *T {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return &g.cells[y][x]
}

// Neighbors returns the in-bounds positions around (x, y), diagonals included,
// in AllDirections order. Out-of-bounds origins yield nil.
func (g *Grid[T]) Neighbors(x, y int) []Position {
	if !g.IsValidPosition(x, y) {
		return nil
	}

	origin := Position{X: x, Y: y}
	neighbors := make([]Position, 0, 8)
	for _, dir := range AllDirections() {
		p := origin.Step(dir)
		if g.IsValidPosition(p.X, p.Y) {
			neighbors = append(neighbors, p)
		}
	}
	return neighbors
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid[T]) ForEachCell(fn func(x, y int, cell *T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, &g.cells[y][x])
		}
	}
}

// CountWhere returns the number of cells for which pred returns true
func (g *Grid[T]) CountWhere(pred func(cell *T) bool) int {
	count := 0
	g.ForEachCell(func(x, y int, cell *T) {
		if pred(cell) {
			count++
		}
	})
	return count
}
