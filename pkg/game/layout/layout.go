// Package layout converts between window pixels and board cells.
package layout

const (
	// DefaultWindowWidth is the width of the game window in pixels
	DefaultWindowWidth = 864
	// DefaultWindowHeight is the height of the game window in pixels
	DefaultWindowHeight = 640
	// TopBar is the height of the status strip above the board
	TopBar = 64
	// MinWindowWidth keeps the status text readable on narrow boards
	MinWindowWidth = 320
	// MaxWindowWidth and MaxWindowHeight bound the window Fit will ask for
	MaxWindowWidth  = 1600
	MaxWindowHeight = 1000
	// MinCellSize is the smallest cell Fit will shrink to
	MinCellSize = 8

	cellsAcross = 10
)

// Layout places a board of Cols x Rows cells under the status strip
type Layout struct {
	WindowWidth  int
	WindowHeight int
	CellSize     int
	Cols         int
	Rows         int
}

// CellSizeFor returns the cell size used for a window: a tenth of the smaller
// playing-area side, never less than one pixel
func CellSizeFor(windowWidth, windowHeight int) int {
	size := min(windowWidth/cellsAcross, (windowHeight-TopBar)/cellsAcross)
	if size <= 0 {
		size = 1
	}
	return size
}

// New fits as many cells as the window holds
func New(windowWidth, windowHeight int) Layout {
	cell := CellSizeFor(windowWidth, windowHeight)
	return Layout{
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		CellSize:     cell,
		Cols:         windowWidth / cell,
		Rows:         (windowHeight - TopBar) / cell,
	}
}

// Default returns the layout of the default window (15 x 10 cells of 57px)
func Default() Layout {
	return New(DefaultWindowWidth, DefaultWindowHeight)
}

// ForBoard sizes a window around a board with explicit dimensions
func ForBoard(cols, rows, cellSize int) Layout {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Layout{
		WindowWidth:  max(cols*cellSize, MinWindowWidth),
		WindowHeight: TopBar + rows*cellSize,
		CellSize:     cellSize,
		Cols:         cols,
		Rows:         rows,
	}
}

// Fit returns the default layout when it matches cols x rows, and otherwise
// the largest cells, up to the default size, that keep the window on screen
func Fit(cols, rows int) Layout {
	def := Default()
	if def.Cols == cols && def.Rows == rows {
		return def
	}
	cell := min(def.CellSize, MaxWindowWidth/cols, (MaxWindowHeight-TopBar)/rows)
	return ForBoard(cols, rows, max(cell, MinCellSize))
}

// CellAt maps a pointer position to a board cell.
// ok is false when the pointer is over the status strip or outside the board.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	py -= TopBar
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/l.CellSize, py/l.CellSize
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// CellOrigin returns the top-left pixel of a cell
func (l Layout) CellOrigin(x, y int) (px, py int) {
	return x * l.CellSize, TopBar + y*l.CellSize
}
