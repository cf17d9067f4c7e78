package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMineCount is used whenever a requested mine count cannot be honoured
const DefaultMineCount = 100

var (
	// ErrInvalidConfiguration is returned for dimensions or mine counts a board cannot hold
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrTooManyMines means the requested mines would leave no safe cell
	ErrTooManyMines = fmt.Errorf("%w: too many mines", ErrInvalidConfiguration)

	// ErrInvalidMineCount means the requested mine count is not a non-negative integer
	ErrInvalidMineCount = fmt.Errorf("%w: mine count is not a non-negative integer", ErrInvalidConfiguration)
)

// FallbackMineCount returns DefaultMineCount, clamped so at least one safe cell remains
func FallbackMineCount(totalCells int) int {
	if totalCells <= 0 {
		return 0
	}
	return min(DefaultMineCount, totalCells-1)
}

// ResolveMineCount turns a user-supplied mine count into one a board of totalCells can hold.
// On a bad value it returns the fallback count together with ErrInvalidMineCount or
// ErrTooManyMines so the caller can warn the player.
func ResolveMineCount(raw string, totalCells int) (int, error) {
	fallback := FallbackMineCount(totalCells)

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return fallback, fmt.Errorf("%w: %q", ErrInvalidMineCount, raw)
	}
	if n >= totalCells {
		return fallback, fmt.Errorf("%w: %d mines for %d cells", ErrTooManyMines, n, totalCells)
	}
	return n, nil
}

func validate(width, height, mines int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfiguration, width, height)
	}
	if mines < 0 || mines >= width*height {
		return fmt.Errorf("%w: %d mines for %d cells", ErrInvalidConfiguration, mines, width*height)
	}
	return nil
}
