// Package gameplay applies player intents to the game state.
package gameplay

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/logging"
	"minesweeper/pkg/game/state"
)

// BuildGame deals the first board for cfg.
// A mine count the board cannot hold falls back to the default and raises a notice.
func BuildGame(cfg config.Config) (*state.Game, error) {
	mines, mineErr := board.ResolveMineCount(cfg.Mines, cfg.Width*cfg.Height)

	b, err := board.New(board.Config{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Mines:          mines,
		TicksPerSecond: board.DefaultTicksPerSecond,
	}, board.NewRand(cfg.Seed))
	if err != nil {
		return nil, err
	}

	g := state.NewGame(b)
	if mineErr != nil {
		logging.Log.WithFields(logrus.Fields{
			"requested": cfg.Mines,
			"using":     mines,
		}).Warn(mineErr)
		g.SetNotice(mineCountNotice(mineErr, mines))
	}

	announceNewGame(g)
	return g, nil
}

// ResetGame deals a fresh board with the same dimensions and mine count
func ResetGame(g *state.Game) {
	g.Board.Restart()
	g.ClearMessages()
	announceNewGame(g)
}

func announceNewGame(g *state.Game) {
	b := g.Board
	logging.Log.WithFields(logrus.Fields{
		"width":  b.Width(),
		"height": b.Height(),
		"mines":  b.MineCount(),
	}).Info("new game")
	g.AddMessage(fmt.Sprintf(gotext.Get("MSG_NEW_GAME"), b.Width(), b.Height(), b.MineCount()))
}

func mineCountNotice(err error, mines int) string {
	if errors.Is(err, board.ErrTooManyMines) {
		return fmt.Sprintf(gotext.Get("WARN_TOO_MANY_MINES"), mines)
	}
	return fmt.Sprintf(gotext.Get("WARN_INVALID_MINES"), mines)
}
