package gameplay

import (
	"context"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/logging"
	"minesweeper/pkg/game/state"
	"minesweeper/pkg/game/telemetry"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(ctx context.Context, g *state.Game, intent engineinput.Intent) {
	if intent.Action == engineinput.ActionNone {
		return
	}

	_, span := telemetry.Tracer("gameplay").Start(ctx, "gameplay.intent")
	defer span.End()
	span.SetAttributes(
		attribute.String("intent.action", engineinput.ActionName(intent.Action)),
		attribute.Int("intent.x", intent.X),
		attribute.Int("intent.y", intent.Y),
	)

	logging.Log.WithFields(logrus.Fields{
		"action": engineinput.ActionName(intent.Action),
		"x":      intent.X,
		"y":      intent.Y,
	}).Debug("intent")

	switch intent.Action {
	case engineinput.ActionReveal:
		outcome := Reveal(g, intent.X, intent.Y)
		span.SetAttributes(attribute.String("reveal.outcome", outcome.String()))

	case engineinput.ActionFlag:
		changed := g.Board.ToggleFlag(intent.X, intent.Y)
		span.SetAttributes(attribute.Bool("flag.changed", changed))

	case engineinput.ActionReset:
		ResetGame(g)

	case engineinput.ActionCursorUp:
		g.MoveCursor(0, -1)
	case engineinput.ActionCursorDown:
		g.MoveCursor(0, 1)
	case engineinput.ActionCursorLeft:
		g.MoveCursor(-1, 0)
	case engineinput.ActionCursorRight:
		g.MoveCursor(1, 0)

	case engineinput.ActionQuit:
		g.Quit = true
	}
}

// Reveal uncovers a cell and records the result in the message log
func Reveal(g *state.Game, x, y int) board.RevealOutcome {
	outcome := g.Board.RevealAt(x, y)

	switch outcome {
	case board.RevealHitMine:
		logging.Log.WithFields(logrus.Fields{
			"x":       x,
			"y":       y,
			"seconds": g.Board.ElapsedSeconds(),
		}).Info("game lost")
		g.AddMessage(fmt.Sprintf(gotext.Get("MSG_BOOM"), x, y))

	case board.RevealWon:
		logging.Log.WithField("seconds", g.Board.ElapsedSeconds()).Info("game won")
		g.AddMessage(fmt.Sprintf(gotext.Get("MSG_CLEARED"), g.Board.ElapsedSeconds()))
	}
	return outcome
}

// Tick advances the game by one frame
func Tick(g *state.Game) {
	exploding := g.Board.ExplosionPending() > 0
	g.Tick()
	if exploding && g.Board.ExplosionPending() == 0 {
		logging.Log.WithField("mines", g.Board.MineCount()).Debug("explosion sequence finished")
	}
}
