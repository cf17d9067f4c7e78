package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/terminal"
	"minesweeper/pkg/game/config"
	"minesweeper/pkg/game/devtools"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/layout"
	"minesweeper/pkg/game/logging"
	"minesweeper/pkg/game/renderer"
	ebitenrenderer "minesweeper/pkg/game/renderer/ebiten"
	"minesweeper/pkg/game/renderer/tui"
	"minesweeper/pkg/game/telemetry"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		logging.Log.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging at info\n", err)
	}
	if cfg.Renderer == config.RendererTUI && !cfg.Dump {
		// The terminal belongs to tcell from here on.
		f, err := logging.ToFile(logging.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	}

	if err := i18n.Init(cfg.Lang); err != nil {
		logging.Log.Warn(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logging.Log.Warnf("telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Log.Warnf("telemetry shutdown: %v", err)
				}
			}()
		}
	}

	logging.Log.WithFields(logrus.Fields{
		"width":    cfg.Width,
		"height":   cfg.Height,
		"mines":    cfg.Mines,
		"seed":     cfg.Seed,
		"renderer": cfg.Renderer,
		"lang":     cfg.Lang,
	}).Info("starting")

	g, err := gameplay.BuildGame(cfg)
	if err != nil {
		return err
	}

	if cfg.Dump {
		return devtools.DumpBoard(os.Stdout, g.Board, devtools.DumpOptions{
			RevealAll: true,
			Color:     terminal.IsTerminal(os.Stdout),
		})
	}

	switch cfg.Renderer {
	case config.RendererTUI:
		renderer.SetRenderer(tui.New())
	default:
		renderer.SetRenderer(ebitenrenderer.New(layout.Fit(cfg.Width, cfg.Height)))
	}

	if err := renderer.Init(g); err != nil {
		return fmt.Errorf("starting %s renderer: %w", cfg.Renderer, err)
	}
	defer renderer.Shutdown()

	return renderer.Run(ctx, g)
}
