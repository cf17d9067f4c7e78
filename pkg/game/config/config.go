// Package config gathers start-up settings from a .env file, the environment and flags.
// Flags override environment variables, which override the built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"minesweeper/pkg/game/board"
	"minesweeper/pkg/game/i18n"
	"minesweeper/pkg/game/layout"
)

// Renderer names accepted by -renderer
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Environment variables read by Load
const (
	EnvMines    = "MINESWEEPER_MINES"
	EnvWidth    = "MINESWEEPER_WIDTH"
	EnvHeight   = "MINESWEEPER_HEIGHT"
	EnvSeed     = "MINESWEEPER_SEED"
	EnvRenderer = "MINESWEEPER_RENDERER"
	EnvLang     = "MINESWEEPER_LANG"
	EnvLogLevel = "MINESWEEPER_LOG_LEVEL"
)

// ErrUnknownRenderer is returned when -renderer names no known renderer
var ErrUnknownRenderer = errors.New("unknown renderer")

// Config holds everything needed to start a game
type Config struct {
	Width    int
	Height   int
	Mines    string // resolved against the board size by board.ResolveMineCount
	Seed     uint64 // 0 picks a time-based seed
	Renderer string
	Lang     string
	LogLevel string

	Debug     bool
	Telemetry bool
	Dump      bool
}

// Default returns the configuration of the standard 15x10 board with 100 mines
func Default() Config {
	l := layout.Default()
	return Config{
		Width:    l.Cols,
		Height:   l.Rows,
		Mines:    strconv.Itoa(board.DefaultMineCount),
		Renderer: RendererEbiten,
		Lang:     "en",
		LogLevel: "info",
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none are named).
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load builds a Config from the environment, then parses args with fs.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Mines, "mines", cfg.Mines, "number of mines")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for mine placement (0 = time based)")
	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use: ebiten or tui")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language for game text: "+strings.Join(i18n.Languages(), ", "))
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cfg.Telemetry, "telemetry", false, "export traces over OTLP/HTTP")
	fs.BoolVar(&cfg.Dump, "dump", false, "print a freshly dealt board and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Renderer = strings.ToLower(strings.TrimSpace(cfg.Renderer))
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that cannot fall back to a default
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", board.ErrInvalidConfiguration, c.Width, c.Height)
	}
	if c.Width*c.Height < 2 {
		return fmt.Errorf("%w: board %dx%d has no room for a mine", board.ErrInvalidConfiguration, c.Width, c.Height)
	}
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, c.Renderer)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvMines); ok {
		c.Mines = v
	}
	if v, ok := lookup(EnvRenderer); ok {
		c.Renderer = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLang); ok {
		c.Lang = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}

	var err error
	if c.Width, err = envInt(EnvWidth, c.Width); err != nil {
		return err
	}
	if c.Height, err = envInt(EnvHeight, c.Height); err != nil {
		return err
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envInt(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
