package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minesweeper/pkg/game/board"
)

func newFlagSet(t *testing.T) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvMines, EnvWidth, EnvHeight, EnvSeed, EnvRenderer, EnvLang, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(newFlagSet(t), nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Width != 15 || cfg.Height != 10 {
		t.Errorf("board = %dx%d, want 15x10", cfg.Width, cfg.Height)
	}
	if cfg.Mines != "100" {
		t.Errorf("Mines = %q, want %q", cfg.Mines, "100")
	}
	if cfg.Renderer != RendererEbiten || cfg.LogLevel != "info" {
		t.Errorf("Renderer/LogLevel = %q/%q, want ebiten/info", cfg.Renderer, cfg.LogLevel)
	}
}

func TestLoad_EnvThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMines, "12")
	t.Setenv(EnvWidth, "9")
	t.Setenv(EnvHeight, "9")
	t.Setenv(EnvRenderer, "TUI")
	t.Setenv(EnvSeed, "77")

	cfg, err := Load(newFlagSet(t), []string{"-mines", "20", "-width", "12", "-debug"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mines != "20" || cfg.Width != 12 || cfg.Height != 9 {
		t.Errorf("Mines/Width/Height = %q/%d/%d, want 20/12/9", cfg.Mines, cfg.Width, cfg.Height)
	}
	if cfg.Renderer != RendererTUI || cfg.Seed != 77 {
		t.Errorf("Renderer/Seed = %q/%d, want tui/77", cfg.Renderer, cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_RendererFlagIgnoresCase(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(newFlagSet(t), []string{"-renderer", " TUI"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Renderer != RendererTUI {
		t.Errorf("Renderer = %q, want %q", cfg.Renderer, RendererTUI)
	}
}

func TestLoad_LangUsageListsCatalogues(t *testing.T) {
	clearEnv(t)
	fs := newFlagSet(t)
	if _, err := Load(fs, nil); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if usage := fs.Lookup("lang").Usage; !strings.HasSuffix(usage, ": de, en") {
		t.Errorf("-lang usage = %q, want it to end with the catalogue list", usage)
	}
}

func TestLoad_MineCountStaysRaw(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(newFlagSet(t), []string{"-mines", "lots"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mines != "lots" {
		t.Errorf("Mines = %q, want %q", cfg.Mines, "lots")
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr error
	}{
		{"zero width", nil, []string{"-width", "0"}, board.ErrInvalidConfiguration},
		{"single cell", nil, []string{"-width", "1", "-height", "1"}, board.ErrInvalidConfiguration},
		{"bad renderer", nil, []string{"-renderer", "opengl"}, ErrUnknownRenderer},
		{"bad env width", map[string]string{EnvWidth: "wide"}, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(newFlagSet(t), tc.args)
			if err == nil {
				t.Fatal("Load() returned nil error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte(EnvMines+"=33\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides a variable that is already set, even to "".
	os.Unsetenv(EnvMines)

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	cfg, err := Load(newFlagSet(t), nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mines != "33" {
		t.Errorf("Mines = %q, want %q", cfg.Mines, "33")
	}
}
