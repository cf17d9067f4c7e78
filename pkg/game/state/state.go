// Package state holds the per-session game state shared by gameplay and renderers.
package state

import (
	"minesweeper/pkg/game/board"
)

// NoticeTicks is how long a warning notice stays on screen
const NoticeTicks = 120

const maxMessages = 5

// Game represents one Minesweeper session
type Game struct {
	Board *board.Board

	// Notice is a warning shown in the status strip until NoticeLeft reaches zero
	Notice     string
	NoticeLeft int

	Messages []string

	// Keyboard cursor, used by the terminal renderer
	CursorX int
	CursorY int

	Quit bool
}

// NewGame creates a new session around b
func NewGame(b *board.Board) *Game {
	return &Game{
		Board:    b,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SetNotice shows a warning for NoticeTicks ticks
func (g *Game) SetNotice(msg string) {
	g.Notice = msg
	g.NoticeLeft = NoticeTicks
}

// ActiveNotice returns the current warning, or "" once it has expired
func (g *Game) ActiveNotice() string {
	if g.NoticeLeft <= 0 {
		return ""
	}
	return g.Notice
}

// Tick advances the board by one frame and ages the notice
func (g *Game) Tick() {
	g.Board.Tick()
	if g.NoticeLeft > 0 {
		g.NoticeLeft--
	}
}

// MoveCursor moves the keyboard cursor, keeping it on the board
func (g *Game) MoveCursor(dx, dy int) {
	g.CursorX = clamp(g.CursorX+dx, 0, g.Board.Width()-1)
	g.CursorY = clamp(g.CursorY+dy, 0, g.Board.Height()-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
