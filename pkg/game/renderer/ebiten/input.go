package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/game/gameplay"
	"minesweeper/pkg/game/logging"
)

// keyCodes maps Ebiten keys to raw input codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyR:      "r",
	ebiten.KeyQ:      "q",
	ebiten.KeyEscape: "escape",
}

// Update handles input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logging.Log.Infof("Main window opened successfully (%dx%d)", w, h)
	}

	for _, raw := range e.checkInput() {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		gameplay.ProcessIntent(e.ctx, e.game, intent)
	}

	gameplay.Tick(e.game)

	if e.game.Quit || e.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

// checkInput collects this frame's raw events. Clicks fire on release,
// and only when the pointer is over a board cell.
func (e *EbitenRenderer) checkInput() []engineinput.RawInput {
	var events []engineinput.RawInput
	now := time.Now()

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      code,
				Timestamp: now,
			})
		}
	}

	buttons := []struct {
		button ebiten.MouseButton
		code   string
	}{
		{ebiten.MouseButtonLeft, "mouse_left"},
		{ebiten.MouseButtonRight, "mouse_right"},
	}
	for _, b := range buttons {
		if !inpututil.IsMouseButtonJustReleased(b.button) {
			continue
		}
		x, y, ok := e.layout.CellAt(ebiten.CursorPosition())
		if !ok {
			continue
		}
		events = append(events, engineinput.RawInput{
			Device:    engineinput.DeviceMouse,
			Code:      b.code,
			X:         x,
			Y:         y,
			Timestamp: now,
		})
	}
	return events
}

// hoveredCell returns the cell under the pointer
func (e *EbitenRenderer) hoveredCell() (x, y int, ok bool) {
	return e.layout.CellAt(ebiten.CursorPosition())
}
