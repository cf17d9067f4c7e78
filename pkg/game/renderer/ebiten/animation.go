package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// explosionStage is one of the ten mine sprites
type explosionStage struct {
	core      color.Color
	coreScale float32 // radius as a fraction of half a cell
	ring      color.Color
	ringScale float32
}

// explosionStages grow from an intact mine to a fireball, then settle into a crater
var explosionStages = [10]explosionStage{
	{core: colorCrater, coreScale: 0.45, ring: colorMineTop, ringScale: 0.2},
	{core: colorFire, coreScale: 0.5, ring: colorFlash, ringScale: 0.25},
	{core: colorFire, coreScale: 0.65, ring: colorFlash, ringScale: 0.4},
	{core: colorFire, coreScale: 0.8, ring: colorFlash, ringScale: 0.55},
	{core: colorFire, coreScale: 0.95, ring: colorFlash, ringScale: 0.6},
	{core: colorSmoke, coreScale: 0.95, ring: colorFire, ringScale: 0.6},
	{core: colorSmoke, coreScale: 0.85, ring: colorFire, ringScale: 0.4},
	{core: colorSmoke, coreScale: 0.75, ring: colorCrater, ringScale: 0.35},
	{core: colorCrater, coreScale: 0.65, ring: colorSmoke, ringScale: 0.3},
	{core: colorCrater, coreScale: 0.55, ring: colorCrater, ringScale: 0},
}

// drawMine draws the explosion sprite for a revealed mine
func (e *EbitenRenderer) drawMine(screen *ebiten.Image, px, py int, sprite int) {
	stage := explosionStages[max(0, min(sprite, len(explosionStages)-1))]

	half := float32(e.layout.CellSize) / 2
	cx, cy := float32(px)+half, float32(py)+half

	vector.DrawFilledCircle(screen, cx, cy, half*stage.coreScale, stage.core, true)
	if stage.ringScale > 0 {
		vector.DrawFilledCircle(screen, cx, cy, half*stage.ringScale, stage.ring, true)
	}
}

// drawFlag draws a pennant on a concealed tile
func (e *EbitenRenderer) drawFlag(screen *ebiten.Image, px, py int) {
	size := float32(e.layout.CellSize)
	x, y := float32(px), float32(py)

	poleX := x + size*0.35
	vector.DrawFilledRect(screen, poleX, y+size*0.2, size*0.06, size*0.6, colorFlagPole, false)
	vector.DrawFilledRect(screen, x+size*0.25, y+size*0.75, size*0.4, size*0.06, colorFlagPole, false)

	// Pennant, narrowing in steps from the pole to its tip
	const steps = 6
	top, height := y+size*0.2, size*0.26
	for i := 0; i < steps; i++ {
		inset := height * float32(i) / (2 * steps)
		width := size * 0.4 * float32(steps-i) / steps
		vector.DrawFilledRect(screen, poleX+size*0.06, top+inset, width, height-2*inset, colorFlag, false)
	}
}
