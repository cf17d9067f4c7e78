package ebiten

import "image/color"

// Color palette for the board
var (
	colorBackground   = color.RGBA{200, 200, 200, 255} // Light gray status strip
	colorTileHidden   = color.RGBA{38, 70, 140, 255}   // Dark blue concealed tile
	colorTileHover    = color.RGBA{70, 110, 190, 255}  // Lighter blue under the pointer
	colorTileRevealed = color.RGBA{225, 225, 225, 255} // Uncovered tile
	colorTileMine     = color.RGBA{235, 170, 160, 255} // Uncovered mine
	colorTileBorder   = color.RGBA{120, 120, 130, 255}
	colorFlagPole     = color.RGBA{40, 40, 40, 255}
	colorFlag         = color.RGBA{220, 30, 30, 255}
	colorText         = color.RGBA{0, 0, 0, 255}
	colorWarning      = color.RGBA{255, 0, 0, 255}
	colorHint         = color.RGBA{70, 70, 90, 255}

	// Explosion sprite colours, from the fireball to the burnt crater
	colorFlash   = color.RGBA{255, 245, 180, 255}
	colorFire    = color.RGBA{255, 140, 20, 255}
	colorSmoke   = color.RGBA{90, 80, 80, 255}
	colorCrater  = color.RGBA{30, 30, 30, 255}
	colorMineTop = color.RGBA{150, 150, 150, 255}
)

const (
	tileInset         = 1    // Gap between tiles in pixels
	tileBorderWidth   = 1.0  // Stroke width of tile outlines
	statusTextDivisor = 3    // Status text is a third of a cell tall
	bannerTextDivisor = 2    // Win/lose banner is half a cell tall
	minFontSize       = 10.0 // Never draw text smaller than this
)
