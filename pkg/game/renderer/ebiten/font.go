package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("loading mono font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading sans font: %w", err)
	}
	e.monoFontSource = mono
	e.sansFontSource = sans
	e.faces = make(map[faceKey]*text.GoTextFace)
	return nil
}

// face returns a cached font face of the given size
func (e *EbitenRenderer) face(source *text.GoTextFaceSource, size float64) *text.GoTextFace {
	size = max(size, minFontSize)
	key := faceKey{source: source, size: size}
	if f, ok := e.faces[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: source, Size: size}
	e.faces[key] = f
	return f
}

// getNumberFontFace returns the face for adjacent-mine counts (half a cell)
func (e *EbitenRenderer) getNumberFontFace() *text.GoTextFace {
	return e.face(e.monoFontSource, float64(e.layout.CellSize)/2)
}

// getStatusFontFace returns the face for the tile count, timer and warnings
func (e *EbitenRenderer) getStatusFontFace() *text.GoTextFace {
	return e.face(e.sansFontSource, float64(e.layout.CellSize)/statusTextDivisor)
}

// getBannerFontFace returns the face for the win/lose banner
func (e *EbitenRenderer) getBannerFontFace() *text.GoTextFace {
	return e.face(e.sansFontSource, float64(e.layout.CellSize)/bannerTextDivisor)
}
