//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Shadow into a single image, one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads the shadow's cells and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, s *Shadow, on, off color.Color, scale int) {
	if size := s.Size(); size.W != gp.w || size.H != gp.h {
		return
	}
	s.Pixels(gp.buf, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
