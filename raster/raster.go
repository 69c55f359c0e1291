// Package raster is the draw capability behind table and caption overlays:
// text drawn from a top-left pixel origin and single-pixel line segments,
// both onto a shared RGBA canvas.
package raster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Overlay colors used by the composition pipelines.
var (
	Black = color.RGBA{A: 0xff}
	Gray  = color.RGBA{R: 0xdb, G: 0xdb, B: 0xdb, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff}
)

// Canvas wraps an RGBA buffer with a drawing context. Mutations land directly
// in the wrapped buffer.
type Canvas struct {
	dc   *gg.Context
	face font.Face
}

func New(img *image.RGBA) *Canvas {
	return &Canvas{dc: gg.NewContextForRGBA(img)}
}

// SetFace installs the face used by DrawText.
func (c *Canvas) SetFace(face font.Face) {
	c.face = face
	c.dc.SetFontFace(face)
}

// DrawText draws s with the top of its ascent at (left, top). The top-left
// origin matches the table engine's anchors; baseline placement happens here.
func (c *Canvas) DrawText(s string, left, top float64, col color.Color) {
	baseline := top
	if c.face != nil {
		baseline += float64(c.face.Metrics().Ascent.Round())
	}
	c.dc.SetColor(col)
	c.dc.DrawString(s, left, baseline)
}

// DrawLine strokes a 1px segment between two pixel coordinates. Coordinates
// shift to pixel centers so axis-aligned strokes do not feather across two
// rows.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	c.dc.DrawLine(x0+0.5, y0+0.5, x1+0.5, y1+0.5)
	c.dc.Stroke()
}
