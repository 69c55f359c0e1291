// Package fonts turns raw outline-font bytes into sized faces for the draw
// layer. Faces are built per call and never cached; callers supply the font
// bytes for the duration of one operation.
package fonts

import (
	"errors"
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// ErrInvalidFont reports font data that could not be parsed into a usable
// face.
var ErrInvalidFont = errors.New("invalid font")

// NewFace parses TrueType/OpenType data and returns a face scaled so glyphs
// render at size pixels.
func NewFace(data []byte, size float64) (font.Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: font data is empty", ErrInvalidFont)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: non-positive size %v", ErrInvalidFont, size)
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse truetype: %v", ErrInvalidFont, err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size: size,
		DPI:  72, // 1pt == 1px, so size is in pixels
	}), nil
}
