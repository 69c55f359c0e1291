// Package codec decodes source photograph bytes and encodes composed
// canvases. Formats are whatever the imaging registry understands on the way
// in; output is always JPEG.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrDecode reports malformed image bytes.
var ErrDecode = errors.New("decode image")

// Decode parses one encoded image.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// DecodeAll parses every buffer in order, failing on the first malformed one.
func DecodeAll(buffers [][]byte) ([]image.Image, error) {
	images := make([]image.Image, 0, len(buffers))
	for i, data := range buffers {
		img, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// EncodeJPEG serializes img as JPEG at the given quality (1..100).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
