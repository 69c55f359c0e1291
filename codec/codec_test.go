package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Run("PNG", func(t *testing.T) {
		img, err := Decode(pngBytes(t, 12, 8, color.RGBA{R: 0xff, A: 0xff}))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
			t.Errorf("decoded %dx%d, want 12x8", b.Dx(), b.Dy())
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		if _, err := Decode([]byte("not an image")); !errors.Is(err, ErrDecode) {
			t.Fatalf("err = %v, want ErrDecode", err)
		}
	})
}

func TestDecodeAll(t *testing.T) {
	good := pngBytes(t, 4, 4, color.RGBA{A: 0xff})

	t.Run("AllGood", func(t *testing.T) {
		images, err := DecodeAll([][]byte{good, good, good})
		if err != nil {
			t.Fatalf("DecodeAll: %v", err)
		}
		if len(images) != 3 {
			t.Fatalf("got %d images, want 3", len(images))
		}
	})

	t.Run("OneBadAbortsAll", func(t *testing.T) {
		images, err := DecodeAll([][]byte{good, []byte("junk")})
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("err = %v, want ErrDecode", err)
		}
		if images != nil {
			t.Fatalf("partial result returned alongside error")
		}
	})
}

func TestEncodeJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	data, err := EncodeJPEG(img, 100)
	if err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("round-trip decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("round-trip %dx%d, want 16x16", b.Dx(), b.Dy())
	}
}
