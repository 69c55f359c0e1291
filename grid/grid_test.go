package grid

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func dims(sizes ...[2]int) []image.Image {
	images := make([]image.Image, len(sizes))
	for i, s := range sizes {
		images[i] = image.NewRGBA(image.Rect(0, 0, s[0], s[1]))
	}
	return images
}

func TestInferDimension(t *testing.T) {
	t.Run("MostFrequentWins", func(t *testing.T) {
		got := InferDimension(dims(
			[2]int{100, 100},
			[2]int{200, 200}, [2]int{200, 200}, [2]int{200, 200},
			[2]int{300, 300},
		))
		if got != (Dimension{200, 200}) {
			t.Fatalf("got %v, want {200 200}", got)
		}
	})

	t.Run("AllUniqueFallsBackToLargest", func(t *testing.T) {
		got := InferDimension(dims([2]int{100, 100}, [2]int{200, 200}, [2]int{300, 300}))
		if got != (Dimension{300, 300}) {
			t.Fatalf("got %v, want {300 300}", got)
		}
	})

	t.Run("FrequencyTieKeepsFirstSeen", func(t *testing.T) {
		got := InferDimension(dims(
			[2]int{100, 100}, [2]int{100, 100},
			[2]int{500, 500}, [2]int{500, 500},
		))
		if got != (Dimension{100, 100}) {
			t.Fatalf("got %v, want first-seen {100 100}", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := InferDimension(nil); got != (Dimension{}) {
			t.Fatalf("got %v, want zero dimension", got)
		}
	})
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(5, 2, 20, Dimension{100, 150})
	if l.Rows != 3 {
		t.Errorf("rows = %d, want 3", l.Rows)
	}
	if l.CanvasWidth() != 240 || l.CanvasHeight() != 510 {
		t.Errorf("canvas = %dx%d, want 240x510", l.CanvasWidth(), l.CanvasHeight())
	}
}

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(3, 2)
	for i := 0; i < len(canvas.Pix); i += 4 {
		r, g, b, a := canvas.Pix[i], canvas.Pix[i+1], canvas.Pix[i+2], canvas.Pix[i+3]
		if r != 0xff || g != 0xff || b != 0xff || a != 0 {
			t.Fatalf("pixel %d = %d,%d,%d,%d; want transparent white", i/4, r, g, b, a)
		}
	}
}

func TestResize(t *testing.T) {
	ctx := context.Background()
	target := Dimension{100, 150}

	t.Run("HeightMismatchResizes", func(t *testing.T) {
		out, err := Resize(ctx, []image.Image{solid(100, 100, color.RGBA{R: 0xff, A: 0xff})}, target, 2)
		if err != nil {
			t.Fatalf("Resize: %v", err)
		}
		b := out[0].Bounds()
		if b.Dx() != 100 || b.Dy() != 150 {
			t.Fatalf("resized to %dx%d, want exact 100x150", b.Dx(), b.Dy())
		}
	})

	t.Run("MatchingHeightPassesThrough", func(t *testing.T) {
		// Width differs but only height is checked; the source must come
		// back untouched.
		src := solid(50, 150, color.RGBA{G: 0xff, A: 0xff})
		out, err := Resize(ctx, []image.Image{src}, target, 2)
		if err != nil {
			t.Fatalf("Resize: %v", err)
		}
		if out[0] != image.Image(src) {
			t.Fatalf("image with matching height was resized")
		}
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		sources := []image.Image{
			solid(10, 10, color.RGBA{R: 0xff, A: 0xff}),
			solid(20, 20, color.RGBA{G: 0xff, A: 0xff}),
			solid(30, 30, color.RGBA{B: 0xff, A: 0xff}),
		}
		out, err := Resize(ctx, sources, Dimension{40, 40}, 3)
		if err != nil {
			t.Fatalf("Resize: %v", err)
		}
		for i, img := range out {
			r, _, _, _ := img.At(20, 20).RGBA()
			wantRed := i == 0
			if (r > 0x7fff) != wantRed {
				t.Fatalf("output %d holds the wrong source image", i)
			}
		}
	})
}

func TestCompose(t *testing.T) {
	ctx := context.Background()
	red := color.RGBA{R: 0xff, A: 0xff}
	green := color.RGBA{G: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	layout := NewLayout(3, 2, 20, Dimension{10, 10})
	images := []image.Image{solid(10, 10, red), solid(10, 10, green), solid(10, 10, blue)}

	compose := func(t *testing.T, yOffset int) *image.RGBA {
		t.Helper()
		canvas := NewCanvas(layout.CanvasWidth(), layout.CanvasHeight()+yOffset)
		if err := Compose(ctx, canvas, images, layout, yOffset, 2); err != nil {
			t.Fatalf("Compose: %v", err)
		}
		return canvas
	}

	t.Run("CellPlacement", func(t *testing.T) {
		canvas := compose(t, 0)
		cases := []struct {
			x, y int
			want color.RGBA
		}{
			{5, 5, red},                        // cell (0,0)
			{layout.CellWidth + 5, 5, green},   // cell (1,0)
			{5, layout.CellHeight + 5, blue},   // cell (0,1)
			{layout.CellWidth + 5, layout.CellHeight + 5, color.RGBA{0xff, 0xff, 0xff, 0}}, // empty slot
		}
		for _, c := range cases {
			if got := canvas.RGBAAt(c.x, c.y); got != c.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
			}
		}
	})

	t.Run("YOffsetReservesStrip", func(t *testing.T) {
		canvas := compose(t, 30)
		if got := canvas.RGBAAt(5, 5); got != (color.RGBA{0xff, 0xff, 0xff, 0}) {
			t.Errorf("strip pixel = %v, want untouched background", got)
		}
		if got := canvas.RGBAAt(5, 35); got != red {
			t.Errorf("shifted cell pixel = %v, want red", got)
		}
	})

	t.Run("ShortImageIsCentered", func(t *testing.T) {
		short := []image.Image{solid(10, 4, red)}
		canvas := NewCanvas(layout.CanvasWidth(), layout.CanvasHeight())
		if err := Compose(ctx, canvas, short, layout, 0, 1); err != nil {
			t.Fatalf("Compose: %v", err)
		}
		// (10-4)/2 = 3 rows of background above the image.
		if got := canvas.RGBAAt(5, 2); got != (color.RGBA{0xff, 0xff, 0xff, 0}) {
			t.Errorf("pixel above centered image = %v, want background", got)
		}
		if got := canvas.RGBAAt(5, 3); got != red {
			t.Errorf("first centered row = %v, want red", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := compose(t, 0)
		b := compose(t, 0)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Fatalf("two composes of the same input differ")
		}
	})
}

func TestRecoverWorker(t *testing.T) {
	var err error
	func() {
		defer recoverWorker(&err)
		panic("worker exploded")
	}()
	if !errors.Is(err, ErrConcurrency) {
		t.Fatalf("err = %v, want ErrConcurrency", err)
	}
}
