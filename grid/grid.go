// Package grid turns a batch of decoded photographs into one bundled canvas:
// it infers a common member dimension, resizes sources concurrently, and
// writes each into its grid cell.
package grid

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// ErrConcurrency reports a worker that panicked mid-phase. The failing phase
// still waits for every dispatched worker before surfacing the error.
var ErrConcurrency = errors.New("concurrent task failed")

// Dimension is a member image size in pixels.
type Dimension struct {
	Width, Height int
}

// Sum is the width+height total used to rank unique dimensions.
func (d Dimension) Sum() int { return d.Width + d.Height }

// InferDimension picks the common target size for a heterogeneous batch: the
// most frequent (width, height) pair, or the image with the largest
// width+height sum when no two images share a size. The frequency leader only
// changes on a strictly greater count, so between equally frequent pairs the
// first one seen in input order wins.
func InferDimension(images []image.Image) Dimension {
	var (
		largest      Dimension
		mostFrequent Dimension
		maxCount     int
	)
	counts := make(map[Dimension]int, len(images))
	for _, img := range images {
		bounds := img.Bounds()
		d := Dimension{Width: bounds.Dx(), Height: bounds.Dy()}
		if d.Sum() > largest.Sum() {
			largest = d
		}
		counts[d]++
		if counts[d] > maxCount {
			mostFrequent = d
			maxCount = counts[d]
		}
	}
	if maxCount == 1 {
		return largest
	}
	return mostFrequent
}

// Layout is the cell geometry of one bundled canvas.
type Layout struct {
	Columns, Rows         int
	CellWidth, CellHeight int
	Member                Dimension
}

// NewLayout computes the grid shape for count images: rows = ceil(count /
// columns), each cell a member image plus padding on each axis.
func NewLayout(count, columns, padding int, member Dimension) Layout {
	return Layout{
		Columns:    columns,
		Rows:       (count + columns - 1) / columns,
		CellWidth:  member.Width + padding,
		CellHeight: member.Height + padding,
		Member:     member,
	}
}

func (l Layout) CanvasWidth() int  { return l.Columns * l.CellWidth }
func (l Layout) CanvasHeight() int { return l.Rows * l.CellHeight }

// NewCanvas allocates a blank canvas filled with fully transparent white.
func NewCanvas(width, height int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 0xff
		canvas.Pix[i+1] = 0xff
		canvas.Pix[i+2] = 0xff
	}
	return canvas
}

// Resize scales every image whose height differs from target.Height to the
// exact target size with Lanczos resampling, in parallel on a bounded pool.
// Images already at the target height pass through untouched even when their
// width differs. Aspect ratios are not preserved.
func Resize(ctx context.Context, images []image.Image, target Dimension, workers int) ([]image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resized := make([]image.Image, len(images))
	var g errgroup.Group
	g.SetLimit(poolSize(workers))
	for i, img := range images {
		i, img := i, img
		g.Go(func() (err error) {
			defer recoverWorker(&err)
			if img.Bounds().Dy() != target.Height {
				resized[i] = imaging.Resize(img, target.Width, target.Height, imaging.Lanczos)
			} else {
				resized[i] = img
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resized, nil
}

// Compose writes image i into column i%columns, row i/columns of the canvas,
// shifted down by yOffset plus half the leftover cell height when the image
// is shorter than the member height. Taller images are clipped to the canvas.
//
// Each worker draws through its own SubImage view over a rectangle no other
// worker touches, so the shared canvas needs no lock and the result is
// deterministic for a given input order.
func Compose(ctx context.Context, canvas *image.RGBA, images []image.Image, layout Layout, yOffset, workers int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var g errgroup.Group
	g.SetLimit(poolSize(workers))
	for i, img := range images {
		i, img := i, img
		g.Go(func() (err error) {
			defer recoverWorker(&err)
			column := i % layout.Columns
			row := i / layout.Columns

			pad := 0
			if h := img.Bounds().Dy(); h <= layout.Member.Height {
				pad = (layout.Member.Height - h) / 2
			}
			x := column * layout.CellWidth
			y := row*layout.CellHeight + pad + yOffset

			bounds := img.Bounds()
			cell := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy()).Intersect(canvas.Bounds())
			region := canvas.SubImage(cell).(*image.RGBA)
			draw.Draw(region, cell, img, bounds.Min, draw.Src)
			return nil
		})
	}
	return g.Wait()
}

func poolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.GOMAXPROCS(0)
}

func recoverWorker(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrConcurrency, r)
	}
}
