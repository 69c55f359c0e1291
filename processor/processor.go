// Package processor composes source photographs into bundled grid images
// with optional measurement-table or caption overlays, encoded as
// maximum-quality JPEG.
//
// A Processor is cheap, stateless between calls, and safe for concurrent
// use. Fonts arrive as raw outline-font bytes on each call and are never
// cached.
package processor

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/wudi/gridkit/codec"
	"github.com/wudi/gridkit/fonts"
	"github.com/wudi/gridkit/grid"
	"github.com/wudi/gridkit/observability"
	"github.com/wudi/gridkit/raster"
	"github.com/wudi/gridkit/table"
)

type Processor struct {
	style   Style
	log     observability.Logger
	tracer  observability.Tracer
	workers int
}

func New(opts ...Option) *Processor {
	p := &Processor{
		style:  DefaultStyle(),
		log:    observability.NopLogger{},
		tracer: observability.NopTracer(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// bundle is the shared first phase of every grid pipeline: decoded, resized
// members plus their grid layout.
type bundle struct {
	layout grid.Layout
	images []image.Image
}

func (p *Processor) prepareBundle(ctx context.Context, buffers [][]byte, o GridOptions) (*bundle, error) {
	images, err := codec.DecodeAll(buffers)
	if err != nil {
		return nil, err
	}
	member := grid.InferDimension(images)
	if o.dimension != nil {
		member = *o.dimension
	}
	p.log.Debug("resolved member dimension",
		observability.Int("width", member.Width),
		observability.Int("height", member.Height))

	resized, err := grid.Resize(ctx, images, member, p.workers)
	if err != nil {
		return nil, err
	}
	return &bundle{
		layout: grid.NewLayout(len(resized), o.columns, o.padding, member),
		images: resized,
	}, nil
}

// ComposeGrid bundles the source images into a rows-by-columns grid.
func (p *Processor) ComposeGrid(ctx context.Context, buffers [][]byte, opts ...GridOption) ([]byte, error) {
	ctx, span := p.tracer.StartSpan(ctx, "processor.ComposeGrid")
	defer span.Finish()
	p.log.Debug("composing bundle", observability.Int("images", len(buffers)))

	b, err := p.prepareBundle(ctx, buffers, newGridOptions(opts))
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	canvas, err := p.composeBundle(ctx, b, 0)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return p.finish(span, canvas)
}

// ComposeGridWithTable bundles the source images and draws a measurement
// table into a reserved strip above the grid. Table lines on a bundle render
// light gray; text renders black.
func (p *Processor) ComposeGridWithTable(ctx context.Context, buffers [][]byte, spec *table.Spec, fontData []byte, opts ...GridOption) ([]byte, error) {
	ctx, span := p.tracer.StartSpan(ctx, "processor.ComposeGridWithTable")
	defer span.Finish()
	p.log.Debug("composing bundle with table", observability.Int("images", len(buffers)))

	b, err := p.prepareBundle(ctx, buffers, newGridOptions(opts))
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	canvasWidth := b.layout.CanvasWidth()
	padding := p.style.padding(canvasWidth)
	fontSize := p.style.fontSize(canvasWidth)
	p.log.Debug("table style", observability.Float64("font_size", fontSize))

	tbl := spec.Build(fontSize*p.style.CellPaddingXRatio, fontSize*p.style.CellPaddingYRatio, fontSize)
	tableWidth := tbl.Width() + padding*2
	if int(math.Ceil(tableWidth)) > canvasWidth {
		err := fmt.Errorf("%w: table is %dpx wide on a %dpx canvas",
			ErrInvalidTable, int(math.Ceil(tableWidth)), canvasWidth)
		span.SetError(err)
		return nil, err
	}
	stripHeight := int(math.Ceil(tbl.Height())) + int(math.Ceil(padding))*2

	canvas, err := p.composeBundle(ctx, b, stripHeight)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if err := p.drawTable(canvas, tbl, padding, float64(canvasWidth), fontSize, fontData, raster.Gray); err != nil {
		span.SetError(err)
		return nil, err
	}
	return p.finish(span, canvas)
}

// ComposeGridWithCaption bundles the source images and draws a caption
// string into a reserved strip above the grid.
func (p *Processor) ComposeGridWithCaption(ctx context.Context, buffers [][]byte, caption string, fontData []byte, opts ...GridOption) ([]byte, error) {
	ctx, span := p.tracer.StartSpan(ctx, "processor.ComposeGridWithCaption")
	defer span.Finish()
	p.log.Debug("composing bundle with caption", observability.Int("images", len(buffers)))

	b, err := p.prepareBundle(ctx, buffers, newGridOptions(opts))
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	canvasWidth := b.layout.CanvasWidth()
	padding := p.style.padding(canvasWidth)
	fontSize := p.style.fontSize(canvasWidth)

	textWidth := float64(table.CharUnits(caption))*fontSize + padding*2
	if int(math.Ceil(textWidth)) > canvasWidth {
		err := fmt.Errorf("%w: caption is %dpx wide on a %dpx canvas",
			ErrInvalidText, int(math.Ceil(textWidth)), canvasWidth)
		span.SetError(err)
		return nil, err
	}
	stripHeight := int(math.Ceil(fontSize + padding*2))

	canvas, err := p.composeBundle(ctx, b, stripHeight)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if err := p.drawCaption(canvas, caption, padding, fontSize, fontData); err != nil {
		span.SetError(err)
		return nil, err
	}
	return p.finish(span, canvas)
}

// RenderTable renders the table alone on a fresh canvas sized to fit it,
// with style constants derived from the configured base canvas width.
func (p *Processor) RenderTable(ctx context.Context, spec *table.Spec, fontData []byte) ([]byte, error) {
	_, span := p.tracer.StartSpan(ctx, "processor.RenderTable")
	defer span.Finish()

	padding := p.style.padding(p.style.BaseCanvasWidth)
	fontSize := p.style.fontSize(p.style.BaseCanvasWidth)
	p.log.Debug("table style", observability.Float64("font_size", fontSize))

	tbl := spec.Build(fontSize*p.style.CellPaddingXRatio, fontSize*p.style.CellPaddingYRatio, fontSize)
	canvasWidth := int(math.Ceil(tbl.Width() + padding*2))
	canvasHeight := int(math.Ceil(tbl.Height())) + int(math.Ceil(padding))*2

	canvas := grid.NewCanvas(canvasWidth, canvasHeight)
	if err := p.drawTable(canvas, tbl, padding, float64(canvasWidth), fontSize, fontData, raster.Black); err != nil {
		span.SetError(err)
		return nil, err
	}
	return p.finish(span, canvas)
}

// RenderCaption renders the caption alone on a fresh canvas of the base
// width, growing the canvas when the caption would not fit.
func (p *Processor) RenderCaption(ctx context.Context, caption string, fontData []byte) ([]byte, error) {
	_, span := p.tracer.StartSpan(ctx, "processor.RenderCaption")
	defer span.Finish()

	canvasWidth := p.style.BaseCanvasWidth
	padding := p.style.padding(canvasWidth)
	fontSize := p.style.fontSize(canvasWidth)
	p.log.Debug("caption style", observability.Float64("font_size", fontSize))

	textWidth := float64(table.CharUnits(caption))*fontSize + padding*2
	if int(math.Ceil(textWidth)) > canvasWidth {
		canvasWidth = int(math.Ceil(textWidth)) + p.style.CaptionGrowthMargin
		p.log.Debug("growing caption canvas", observability.Int("width", canvasWidth))
	}
	canvasHeight := int(math.Ceil(fontSize + padding*2))

	canvas := grid.NewCanvas(canvasWidth, canvasHeight)
	if err := p.drawCaption(canvas, caption, padding, fontSize, fontData); err != nil {
		span.SetError(err)
		return nil, err
	}
	return p.finish(span, canvas)
}

// AppendTableAbove re-emits an existing image with the table drawn into a new
// strip above it. Style constants derive from the image's own width, so the
// table geometry matches RenderTable for any canvas of the base width.
func (p *Processor) AppendTableAbove(ctx context.Context, imageData []byte, spec *table.Spec, fontData []byte) ([]byte, error) {
	_, span := p.tracer.StartSpan(ctx, "processor.AppendTableAbove")
	defer span.Finish()

	origin, err := codec.Decode(imageData)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	width := origin.Bounds().Dx()
	height := origin.Bounds().Dy()
	padding := p.style.padding(width)
	fontSize := p.style.fontSize(width)
	p.log.Debug("table style", observability.Float64("font_size", fontSize))

	tbl := spec.Build(fontSize*p.style.CellPaddingXRatio, fontSize*p.style.CellPaddingYRatio, fontSize)
	if tbl.Width() > float64(width) {
		err := fmt.Errorf("%w: table is %dpx wide on a %dpx image",
			ErrInvalidTable, int(math.Ceil(tbl.Width())), width)
		span.SetError(err)
		return nil, err
	}
	stripHeight := int(math.Ceil(tbl.Height())) + int(padding)*2

	canvas := grid.NewCanvas(width, height+stripHeight)
	if err := p.drawTable(canvas, tbl, padding, float64(width), fontSize, fontData, raster.Black); err != nil {
		span.SetError(err)
		return nil, err
	}
	target := image.Rect(0, stripHeight, width, stripHeight+height)
	draw.Draw(canvas, target, origin, origin.Bounds().Min, draw.Src)
	return p.finish(span, canvas)
}

// composeBundle allocates the full canvas, reserving stripHeight above the
// grid, and writes every member into its cell.
func (p *Processor) composeBundle(ctx context.Context, b *bundle, stripHeight int) (*image.RGBA, error) {
	width := b.layout.CanvasWidth()
	height := b.layout.CanvasHeight() + stripHeight
	p.log.Debug("allocating canvas",
		observability.Int("width", width),
		observability.Int("height", height))

	canvas := grid.NewCanvas(width, height)
	if err := grid.Compose(ctx, canvas, b.images, b.layout, stripHeight, p.workers); err != nil {
		return nil, err
	}
	return canvas, nil
}

func (p *Processor) drawTable(canvas *image.RGBA, tbl *table.Table, padding, canvasWidth, fontSize float64, fontData []byte, lineColor color.Color) error {
	face, err := fonts.NewFace(fontData, fontSize)
	if err != nil {
		return err
	}
	dc := raster.New(canvas)
	dc.SetFace(face)
	cellPaddingY := fontSize * p.style.CellPaddingYRatio
	for _, a := range tbl.TextAnchors(padding, canvasWidth, cellPaddingY) {
		dc.DrawText(a.Text, math.Ceil(a.Left), math.Ceil(a.Top), raster.Black)
	}
	for _, l := range tbl.Lines(padding, canvasWidth) {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y, lineColor)
	}
	return nil
}

func (p *Processor) drawCaption(canvas *image.RGBA, caption string, padding, fontSize float64, fontData []byte) error {
	face, err := fonts.NewFace(fontData, fontSize)
	if err != nil {
		return err
	}
	dc := raster.New(canvas)
	dc.SetFace(face)
	dc.DrawText(caption, math.Ceil(padding), math.Ceil(padding), raster.Black)
	return nil
}

func (p *Processor) finish(span observability.Span, canvas *image.RGBA) ([]byte, error) {
	span.SetTag("canvas_width", canvas.Rect.Dx())
	span.SetTag("canvas_height", canvas.Rect.Dy())
	data, err := codec.EncodeJPEG(canvas, p.style.JPEGQuality)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return data, nil
}
