package processor

import (
	"github.com/wudi/gridkit/grid"
	"github.com/wudi/gridkit/observability"
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger installs the logger composition progress is reported through.
func WithLogger(l observability.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// WithTracer installs the tracer that receives one span per operation.
func WithTracer(t observability.Tracer) Option {
	return func(p *Processor) { p.tracer = t }
}

// WithStyle replaces the default layout constants.
func WithStyle(s Style) Option {
	return func(p *Processor) { p.style = s }
}

// WithWorkers bounds the resize and compose pools. Zero or negative means
// one worker per CPU.
func WithWorkers(n int) Option {
	return func(p *Processor) { p.workers = n }
}

// GridOptions shape one bundled composition. The zero configuration is 20px
// padding in a single column with the member dimension inferred from the
// batch.
type GridOptions struct {
	dimension *grid.Dimension
	padding   int
	columns   int
}

// GridOption adjusts GridOptions for one call.
type GridOption func(*GridOptions)

// WithMemberDimension fixes the per-member target size instead of inferring
// it from the batch.
func WithMemberDimension(width, height int) GridOption {
	return func(o *GridOptions) {
		o.dimension = &grid.Dimension{Width: width, Height: height}
	}
}

// WithPadding sets the pixel gap added to each grid cell.
func WithPadding(px int) GridOption {
	return func(o *GridOptions) { o.padding = px }
}

// WithColumns sets the grid column count; values below 1 are clamped to 1.
func WithColumns(n int) GridOption {
	return func(o *GridOptions) {
		if n < 1 {
			n = 1
		}
		o.columns = n
	}
}

func newGridOptions(opts []GridOption) GridOptions {
	o := GridOptions{padding: 20, columns: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
