package processor

// Style collects the catalog design constants as overridable defaults.
// Zero-value fields are not meaningful; start from DefaultStyle and adjust.
type Style struct {
	// BaseCanvasWidth is the canvas width for table-only and caption-only
	// renders, and the base a caption-only canvas grows from.
	BaseCanvasWidth int
	// PaddingRatio sizes the outer padding as a fraction of canvas width.
	PaddingRatio float64
	// FontRatio sizes the font as a fraction of the padded canvas width.
	FontRatio float64
	// CellPaddingXRatio and CellPaddingYRatio size table cell padding as
	// multiples of the font size.
	CellPaddingXRatio float64
	CellPaddingYRatio float64
	// CaptionGrowthMargin is the extra width added when a caption-only
	// canvas must grow past BaseCanvasWidth.
	CaptionGrowthMargin int
	// JPEGQuality is the output encode quality, 1..100.
	JPEGQuality int
}

// DefaultStyle returns the stock catalog layout: 960px base canvas, padding
// 5% of the canvas width, font 3% of the padded width, cell padding 0.75/0.25
// of the font size, maximum-quality JPEG.
func DefaultStyle() Style {
	return Style{
		BaseCanvasWidth:     960,
		PaddingRatio:        0.05,
		FontRatio:           0.03,
		CellPaddingXRatio:   0.75,
		CellPaddingYRatio:   0.25,
		CaptionGrowthMargin: 100,
		JPEGQuality:         100,
	}
}

func (s Style) padding(canvasWidth int) float64 {
	return float64(canvasWidth) * s.PaddingRatio
}

func (s Style) fontSize(canvasWidth int) float64 {
	padding := s.padding(canvasWidth)
	return (float64(canvasWidth) - padding*2) * s.FontRatio
}
