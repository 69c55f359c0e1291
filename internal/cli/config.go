package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wudi/gridkit/processor"
)

// styleConfig mirrors processor.Style for the TOML config file. Unset fields
// keep their defaults, so a config file only lists what it changes.
type styleConfig struct {
	BaseCanvasWidth     int     `toml:"base_canvas_width"`
	PaddingRatio        float64 `toml:"padding_ratio"`
	FontRatio           float64 `toml:"font_ratio"`
	CellPaddingXRatio   float64 `toml:"cell_padding_x_ratio"`
	CellPaddingYRatio   float64 `toml:"cell_padding_y_ratio"`
	CaptionGrowthMargin int     `toml:"caption_growth_margin"`
	JPEGQuality         int     `toml:"jpeg_quality"`
}

// loadStyle reads a TOML style file and overlays it on the default style. An
// empty path returns the defaults untouched.
func loadStyle(path string) (processor.Style, error) {
	style := processor.DefaultStyle()
	if path == "" {
		return style, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return style, fmt.Errorf("read config: %w", err)
	}
	var cfg styleConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return style, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.BaseCanvasWidth > 0 {
		style.BaseCanvasWidth = cfg.BaseCanvasWidth
	}
	if cfg.PaddingRatio > 0 {
		style.PaddingRatio = cfg.PaddingRatio
	}
	if cfg.FontRatio > 0 {
		style.FontRatio = cfg.FontRatio
	}
	if cfg.CellPaddingXRatio > 0 {
		style.CellPaddingXRatio = cfg.CellPaddingXRatio
	}
	if cfg.CellPaddingYRatio > 0 {
		style.CellPaddingYRatio = cfg.CellPaddingYRatio
	}
	if cfg.CaptionGrowthMargin > 0 {
		style.CaptionGrowthMargin = cfg.CaptionGrowthMargin
	}
	if cfg.JPEGQuality > 0 {
		style.JPEGQuality = cfg.JPEGQuality
	}
	return style, nil
}
