package cli

import (
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/wudi/gridkit/processor"
)

// newProcessor builds a processor from the style config file and the
// command's logger.
func newProcessor(configPath string, logger *charmlog.Logger) (*processor.Processor, error) {
	style, err := loadStyle(configPath)
	if err != nil {
		return nil, err
	}
	return processor.New(
		processor.WithStyle(style),
		processor.WithLogger(charmAdapter{l: logger}),
	), nil
}

func readFont(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("--font is required when drawing text")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}
