package processor

import (
	"errors"

	"github.com/wudi/gridkit/codec"
	"github.com/wudi/gridkit/fonts"
	"github.com/wudi/gridkit/grid"
	"github.com/wudi/gridkit/table"
)

// The error taxonomy of a composition call. Every failure wraps exactly one
// of these sentinels; match with errors.Is. No call ever returns partial
// image bytes alongside an error, and nothing retries.
var (
	// ErrDecode reports malformed source image bytes.
	ErrDecode = codec.ErrDecode
	// ErrConcurrency reports a resize or compose worker that panicked.
	ErrConcurrency = grid.ErrConcurrency
	// ErrInvalidTable reports a head/body column mismatch at spec
	// construction, or a table wider than its destination canvas.
	ErrInvalidTable = table.ErrInvalid
	// ErrInvalidText reports a caption wider than its destination canvas.
	ErrInvalidText = errors.New("text exceeds canvas")
	// ErrInvalidFont reports font bytes that could not be parsed.
	ErrInvalidFont = fonts.ErrInvalidFont
)
