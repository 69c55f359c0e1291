// Package ingest builds table specs from the formats measurement tables
// usually arrive in: markdown pipe tables, HTML tables, and spreadsheet
// sheets. The first row becomes the head; every other row becomes a body
// row, padded to the head width when the source is ragged.
package ingest

import (
	"errors"
	"fmt"
)

// ErrNoTable reports a source document with no extractable table.
var ErrNoTable = errors.New("no table found")

// normalize pads or widens rows so every row spans width columns. Sources
// like HTML and spreadsheets routinely omit trailing empty cells.
func normalize(rows [][]string, width int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= width {
			out[i] = row[:width]
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

// tableWidth is the widest row in the matrix; head and body are normalized
// to it so ragged sources still validate.
func tableWidth(rows [][]string) (int, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return 0, fmt.Errorf("%w: empty table", ErrNoTable)
	}
	return width, nil
}
