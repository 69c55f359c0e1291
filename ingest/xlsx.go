package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/wudi/gridkit/table"
)

// FromXLSX reads the used range of one worksheet; the first non-empty row
// becomes the head. An empty sheet name selects the workbook's first sheet.
func FromXLSX(r io.Reader, sheet string, border int) (*table.Spec, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var kept [][]string
	for _, row := range rows {
		if !rowEmpty(row) {
			kept = append(kept, row)
		}
	}
	width, err := tableWidth(kept)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	kept = normalize(kept, width)
	return table.NewSpec(kept[0], kept[1:], border)
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
