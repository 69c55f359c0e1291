package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFromMarkdown(t *testing.T) {
	t.Run("PipeTable", func(t *testing.T) {
		src := []byte(`# Measurements

| size | bust | length |
|------|------|--------|
| S    | 80   | 60     |
| M    | 84   | 62     |
`)
		spec, err := FromMarkdown(src, 1)
		if err != nil {
			t.Fatalf("FromMarkdown: %v", err)
		}
		if spec.Columns() != 3 || spec.Rows() != 2 {
			t.Errorf("got %dx%d, want 3x2", spec.Columns(), spec.Rows())
		}
	})

	t.Run("NoTable", func(t *testing.T) {
		if _, err := FromMarkdown([]byte("just a paragraph"), 1); !errors.Is(err, ErrNoTable) {
			t.Fatalf("err = %v, want ErrNoTable", err)
		}
	})

	t.Run("BuildsGeometry", func(t *testing.T) {
		spec, err := FromMarkdown([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"), 1)
		if err != nil {
			t.Fatalf("FromMarkdown: %v", err)
		}
		tbl := spec.Build(18, 6, 24)
		if tbl.Width() <= 0 || tbl.Height() <= 0 {
			t.Errorf("degenerate geometry %vx%v", tbl.Width(), tbl.Height())
		}
	})
}

func TestFromHTML(t *testing.T) {
	t.Run("HeaderAndBody", func(t *testing.T) {
		src := `<html><body><table>
			<tr><th>size</th><th>bust</th></tr>
			<tr><td>S</td><td>80</td></tr>
			<tr><td>M</td><td>84</td></tr>
		</table></body></html>`
		spec, err := FromHTML(strings.NewReader(src), 1)
		if err != nil {
			t.Fatalf("FromHTML: %v", err)
		}
		if spec.Columns() != 2 || spec.Rows() != 2 {
			t.Errorf("got %dx%d, want 2x2", spec.Columns(), spec.Rows())
		}
	})

	t.Run("RaggedRowsArePadded", func(t *testing.T) {
		src := `<table>
			<tr><td>size</td><td>bust</td><td>length</td></tr>
			<tr><td>S</td></tr>
		</table>`
		spec, err := FromHTML(strings.NewReader(src), 1)
		if err != nil {
			t.Fatalf("FromHTML: %v", err)
		}
		if spec.Columns() != 3 || spec.Rows() != 1 {
			t.Errorf("got %dx%d, want 3x1", spec.Columns(), spec.Rows())
		}
	})

	t.Run("NoTable", func(t *testing.T) {
		if _, err := FromHTML(strings.NewReader("<p>nope</p>"), 1); !errors.Is(err, ErrNoTable) {
			t.Fatalf("err = %v, want ErrNoTable", err)
		}
	})
}

func TestFromXLSX(t *testing.T) {
	sheet := func(t *testing.T, rows [][]string) []byte {
		t.Helper()
		f := excelize.NewFile()
		for i, row := range rows {
			for j, cell := range row {
				name, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue("Sheet1", name, cell); err != nil {
					t.Fatalf("set cell: %v", err)
				}
			}
		}
		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			t.Fatalf("write workbook: %v", err)
		}
		return buf.Bytes()
	}

	t.Run("FirstSheet", func(t *testing.T) {
		data := sheet(t, [][]string{
			{"size", "bust"},
			{"S", "80"},
			{"M", "84"},
		})
		spec, err := FromXLSX(bytes.NewReader(data), "", 1)
		if err != nil {
			t.Fatalf("FromXLSX: %v", err)
		}
		if spec.Columns() != 2 || spec.Rows() != 2 {
			t.Errorf("got %dx%d, want 2x2", spec.Columns(), spec.Rows())
		}
	})

	t.Run("EmptySheet", func(t *testing.T) {
		data := sheet(t, nil)
		if _, err := FromXLSX(bytes.NewReader(data), "", 1); !errors.Is(err, ErrNoTable) {
			t.Fatalf("err = %v, want ErrNoTable", err)
		}
	})

	t.Run("MissingSheet", func(t *testing.T) {
		data := sheet(t, [][]string{{"a"}})
		if _, err := FromXLSX(bytes.NewReader(data), "Nope", 1); err == nil {
			t.Fatalf("expected error for missing sheet")
		}
	})
}
