package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wudi/gridkit/ingest"
	"github.com/wudi/gridkit/table"
)

// specFromFile builds a table spec from a markdown, HTML, or XLSX file,
// dispatching on the file extension.
func specFromFile(path, sheet string, border int) (*table.Spec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ingest.FromMarkdown(data, border)
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.FromHTML(f, border)
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.FromXLSX(f, sheet, border)
	default:
		return nil, fmt.Errorf("unsupported table format %q (want .md, .html, or .xlsx)", filepath.Ext(path))
	}
}
