package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wudi/gridkit/table"
)

// FromHTML extracts the first <table> element from an HTML document. A <th>
// row (or the first row) becomes the head.
func FromHTML(r io.Reader, border int) (*table.Spec, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tbl := findElement(doc, atom.Table)
	if tbl == nil {
		return nil, fmt.Errorf("%w in html", ErrNoTable)
	}

	var rows [][]string
	walkElements(tbl, atom.Tr, func(tr *html.Node) {
		var cells []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.DataAtom == atom.Th || c.DataAtom == atom.Td) {
				cells = append(cells, extractText(c))
			}
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	width, err := tableWidth(rows)
	if err != nil {
		return nil, err
	}
	rows = normalize(rows, width)
	return table.NewSpec(rows[0], rows[1:], border)
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func walkElements(n *html.Node, a atom.Atom, visit func(*html.Node)) {
	if n.Type == html.ElementNode && n.DataAtom == a {
		visit(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, a, visit)
	}
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			walk(gc)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
