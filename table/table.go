// Package table lays out a head/body text matrix as a pixel-exact cell grid.
//
// A Spec holds the raw strings plus the border thickness; Build sizes it into
// an immutable Table. The Table reports its bounding box, the top-left anchor
// of every cell's text, and the single-pixel line segments that make up its
// borders. Geometry is independent of any destination canvas; callers check
// Width/Height against their canvas before drawing.
package table

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalid reports a malformed table: a body row whose length differs from
// the head, or a built table that does not fit its destination canvas.
var ErrInvalid = errors.New("invalid table")

// CharUnits measures text with the catalog width heuristic: each ASCII rune
// counts 0.5 units, every other rune 1.0. The sum is truncated to a whole
// number of units, so "ab" and "abc" both measure 1.
func CharUnits(s string) int {
	var units float64
	for _, r := range s {
		if r <= unicode.MaxASCII {
			units += 0.5
		} else {
			units++
		}
	}
	return int(units)
}

// Spec is the unsized description of a table. Immutable once constructed.
type Spec struct {
	head   []string
	body   [][]string
	border int
}

// NewSpec validates that every body row has exactly as many columns as the
// head and returns ErrInvalid otherwise. Border is the line thickness in
// pixels and must not be negative.
func NewSpec(head []string, body [][]string, border int) (*Spec, error) {
	if len(head) == 0 {
		return nil, fmt.Errorf("%w: head has no columns", ErrInvalid)
	}
	if border < 0 {
		return nil, fmt.Errorf("%w: negative border %d", ErrInvalid, border)
	}
	for i, row := range body {
		if len(row) != len(head) {
			return nil, fmt.Errorf("%w: body row %d has %d columns, head has %d",
				ErrInvalid, i, len(row), len(head))
		}
	}
	s := &Spec{
		head:   append([]string(nil), head...),
		body:   make([][]string, len(body)),
		border: border,
	}
	for i, row := range body {
		s.body[i] = append([]string(nil), row...)
	}
	return s, nil
}

// Columns returns the number of head columns.
func (s *Spec) Columns() int { return len(s.head) }

// Rows returns the number of body rows.
func (s *Spec) Rows() int { return len(s.body) }

// Cell is one sized table entry. TextLen is the text's pixel length under the
// CharUnits heuristic scaled by the font size.
type Cell struct {
	Width, Height float64
	Text          string
	TextLen       float64
}

func newCell(width, height float64, text string, fontSize float64) Cell {
	return Cell{
		Width:   width,
		Height:  height,
		Text:    text,
		TextLen: float64(CharUnits(text)) * fontSize,
	}
}

// Build sizes the spec into a Table. Each column is wide enough for its
// longest entry (head included); every row shares one height.
func (s *Spec) Build(cellPaddingX, cellPaddingY, fontSize float64) *Table {
	border := float64(s.border)
	cellHeight := cellPaddingY*2 + fontSize + border

	head := make([]Cell, len(s.head))
	for i, label := range s.head {
		longest := CharUnits(label)
		for _, row := range s.body {
			if units := CharUnits(row[i]); units > longest {
				longest = units
			}
		}
		width := cellPaddingX*2 + border + fontSize*float64(longest)
		head[i] = newCell(width, cellHeight, label, fontSize)
	}

	body := make([][]Cell, len(s.body))
	for r, row := range s.body {
		cells := make([]Cell, len(row))
		for c, text := range row {
			cells[c] = newCell(head[c].Width, cellHeight, text, fontSize)
		}
		body[r] = cells
	}

	return &Table{head: head, body: body, border: s.border}
}

// Table is a sized cell grid. Immutable once built.
type Table struct {
	head   []Cell
	body   [][]Cell
	border int
}

// Width is the total table width: the head cell widths plus one border.
func (t *Table) Width() float64 {
	width := float64(t.border)
	for _, c := range t.head {
		width += c.Width
	}
	return width
}

// Height is the total table height: head row plus body rows plus one border.
func (t *Table) Height() float64 {
	height := float64(t.border)
	for _, row := range t.body {
		height += row[0].Height
	}
	return t.head[0].Height + height
}

// Anchor is the top-left pixel origin of one cell's text.
type Anchor struct {
	Top, Left float64
	Text      string
}

// TextAnchors centers the table horizontally on canvasWidth and each cell's
// text inside its cell, and yields one anchor per head cell followed by one
// per body cell, row by row. Vertical origin is a fixed cellPaddingY+border
// offset from each row's top; baseline placement is the draw layer's concern.
func (t *Table) TextAnchors(padding, canvasWidth, cellPaddingY float64) []Anchor {
	anchors := make([]Anchor, 0, len(t.head)*(1+len(t.body)))
	border := float64(t.border)

	headTop := padding + cellPaddingY + border
	x := canvasWidth/2 - t.Width()/2
	for _, c := range t.head {
		anchors = append(anchors, Anchor{
			Top:  headTop,
			Left: x + c.Width/2 - c.TextLen/2,
			Text: c.Text,
		})
		x += c.Width
	}

	for i, row := range t.body {
		rowTop := padding + row[0].Height + float64(i)*row[0].Height
		textTop := rowTop + cellPaddingY + border
		x := canvasWidth/2 - t.Width()/2
		for _, c := range row {
			anchors = append(anchors, Anchor{
				Top:  textTop,
				Left: x + c.Width/2 - c.TextLen/2,
				Text: c.Text,
			})
			x += c.Width
		}
	}
	return anchors
}

// Point is a pixel coordinate.
type Point struct {
	X, Y float64
}

// Line is a single-pixel segment between two coordinates.
type Line struct {
	From, To Point
}

// Lines emulates borders of thickness N as N parallel 1px segments offset by
// 0..N-1 pixels: top and bottom edges, one vertical per column's left edge,
// one horizontal per body row boundary, and the table's right edge. The draw
// layer only needs a single-pixel line primitive.
func (t *Table) Lines(padding, canvasWidth float64) []Line {
	var lines []Line
	endX := float64(t.border-1) + canvasWidth/2 + t.Width()/2
	startX := canvasWidth/2 - t.Width()/2

	for shift := 0; shift < t.border; shift++ {
		topY := float64(shift) + padding
		bottomY := float64(shift) + padding + t.Height()
		lines = append(lines,
			Line{Point{startX, topY}, Point{endX, topY}},
			Line{Point{startX, bottomY}, Point{endX, bottomY}})
	}

	topY := padding
	bottomY := float64(t.border-1) + padding + t.Height()
	for shift := 0; shift < t.border; shift++ {
		x := float64(shift) + startX
		for _, c := range t.head {
			lines = append(lines, Line{Point{x, topY}, Point{x, bottomY}})
			x += c.Width
		}
	}

	for shift := 0; shift < t.border; shift++ {
		for i, row := range t.body {
			y := float64(shift) + topY + float64(i+1)*row[0].Height
			lines = append(lines, Line{Point{startX, y}, Point{endX, y}})
		}
	}

	for shift := 0; shift < t.border; shift++ {
		x := float64(shift) + endX
		lines = append(lines, Line{Point{x, topY}, Point{x, bottomY}})
	}
	return lines
}
