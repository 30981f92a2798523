// Package models defines data structures for package extraction.
package models

import "strings"

// MergeRect is a merged cell rectangle in 1-based coordinates.
type MergeRect struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// VerticalIn reports whether the rectangle is a vertical merge confined to col.
func (m MergeRect) VerticalIn(col int) bool {
	return m.MinCol == col && m.MaxCol == col && m.MaxRow > m.MinRow
}

// Grid is a mutable snapshot of one worksheet: cell text, row heights in points
// and merge rectangles. It is owned by a single processing pass; all accessors
// take 1-based row and column indices.
type Grid struct {
	cells   [][]string
	heights []float64
	merges  []MergeRect
	maxCol  int
}

// NewGrid builds a grid from row-major cell text, per-row heights in points and
// merge rectangles. cells and heights must have the same length.
func NewGrid(cells [][]string, heights []float64, merges []MergeRect) *Grid {
	maxCol := 0
	for _, row := range cells {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return &Grid{cells: cells, heights: heights, merges: merges, maxCol: maxCol}
}

// MaxRow returns the number of rows in the snapshot.
func (g *Grid) MaxRow() int { return len(g.cells) }

// MaxCol returns the widest row's column count.
func (g *Grid) MaxCol() int { return g.maxCol }

// Cell returns the raw cell text, or "" when the address is out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.cells) || col < 1 {
		return ""
	}
	r := g.cells[row-1]
	if col > len(r) {
		return ""
	}
	return r[col-1]
}

// CellTrim returns the cell text with surrounding whitespace removed.
func (g *Grid) CellTrim(row, col int) string {
	return strings.TrimSpace(g.Cell(row, col))
}

// Blank reports whether the cell is empty after trimming.
func (g *Grid) Blank(row, col int) bool {
	return g.CellTrim(row, col) == ""
}

// SetCell writes v at the address, growing the row as needed. Writes outside
// the snapshot's row range are ignored.
func (g *Grid) SetCell(row, col int, v string) {
	if row < 1 || row > len(g.cells) || col < 1 {
		return
	}
	r := g.cells[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = v
	g.cells[row-1] = r
	if col > g.maxCol {
		g.maxCol = col
	}
}

// Height returns the row height in points.
func (g *Grid) Height(row int) float64 {
	if row < 1 || row > len(g.heights) {
		return 0
	}
	return g.heights[row-1]
}

// Merges returns the current merge rectangles.
func (g *Grid) Merges() []MergeRect { return g.merges }

// DissolveMerge removes the rectangle from the merge set. The caller is
// responsible for writing values into the rows the merge spanned.
func (g *Grid) DissolveMerge(m MergeRect) {
	for i, cur := range g.merges {
		if cur == m {
			g.merges = append(g.merges[:i], g.merges[i+1:]...)
			return
		}
	}
}
