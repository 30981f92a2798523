package parser

import (
	"github.com/turnkeydata/packex/pkg/packex/models"
)

// RowGeometry maps each row to a vertical EMU coordinate range, accumulated
// top to bottom starting at 0. Ranges are contiguous: Bottom(r) == Top(r+1).
// Geometry must be rebuilt for every sheet; reusing it across sheets misplaces
// absolute-anchored pictures.
type RowGeometry struct {
	// top[i] is the top of row i+1; the final entry is the sheet bottom.
	top []int64
}

// BuildRowGeometry accumulates the grid's row heights into EMU coordinates.
func BuildRowGeometry(g *models.Grid) *RowGeometry {
	rows := g.MaxRow()
	top := make([]int64, rows+1)
	var acc int64
	for r := 1; r <= rows; r++ {
		top[r-1] = acc
		acc += PointsToEMU(g.Height(r))
	}
	top[rows] = acc
	return &RowGeometry{top: top}
}

// Rows returns the number of mapped rows.
func (m *RowGeometry) Rows() int { return len(m.top) - 1 }

// Top returns the top coordinate of row (1-based).
func (m *RowGeometry) Top(row int) int64 {
	if row < 1 || row > m.Rows() {
		return 0
	}
	return m.top[row-1]
}

// Bottom returns the bottom coordinate of row (1-based).
func (m *RowGeometry) Bottom(row int) int64 {
	if row < 1 || row > m.Rows() {
		return 0
	}
	return m.top[row]
}

// NearestRow returns the row whose vertical center is closest to y, or 0 for
// an empty sheet. Used for diagnostics on absolute-anchored pictures; linking
// itself works on package coordinate ranges to avoid double rounding.
func (m *RowGeometry) NearestRow(y int64) int {
	rows := m.Rows()
	if rows == 0 {
		return 0
	}
	best, bestDist := 1, int64(-1)
	for r := 1; r <= rows; r++ {
		center := (m.top[r-1] + m.top[r]) / 2
		dist := center - y
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = r, dist
		}
	}
	return best
}
