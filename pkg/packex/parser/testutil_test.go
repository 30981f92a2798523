package parser

import "github.com/turnkeydata/packex/pkg/packex/models"

// newTestGrid builds a grid from row-major cell text with 15pt rows and the
// given merges.
func newTestGrid(cells [][]string, merges ...models.MergeRect) *models.Grid {
	heights := make([]float64, len(cells))
	for i := range heights {
		heights[i] = DefaultRowHeightPoints
	}
	return models.NewGrid(cells, heights, merges)
}

// blankRows returns n empty rows of the given width.
func blankRows(n, width int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = make([]string, width)
	}
	return rows
}
