package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/turnkeydata/packex/pkg/packex/models"
)

// LoadGrid copies a worksheet's cell text, row heights and merge rectangles
// into a Grid the engine can mutate without touching the source file.
func LoadGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	heights := make([]float64, len(rows))
	for i := range heights {
		h, err := f.GetRowHeight(sheetName, i+1)
		if err != nil || h <= 0 {
			h = DefaultRowHeightPoints
		}
		heights[i] = h
	}

	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	merges := make([]models.MergeRect, 0, len(merged))
	for _, mc := range merged {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		merges = append(merges, models.MergeRect{MinRow: r1, MinCol: c1, MaxRow: r2, MaxCol: c2})
	}

	return models.NewGrid(rows, heights, merges), nil
}
