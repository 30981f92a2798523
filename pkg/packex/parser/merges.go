package parser

import (
	"strings"

	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex/models"
)

// FlattenVerticalMerges dissolves every vertical merge confined to col and
// writes the top cell's value into each row the merge spanned. It runs
// sheet-wide, before any per-package work: a single merge may cross package
// boundaries.
func FlattenVerticalMerges(g *models.Grid, col int) {
	merges := make([]models.MergeRect, len(g.Merges()))
	copy(merges, g.Merges())

	for _, m := range merges {
		if !m.VerticalIn(col) {
			continue
		}
		// The raw top value is written as-is; trimming is left to readers.
		value := g.Cell(m.MinRow, col)
		g.DissolveMerge(m)
		if strings.TrimSpace(value) == "" {
			continue
		}
		for row := m.MinRow; row <= m.MaxRow; row++ {
			g.SetCell(row, col, value)
		}
		clog.Debugf("flattened vertical merge in col %d rows [%d-%d] with value %q",
			col, m.MinRow, m.MaxRow, value)
	}
}

// ForwardFill propagates the last non-blank value in col downward across blank
// cells within [startRow, endRow]. Non-blank cells are never overwritten, and
// cells blank since the top of the range stay blank.
func ForwardFill(g *models.Grid, col, startRow, endRow int) {
	last := ""
	for row := startRow; row <= endRow; row++ {
		if v := g.CellTrim(row, col); v != "" {
			last = v
		} else if last != "" {
			g.SetCell(row, col, last)
		}
	}
}

// DataRowRange finds the inclusive span of rows inside pkg where the part or
// description column is non-blank. ok is false when the package has no such
// row.
func DataRowRange(g *models.Grid, pkg *models.Package, partCol, descCol int) (start, end int, ok bool) {
	for row := pkg.StartRow; row <= pkg.EndRow; row++ {
		if g.Blank(row, partCol) && g.Blank(row, descCol) {
			continue
		}
		if start == 0 {
			start = row
		}
		end = row
	}
	return start, end, start != 0
}

// RepairDetailMerges runs the two-stage merge repair: sheet-wide unmerge of the
// sequence-number and quantity columns, then per-package forward fill bounded
// to each package's data-row range, which it also records on the package.
func RepairDetailMerges(g *models.Grid, pkgs []*models.Package, cols *DetailColumns) {
	FlattenVerticalMerges(g, cols.No)
	FlattenVerticalMerges(g, cols.Qty)

	for _, pkg := range pkgs {
		start, end, ok := DataRowRange(g, pkg, cols.Part, cols.Desc)
		if !ok {
			clog.Warnf("no data rows found for package %q", pkg.Name)
			continue
		}
		pkg.DataStart, pkg.DataEnd = start, end
		ForwardFill(g, cols.No, start, end)
		ForwardFill(g, cols.Qty, start, end)
		clog.Debugf("forward-filled no/qty for package %q rows [%d-%d]", pkg.Name, start, end)
	}
}
