package parser

import (
	"strings"

	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex/models"
)

// DetailColumns holds the detected 1-based column roles for part rows.
type DetailColumns struct {
	No   int
	Part int
	Desc int
	Qty  int
}

const (
	// firstDetailCol is where the column-header scan starts.
	firstDetailCol = 2
	// detailColWindow bounds how many columns the scan covers.
	detailColWindow = 5
)

// noTokens are accepted sequence-number column headers besides "#".
var noTokens = map[string]struct{}{
	"no":  {},
	"no.": {},
	"no#": {},
	"no:": {},
}

// DetectDetailColumns locates the sequence-number column header inside the
// first package's row range and takes the three columns to its right as part
// identifier, description and quantity. Detection runs once per sheet and the
// result is applied to every package; sheets whose later packages use a
// different layout will be misparsed. Returns nil when no header matches or
// the quantity column would fall outside the sheet.
func DetectDetailColumns(g *models.Grid, first *models.Package) *DetailColumns {
	lastCol := firstDetailCol + detailColWindow - 1

	for row := first.StartRow; row <= first.EndRow; row++ {
		for col := firstDetailCol; col <= lastCol; col++ {
			raw := g.CellTrim(row, col)
			if raw == "" {
				continue
			}
			if raw != "#" {
				if _, ok := noTokens[strings.ToLower(raw)]; !ok {
					continue
				}
			}

			cols := &DetailColumns{No: col, Part: col + 1, Desc: col + 2, Qty: col + 3}
			if cols.Qty > g.MaxCol() {
				clog.Warnf("no-like header %q at row %d col %d but following columns exceed sheet width %d",
					raw, row, col, g.MaxCol())
				return nil
			}
			clog.Infof("detail columns detected (row %d, header %q): no=%d part=%d desc=%d qty=%d",
				row, raw, cols.No, cols.Part, cols.Desc, cols.Qty)
			return cols
		}
	}

	clog.Warnf("could not detect detail columns inside first package range")
	return nil
}
