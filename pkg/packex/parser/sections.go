package parser

import (
	"strings"

	"github.com/google/uuid"

	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex/models"
)

// headerKeywords mark the part-table header row. Matching is a case-insensitive
// substring test.
var headerKeywords = []string{"part number", "description", "qty"}

// errorTokens are spreadsheet error values that must never open a package.
var errorTokens = map[string]struct{}{
	"#unknown!": {},
	"#value!":   {},
	"#div/0!":   {},
	"#ref!":     {},
	"#name?":    {},
	"#null!":    {},
	"#num!":     {},
	"#n/a":      {},
}

func containsHeaderKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FindHeaderRow returns the first row containing a header keyword in any
// column, scanning top to bottom then left to right, or 0 when none exists.
func FindHeaderRow(g *models.Grid) int {
	for row := 1; row <= g.MaxRow(); row++ {
		for col := 1; col <= g.MaxCol(); col++ {
			text := g.CellTrim(row, col)
			if text == "" {
				continue
			}
			if containsHeaderKeyword(text) {
				clog.Infof("header row detected at row %d (col %d): %q", row, col, text)
				return row
			}
		}
	}
	clog.Warnf("no header row with part number / description / qty found")
	return 0
}

// SegmentPackages partitions the grid into ordered packages from first-column
// titles, starting one row above headerRow and running to the last row. Blank
// cells extend the open package; header keywords and spreadsheet error tokens
// never open one. Returns nil when headerRow is at or before row 1.
func SegmentPackages(g *models.Grid, geo *RowGeometry, headerRow int) []*models.Package {
	if headerRow <= 1 {
		clog.Warnf("cannot determine package start row (header row %d)", headerRow)
		return nil
	}

	var pkgs []*models.Package
	var cur *models.Package

	closeAt := func(endRow int) {
		cur.EndRow = endRow
		cur.YStart = geo.Top(cur.StartRow)
		cur.YEnd = geo.Bottom(cur.EndRow)
		pkgs = append(pkgs, cur)
	}

	for row := headerRow - 1; row <= g.MaxRow(); row++ {
		text := g.CellTrim(row, 1)
		if text == "" {
			continue
		}
		if containsHeaderKeyword(text) {
			continue
		}
		if _, ok := errorTokens[strings.ToLower(text)]; ok {
			clog.Debugf("ignoring error-like value at row %d: %q", row, text)
			continue
		}

		if cur != nil {
			closeAt(row - 1)
		}
		cur = &models.Package{
			ID:         uuid.NewString(),
			Name:       text,
			StartRow:   row,
			ImageIndex: -1,
		}
		clog.Debugf("new package at row %d: %q", row, text)
	}
	if cur != nil {
		closeAt(g.MaxRow())
	}

	if len(pkgs) == 0 {
		clog.Warnf("no packages detected")
		return nil
	}
	clog.Okf("%d package(s) detected", len(pkgs))
	return pkgs
}

// FillCategories assigns each package the first non-blank cell found top to
// bottom in categoryCol within the package's full row range.
func FillCategories(g *models.Grid, pkgs []*models.Package, categoryCol int) {
	for _, pkg := range pkgs {
		for row := pkg.StartRow; row <= pkg.EndRow; row++ {
			if text := g.CellTrim(row, categoryCol); text != "" {
				pkg.Category = text
				break
			}
		}
		clog.Debugf("package %q rows [%d-%d]: category %q",
			pkg.Name, pkg.StartRow, pkg.EndRow, pkg.Category)
	}
}
