package parser

import (
	"strconv"
	"strings"

	"github.com/turnkeydata/packex/pkg/packex/models"
)

// parseInt coerces loosely typed cell text to an integer: trim, parse as a
// float (cells often carry "3.0"), truncate. ok is false for blank or
// non-numeric text.
func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// FlattenRecords walks each package's data rows and emits one record per valid
// row: the part identifier or description must be non-blank and the
// sequence-number cell must coerce to an integer. Rows failing the coercion
// are skipped silently, expected noise in weakly typed sheets. A failed
// quantity coercion keeps the row, with Qty left nil.
//
// When cols is nil (detail columns undetected for the sheet) exactly one
// package-level record per package is emitted with blank detail fields.
func FlattenRecords(g *models.Grid, pkgs []*models.Package, cols *DetailColumns, titleTrim string) []models.Record {
	var records []models.Record

	if cols == nil {
		for _, pkg := range pkgs {
			records = append(records, models.Record{
				PackageID:   pkg.ID,
				ImagePath:   pkg.ImageFile,
				TitleTrim:   titleTrim,
				PackageName: pkg.Name,
				Category:    pkg.Category,
			})
		}
		return records
	}

	for _, pkg := range pkgs {
		if !pkg.HasData() {
			continue
		}
		for row := pkg.DataStart; row <= pkg.DataEnd; row++ {
			part := g.CellTrim(row, cols.Part)
			desc := g.CellTrim(row, cols.Desc)
			if part == "" && desc == "" {
				continue
			}
			no, ok := parseInt(g.Cell(row, cols.No))
			if !ok {
				continue
			}

			rec := models.Record{
				PackageID:   pkg.ID,
				ImagePath:   pkg.ImageFile,
				TitleTrim:   titleTrim,
				PackageName: pkg.Name,
				No:          no,
				PartNo:      part,
				Description: desc,
				Category:    pkg.Category,
				Detail:      true,
			}
			if qty, ok := parseInt(g.Cell(row, cols.Qty)); ok {
				rec.Qty = &qty
			}
			records = append(records, rec)
		}
	}

	return records
}
