package output

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex/models"
)

// Header is the fixed output column order. Everything past Category is
// reserved for downstream manual annotation and must stay present, in this
// order, as empty cells.
var Header = []string{
	"PackageId",
	"Image",
	"ImagePath",
	"Title - TRIM",
	"PackageName",
	"No",
	"PartNo",
	"Part Name And Standard",
	"QTY",
	"Category",
	"delete",
	"price",
	"Description",
	"Old Part No.",
	"Names and specifications of old parts",
	"note",
	"is_red",
	"is_line",
	"is_deleted",
	"is_orange",
	"is_pink",
	"is_yellow",
	"internal_notes",
}

const sheetName = "packages"

// WriteWorkbook builds the data workbook: one row per record, a blank
// separator row between consecutive packages, and, when embedPreviews is set,
// the package image embedded in the Image column of its first row. Any failure
// here is fatal for the run; a preview embed failure is only a warning.
func WriteWorkbook(records []models.Record, store *ImageStore, path string, embedPreviews bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	if err := setColumnWidths(f); err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	rowIdx := 1
	lastPkg := ""
	for _, rec := range records {
		firstOfPackage := rec.PackageID != lastPkg
		if lastPkg != "" && firstOfPackage {
			rowIdx++ // blank separator row between packages
		}
		rowIdx++

		cells := recordCells(rec)
		start, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, start, &cells); err != nil {
			return err
		}

		if embedPreviews && firstOfPackage && rec.ImagePath != "" && store != nil {
			if err := embedPreview(f, store, rec.ImagePath, rowIdx); err != nil {
				clog.Warnf("embedding preview %q: %v", rec.ImagePath, err)
			}
		}
		lastPkg = rec.PackageID
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing output workbook: %w", err)
	}
	return nil
}

func setColumnWidths(f *excelize.File) error {
	widths := []struct {
		col string
		w   float64
	}{
		{"A", 40}, // PackageId
		{"B", 14}, // Image
		{"C", 40}, // ImagePath
		{"D", 30}, // Title - TRIM
		{"E", 30}, // PackageName
		{"F", 6},  // No
		{"G", 18}, // PartNo
		{"H", 30}, // Part Name And Standard
		{"I", 6},  // QTY
		{"J", 20}, // Category
	}
	for _, cw := range widths {
		if err := f.SetColWidth(sheetName, cw.col, cw.col, cw.w); err != nil {
			return err
		}
	}
	return nil
}

func recordCells(rec models.Record) []interface{} {
	cells := make([]interface{}, len(Header))
	for i := range cells {
		cells[i] = ""
	}
	cells[0] = rec.PackageID
	cells[2] = rec.ImagePath
	cells[3] = rec.TitleTrim
	cells[4] = rec.PackageName
	if rec.Detail {
		cells[5] = rec.No
		cells[6] = rec.PartNo
		cells[7] = rec.Description
		if rec.Qty != nil {
			cells[8] = *rec.Qty
		}
	}
	cells[9] = rec.Category
	return cells
}

func embedPreview(f *excelize.File, store *ImageStore, fileName string, rowIdx int) error {
	data, err := store.Read(fileName)
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(2, rowIdx)
	if err != nil {
		return err
	}
	if err := f.SetRowHeight(sheetName, rowIdx, 60); err != nil {
		return err
	}
	return f.AddPictureFromBytes(sheetName, cell, &excelize.Picture{
		Extension: filepath.Ext(fileName),
		File:      data,
		Format:    &excelize.GraphicOptions{AutoFit: true},
	})
}
