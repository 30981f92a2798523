package packex

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex/models"
	"github.com/turnkeydata/packex/pkg/packex/output"
	"github.com/turnkeydata/packex/pkg/packex/parser"
)

// Result holds everything extracted from one workbook.
type Result struct {
	// Records are the flattened output rows, in package then row order.
	Records []models.Record
	// Packages is the number of packages detected.
	Packages int
	// Images is the number of package images persisted.
	Images int
	// Unmatched is the number of pictures that linked to no package.
	Unmatched int
}

// ProcessWorkbook runs the full pipeline over the active sheet of one
// workbook: grid snapshot, row geometry, package segmentation, category fill,
// picture linking and persistence, detail-column detection, merge repair and
// record flattening. All state built here is discarded with the returned
// Result; nothing carries over to the next document.
//
// store may be nil, in which case linked images are not persisted and records
// carry no image paths.
func ProcessWorkbook(path string, store *output.ImageStore, opts Options) (*Result, error) {
	book := filepath.Base(path)
	titleTrim := strings.TrimSpace(strings.TrimSuffix(book, filepath.Ext(book)))

	clog.Infof("opening workbook: %s", book)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ProcessError{Book: book, Stage: "open", Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	grid, err := parser.LoadGrid(f, sheet)
	if err != nil {
		return nil, &ProcessError{Book: book, Stage: "grid", Err: err}
	}

	geo := parser.BuildRowGeometry(grid)

	headerRow := parser.FindHeaderRow(grid)
	if headerRow <= 1 {
		return nil, &ProcessError{Book: book, Stage: "segment", Err: ErrNoHeaderRow}
	}
	pkgs := parser.SegmentPackages(grid, geo, headerRow)
	if len(pkgs) == 0 {
		return nil, &ProcessError{Book: book, Stage: "segment", Err: ErrNoPackages}
	}

	parser.FillCategories(grid, pkgs, opts.CategoryColumn)

	pics, err := parser.ExtractPictures(path, sheet)
	if err != nil {
		clog.Warnf("reading pictures from %s: %v", book, err)
		pics = nil
	}
	unmatched := parser.LinkPictures(pkgs, pics, geo)
	if len(unmatched) > 0 {
		clog.Warnf("unmatched pictures in %s: %v", book, unmatched)
	}

	images := 0
	if store != nil {
		images = persistImages(pkgs, pics, store)
	}

	cols := parser.DetectDetailColumns(grid, pkgs[0])
	if cols == nil {
		clog.Warnf("detail columns not detected in %s; emitting package-level rows only", book)
	} else {
		parser.RepairDetailMerges(grid, pkgs, cols)
	}
	records := parser.FlattenRecords(grid, pkgs, cols, titleTrim)

	return &Result{
		Records:   records,
		Packages:  len(pkgs),
		Images:    images,
		Unmatched: len(unmatched),
	}, nil
}

// persistImages saves each linked picture under the owning package's id. A
// missing byte stream or failed save degrades the package to no image; neither
// is fatal for the document.
func persistImages(pkgs []*models.Package, pics []models.Picture, store *output.ImageStore) int {
	saved := 0
	for _, pkg := range pkgs {
		if pkg.ImageIndex < 0 {
			continue
		}
		data := pics[pkg.ImageIndex].Data
		if len(data) == 0 {
			clog.Warnf("picture bytes for package %q could not be extracted", pkg.Name)
			continue
		}
		name, err := store.Save(pkg.ID, data)
		if err != nil {
			clog.Errorf("saving image for package %q: %v", pkg.Name, err)
			continue
		}
		pkg.ImageFile = name
		saved++
		clog.Okf("saved image #%d for package %q as %q", pkg.ImageIndex, pkg.Name, name)
	}
	return saved
}
