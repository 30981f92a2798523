package parser

import (
	"github.com/turnkeydata/packex/internal/clog"
	"github.com/turnkeydata/packex/pkg/packex/models"
)

// LinkPictures assigns pictures to packages in document order: a cell anchor
// by row containment, an absolute anchor by y-center containment in
// [YStart, YEnd). The first picture resolving to a package wins; later ones
// for the same package are discarded. Returns the indexes of pictures that
// ended up linked to nothing, diagnostic only.
func LinkPictures(pkgs []*models.Package, pics []models.Picture, geo *RowGeometry) []int {
	if len(pics) > 0 {
		cell, abs, unknown := 0, 0, 0
		for i := range pics {
			switch pics[i].Anchor.(type) {
			case models.CellAnchor:
				cell++
			case models.AbsoluteAnchor:
				abs++
			default:
				unknown++
			}
		}
		clog.Infof("pictures found: %d (anchors: cell=%d absolute=%d unknown=%d)",
			len(pics), cell, abs, unknown)
	}

	var unmatched []int
	for i := range pics {
		pic := &pics[i]
		switch a := pic.Anchor.(type) {
		case models.CellAnchor:
			pkg := packageForRow(pkgs, a.Row)
			if pkg == nil {
				unmatched = append(unmatched, i)
				clog.Warnf("picture #%d (cell anchor at row %d) matched no package", i, a.Row)
				continue
			}
			if pkg.ImageIndex >= 0 {
				unmatched = append(unmatched, i)
				clog.Warnf("ignoring extra picture #%d for package %q (already has an image)", i, pkg.Name)
				continue
			}
			pkg.ImageIndex = i
			pic.Used = true
			clog.Okf("picture #%d (cell anchor at row %d) linked to package %q [rows %d-%d]",
				i, a.Row, pkg.Name, pkg.StartRow, pkg.EndRow)

		case models.AbsoluteAnchor:
			center := a.CenterY()
			pkg := packageForY(pkgs, center)
			if pkg == nil {
				unmatched = append(unmatched, i)
				clog.Warnf("picture #%d (absolute anchor, center y=%d ~row %d) matched no package",
					i, center, geo.NearestRow(center))
				continue
			}
			if pkg.ImageIndex >= 0 {
				unmatched = append(unmatched, i)
				clog.Warnf("ignoring extra picture #%d for package %q (already has an image)", i, pkg.Name)
				continue
			}
			pkg.ImageIndex = i
			pic.Used = true
			clog.Okf("picture #%d (absolute anchor, center y=%d ~row %d) linked to package %q [y %d-%d]",
				i, center, geo.NearestRow(center), pkg.Name, pkg.YStart, pkg.YEnd)

		default:
			unmatched = append(unmatched, i)
			clog.Warnf("picture #%d has an unrecognized anchor; skipped", i)
		}
	}

	return unmatched
}

func packageForRow(pkgs []*models.Package, row int) *models.Package {
	for _, pkg := range pkgs {
		if pkg.ContainsRow(row) {
			return pkg
		}
	}
	return nil
}

func packageForY(pkgs []*models.Package, y int64) *models.Package {
	for _, pkg := range pkgs {
		if pkg.ContainsY(y) {
			return pkg
		}
	}
	return nil
}
