package models

// Package is a contiguous row range representing one logical parts group,
// named by its first-column title. Row bounds are inclusive; YStart/YEnd are
// EMU coordinates derived from the row geometry, with the end exclusive.
type Package struct {
	// ID is the unique package identifier.
	ID string
	// Name is the trimmed first-column title.
	Name string
	// StartRow is the first row of the package (1-based).
	StartRow int
	// EndRow is the last row of the package (1-based, inclusive).
	EndRow int
	// YStart is the top of StartRow in EMU.
	YStart int64
	// YEnd is the bottom of EndRow in EMU.
	YEnd int64
	// Category is the first non-blank cell of the category column, if any.
	Category string
	// DataStart and DataEnd bound the part rows; both are 0 when the package
	// has no data rows.
	DataStart int
	DataEnd   int
	// ImageIndex is the linked picture's document-order index, -1 when none.
	ImageIndex int
	// ImageFile is the persisted image file name, "" when none.
	ImageFile string
}

// ContainsRow reports whether row falls inside [StartRow, EndRow].
func (p *Package) ContainsRow(row int) bool {
	return p.StartRow <= row && row <= p.EndRow
}

// ContainsY reports whether y falls inside [YStart, YEnd).
func (p *Package) ContainsY(y int64) bool {
	return p.YStart <= y && y < p.YEnd
}

// HasData reports whether a data-row range was found for the package.
func (p *Package) HasData() bool { return p.DataStart > 0 }
