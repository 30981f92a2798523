package models

// Record is one flattened output row. Detail records carry part-level fields;
// package-level records (emitted when detail columns were not detected) leave
// them blank.
type Record struct {
	// PackageID is the owning package's unique identifier.
	PackageID string `json:"package_id"`
	// ImagePath is the persisted image file name for the package, if any.
	ImagePath string `json:"image_path,omitempty"`
	// TitleTrim is the source workbook's base name without extension.
	TitleTrim string `json:"title_trim"`
	// PackageName is the package title.
	PackageName string `json:"package_name"`
	// No is the part's sequence number.
	No int `json:"no"`
	// PartNo is the part identifier.
	PartNo string `json:"part_no"`
	// Description is the part name and standard.
	Description string `json:"description"`
	// Qty is the part quantity, nil when the cell did not coerce to an integer.
	Qty *int `json:"qty,omitempty"`
	// Category is the package category, if any.
	Category string `json:"category,omitempty"`
	// Detail reports whether the record carries part-level fields.
	Detail bool `json:"-"`
}
