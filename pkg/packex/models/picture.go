package models

// Anchor is the positioning metadata of an embedded picture. The two variants
// are CellAnchor and AbsoluteAnchor; a nil Anchor means the drawing carried a
// kind the engine does not recognize.
type Anchor interface {
	// Kind returns a short label for diagnostics.
	Kind() string
}

// CellAnchor positions a picture relative to a cell.
type CellAnchor struct {
	// Row is the anchor row, 1-based.
	Row int
}

// Kind implements Anchor.
func (CellAnchor) Kind() string { return "cell" }

// AbsoluteAnchor positions a picture at a fixed vertical offset in EMU,
// independent of any cell.
type AbsoluteAnchor struct {
	// Top is the offset of the picture's top edge from the sheet origin.
	Top int64
	// Height is the picture's vertical extent.
	Height int64
}

// Kind implements Anchor.
func (AbsoluteAnchor) Kind() string { return "absolute" }

// CenterY returns the vertical center of the picture.
func (a AbsoluteAnchor) CenterY() int64 { return a.Top + a.Height/2 }

// Picture is one embedded raster image with its raw bytes and anchor.
type Picture struct {
	// Data holds the image bytes, nil when the media part was unavailable.
	Data []byte
	// Anchor describes the picture's position; nil when unclassified.
	Anchor Anchor
	// Used is set when the picture has been linked to a package. It
	// transitions false to true at most once.
	Used bool
}
