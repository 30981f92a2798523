// Package packex flattens loosely formatted "package" spreadsheets into
// normalized part records, with embedded images reconciled to the package that
// logically contains them.
package packex

// Options configures workbook processing.
type Options struct {
	// CategoryColumn is the 1-based column scanned for each package's
	// category text.
	CategoryColumn int
	// EmbedPreviews controls whether the output workbook embeds a preview of
	// each package image.
	EmbedPreviews bool
}

// DefaultOptions returns the default processing options: categories from
// column F, previews embedded.
func DefaultOptions() Options {
	return Options{
		CategoryColumn: 6,
		EmbedPreviews:  true,
	}
}
