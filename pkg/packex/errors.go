package packex

import (
	"errors"
	"fmt"
)

// ErrNoHeaderRow indicates no row carried a part-table header keyword, or the
// header sat at the very first row so no package title row can precede it.
var ErrNoHeaderRow = errors.New("no usable header row found")

// ErrNoPackages indicates a header row was found but no first-column cell
// qualified as a package title.
var ErrNoPackages = errors.New("no packages detected")

// ProcessError wraps a failure while processing one workbook.
type ProcessError struct {
	// Book is the workbook file name (no path).
	Book string
	// Stage names the pipeline stage that failed: "open", "grid", "segment".
	Stage string
	// Err is the underlying error.
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing %q (%s): %v", e.Book, e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
