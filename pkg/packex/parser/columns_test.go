package parser

import (
	"testing"

	"github.com/turnkeydata/packex/pkg/packex/models"
)

func firstPackage(startRow, endRow int) *models.Package {
	return &models.Package{Name: "FIRST", StartRow: startRow, EndRow: endRow, ImageIndex: -1}
}

func TestDetectDetailColumns(t *testing.T) {
	cells := blankRows(10, 6)
	cells[5][1] = "No." // row 6, column 2

	g := newTestGrid(cells)
	cols := DetectDetailColumns(g, firstPackage(4, 10))
	if cols == nil {
		t.Fatal("DetectDetailColumns returned nil")
	}
	want := DetailColumns{No: 2, Part: 3, Desc: 4, Qty: 5}
	if *cols != want {
		t.Errorf("cols = %+v, want %+v", *cols, want)
	}
}

func TestDetectDetailColumnsTokens(t *testing.T) {
	tests := []struct {
		header string
		found  bool
	}{
		{"#", true},
		{"no", true},
		{"NO.", true},
		{"No#", true},
		{"no:", true},
		{"number", false},
		{"part", false},
	}
	for _, tt := range tests {
		cells := blankRows(6, 7)
		cells[2][2] = tt.header // row 3, column 3
		g := newTestGrid(cells)

		cols := DetectDetailColumns(g, firstPackage(1, 6))
		if (cols != nil) != tt.found {
			t.Errorf("header %q: found = %v, want %v", tt.header, cols != nil, tt.found)
		}
	}
}

func TestDetectDetailColumnsFirstMatchWins(t *testing.T) {
	cells := blankRows(8, 8)
	cells[2][3] = "#"   // row 3, column 4: first in scan order
	cells[5][1] = "No." // row 6, column 2: later row

	g := newTestGrid(cells)
	cols := DetectDetailColumns(g, firstPackage(1, 8))
	if cols == nil || cols.No != 4 {
		t.Fatalf("cols = %+v, want No=4", cols)
	}
}

func TestDetectDetailColumnsQtyBeyondSheet(t *testing.T) {
	// "No" in column 5 puts quantity at column 8, past the 6-column sheet.
	cells := blankRows(6, 6)
	cells[2][4] = "No"

	g := newTestGrid(cells)
	if cols := DetectDetailColumns(g, firstPackage(1, 6)); cols != nil {
		t.Errorf("cols = %+v, want nil", cols)
	}
}

func TestDetectDetailColumnsOutsideWindow(t *testing.T) {
	// Column 7 is past the 5-column window starting at column 2.
	cells := blankRows(6, 10)
	cells[2][6] = "No."

	g := newTestGrid(cells)
	if cols := DetectDetailColumns(g, firstPackage(1, 6)); cols != nil {
		t.Errorf("cols = %+v, want nil", cols)
	}
}

func TestDetectDetailColumnsOutsideFirstPackage(t *testing.T) {
	// The marker sits below the first package's row range.
	cells := blankRows(10, 6)
	cells[7][1] = "No."

	g := newTestGrid(cells)
	if cols := DetectDetailColumns(g, firstPackage(1, 6)); cols != nil {
		t.Errorf("cols = %+v, want nil", cols)
	}
}
