package parser

import (
	"testing"

	"github.com/turnkeydata/packex/pkg/packex/models"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"3", 3, true},
		{" 3 ", 3, true},
		{"3.0", 3, true},
		{"3.9", 3, true},
		{"-2", -2, true},
		{"", 0, false},
		{"  ", 0, false},
		{"abc", 0, false},
		{"3x", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseInt(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// Round trip: one package, three data rows, a 2-row vertical merge in the
// quantity column. Flattening must yield exactly 3 records with identical
// quantities for the merged rows.
func TestFlattenRoundTripWithQtyMerge(t *testing.T) {
	cells := blankRows(10, 6)
	cells[3][0] = "REAR WHEELS" // row 4
	cells[4][1] = "No."         // header row 5
	cells[5][1], cells[5][2], cells[5][3], cells[5][4] = "1", "W-1", "wheel", "2"
	cells[6][1], cells[6][2], cells[6][3] = "2", "W-2", "rim" // qty merged with row 6
	cells[7][1], cells[7][2], cells[7][3], cells[7][4] = "3", "W-3", "hub", "8"

	g := newTestGrid(cells, models.MergeRect{MinRow: 6, MinCol: 5, MaxRow: 7, MaxCol: 5})
	geo := BuildRowGeometry(g)

	pkgs := SegmentPackages(g, geo, 5)
	if len(pkgs) != 1 {
		t.Fatalf("got %d packages, want 1", len(pkgs))
	}
	cols := DetectDetailColumns(g, pkgs[0])
	if cols == nil {
		t.Fatal("detail columns not detected")
	}
	RepairDetailMerges(g, pkgs, cols)

	records := FlattenRecords(g, pkgs, cols, "manual")
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, rec := range records {
		if !rec.Detail {
			t.Errorf("record %d is not a detail record", i)
		}
		if rec.PackageName != "REAR WHEELS" || rec.TitleTrim != "manual" {
			t.Errorf("record %d identity = (%q, %q)", i, rec.PackageName, rec.TitleTrim)
		}
		if rec.No != i+1 {
			t.Errorf("record %d No = %d, want %d", i, rec.No, i+1)
		}
		if rec.Qty == nil {
			t.Fatalf("record %d Qty is nil", i)
		}
	}
	if *records[0].Qty != *records[1].Qty || *records[0].Qty != 2 {
		t.Errorf("merged rows Qty = %d/%d, want 2/2", *records[0].Qty, *records[1].Qty)
	}
	if *records[2].Qty != 8 {
		t.Errorf("last Qty = %d, want 8", *records[2].Qty)
	}
}

func TestFlattenRowFilter(t *testing.T) {
	cells := blankRows(9, 6)
	// data rows 2-8; cols: No=2 Part=3 Desc=4 Qty=5
	cells[1][1], cells[1][2] = "1", "P-1"        // valid
	cells[2][1], cells[2][3] = "2", "only desc"  // valid, desc only
	cells[3][1] = "3"                            // no part, no desc: skipped
	cells[4][2] = "P-4"                          // blank sequence number: skipped
	cells[5][1], cells[5][2] = "x", "P-5"        // non-numeric sequence: skipped
	cells[6][1], cells[6][2] = "4.0", "P-6"      // float-typed sequence: valid
	cells[7][1], cells[7][2] = "5", "P-7"
	cells[7][3], cells[7][4] = "lots", "many" // bad qty kept, Qty nil

	g := newTestGrid(cells)
	pkg := &models.Package{ID: "id-1", Name: "PKG", StartRow: 1, EndRow: 9,
		DataStart: 2, DataEnd: 8, ImageIndex: -1}
	cols := &DetailColumns{No: 2, Part: 3, Desc: 4, Qty: 5}

	records := FlattenRecords(g, []*models.Package{pkg}, cols, "t")
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	wantNos := []int{1, 2, 4, 5}
	for i, rec := range records {
		if rec.No != wantNos[i] {
			t.Errorf("record %d No = %d, want %d", i, rec.No, wantNos[i])
		}
	}
	last := records[3]
	if last.Qty != nil {
		t.Errorf("bad quantity should leave Qty nil, got %d", *last.Qty)
	}
	if last.Description != "lots" {
		t.Errorf("last description = %q, want \"lots\"", last.Description)
	}
}

func TestFlattenSkipsPackagesWithoutData(t *testing.T) {
	g := newTestGrid(blankRows(6, 6))
	pkgs := []*models.Package{
		{ID: "a", Name: "EMPTY", StartRow: 1, EndRow: 6, ImageIndex: -1},
	}
	cols := &DetailColumns{No: 2, Part: 3, Desc: 4, Qty: 5}

	if records := FlattenRecords(g, pkgs, cols, "t"); len(records) != 0 {
		t.Errorf("got %d records for a package without data rows, want 0", len(records))
	}
}

func TestFlattenFallbackWithoutDetailColumns(t *testing.T) {
	g := newTestGrid(blankRows(6, 6))
	pkgs := []*models.Package{
		{ID: "a", Name: "ALPHA", Category: "Electric", ImageFile: "a.png", StartRow: 1, EndRow: 3, ImageIndex: 0},
		{ID: "b", Name: "BETA", StartRow: 4, EndRow: 6, ImageIndex: -1},
	}

	records := FlattenRecords(g, pkgs, nil, "manual")
	if len(records) != 2 {
		t.Fatalf("got %d records, want one per package", len(records))
	}
	first := records[0]
	if first.Detail {
		t.Error("fallback records must not be detail records")
	}
	if first.PackageID != "a" || first.PackageName != "ALPHA" ||
		first.Category != "Electric" || first.ImagePath != "a.png" {
		t.Errorf("unexpected fallback record: %+v", first)
	}
	if first.PartNo != "" || first.Description != "" || first.Qty != nil {
		t.Error("fallback records must leave detail fields blank")
	}
}
