package output

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/turnkeydata/packex/pkg/packex/models"
)

func intp(v int) *int { return &v }

func TestWriteWorkbook(t *testing.T) {
	records := []models.Record{
		{PackageID: "a", TitleTrim: "manual", PackageName: "ALPHA",
			No: 1, PartNo: "P-1", Description: "bolt", Qty: intp(4),
			Category: "Electric", Detail: true},
		{PackageID: "a", TitleTrim: "manual", PackageName: "ALPHA",
			No: 2, PartNo: "P-2", Description: "nut", Category: "Electric", Detail: true},
		{PackageID: "b", TitleTrim: "manual", PackageName: "BETA"},
	}

	path := filepath.Join(t.TempDir(), "packages_data.xlsx")
	if err := WriteWorkbook(records, nil, path, false); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening output: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("packages")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	if len(rows) == 0 {
		t.Fatal("no rows written")
	}
	for i, want := range Header {
		if i >= len(rows[0]) || rows[0][i] != want {
			t.Fatalf("header col %d = %q, want %q", i+1, cellAt(rows[0], i), want)
		}
	}

	// Row 2 and 3: package a; row 4: separator; row 5: package b.
	if got := cellAt(rows[1], 0); got != "a" {
		t.Errorf("row 2 PackageId = %q, want a", got)
	}
	if got := cellAt(rows[1], 5); got != "1" {
		t.Errorf("row 2 No = %q, want 1", got)
	}
	if got := cellAt(rows[1], 8); got != "4" {
		t.Errorf("row 2 QTY = %q, want 4", got)
	}
	if got := cellAt(rows[2], 8); got != "" {
		t.Errorf("row 3 QTY = %q, want blank for nil quantity", got)
	}

	if len(rows) < 5 {
		t.Fatalf("got %d rows, want 5 (header, two rows, separator, one row)", len(rows))
	}
	for i := range Header {
		if cellAt(rows[3], i) != "" {
			t.Fatalf("separator row has content at col %d", i+1)
		}
	}
	if got := cellAt(rows[4], 0); got != "b" {
		t.Errorf("row 5 PackageId = %q, want b", got)
	}
	if got := cellAt(rows[4], 5); got != "" {
		t.Errorf("package-level row No = %q, want blank", got)
	}
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
