package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

func TestBuildInfersColumnTypes(t *testing.T) {
	records := mustRecords(t,
		[]string{"name", "count", "score", "mixed"},
		[][]string{
			{"alpha", "1", "0.5", "1"},
			{"beta", "-2", "95.12345", "x"},
			{"gamma", "30", "1e3", "2.0"},
		},
	)

	builder := New(Options{})
	table, err := builder.Build("sample.csv", records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	wantTypes := []ColumnType{ColumnTypeText, ColumnTypeInteger, ColumnTypeNumber, ColumnTypeText}
	for i, col := range table.Columns {
		if col.Type != wantTypes[i] {
			t.Fatalf("column %q: want type %s, got %s", col.Name, wantTypes[i], col.Type)
		}
	}

	if got := table.Columns[1].Cells[1].Int; got != -2 {
		t.Fatalf("integer cell: want -2, got %d", got)
	}
	if got := table.Columns[2].Cells[2].Float; got != 1000 {
		t.Fatalf("number cell: want 1000, got %v", got)
	}
}

func TestBuildMarksMissingCells(t *testing.T) {
	records := mustRecords(t,
		[]string{"a", "b"},
		[][]string{
			{"", "1"},
			{"x", ""},
		},
	)

	table, err := New(Options{}).Build("t.csv", records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !table.Columns[0].Cells[0].Missing {
		t.Fatalf("expected a[0] to be missing")
	}
	if !table.Columns[1].Cells[1].Missing {
		t.Fatalf("expected b[1] to be missing")
	}
	// Missing cells do not break numeric inference for the rest of the column.
	if table.Columns[1].Type != ColumnTypeInteger {
		t.Fatalf("column b: want integer, got %s", table.Columns[1].Type)
	}
	if got := table.Columns[1].Format(1); got != "" {
		t.Fatalf("missing cell renders %q, want empty", got)
	}
}

func TestBuildCustomMissingMarkers(t *testing.T) {
	records := mustRecords(t,
		[]string{"score"},
		[][]string{{"NA"}, {"2.5"}},
	)

	table, err := New(Options{MissingValues: []string{"", "NA"}}).Build("t.csv", records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if table.Columns[0].Type != ColumnTypeNumber {
		t.Fatalf("want number column, got %s", table.Columns[0].Type)
	}
	if !table.Columns[0].Cells[0].Missing {
		t.Fatalf("expected NA to be treated as missing")
	}
}

func TestBuildAllMissingColumnIsText(t *testing.T) {
	records := mustRecords(t,
		[]string{"empty"},
		[][]string{{""}, {""}},
	)

	table, err := New(Options{}).Build("t.csv", records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if table.Columns[0].Type != ColumnTypeText {
		t.Fatalf("all-missing column: want text, got %s", table.Columns[0].Type)
	}
}

func TestBuildRejectsZeroColumns(t *testing.T) {
	_, err := New(Options{}).Build("t.csv", pkgdataset.Records{})
	if err == nil {
		t.Fatalf("expected error for dataset with no columns")
	}
}

func TestTableAccessors(t *testing.T) {
	records := mustRecords(t,
		[]string{"name", "score"},
		[][]string{{"a", "1"}, {"b", "2"}},
	)
	table, err := New(Options{}).Build("t.csv", records)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if table.NumCols() != 2 || table.NumRows() != 2 {
		t.Fatalf("want 2x2, got %dx%d", table.NumCols(), table.NumRows())
	}
	if diff := cmp.Diff([]string{"name", "score"}, table.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "2"}, table.Row(1)); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func mustRecords(t *testing.T, header []string, rows [][]string) pkgdataset.Records {
	t.Helper()
	records, err := pkgdataset.NewRecords(header, rows)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	return records
}
