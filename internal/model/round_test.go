package model

import "testing"

func TestRoundQuantizesNumberColumns(t *testing.T) {
	table := Table{
		Name: "t.csv",
		Columns: []Column{
			{
				Name: "score",
				Type: ColumnTypeNumber,
				Cells: []Cell{
					{Float: 95.12345},
					{Float: 3},
					{Float: 0.00005},
					{Missing: true},
				},
			},
		},
	}

	rounded := Round(table, 4)
	col := rounded.Columns[0]

	want := []string{"95.1235", "3", "0.0001", ""}
	for i, w := range want {
		if got := col.Format(i); got != w {
			t.Fatalf("row %d: want %q, got %q", i, w, got)
		}
	}
}

func TestRoundLeavesIntegerAndTextColumnsAlone(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Name: "n", Type: ColumnTypeInteger, Cells: []Cell{{Int: 12345}}},
			{Name: "s", Type: ColumnTypeText, Cells: []Cell{{Text: "1.23456"}}},
		},
	}

	rounded := Round(table, 2)
	if got := rounded.Columns[0].Format(0); got != "12345" {
		t.Fatalf("integer column changed: %q", got)
	}
	if got := rounded.Columns[1].Format(0); got != "1.23456" {
		t.Fatalf("text column changed: %q", got)
	}
}

func TestRoundDoesNotMutateInput(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Name: "v", Type: ColumnTypeNumber, Cells: []Cell{{Float: 1.98765}}},
		},
	}

	_ = Round(table, 2)
	if got := table.Columns[0].Cells[0].Float; got != 1.98765 {
		t.Fatalf("input mutated: %v", got)
	}
}

func TestRoundIsIdempotent(t *testing.T) {
	values := []float64{95.12345, 2.675, 0.1, 1e-9, -3.14159, 12345.6789}

	for _, v := range values {
		once := quantize(v, 4)
		twice := quantize(once, 4)
		if once != twice {
			t.Fatalf("quantize(%v) not idempotent: %v != %v", v, once, twice)
		}
	}
}

func TestRoundNegativePrecisionDisablesRounding(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Name: "v", Type: ColumnTypeNumber, Cells: []Cell{{Float: 1.23456789}}},
		},
	}

	rounded := Round(table, -1)
	if got := rounded.Columns[0].Cells[0].Float; got != 1.23456789 {
		t.Fatalf("negative precision rounded anyway: %v", got)
	}
}
