package model

import "strconv"

// DefaultPrecision is the decimal precision applied to number columns when
// the caller does not specify one.
const DefaultPrecision = 4

// Round returns a copy of the table with every number column quantised to the
// given number of decimal digits. Integer and text columns pass through
// untouched, as does the input table itself.
//
// Quantisation formats the value with strconv.FormatFloat('f', precision) and
// re-parses it, i.e. Go's round-to-nearest-even on the binary float64. The
// operation is idempotent at a fixed precision. A negative precision disables
// rounding.
func Round(t Table, precision int) Table {
	out := Table{Name: t.Name, Columns: make([]Column, len(t.Columns))}
	for j, col := range t.Columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)

		if col.Type == ColumnTypeNumber && precision >= 0 {
			for i := range cells {
				if cells[i].Missing {
					continue
				}
				cells[i].Float = quantize(cells[i].Float, precision)
			}
		}
		out.Columns[j] = Column{Name: col.Name, Type: col.Type, Cells: cells}
	}
	return out
}

func quantize(v float64, precision int) float64 {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return q
}
