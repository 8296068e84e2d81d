package model

import "strconv"

// ColumnType is the tagged variant assigned to a column once at build time.
// Renderers and transforms dispatch on it instead of re-inspecting cell text.
type ColumnType string

const (
	ColumnTypeText    ColumnType = "text"
	ColumnTypeInteger ColumnType = "integer"
	ColumnTypeNumber  ColumnType = "number"
)

// Cell holds a single value. Missing cells carry no value at all and render
// as the empty string. For text columns Text is set; integer columns use Int;
// number columns use Float.
type Cell struct {
	Missing bool
	Text    string
	Int     int64
	Float   float64
}

// Column is an ordered sequence of cells under a header name, all of the same
// tagged type.
type Column struct {
	Name  string
	Type  ColumnType
	Cells []Cell
}

// Format returns the canonical string form of the cell at row i.
//
// Numbers use the shortest representation that round-trips (trailing zeros
// stripped), integers keep their integral form, missing cells are empty.
func (c Column) Format(i int) string {
	cell := c.Cells[i]
	if cell.Missing {
		return ""
	}
	switch c.Type {
	case ColumnTypeInteger:
		return strconv.FormatInt(cell.Int, 10)
	case ColumnTypeNumber:
		return strconv.FormatFloat(cell.Float, 'f', -1, 64)
	default:
		return cell.Text
	}
}

// Table is the renderer-facing representation of one parsed dataset: ordered
// named columns with a uniform row count.
type Table struct {
	// Name is the origin identifier (usually the source file basename). Used
	// to derive default captions and labels.
	Name    string
	Columns []Column
}

// NumCols returns the column count.
func (t Table) NumCols() int {
	return len(t.Columns)
}

// NumRows returns the data row count (excluding the header).
func (t Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Headers returns the column names in order.
func (t Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Name
	}
	return headers
}

// Row returns the canonical string form of row i across all columns.
func (t Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = col.Format(i)
	}
	return row
}
