package model

import internalmodel "github.com/texgen/go-texgen/internal/model"

// ColumnType re-exports the internal column type enumeration.
type ColumnType = internalmodel.ColumnType

const (
	ColumnTypeText    = internalmodel.ColumnTypeText
	ColumnTypeInteger = internalmodel.ColumnTypeInteger
	ColumnTypeNumber  = internalmodel.ColumnTypeNumber
)

type Cell = internalmodel.Cell
type Column = internalmodel.Column
type Table = internalmodel.Table

// DefaultPrecision is the decimal precision used when a caller does not
// choose one.
const DefaultPrecision = internalmodel.DefaultPrecision

// Round returns a copy of the table with number columns quantised to the
// given precision. See the internal implementation for the documented
// rounding rule (round-to-nearest-even via strconv).
func Round(t Table, precision int) Table {
	return internalmodel.Round(t, precision)
}
