package model

import (
	"errors"
	"strconv"

	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	// MissingValues lists the raw cell strings treated as missing markers.
	MissingValues []string
}

func defaultOptions() Options {
	return Options{
		MissingValues: []string{""},
	}
}

// Builder converts structural records into typed tables.
type Builder struct {
	opts    Options
	missing map[string]struct{}
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if len(options.MissingValues) > 0 {
		opts.MissingValues = options.MissingValues
	}

	missing := make(map[string]struct{}, len(opts.MissingValues))
	for _, marker := range opts.MissingValues {
		missing[marker] = struct{}{}
	}
	return &Builder{opts: opts, missing: missing}
}

// Build infers a type for every column and returns the resulting Table.
//
// A column where every present value parses as a base-10 integer is tagged
// integer; failing that, a column where every present value parses as a float
// is tagged number; everything else is text. Columns with no present values
// are text. Type inference happens exactly once here; downstream transforms
// and renderers only dispatch on the tag.
func (b *Builder) Build(name string, records pkgdataset.Records) (Table, error) {
	if len(records.Header) == 0 {
		return Table{}, errors.New("model: dataset has no columns")
	}

	table := Table{
		Name:    name,
		Columns: make([]Column, len(records.Header)),
	}

	for j, header := range records.Header {
		raw := make([]string, len(records.Rows))
		for i, row := range records.Rows {
			raw[i] = row[j]
		}
		table.Columns[j] = b.buildColumn(header, raw)
	}

	return table, nil
}

func (b *Builder) buildColumn(name string, raw []string) Column {
	colType := b.inferType(raw)

	cells := make([]Cell, len(raw))
	for i, value := range raw {
		if b.isMissing(value) {
			cells[i] = Cell{Missing: true}
			continue
		}
		switch colType {
		case ColumnTypeInteger:
			n, _ := strconv.ParseInt(value, 10, 64)
			cells[i] = Cell{Int: n}
		case ColumnTypeNumber:
			f, _ := strconv.ParseFloat(value, 64)
			cells[i] = Cell{Float: f}
		default:
			cells[i] = Cell{Text: value}
		}
	}

	return Column{Name: name, Type: colType, Cells: cells}
}

func (b *Builder) inferType(raw []string) ColumnType {
	present := 0
	allInt := true
	allFloat := true

	for _, value := range raw {
		if b.isMissing(value) {
			continue
		}
		present++
		if allInt {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				allFloat = false
			}
		}
	}

	switch {
	case present == 0:
		return ColumnTypeText
	case allInt:
		return ColumnTypeInteger
	case allFloat:
		return ColumnTypeNumber
	default:
		return ColumnTypeText
	}
}

func (b *Builder) isMissing(value string) bool {
	_, ok := b.missing[value]
	return ok
}
