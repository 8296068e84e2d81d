package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Source identifies where a dataset originated. Loaders operate on files,
// fs.FS entries, or URLs without leaking implementation details into the
// rest of the pipeline.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document wraps a raw dataset payload together with its origin. Keeping the
// raw bytes opaque here lets parsers own the format semantics.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("dataset: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("dataset: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the dataset payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Basename returns the file name component of the origin, e.g. "sales.csv"
// for "/data/sales.csv". Empty when the document has no source.
func (d Document) Basename() string {
	loc := d.Location()
	if loc == "" {
		return ""
	}
	return filepath.Base(loc)
}

// Stem returns the base name without its extension, e.g. "sales" for
// "/data/sales.csv". Used to derive default table labels.
func (d Document) Stem() string {
	base := d.Basename()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Records is the structural parse result of a dataset: one header row and
// zero or more data rows, each with exactly len(Header) fields.
type Records struct {
	Header []string
	Rows   [][]string
}

// NewRecords validates row widths against the header and returns the wrapper.
func NewRecords(header []string, rows [][]string) (Records, error) {
	if len(header) == 0 {
		return Records{}, errors.New("dataset: header row is empty")
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return Records{}, fmt.Errorf("dataset: row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
	}
	return Records{Header: header, Rows: rows}, nil
}
