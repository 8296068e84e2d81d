// Package parser implements dataset.Parser for RFC 4180 CSV payloads.
package parser

import (
	"bytes"
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"

	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

// Parser reads CSV documents into dataset.Records. The first record is the
// header row; every data row must carry the same field count, enforced by the
// underlying reader.
type Parser struct {
	options pkgdataset.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgdataset.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgdataset.ParserOptions) pkgdataset.Parser {
	return &Parser{options: options}
}

// Parse converts a Document into Records.
func (p *Parser) Parse(ctx context.Context, doc pkgdataset.Document) (pkgdataset.Records, error) {
	if err := ctx.Err(); err != nil {
		return pkgdataset.Records{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgdataset.Records{}, errors.New("csv parser: document payload is empty")
	}

	reader := stdcsv.NewReader(bytes.NewReader(stripBOM(raw)))
	if p.options.Comma != 0 {
		reader.Comma = p.options.Comma
	}
	if p.options.Comment != 0 {
		reader.Comment = p.options.Comment
	}
	reader.TrimLeadingSpace = p.options.TrimLeadingSpace
	reader.LazyQuotes = p.options.LazyQuotes
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return pkgdataset.Records{}, fmt.Errorf("csv parser: %s: missing header row", doc.Location())
	}
	if err != nil {
		return pkgdataset.Records{}, fmt.Errorf("csv parser: %s: read header: %w", doc.Location(), err)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return pkgdataset.Records{}, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return pkgdataset.Records{}, fmt.Errorf("csv parser: %s: %w", doc.Location(), err)
		}
		rows = append(rows, record)
	}

	records, err := pkgdataset.NewRecords(header, rows)
	if err != nil {
		return pkgdataset.Records{}, fmt.Errorf("csv parser: %s: %w", doc.Location(), err)
	}
	return records, nil
}

// stripBOM drops a leading UTF-8 byte order mark so the first header cell is
// not polluted by it.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}
