// Package markdown renders tables as GitHub-flavored Markdown pipe tables
// using the same alignment policy as the latex renderer: first column
// left-aligned, remaining columns right-aligned.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/texgen/go-texgen/pkg/model"
	"github.com/texgen/go-texgen/pkg/render"
)

// Renderer emits Markdown pipe tables.
type Renderer struct{}

// Ensure the render contract is satisfied.
var _ render.Renderer = (*Renderer)(nil)

// New creates a markdown Renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "markdown"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".md"
}

// Render produces the pipe table. When a caption is set it is emitted as an
// italicised line below the table; the label has no Markdown counterpart and
// is ignored.
func (r *Renderer) Render(ctx context.Context, table model.Table, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if table.NumCols() == 0 {
		return nil, fmt.Errorf("markdown renderer: table %q has no columns", table.Name)
	}

	var b strings.Builder

	writeRow(&b, escapeAll(table.Headers()))
	writeRow(&b, alignmentMarkers(table.NumCols()))

	for i := 0; i < table.NumRows(); i++ {
		cells := make([]string, table.NumCols())
		for j, col := range table.Columns {
			value := col.Format(i)
			if col.Type == model.ColumnTypeText {
				value = escapeCell(value)
			}
			cells[j] = value
		}
		writeRow(&b, cells)
	}

	if options.Caption != "" {
		b.WriteString("\n*")
		b.WriteString(options.Caption)
		b.WriteString("*\n")
	}

	return []byte(b.String()), nil
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// alignmentMarkers emits ":---" for the left-aligned first column and "---:"
// for every right-aligned column after it.
func alignmentMarkers(cols int) []string {
	markers := make([]string, cols)
	for i := range markers {
		if i == 0 {
			markers[i] = ":---"
			continue
		}
		markers[i] = "---:"
	}
	return markers
}

func escapeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = escapeCell(v)
	}
	return out
}

// escapeCell keeps pipe tables well-formed: literal pipes are escaped and
// embedded newlines become <br> so a cell cannot break the row structure.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}
