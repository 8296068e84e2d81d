// Package latex renders tables as booktabs-style LaTeX: a tabular environment
// with top/middle/bottom rules wrapped in a table float carrying caption and
// label. The tabular body is assembled in Go; the float environment comes
// from an embedded template so callers can restyle it.
package latex

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/texgen/go-texgen/pkg/model"
	"github.com/texgen/go-texgen/pkg/render"
	rendertemplate "github.com/texgen/go-texgen/pkg/render/template"
	gotemplate "github.com/texgen/go-texgen/pkg/render/template/gotemplate"
)

const (
	// defaultPlacement positions the float at the top of the page, matching
	// the generated \begin{table}[t].
	defaultPlacement = "t"

	// Theme tokens the renderer understands.
	tokenPlacement    = "table.placement"
	tokenArrayStretch = "table.arraystretch"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits booktabs LaTeX tables.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// Ensure the render contract is satisfied.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the latex renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("latex renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "latex"
}

func (r *Renderer) ContentType() string {
	return "application/x-tex; charset=utf-8"
}

func (r *Renderer) Extension() string {
	return ".tex"
}

// Render produces the complete table float. The caption and label are emitted
// verbatim; cell and header text is escaped.
func (r *Renderer) Render(ctx context.Context, table model.Table, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if table.NumCols() == 0 {
		return nil, fmt.Errorf("latex renderer: table %q has no columns", table.Name)
	}

	data := map[string]any{
		"placement": placement(options),
		"stretch":   arrayStretch(options),
		"tabular":   Tabular(table),
		"caption":   fmt.Sprintf(`\caption{%s}`, options.Caption),
		"label":     fmt.Sprintf(`\label{%s}`, options.Label),
	}

	out, err := r.templates.RenderTemplate("templates/table", data)
	if err != nil {
		return nil, fmt.Errorf("latex renderer: render float: %w", err)
	}
	return []byte(out), nil
}

// Tabular renders the inner tabular environment: computed column spec, top
// rule, escaped header row, middle rule, one data row per input row in input
// order, bottom rule.
func Tabular(table model.Table) string {
	var b strings.Builder

	b.WriteString(`\begin{tabular}{`)
	b.WriteString(columnSpec(table.NumCols()))
	b.WriteString("}\n")
	b.WriteString("\\toprule\n")

	headers := make([]string, table.NumCols())
	for i, name := range table.Headers() {
		headers[i] = Escape(name)
	}
	b.WriteString(strings.Join(headers, " & "))
	b.WriteString(" \\\\\n")
	b.WriteString("\\midrule\n")

	for i := 0; i < table.NumRows(); i++ {
		cells := make([]string, table.NumCols())
		for j, col := range table.Columns {
			value := col.Format(i)
			if col.Type == model.ColumnTypeText {
				value = Escape(value)
			}
			cells[j] = value
		}
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
	}

	b.WriteString("\\bottomrule\n")
	b.WriteString(`\end{tabular}`)
	return b.String()
}

// columnSpec implements the fixed alignment policy: the first column is
// left-aligned, every other column right-aligned.
func columnSpec(cols int) string {
	if cols == 0 {
		return ""
	}
	return "l" + strings.Repeat("r", cols-1)
}

func placement(options render.RenderOptions) string {
	if options.Theme != nil {
		if p := strings.TrimSpace(options.Theme.Tokens[tokenPlacement]); p != "" {
			return p
		}
	}
	return defaultPlacement
}

func arrayStretch(options render.RenderOptions) string {
	if options.Theme == nil {
		return ""
	}
	stretch := strings.TrimSpace(options.Theme.Tokens[tokenArrayStretch])
	if stretch == "" {
		return ""
	}
	return fmt.Sprintf(`\renewcommand{\arraystretch}{%s}`, stretch)
}
