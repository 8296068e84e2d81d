// Package texgen converts tabular datasets (CSV files) into LaTeX booktabs
// tables, with escaping, numeric rounding, and per-file caption/label
// overrides. The pipeline packages under pkg/ are usable on their own; this
// package re-exports the common entry points.
package texgen

import (
	"context"

	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
	"github.com/texgen/go-texgen/pkg/orchestrator"
	"github.com/texgen/go-texgen/pkg/render"
)

// RenderOptions describes per-request caption/label/theme data renderers can
// use; aliased here for convenience.
type RenderOptions = render.RenderOptions

// Request aliases the orchestrator request type.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateTable loads the dataset source, builds the typed table, and renders
// it using the named renderer (empty means the default latex renderer). It is
// the simplest entry point for callers that just want the output bytes.
func GenerateTable(ctx context.Context, source pkgdataset.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateTableFromDocument renders a table from a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateTableFromDocument(ctx context.Context, doc pkgdataset.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}
