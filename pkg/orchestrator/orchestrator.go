package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/texgen/go-texgen/internal/dataset/loader"
	internalParser "github.com/texgen/go-texgen/internal/dataset/parser"
	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
	"github.com/texgen/go-texgen/pkg/model"
	"github.com/texgen/go-texgen/pkg/render"
	"github.com/texgen/go-texgen/pkg/renderers/latex"
	"github.com/texgen/go-texgen/pkg/renderers/markdown"
)

const defaultRendererName = "latex"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom dataset loader.
func WithLoader(loader pkgdataset.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom dataset parser.
func WithParser(parser pkgdataset.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBuilder injects a custom table builder.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// style tokens (float placement, array stretch) can be resolved ahead of
// rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// Orchestrator coordinates the full pipeline from dataset document to
// rendered table. It applies sensible defaults (latex renderer, built-in
// loader and parser) while remaining open to dependency injection.
type Orchestrator struct {
	loader          pkgdataset.Loader
	parser          pkgdataset.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a table from a dataset.
type Request struct {
	// Source identifies where the dataset lives. Optional when Document is
	// supplied.
	Source pkgdataset.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *pkgdataset.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Precision controls numeric rounding applied before rendering. Nil means
	// the default (4 decimal digits); a negative value disables rounding.
	Precision *int

	// ThemeName/ThemeVariant select a style through the configured theme
	// selector. Ignored when no selector is configured.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries caption, label, and resolved theme tokens. Empty
	// caption and label are filled in from the source file name.
	RenderOptions render.RenderOptions
}

// Generate executes the load, parse, build, round, render sequence and
// returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	records, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse dataset: %w", err)
	}

	table, err := o.builder.Build(doc.Basename(), records)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build table: %w", err)
	}

	table = model.Round(table, precisionFor(req))

	options := req.RenderOptions
	applyDefaultCaptionAndLabel(&options, doc)
	if err := o.applyTheme(req, &options); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, table, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

// RendererFor resolves a renderer the same way Generate does, so callers such
// as the batch converter can learn the output extension up front.
func (o *Orchestrator) RendererFor(name string) (render.Renderer, error) {
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.rendererFor(name)
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgdataset.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgdataset.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgdataset.Document{}, fmt.Errorf("orchestrator: load dataset: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTheme(req Request, options *render.RenderOptions) error {
	if o.themeSelector == nil || req.ThemeName == "" || options.Theme != nil {
		return nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return fmt.Errorf("orchestrator: resolve theme %q: %w", req.ThemeName, err)
	}
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil {
		cfg.Tokens = selection.Manifest.Tokens
	}
	options.Theme = cfg
	return nil
}

func precisionFor(req Request) int {
	if req.Precision == nil {
		return model.DefaultPrecision
	}
	return *req.Precision
}

// applyDefaultCaptionAndLabel fills empty caption/label fields from the
// document origin: "Auto-generated table from sales.csv" and "tab:sales".
func applyDefaultCaptionAndLabel(options *render.RenderOptions, doc pkgdataset.Document) {
	if options.Caption == "" {
		options.Caption = fmt.Sprintf("Auto-generated table from %s", doc.Basename())
	}
	if options.Label == "" {
		options.Label = "tab:" + doc.Stem()
	}
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgdataset.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgdataset.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := latex.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
			o.registry.MustRegister(markdown.New())
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
