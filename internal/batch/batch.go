// Package batch drives the one-shot directory conversion: discover input
// files with a glob pattern, resolve per-file overrides from an optional
// manifest, run each file through the orchestrator, and write one output
// file per input.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/texgen/go-texgen/pkg/dataset"
	"github.com/texgen/go-texgen/pkg/manifest"
	"github.com/texgen/go-texgen/pkg/orchestrator"
	"github.com/texgen/go-texgen/pkg/render"
)

// DefaultManifestName is probed inside the input directory when no explicit
// manifest path is configured.
const DefaultManifestName = "tables.yaml"

// Config collects the knobs of one conversion run. Zero values fall back to
// the documented defaults.
type Config struct {
	InputDir  string // default "./tables"
	OutputDir string // default "./latex_tables"
	Pattern   string // default "*.csv"

	// Caption and Label apply to every file lacking a more specific manifest
	// entry. Empty means the orchestrator derives them from the file name.
	Caption string
	Label   string

	// Renderer names the default renderer; manifest entries may override it
	// per file.
	Renderer string

	// Precision is the numeric rounding applied before rendering. Nil means
	// the default; negative disables rounding.
	Precision *int

	// ManifestPath points at an explicit manifest file. Empty probes
	// <InputDir>/tables.yaml.
	ManifestPath string

	ThemeName    string
	ThemeVariant string

	// KeepGoing isolates per-file failures: parse or write errors are logged
	// and the run continues with the next file.
	KeepGoing bool

	// Interactive asks for confirmation before overwriting an existing
	// output file.
	Interactive bool

	// Quiet suppresses the per-file success lines. Warnings still print.
	Quiet bool

	// Confirm is the prompt used in interactive mode. Nil selects the
	// terminal prompt; tests inject their own.
	Confirm func(path string) (bool, error)

	// Log receives diagnostics. Nil selects log.Default().
	Log *log.Logger
}

// Summary reports what a run did.
type Summary struct {
	Matched int
	Written int
	Skipped int
}

// Converter binds a Config to an orchestrator.
type Converter struct {
	gen *orchestrator.Orchestrator
	cfg Config
}

// New builds a Converter, applying configuration defaults.
func New(gen *orchestrator.Orchestrator, cfg Config) (*Converter, error) {
	if gen == nil {
		return nil, errors.New("batch: orchestrator is required")
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "./tables"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./latex_tables"
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "*.csv"
	}
	if cfg.Log == nil {
		cfg.Log = log.Default()
	}
	if cfg.Confirm == nil {
		cfg.Confirm = confirmOverwrite
	}
	return &Converter{gen: gen, cfg: cfg}, nil
}

// Run converts every matching file in the input directory. Files are
// processed in lexicographic order so output and diagnostics stay
// deterministic. Zero matches is a warning, not an error.
func (c *Converter) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	matches, err := filepath.Glob(filepath.Join(c.cfg.InputDir, c.cfg.Pattern))
	if err != nil {
		return summary, fmt.Errorf("batch: bad pattern %q: %w", c.cfg.Pattern, err)
	}
	sort.Strings(matches)
	summary.Matched = len(matches)

	if len(matches) == 0 {
		c.cfg.Log.Printf("[WARN] no input files found under %s (pattern=%q)", c.cfg.InputDir, c.cfg.Pattern)
		return summary, nil
	}

	store, err := c.loadManifest()
	if err != nil {
		return summary, err
	}

	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("batch: create output dir: %w", err)
	}

	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		wrote, err := c.convertFile(ctx, path, store)
		if err != nil {
			if !c.cfg.KeepGoing {
				return summary, err
			}
			summary.Skipped++
			c.cfg.Log.Printf("[SKIP] %s: %v", path, err)
			continue
		}
		if wrote {
			summary.Written++
		} else {
			summary.Skipped++
		}
	}

	return summary, nil
}

func (c *Converter) convertFile(ctx context.Context, path string, store *manifest.Store) (bool, error) {
	base := filepath.Base(path)
	entry := store.Resolve(base)

	rendererName := entry.Renderer
	if rendererName == "" {
		rendererName = c.cfg.Renderer
	}
	renderer, err := c.gen.RendererFor(rendererName)
	if err != nil {
		return false, fmt.Errorf("batch: %s: %w", base, err)
	}

	outPath := filepath.Join(c.cfg.OutputDir, stem(base)+renderer.Extension())

	if c.cfg.Interactive && fileExists(outPath) {
		ok, err := c.cfg.Confirm(outPath)
		if err != nil {
			return false, fmt.Errorf("batch: confirm overwrite: %w", err)
		}
		if !ok {
			c.cfg.Log.Printf("[SKIP] %s: declined overwrite of %s", base, outPath)
			return false, nil
		}
	}

	req := orchestrator.Request{
		Source:       dataset.SourceFromFile(path),
		Renderer:     rendererName,
		Precision:    c.precisionFor(entry),
		ThemeName:    c.cfg.ThemeName,
		ThemeVariant: c.cfg.ThemeVariant,
		RenderOptions: render.RenderOptions{
			Caption: firstNonEmpty(entry.Caption, c.cfg.Caption),
			Label:   firstNonEmpty(entry.Label, c.cfg.Label),
		},
	}

	output, err := c.gen.Generate(ctx, req)
	if err != nil {
		return false, fmt.Errorf("batch: %s: %w", base, err)
	}

	if err := writeFile(outPath, output); err != nil {
		return false, fmt.Errorf("batch: write %s: %w", outPath, err)
	}

	if !c.cfg.Quiet {
		c.cfg.Log.Printf("[OK] %s", outPath)
	}
	return true, nil
}

func (c *Converter) loadManifest() (*manifest.Store, error) {
	path := c.cfg.ManifestPath
	if path == "" {
		probe := filepath.Join(c.cfg.InputDir, DefaultManifestName)
		if !fileExists(probe) {
			return nil, nil
		}
		path = probe
	}
	store, err := manifest.Load(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	return store, nil
}

func (c *Converter) precisionFor(entry manifest.Entry) *int {
	if entry.Precision != nil {
		return entry.Precision
	}
	return c.cfg.Precision
}

// writeFile writes atomically where the filesystem allows it, falling back to
// a plain write when the rename trick is unavailable.
func writeFile(path string, contents []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(contents)); err != nil {
		if fallbackErr := os.WriteFile(path, contents, 0o644); fallbackErr != nil {
			return fmt.Errorf("%w (non-atomic retry: %v)", err, fallbackErr)
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func stem(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
