package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers can use to customise
// their output without mutating the table pipeline.
type RenderOptions struct {
	// Caption is the human-readable table caption. The orchestrator fills in
	// an auto-generated default referencing the source file when empty.
	// Emitted verbatim; callers own any escaping inside it.
	Caption string

	// Label is the cross-reference label (e.g. "tab:sales"). The orchestrator
	// derives "tab:<basename>" from the source when empty.
	Label string

	// Theme carries resolved style tokens (float placement, array stretch).
	// Nil means renderer defaults apply.
	Theme *theme.RendererConfig
}
