package orchestrator

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// Built-in table styles resolvable through DefaultThemeSelector. Tokens use
// the keys the latex renderer understands.
var builtinThemes = map[string]map[string]*theme.Manifest{
	"booktabs": {
		"": {
			Name:    "booktabs",
			Version: "1.0.0",
			Tokens:  map[string]string{},
		},
		"compact": {
			Name:    "booktabs",
			Version: "1.0.0",
			Tokens: map[string]string{
				"table.arraystretch": "0.9",
			},
		},
		"spacious": {
			Name:    "booktabs",
			Version: "1.0.0",
			Tokens: map[string]string{
				"table.arraystretch": "1.3",
			},
		},
		"here": {
			Name:    "booktabs",
			Version: "1.0.0",
			Tokens: map[string]string{
				"table.placement": "h",
			},
		},
	},
}

type staticThemeSelector struct {
	manifests map[string]map[string]*theme.Manifest
}

func (s *staticThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	variants, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("orchestrator: unknown theme %q", name)
	}
	manifest, ok := variants[variant]
	if !ok {
		return nil, fmt.Errorf("orchestrator: theme %q has no variant %q", name, variant)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// DefaultThemeSelector resolves the built-in table styles ("booktabs" with
// the "compact", "spacious", and "here" variants).
func DefaultThemeSelector() theme.ThemeSelector {
	return &staticThemeSelector{manifests: builtinThemes}
}
