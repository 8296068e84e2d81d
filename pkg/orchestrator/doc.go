// Package orchestrator coordinates the conversion pipeline: load a dataset
// document, parse it into records, build the typed table, round numeric
// columns, and render the result through a named renderer. Every stage is
// replaceable through functional options; the zero-configuration path wires
// the built-in CSV loader/parser and the latex and markdown renderers.
package orchestrator
