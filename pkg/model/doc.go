// Package model defines the typed table consumed by renderers. A Table is an
// ordered sequence of named columns with a uniform row count; each column
// carries a tag (text, integer, number) decided once at build time so that
// transforms such as Round and the renderers dispatch on the tag instead of
// re-inspecting cell contents. Builders reside in internal/model but return
// the types defined here.
package model
