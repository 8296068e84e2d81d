// Package template declares the template rendering seam renderers depend on.
// The default implementation lives in the gotemplate subpackage; callers can
// substitute any engine satisfying TemplateRenderer.
package template
