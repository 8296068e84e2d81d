package model

import (
	internalmodel "github.com/texgen/go-texgen/internal/model"
	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

// Builder converts parsed records into typed tables.
type Builder interface {
	Build(name string, records pkgdataset.Records) (Table, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	missingValues []string
}

// WithMissingValues overrides the raw cell strings treated as missing
// markers. The default treats only the empty string as missing.
func WithMissingValues(markers ...string) BuilderOption {
	return func(opts *builderOptions) {
		opts.missingValues = markers
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := internalmodel.Options{}
	if len(cfg.missingValues) > 0 {
		internalOpts.MissingValues = cfg.missingValues
	}

	return internalmodel.New(internalOpts)
}
