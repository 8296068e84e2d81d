package texgen

import (
	internalLoader "github.com/texgen/go-texgen/internal/dataset/loader"
	internalParser "github.com/texgen/go-texgen/internal/dataset/parser"
	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

// NewLoader constructs a dataset loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgdataset.LoaderOption) pkgdataset.Loader {
	cfg := pkgdataset.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a CSV parser backed by the internal implementation.
func NewParser(options ...pkgdataset.ParserOption) pkgdataset.Parser {
	cfg := pkgdataset.NewParserOptions(options...)
	return internalParser.New(cfg)
}
