// Package loader implements dataset.Loader over file, fs.FS, and HTTP
// strategies. Construction helpers live in the top-level texgen package.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	pkgdataset "github.com/texgen/go-texgen/pkg/dataset"
)

// Loader delegates to the strategy matching the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgdataset.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgdataset.LoaderOptions) pkgdataset.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a dataset from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgdataset.Source) (pkgdataset.Document, error) {
	if src == nil {
		return pkgdataset.Document{}, errors.New("dataset loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgdataset.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgdataset.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgdataset.SourceKindURL:
		if !l.allowHTTP {
			return pkgdataset.Document{}, errors.New("dataset loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		return pkgdataset.Document{}, fmt.Errorf("dataset loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkgdataset.Document{}, fmt.Errorf("dataset loader: load %s: %w", src.Location(), err)
	}

	return pkgdataset.NewDocument(src, data)
}
