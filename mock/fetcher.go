package mock

import (
	"context"

	"github.com/fwojciec/webpage"
)

var _ webpage.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webpage.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, opts webpage.HTTPOptions) (*webpage.HTTPInfo, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, opts webpage.HTTPOptions) (*webpage.HTTPInfo, error) {
	return f.FetchFn(ctx, url, opts)
}
