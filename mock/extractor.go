package mock

import "github.com/fwojciec/webpage"

var _ webpage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webpage.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (*webpage.HTMLInfo, error)
}

func (e *Extractor) Extract(html string, baseURL string) (*webpage.HTMLInfo, error) {
	return e.ExtractFn(html, baseURL)
}
