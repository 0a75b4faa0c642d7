// Package client composes a fetcher and an extractor into the
// library's top-level operations: parsing HTML from strings or files
// and fetching pages over HTTP, singly or in batches.
package client

import (
	"context"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/webpage"
	"github.com/fwojciec/webpage/goquery"
	"github.com/fwojciec/webpage/http"
)

// DefaultConcurrency is the default number of concurrent fetches in
// FetchAll.
const DefaultConcurrency = 10

// Client fetches and parses web pages.
type Client struct {
	fetcher     webpage.Fetcher
	extractor   webpage.Extractor
	options     webpage.HTTPOptions
	concurrency int
	limiter     *domainLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithFetcher sets the fetcher. Defaults to http.NewFetcher().
func WithFetcher(f webpage.Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithExtractor sets the extractor. Defaults to goquery.NewExtractor().
func WithExtractor(e webpage.Extractor) Option {
	return func(c *Client) {
		c.extractor = e
	}
}

// WithHTTPOptions sets the options used by Fetch and FetchAll.
// Defaults to webpage.DefaultHTTPOptions().
func WithHTTPOptions(opts webpage.HTTPOptions) Option {
	return func(c *Client) {
		c.options = opts
	}
}

// WithConcurrency sets the concurrent fetch limit for FetchAll.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithRateLimit enables per-domain rate limiting in FetchAll at the
// given requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = newDomainLimiter(rps)
	}
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		options:     webpage.DefaultHTTPOptions(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = http.NewFetcher()
	}
	if c.extractor == nil {
		c.extractor = goquery.NewExtractor()
	}
	return c
}

// Fetch retrieves and parses a page using the client's options.
func (c *Client) Fetch(ctx context.Context, url string) (*webpage.WebpageInfo, error) {
	return c.FetchWithOptions(ctx, url, c.options)
}

// FetchWithOptions retrieves and parses a page. Responses whose
// content type contains neither "html" nor "xml" are rejected with
// ECONTENTTYPE. The final URL after redirects becomes the base for
// link resolution.
func (c *Client) FetchWithOptions(ctx context.Context, url string, opts webpage.HTTPOptions) (*webpage.WebpageInfo, error) {
	httpInfo, err := c.fetcher.Fetch(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	if ct := httpInfo.ContentType; ct != "" && !strings.Contains(ct, "html") && !strings.Contains(ct, "xml") {
		return nil, webpage.Errorf(webpage.ECONTENTTYPE, "invalid content type: expected HTML, got %s", ct)
	}

	htmlInfo, err := c.extractor.Extract(httpInfo.Body, httpInfo.URL)
	if err != nil {
		return nil, err
	}

	return &webpage.WebpageInfo{HTTP: *httpInfo, HTML: *htmlInfo}, nil
}

// FetchAll fetches urls concurrently, bounded by the client's
// concurrency limit and rate limiter. The result slice is aligned
// with urls; entries that failed are nil and their errors are
// reported through progress. FetchAll returns an error only when the
// context is canceled.
func (c *Client) FetchAll(ctx context.Context, urls []string, progress webpage.FetchProgressFunc) ([]*webpage.WebpageInfo, error) {
	results := make([]*webpage.WebpageInfo, len(urls))
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	// Progress callbacks run on the collector goroutine so callers
	// never need their own locking.
	type outcome struct {
		index int
		info  *webpage.WebpageInfo
		err   error
	}
	outcomes := make(chan outcome)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for o := range outcomes {
			results[o.index] = o.info
			completed++
			if progress != nil {
				progress(webpage.FetchProgress{
					URL:       urls[o.index],
					Completed: completed,
					Total:     len(urls),
					Error:     o.err,
				})
			}
		}
	}()

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			if c.limiter != nil {
				if err := c.limiter.Wait(gctx, domainOf(url)); err != nil {
					return err
				}
			}
			info, err := c.FetchWithOptions(gctx, url, c.options)
			if gctx.Err() != nil {
				return gctx.Err()
			}
			// The collector drains until after Wait returns, so the
			// send cannot block indefinitely.
			outcomes <- outcome{index: i, info: info, err: err}
			return nil
		})
	}

	err := g.Wait()
	close(outcomes)
	<-done
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FromString parses HTML and extracts its metadata. baseURL, when
// non-empty, is used to resolve relative links.
func FromString(html string, baseURL string) (*webpage.HTMLInfo, error) {
	return goquery.NewExtractor().Extract(html, baseURL)
}

// FromFile reads an HTML file and extracts its metadata.
func FromFile(path string, baseURL string) (*webpage.HTMLInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, webpage.Errorf(webpage.EIO, "failed to read file: %v", err)
	}
	return FromString(string(content), baseURL)
}

// Fetch retrieves and parses a page with default options.
func Fetch(ctx context.Context, url string) (*webpage.WebpageInfo, error) {
	return New().Fetch(ctx, url)
}

// FetchWithOptions retrieves and parses a page with the given options.
func FetchWithOptions(ctx context.Context, url string, opts webpage.HTTPOptions) (*webpage.WebpageInfo, error) {
	return New().FetchWithOptions(ctx, url, opts)
}
