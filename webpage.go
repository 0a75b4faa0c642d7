// Package webpage extracts structured metadata from web pages: title,
// description, language, canonical and feed URLs, OpenGraph media,
// Schema.org JSON-LD items, and outbound links. Pages can be parsed
// from strings or files, or fetched over HTTP through an SSRF-guarded
// client.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (goquery/,
// http/); composition lives in client/.
package webpage

import "context"

// Version is the library version reported in the default User-Agent.
const Version = "1.0.0"

// WebpageInfo is the complete result of fetching and parsing a page.
type WebpageInfo struct {
	// HTTP holds transfer-level information about the response.
	HTTP HTTPInfo `json:"http"`

	// HTML holds the metadata extracted from the response body.
	HTML HTMLInfo `json:"html"`
}

// Extractor parses HTML and extracts page metadata.
type Extractor interface {
	// Extract parses html and returns the extracted metadata.
	// baseURL, when non-empty, is used to resolve relative links;
	// a baseURL that fails to parse yields EURLPARSE.
	Extract(html string, baseURL string) (*HTMLInfo, error)
}

// Fetcher retrieves a URL over HTTP subject to the given options.
// Implementations are expected to enforce SSRF protection when
// opts.BlockPrivateIPs is set.
type Fetcher interface {
	// Fetch performs a single GET request. The context controls
	// timeout and cancellation of DNS resolution, the request, and
	// body reads.
	Fetch(ctx context.Context, url string, opts HTTPOptions) (*HTTPInfo, error)
}

// FetchProgress reports progress during batch fetching.
type FetchProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// FetchProgressFunc is called as pages are processed.
type FetchProgressFunc func(FetchProgress)
