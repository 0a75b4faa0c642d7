// Package http provides the net/http-based implementation of
// webpage.Fetcher. It performs a single GET guarded against SSRF:
// scheme validation, an internal-hostname denylist, and classification
// of every DNS-resolved address, followed by a streaming body read
// with a hard byte cap.
//
// The gate covers the initial URL only; redirect targets are followed
// by the transport without re-validation. The redirect limit bounds
// abuse depth, but a hostile redirect chain to a private IP remains
// possible when following redirects.
package http

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/fwojciec/webpage"
)

// initialBufSize caps the pre-allocation for the body buffer so a
// lying Content-Length cannot force a huge allocation up front.
const initialBufSize = 1024 * 1024

// Ensure Fetcher implements webpage.Fetcher at compile time.
var _ webpage.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves URLs over HTTP. A Fetcher is safe for concurrent
// use; per-request behavior is controlled by webpage.HTTPOptions.
type Fetcher struct {
	resolver *net.Resolver
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithResolver sets the DNS resolver used by the SSRF gate. Defaults
// to net.DefaultResolver.
func WithResolver(r *net.Resolver) Option {
	return func(f *Fetcher) {
		f.resolver = r
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		resolver: net.DefaultResolver,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a single GET request subject to opts. The pre-request
// SSRF gate runs unless opts.BlockPrivateIPs is false. The body is
// read up to opts.MaxBodySize bytes and decoded as lossy UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, opts webpage.HTTPOptions) (*webpage.HTTPInfo, error) {
	if opts.BlockPrivateIPs {
		if err := f.validateURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	var redirects uint32
	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: opts.AllowInsecure},
			Proxy:           http.ProxyFromEnvironment,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if !opts.FollowRedirects {
				return http.ErrUseLastResponse
			}
			if len(via) > opts.MaxRedirects {
				return webpage.Errorf(webpage.EHTTP, "stopped after %d redirects", opts.MaxRedirects)
			}
			redirects = uint32(len(via))
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, webpage.Errorf(webpage.EINVALIDURL, "invalid URL: %v", err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
	for _, h := range opts.Headers {
		if !validHeader(h) {
			continue
		}
		req.Header.Add(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, webpage.Errorf(webpage.EHTTP, "request failed: %v", err)
	}
	defer resp.Body.Close()

	info := &webpage.HTTPInfo{
		URL:           resp.Request.URL.String(),
		StatusCode:    uint16(resp.StatusCode),
		Headers:       collectHeaders(resp.Header),
		ContentType:   mediaType(resp.Header.Get("Content-Type")),
		RedirectCount: redirects,
	}

	body, err := readBody(resp, opts.MaxBodySize)
	if err != nil {
		return nil, err
	}
	info.Body = decodeBody(body, info.ContentType, opts.DetectCharset)

	return info, nil
}

// validateURL is the SSRF pre-request gate: parse, scheme check,
// internal-hostname check, then classification of every resolved
// address. DNS failures pass the gate and are left for the transport
// to report.
func (f *Fetcher) validateURL(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return webpage.Errorf(webpage.EINVALIDURL, "invalid URL: %v", err)
	}

	switch u.Scheme {
	case "http", "https":
	default:
		return webpage.Errorf(webpage.EINVALIDURL, "unsupported scheme %q, only http/https allowed", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return webpage.Errorf(webpage.EINVALIDURL, "missing host")
	}

	if webpage.IsInternalHost(host) {
		return webpage.Errorf(webpage.ESSRFBLOCKED, "blocked request to internal host: %s", host)
	}

	addrs, err := f.resolver.LookupNetIP(ctx, "ip", host)
	if err != nil {
		if ctx.Err() != nil {
			return webpage.Errorf(webpage.EHTTP, "DNS resolution canceled: %v", ctx.Err())
		}
		return nil
	}
	for _, addr := range addrs {
		if webpage.IsPrivateIP(addr) {
			return webpage.Errorf(webpage.ESSRFBLOCKED, "blocked request to private IP: %s (resolved from %s)", addr, host)
		}
	}

	return nil
}

// validHeader reports whether a caller-supplied header pair is safe to
// send. Malformed pairs are dropped rather than surfaced as errors.
func validHeader(h webpage.Header) bool {
	if h.Name == "" || strings.ContainsAny(h.Name, " \t\r\n:") {
		return false
	}
	return !strings.ContainsAny(h.Value, "\r\n")
}

// collectHeaders converts the response header map to ordered pairs.
// net/http canonicalizes names and does not retain server order, so
// names are emitted in sorted order; value order within a name is
// preserved. Non-UTF-8 values are dropped.
func collectHeaders(header http.Header) []webpage.Header {
	keys := make([]string, 0, len(header))
	for name := range header {
		keys = append(keys, name)
	}
	// Insertion sort; header counts are small.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}

	headers := make([]webpage.Header, 0, len(header))
	for _, name := range keys {
		for _, value := range header[name] {
			if !utf8.ValidString(value) {
				continue
			}
			headers = append(headers, webpage.Header{Name: name, Value: value})
		}
	}
	return headers
}

// mediaType strips any parameters from a Content-Type value and trims
// the remaining media type.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mt)
}

// readBody streams the response body up to maxBodySize bytes,
// stopping as soon as the cap is reached. Truncation is silent.
func readBody(resp *http.Response, maxBodySize int) ([]byte, error) {
	capacity := initialBufSize
	if maxBodySize < capacity {
		capacity = maxBodySize
	}
	if cl := int(resp.ContentLength); resp.ContentLength >= 0 && cl < capacity {
		capacity = cl
	}

	buf := make([]byte, 0, capacity)
	chunk := make([]byte, 32*1024)
	for {
		remaining := maxBodySize - len(buf)
		if remaining <= 0 {
			return buf, nil
		}
		n, err := resp.Body.Read(chunk)
		if n > 0 {
			take := n
			if take > remaining {
				take = remaining
			}
			buf = append(buf, chunk[:take]...)
			if take < n {
				return buf, nil
			}
		}
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, webpage.Errorf(webpage.EHTTP, "reading body: %v", err)
		}
	}
}

// decodeBody produces the body string. The core contract is lossy
// UTF-8: invalid sequences become the replacement character. With
// detect enabled, the charset is sniffed from the Content-Type and the
// content first, then the decoded bytes go through the same lossy
// pass.
func decodeBody(body []byte, contentType string, detect bool) string {
	if detect {
		if enc, _, _ := charset.DetermineEncoding(body, contentType); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
				body = decoded
			}
		}
	}
	return strings.ToValidUTF8(string(body), "�")
}
