package webpage

import "time"

// Defaults for HTTPOptions.
const (
	DefaultMaxRedirects = 10
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodySize  = 10 * 1024 * 1024 // 10 MiB
)

// HTTPInfo is the transfer-level result of fetching a URL.
type HTTPInfo struct {
	// URL is the final URL after following redirects.
	URL string `json:"url"`

	// StatusCode is the HTTP status code of the final response.
	StatusCode uint16 `json:"status_code"`

	// Headers lists the response headers. Go's transport exposes
	// headers as a canonicalized map, so names are canonical and
	// sorted; the order of values within a name is preserved.
	// Non-UTF-8 values are dropped.
	Headers []Header `json:"headers"`

	// ContentType is the media-type prefix of the Content-Type
	// header, trimmed, with parameters stripped. Empty when the
	// header is absent.
	ContentType string `json:"content_type,omitempty"`

	// RedirectCount is the number of redirects followed.
	RedirectCount uint32 `json:"redirect_count"`

	// Body is the response body decoded as lossy UTF-8, capped at
	// the configured maximum size.
	Body string `json:"body"`
}

// Header is a single response header name-value pair.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HTTPOptions configures a single fetch.
type HTTPOptions struct {
	// AllowInsecure accepts invalid TLS certificates. Enabling this
	// permits man-in-the-middle attacks; only use against known
	// self-signed services.
	AllowInsecure bool

	// FollowRedirects enables redirect following.
	FollowRedirects bool

	// MaxRedirects bounds the number of redirect hops.
	MaxRedirects int

	// Timeout is the total request deadline.
	Timeout time.Duration

	// MaxBodySize is the hard cap on downloaded bytes; larger
	// bodies are silently truncated.
	MaxBodySize int

	// BlockPrivateIPs enables the SSRF pre-request gate: scheme
	// check, internal-hostname check, and resolved-IP
	// classification.
	BlockPrivateIPs bool

	// DetectCharset sniffs the body's character encoding from the
	// Content-Type header and content before decoding. When off
	// (the default) the body is decoded as lossy UTF-8.
	DetectCharset bool

	// UserAgent is the User-Agent header value.
	UserAgent string

	// Headers lists additional request headers; malformed pairs are
	// silently dropped.
	Headers []Header
}

// DefaultHTTPOptions returns the default fetch configuration: TLS
// verification on, redirects followed up to 10 hops, 30 second
// timeout, 10 MiB body cap, SSRF protection on.
func DefaultHTTPOptions() HTTPOptions {
	return HTTPOptions{
		FollowRedirects: true,
		MaxRedirects:    DefaultMaxRedirects,
		Timeout:         DefaultTimeout,
		MaxBodySize:     DefaultMaxBodySize,
		BlockPrivateIPs: true,
		UserAgent:       "webpage/" + Version + " (https://github.com/fwojciec/webpage)",
	}
}
