// Package goquery provides a goquery-based implementation of
// webpage.Extractor. It walks the parsed document once per concern,
// resolving links against an optional base URL and enforcing the
// package-level resource caps.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/fwojciec/webpage"
)

// feedMIMETypes are the media types recognized on
// <link rel="alternate"> as feed declarations. Matching is exact and
// case-sensitive.
var feedMIMETypes = map[string]struct{}{
	"application/atom+xml": {},
	"application/rss+xml":  {},
	"application/json":     {},
	"application/xml":      {},
	"text/xml":             {},
}

// Compiled selectors, shared process-wide. Compilation happens once at
// package init; the values are immutable afterwards, so concurrent
// extractions read them without locks.
var (
	titleMatcher     = cascadia.MustCompile("title")
	htmlMatcher      = cascadia.MustCompile("html")
	metaMatcher      = cascadia.MustCompile("meta")
	canonicalMatcher = cascadia.MustCompile(`link[rel="canonical"]`)
	feedMatcher      = cascadia.MustCompile(`link[rel="alternate"]`)
	bodyMatcher      = cascadia.MustCompile("body")
	excludeMatcher   = cascadia.MustCompile("script, style, noscript")
	anchorMatcher    = cascadia.MustCompile("a[href]")
	schemaOrgMatcher = cascadia.MustCompile(`script[type="application/ld+json"]`)
)

// Ensure Extractor implements webpage.Extractor at compile time.
var _ webpage.Extractor = (*Extractor)(nil)

// Extractor extracts page metadata from HTML documents. The zero
// value is ready to use; Extract is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the extracted metadata. Individual
// malformed elements (bad JSON-LD, unparseable OpenGraph dimensions,
// failed URL joins) are skipped; only an unparseable base URL fails.
func (e *Extractor) Extract(src string, baseURL string) (*webpage.HTMLInfo, error) {
	var base *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, webpage.Errorf(webpage.EURLPARSE, "invalid base URL %q: %v", baseURL, err)
		}
		base = u
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, webpage.Errorf(webpage.EPARSE, "failed to parse HTML: %v", err)
	}

	info := &webpage.HTMLInfo{
		Title:        firstText(doc, titleMatcher),
		Language:     firstAttr(doc, htmlMatcher, "lang"),
		CanonicalURL: firstAttr(doc, canonicalMatcher, "href"),
		FeedURL:      extractFeed(doc),
		TextContent:  extractTextContent(doc),
		Links:        extractLinks(doc, base),
		SchemaOrg:    extractSchemaOrg(doc),
	}
	extractMetaTags(doc, info)

	return info, nil
}

// firstText returns the trimmed descendant text of the first element
// matching m, or "".
func firstText(doc *goquery.Document, m goquery.Matcher) string {
	sel := doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.Text())
}

// firstAttr returns the trimmed attribute value of the first element
// matching m, or "".
func firstAttr(doc *goquery.Document, m goquery.Matcher, attr string) string {
	sel := doc.FindMatcher(m).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.AttrOr(attr, ""))
}

// extractFeed returns the href of the first <link rel="alternate">
// whose type attribute is a recognized feed media type.
func extractFeed(doc *goquery.Document) string {
	feed := ""
	doc.FindMatcher(feedMatcher).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		linkType, ok := sel.Attr("type")
		if !ok {
			return true
		}
		if _, recognized := feedMIMETypes[linkType]; !recognized {
			return true
		}
		feed = strings.TrimSpace(sel.AttrOr("href", ""))
		return false
	})
	return feed
}

// extractMetaTags populates Meta, Description, and the OpenGraph
// accumulator from the document's <meta> elements. For duplicate keys
// the last occurrence wins. A <meta charset=...> without content is
// stored verbatim under the key "charset".
func extractMetaTags(doc *goquery.Document, info *webpage.HTMLInfo) {
	setMeta := func(key, value string) {
		if info.Meta == nil {
			info.Meta = make(map[string]string)
		}
		info.Meta[key] = value
	}

	doc.FindMatcher(metaMatcher).Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok {
			if charset, ok := sel.Attr("charset"); ok {
				setMeta("charset", charset)
			}
			return
		}
		content = strings.TrimSpace(content)

		key, ok := sel.Attr("property")
		if !ok {
			key, ok = sel.Attr("name")
		}
		if !ok {
			key, ok = sel.Attr("http-equiv")
		}
		if !ok {
			return
		}
		key = strings.TrimSpace(key)

		setMeta(key, content)

		if suffix, found := strings.CutPrefix(key, "og:"); found {
			info.Opengraph.Extend(suffix, content)
		}
		if key == "description" {
			info.Description = content
		}
	})
}

// extractTextContent collects the visible text of the first <body> in
// document order, joining fragments with single spaces and stopping at
// webpage.MaxTextContentLen bytes. Text descended from script, style,
// or noscript elements is excluded; the excluded element identities
// are collected once so the per-text-node check is an ancestor walk
// with O(1) set membership.
func extractTextContent(doc *goquery.Document) string {
	bodySel := doc.FindMatcher(bodyMatcher).First()
	if bodySel.Length() == 0 {
		return ""
	}
	body := bodySel.Nodes[0]

	excluded := make(map[*html.Node]struct{})
	for _, n := range doc.FindMatcher(excludeMatcher).Nodes {
		excluded[n] = struct{}{}
	}

	var text strings.Builder
	text.Grow(4096)

	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if text.Len() >= webpage.MaxTextContentLen {
			return false
		}
		if n.Type == html.TextNode {
			if hasExcludedAncestor(n, excluded) {
				return true
			}
			trimmed := strings.TrimSpace(n.Data)
			if trimmed == "" {
				return true
			}
			if text.Len() > 0 {
				text.WriteByte(' ')
			}
			remaining := webpage.MaxTextContentLen - text.Len()
			if len(trimmed) <= remaining {
				text.WriteString(trimmed)
				return true
			}
			text.WriteString(trimmed[:remaining])
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c) {
			break
		}
	}

	return text.String()
}

// hasExcludedAncestor reports whether any ancestor of n is in the
// excluded set.
func hasExcludedAncestor(n *html.Node, excluded map[*html.Node]struct{}) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if _, ok := excluded[p]; ok {
			return true
		}
	}
	return false
}

// extractLinks collects the document's anchors in document order,
// capped at webpage.MaxLinks. Empty and javascript: hrefs are
// dropped. When a base URL is given, relative hrefs are resolved
// against it; a failed join falls back to the original href.
func extractLinks(doc *goquery.Document, base *url.URL) []webpage.Link {
	var links []webpage.Link
	doc.FindMatcher(anchorMatcher).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "javascript:") {
			return true
		}

		linkURL := href
		if base != nil {
			if resolved, err := base.Parse(href); err == nil {
				linkURL = resolved.String()
			}
		}

		links = append(links, webpage.Link{
			URL:  linkURL,
			Text: strings.TrimSpace(sel.Text()),
			Rel:  sel.AttrOr("rel", ""),
		})
		return len(links) < webpage.MaxLinks
	})
	return links
}

// extractSchemaOrg flattens every JSON-LD script block in document
// order, capped at webpage.MaxSchemaOrgItems.
func extractSchemaOrg(doc *goquery.Document) []webpage.SchemaOrg {
	var items []webpage.SchemaOrg
	doc.FindMatcher(schemaOrgMatcher).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		items = append(items, webpage.ParseSchemaOrg(sel.Text())...)
		return len(items) < webpage.MaxSchemaOrgItems
	})
	if len(items) > webpage.MaxSchemaOrgItems {
		items = items[:webpage.MaxSchemaOrgItems]
	}
	return items
}
