package webpage

// Resource caps applied during extraction. They are not
// caller-configurable; their purpose is to bound the cost of parsing
// hostile documents.
const (
	// MaxLinks bounds the number of links extracted per document.
	MaxLinks = 10_000

	// MaxSchemaOrgItems bounds the number of Schema.org items
	// extracted per document.
	MaxSchemaOrgItems = 100

	// MaxTextContentLen bounds the byte length of extracted body
	// text.
	MaxTextContentLen = 1_000_000
)

// HTMLInfo is the metadata extracted from a single HTML document.
// Scalar string fields are empty when the source element is missing or
// trims to empty, and are omitted from the serialized form.
type HTMLInfo struct {
	// Title is the concatenated descendant text of the first
	// <title> element.
	Title string `json:"title,omitempty"`

	// Description is the content of the meta description tag.
	Description string `json:"description,omitempty"`

	// CanonicalURL is the href of the first <link rel="canonical">,
	// not resolved against the base URL.
	CanonicalURL string `json:"canonical_url,omitempty"`

	// FeedURL is the href of the first <link rel="alternate"> whose
	// type is a recognized feed media type.
	FeedURL string `json:"feed_url,omitempty"`

	// Language is the lang attribute of the first <html> element.
	Language string `json:"language,omitempty"`

	// TextContent is the visible body text, whitespace-joined and
	// capped at MaxTextContentLen bytes. Text inside script, style,
	// and noscript elements is excluded.
	TextContent string `json:"text_content"`

	// Meta holds all meta tags as key-value pairs; for duplicate
	// keys the last occurrence wins.
	Meta map[string]string `json:"meta,omitempty"`

	// Opengraph holds the accumulated OpenGraph metadata.
	Opengraph Opengraph `json:"opengraph"`

	// SchemaOrg holds JSON-LD items in document order, capped at
	// MaxSchemaOrgItems.
	SchemaOrg []SchemaOrg `json:"schema_org,omitempty"`

	// Links holds the document's anchors in document order, capped
	// at MaxLinks.
	Links []Link `json:"links,omitempty"`
}

// Link is an anchor found in the document.
type Link struct {
	// URL is the anchor's href, resolved against the base URL when
	// one was provided and the join succeeded; otherwise the
	// original trimmed href.
	URL string `json:"url"`

	// Text is the trimmed concatenation of the anchor's descendant
	// text.
	Text string `json:"text"`

	// Rel is the anchor's rel attribute, verbatim, if present.
	Rel string `json:"rel,omitempty"`
}
