package webpage

import (
	"strconv"
	"strings"
)

// MaxMediaItems bounds each OpenGraph media collection (images,
// videos, audios).
const MaxMediaItems = 100

// Opengraph holds OpenGraph protocol metadata accumulated from a
// page's og:* meta tags.
//
// OpenGraph delivers flat property-value pairs in document order with
// no explicit grouping, so media sub-properties attach to the most
// recently added item of their collection. Extend preserves that
// convention exactly.
type Opengraph struct {
	// Type is the og:type of the object (e.g. "website",
	// "article", "video.movie").
	Type string `json:"og_type,omitempty"`

	// Title is the og:title of the object.
	Title string `json:"title,omitempty"`

	// Description is a brief description of the content.
	Description string `json:"description,omitempty"`

	// URL is the canonical URL of the object.
	URL string `json:"url,omitempty"`

	// SiteName is the name of the site.
	SiteName string `json:"site_name,omitempty"`

	// Locale is the locale of the content (e.g. "en_US").
	Locale string `json:"locale,omitempty"`

	// LocaleAlternates lists alternative locales in document order.
	LocaleAlternates []string `json:"locale_alternates,omitempty"`

	// Images, Videos, and Audios list media objects in the order
	// their group-starting property was observed.
	Images []OpengraphMedia `json:"images,omitempty"`
	Videos []OpengraphMedia `json:"videos,omitempty"`
	Audios []OpengraphMedia `json:"audios,omitempty"`

	// Properties holds og:* names not covered by the standard
	// fields.
	Properties map[string]string `json:"properties,omitempty"`
}

// OpengraphMedia is a single image, video, or audio object.
type OpengraphMedia struct {
	// URL of the media. Always set; a media item only exists once
	// its group-starting property was seen.
	URL string `json:"url"`

	// SecureURL is the HTTPS URL of the media, if declared.
	SecureURL string `json:"secure_url,omitempty"`

	// MIMEType is the declared type (e.g. "image/jpeg").
	MIMEType string `json:"mime_type,omitempty"`

	// Width and Height are in pixels. Nil when not declared or when
	// the declared value fails unsigned integer parsing.
	Width  *uint32 `json:"width,omitempty"`
	Height *uint32 `json:"height,omitempty"`

	// Alt is the alternative text description.
	Alt string `json:"alt,omitempty"`

	// Properties holds unrecognized sub-keys.
	Properties map[string]string `json:"properties,omitempty"`
}

// Extend folds one og:* property into the structure. property is the
// name with the "og:" prefix already stripped; content is already
// trimmed by the caller. Unrecognized properties land in Properties.
func (og *Opengraph) Extend(property, content string) {
	switch {
	case property == "type":
		og.Type = content
	case property == "title":
		og.Title = content
	case property == "description":
		og.Description = content
	case property == "url":
		og.URL = content
	case property == "site_name":
		og.SiteName = content
	case property == "locale":
		og.Locale = content
	case property == "locale:alternate":
		og.LocaleAlternates = append(og.LocaleAlternates, content)
	case strings.HasPrefix(property, "image"):
		extendMedia("image", property, content, &og.Images)
	case strings.HasPrefix(property, "video"):
		extendMedia("video", property, content, &og.Videos)
	case strings.HasPrefix(property, "audio"):
		extendMedia("audio", property, content, &og.Audios)
	default:
		if og.Properties == nil {
			og.Properties = make(map[string]string)
		}
		og.Properties[property] = content
	}
}

// IsEmpty reports whether no meaningful OpenGraph content was found.
func (og *Opengraph) IsEmpty() bool {
	return og.Type == "" &&
		og.Title == "" &&
		og.Description == "" &&
		og.URL == "" &&
		len(og.Images) == 0
}

// extendMedia applies a media property to the given collection. Both
// "image" and "image:url" (and likewise for other media types) start a
// new item; every other sub-property modifies the last item in the
// collection.
func extendMedia(mediaType, property, content string, collection *[]OpengraphMedia) {
	if property == mediaType || property == mediaType+":url" {
		if len(*collection) < MaxMediaItems {
			*collection = append(*collection, OpengraphMedia{URL: content})
		}
		return
	}

	if len(*collection) == 0 {
		return
	}
	media := &(*collection)[len(*collection)-1]

	suffix := ""
	if rest, ok := strings.CutPrefix(property, mediaType+":"); ok {
		suffix = rest
	}

	switch suffix {
	case "secure_url":
		media.SecureURL = content
	case "type":
		media.MIMEType = content
	case "width":
		media.Width = parseDimension(content)
	case "height":
		media.Height = parseDimension(content)
	case "alt":
		media.Alt = content
	case "":
	default:
		if media.Properties == nil {
			media.Properties = make(map[string]string)
		}
		media.Properties[suffix] = content
	}
}

// parseDimension parses an unsigned 32-bit pixel dimension, returning
// nil on failure so the field stays absent.
func parseDimension(s string) *uint32 {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	v := uint32(n)
	return &v
}
