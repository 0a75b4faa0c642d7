package webpage

import (
	"errors"
	"fmt"
)

// Application error codes. These are portable across the process
// boundary and map one-to-one onto the failure modes of the public
// API.
const (
	ECONTENTTYPE = "invalid_content_type" // fetched body is neither HTML nor XML
	EHTTP        = "http"                 // transport-level failure (connect, TLS, timeout, read)
	EINTERNAL    = "internal"             // internal error
	EINVALID     = "invalid"              // validation failed
	EINVALIDURL  = "invalid_url"          // URL unparseable, missing host, or unsupported scheme
	EIO          = "io"                   // filesystem read failure
	EPARSE       = "parse"                // HTML parser failure
	ESSRFBLOCKED = "ssrf_blocked"         // internal hostname or private resolved IP
	EURLPARSE    = "url_parse"            // URL parse failure surfaced from a nested call
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webpage error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty
// string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the
// empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
