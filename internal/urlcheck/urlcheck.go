// Package urlcheck verifies that a string is an absolute URL with both a scheme and a host.
package urlcheck

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Failure reasons returned in Error.
var (
	ErrUnparsable    = errors.New("url does not parse")
	ErrMissingScheme = errors.New("url has no scheme")
	ErrMissingHost   = errors.New("url has no host")
)

// Error describes why a raw value is not an absolute URL.
type Error struct {
	Raw    string
	Reason error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.Raw, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Reason
}

// Result is the outcome of Absolute: either URL is set or Err is.
type Result struct {
	URL *url.URL
	Err *Error
}

// OK reports whether the value is an absolute URL.
func (r Result) OK() bool {
	return r.Err == nil
}

// Host returns the lowercased host (with port) of the parsed URL, or "" when nothing parsed.
func (r Result) Host() string {
	if r.URL == nil {
		return ""
	}
	return strings.ToLower(r.URL.Host)
}

// Absolute parses raw and requires a non-empty scheme and host.
// URL is populated whenever the value parses, even when Err is set.
func Absolute(raw string) Result {
	parsed, err := url.Parse(raw)
	if err != nil {
		return Result{Err: &Error{Raw: raw, Reason: fmt.Errorf("%w: %w", ErrUnparsable, err)}}
	}

	if parsed.Scheme == "" {
		return Result{URL: parsed, Err: &Error{Raw: raw, Reason: ErrMissingScheme}}
	}

	if parsed.Host == "" {
		return Result{URL: parsed, Err: &Error{Raw: raw, Reason: ErrMissingHost}}
	}

	return Result{URL: parsed}
}
