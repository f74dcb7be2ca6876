// Package extract pulls validation inputs out of their host documents:
// JSON-LD records from HTML pages and URL entries from XML sitemaps.
package extract

import "errors"

var (
	// ErrInvalidJSONLD is returned when a JSON-LD block does not decode.
	ErrInvalidJSONLD = errors.New("invalid JSON-LD block")
	// ErrNoRootElement is returned for a sitemap without any XML element.
	ErrNoRootElement = errors.New("no root element found")
	// ErrMultipleRootElements is returned for a sitemap with content after its document element.
	ErrMultipleRootElements = errors.New("junk after document element")
)
