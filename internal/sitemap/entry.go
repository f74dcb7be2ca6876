// Package sitemap validates the URL entries of an XML sitemap.
package sitemap

// Entry is one <url> element. A nil field means the child element was absent.
type Entry struct {
	Location        *string
	LastModified    *string
	Priority        *string
	ChangeFrequency *string
}

// label names the entry in findings: its own location, or "unknown".
func (e Entry) label() string {
	if e.Location == nil {
		return unknownLocation
	}
	return *e.Location
}

// Ptr returns a pointer to s. It keeps Entry literals short.
func Ptr(s string) *string {
	return &s
}
