package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/sitemap"
)

// SitemapNamespace is the sitemaps.org protocol namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Element names read from the sitemap.
const (
	elemURL        = "url"
	elemLoc        = "loc"
	elemLastMod    = "lastmod"
	elemPriority   = "priority"
	elemChangeFreq = "changefreq"
)

// ParseSitemap reads every <url> element of the sitemaps.org namespace, at any depth.
// Malformed XML fails the whole document.
func ParseSitemap(r io.Reader) ([]sitemap.Entry, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}

	switch roots := countElementChildren(doc); {
	case roots == 0:
		return nil, fmt.Errorf("parse sitemap: %w", ErrNoRootElement)
	case roots > 1:
		return nil, fmt.Errorf("parse sitemap: %w", ErrMultipleRootElements)
	}

	var entries []sitemap.Entry
	walkElements(doc, func(n *xmlquery.Node) {
		if !isSitemapElement(n, elemURL) {
			return
		}
		entries = append(entries, sitemap.Entry{
			Location:        childText(n, elemLoc),
			LastModified:    childText(n, elemLastMod),
			Priority:        childText(n, elemPriority),
			ChangeFrequency: childText(n, elemChangeFreq),
		})
	})

	return entries, nil
}

func isSitemapElement(n *xmlquery.Node, name string) bool {
	return n.Type == xmlquery.ElementNode && n.Data == name && n.NamespaceURI == SitemapNamespace
}

func countElementChildren(n *xmlquery.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			count++
		}
	}
	return count
}

// walkElements visits n's descendants depth-first in document order.
func walkElements(n *xmlquery.Node, visit func(*xmlquery.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
		walkElements(c, visit)
	}
}

// childText returns the trimmed text of the first descendant named name, or nil.
func childText(n *xmlquery.Node, name string) *string {
	var found *xmlquery.Node
	walkElements(n, func(c *xmlquery.Node) {
		if found == nil && isSitemapElement(c, name) {
			found = c
		}
	})
	if found == nil {
		return nil
	}
	return sitemap.Ptr(strings.TrimSpace(found.InnerText()))
}
