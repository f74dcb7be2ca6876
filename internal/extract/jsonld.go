package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	json "github.com/goccy/go-json"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/schema"
)

// jsonLDSelector matches embedded structured-data blocks.
const jsonLDSelector = "script[type='application/ld+json']"

// graphKey holds the node list of a JSON-LD document with several top-level nodes.
const graphKey = "@graph"

// StructuredRecords returns every JSON-LD object embedded in the page, in document order.
// Arrays and @graph lists are flattened into one record per object.
func StructuredRecords(html string) ([]schema.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var (
		records []schema.Record
		decErr  error
	)

	doc.Find(jsonLDSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}

		var data any
		if err := json.Unmarshal([]byte(text), &data); err != nil {
			decErr = fmt.Errorf("%w #%d: %w", ErrInvalidJSONLD, i+1, err)
			return false
		}

		records = appendRecords(records, data)
		return true
	})

	if decErr != nil {
		return nil, decErr
	}

	return records, nil
}

// appendRecords flattens a decoded JSON-LD value into records.
func appendRecords(records []schema.Record, data any) []schema.Record {
	switch v := data.(type) {
	case map[string]any:
		if graph, ok := v[graphKey].([]any); ok {
			return appendRecords(records, graph)
		}
		return append(records, schema.Record(v))
	case []any:
		for _, item := range v {
			records = appendRecords(records, item)
		}
	}
	return records
}
