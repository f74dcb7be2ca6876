package sitemap_test

import (
	"testing"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/sitemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDomain = "bakersfieldesports.com"

func newTestValidator(t *testing.T) *sitemap.Validator {
	t.Helper()

	return sitemap.NewValidator(testDomain, logger.NewNoOp())
}

func loc(u string) sitemap.Entry {
	return sitemap.Entry{Location: sitemap.Ptr(u)}
}

func TestValidate_CleanSitemap(t *testing.T) {
	t.Parallel()

	entries := []sitemap.Entry{
		{
			Location:        sitemap.Ptr("https://bakersfieldesports.com/"),
			LastModified:    sitemap.Ptr("2025-01-10"),
			Priority:        sitemap.Ptr("1.0"),
			ChangeFrequency: sitemap.Ptr("weekly"),
		},
		{
			Location: sitemap.Ptr("https://bakersfieldesports.com/events/"),
			Priority: sitemap.Ptr("0"),
		},
	}

	report := newTestValidator(t).Validate(entries)
	assert.True(t, report.OK())
	assert.True(t, report.Passed())
	assert.Equal(t, 2, report.UniqueURLs)
}

func TestValidate_DuplicateURL(t *testing.T) {
	t.Parallel()

	entries := []sitemap.Entry{
		loc("https://bakersfieldesports.com/a"),
		loc("https://bakersfieldesports.com/b"),
		loc("https://bakersfieldesports.com/a"),
	}

	report := newTestValidator(t).Validate(entries)
	assert.Equal(t, []string{"Duplicate URL found: https://bakersfieldesports.com/a"}, report.Warnings)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 2, report.UniqueURLs)
	assert.True(t, report.OK())
}

func TestValidate_SeenSetIsPerCall(t *testing.T) {
	t.Parallel()

	v := newTestValidator(t)
	entries := []sitemap.Entry{loc("https://bakersfieldesports.com/a")}

	first := v.Validate(entries)
	second := v.Validate(entries)
	assert.Empty(t, first.Warnings)
	assert.Empty(t, second.Warnings)
}

func TestValidate_MalformedAndOffDomainURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		url          string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:         "no scheme",
			url:          "bakersfieldesports.com/about",
			wantErrors:   []string{"Invalid URL format: bakersfieldesports.com/about"},
			wantWarnings: []string{"URL not on main domain: bakersfieldesports.com/about"},
		},
		{
			name:         "off domain",
			url:          "https://example.org/page",
			wantWarnings: []string{"URL not on main domain: https://example.org/page"},
		},
		{
			name: "subdomain is on domain",
			url:  "https://www.bakersfieldesports.com/page",
		},
		{
			name:       "unparsable",
			url:        "https://bakersfieldesports.com/\x00",
			wantErrors: []string{"Invalid URL format: https://bakersfieldesports.com/\x00"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := newTestValidator(t).Validate([]sitemap.Entry{loc(tt.url)})
			assert.Equal(t, tt.wantErrors, report.Errors)
			assert.Equal(t, tt.wantWarnings, report.Warnings)
			assert.Equal(t, len(tt.wantErrors) == 0, report.OK())
		})
	}
}

func TestValidate_LastModified(t *testing.T) {
	t.Parallel()

	entries := []sitemap.Entry{
		{Location: sitemap.Ptr("https://bakersfieldesports.com/a"), LastModified: sitemap.Ptr("2025-01-10T10:00:00Z")},
		{LastModified: sitemap.Ptr("yesterday")},
	}

	report := newTestValidator(t).Validate(entries)
	assert.Equal(t, []string{
		"Invalid lastmod format for https://bakersfieldesports.com/a: 2025-01-10T10:00:00Z",
		"Invalid lastmod format for unknown: yesterday",
	}, report.Warnings)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.UniqueURLs)
}

func TestValidate_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		priority    string
		wantError   bool
		wantWarning bool
	}{
		{priority: "0.5"},
		{priority: "0"},
		{priority: "1"},
		{priority: "1.5", wantWarning: true},
		{priority: "-0.1", wantWarning: true},
		{priority: "NaN", wantWarning: true},
		{priority: "abc", wantError: true},
		{priority: "", wantError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.priority, func(t *testing.T) {
			t.Parallel()

			entry := sitemap.Entry{
				Location: sitemap.Ptr("https://bakersfieldesports.com/p"),
				Priority: sitemap.Ptr(tt.priority),
			}
			report := newTestValidator(t).Validate([]sitemap.Entry{entry})

			if tt.wantError {
				require.Len(t, report.Errors, 1)
				assert.Equal(t, "Invalid priority format for https://bakersfieldesports.com/p: "+tt.priority, report.Errors[0])
				assert.False(t, report.OK())
			} else {
				assert.Empty(t, report.Errors)
			}

			if tt.wantWarning {
				require.Len(t, report.Warnings, 1)
				assert.Equal(t, "Priority out of range for https://bakersfieldesports.com/p: "+tt.priority, report.Warnings[0])
			} else {
				assert.Empty(t, report.Warnings)
			}
		})
	}
}

func TestValidate_ChangeFrequency(t *testing.T) {
	t.Parallel()

	entry := sitemap.Entry{
		Location:        sitemap.Ptr("https://bakersfieldesports.com/"),
		ChangeFrequency: sitemap.Ptr("fortnightly"),
	}

	report := newTestValidator(t).Validate([]sitemap.Entry{entry})
	assert.Equal(t, []string{"Invalid changefreq for https://bakersfieldesports.com/: fortnightly"}, report.Warnings)
}

func TestValidate_EmptyInput(t *testing.T) {
	t.Parallel()

	report := sitemap.NewValidator(testDomain, nil).Validate(nil)
	assert.True(t, report.OK())
	assert.Zero(t, report.UniqueURLs)
}
