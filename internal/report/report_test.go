package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/report"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, f)

	f, err = report.ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)

	_, err = report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestSchemaRun_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	blocks := []report.SchemaBlock{
		{Index: 1, Type: "LocalBusiness"},
		{Index: 2, Type: "Event", Checked: true},
		{Index: 3, Type: "EventSeries", Checked: true, Result: result.Result{
			Errors: []string{"Missing required field for EventSeries: organizer"},
		}},
	}

	require.NoError(t, report.New(&buf, report.FormatText).SchemaRun(blocks))
	out := buf.String()

	assert.Contains(t, out, "Found 3 JSON-LD scripts")
	assert.Contains(t, out, "Validating Schema #1:\nType: LocalBusiness\n"+strings.Repeat("-", 50))
	assert.Contains(t, out, "Type: Event\n✅ Schema validation passed!")
	assert.Contains(t, out, "Errors:\n❌ Missing required field for EventSeries: organizer")
	assert.Equal(t, 1, strings.Count(out, "✅"))
	assert.Equal(t, 3, strings.Count(out, strings.Repeat("-", 50)))
}

func TestSchemaRun_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	blocks := []report.SchemaBlock{
		{Index: 1, Type: "Event", Checked: true, Result: result.Result{Errors: []string{"boom"}}},
	}

	require.NoError(t, report.New(&buf, report.FormatYAML).SchemaRun(blocks))

	var doc struct {
		Found   int `yaml:"found"`
		Records []struct {
			Type   string   `yaml:"type"`
			Errors []string `yaml:"errors"`
		} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Found)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "Event", doc.Records[0].Type)
	assert.Equal(t, []string{"boom"}, doc.Records[0].Errors)
}

func TestSchemaFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, "").SchemaFailure(errors.New("open index.html: no such file")))
	assert.Equal(t, "Error during validation: open index.html: no such file\n", buf.String())
}

func TestSEORun_Text(t *testing.T) {
	t.Parallel()

	targets := []report.Target{
		{
			Name:    "sitemap.xml",
			Result:  result.Result{Warnings: []string{"Duplicate URL found: https://a.example/"}},
			Summary: "Found 1 unique URLs in sitemap",
			OK:      true,
		},
		{
			Name:   "robots.txt",
			Result: result.Result{Errors: []string{"Invalid sitemap URL: not-a-url"}},
			OK:     false,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, report.FormatText).SEORun(targets))
	out := buf.String()

	assert.Contains(t, out, "Validating sitemap.xml...\nWARNING: Duplicate URL found: https://a.example/\nFound 1 unique URLs in sitemap\nsitemap.xml validation successful!")
	assert.Contains(t, out, "ERROR: Invalid sitemap URL: not-a-url\nrobots.txt validation failed!")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "Validation completed with warnings/errors.")
	assert.NotContains(t, out, "All validations passed successfully!")
	assert.Equal(t, 1, report.ExitCode(targets...))
}

func TestSEORun_AllPassed(t *testing.T) {
	t.Parallel()

	targets := []report.Target{{Name: "sitemap.xml", OK: true}, {Name: "robots.txt", OK: true}}

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, report.FormatText).SEORun(targets))
	assert.Contains(t, buf.String(), "All validations passed successfully!")
	assert.Equal(t, 0, report.ExitCode(targets...))
}

func TestSEORun_YAML(t *testing.T) {
	t.Parallel()

	targets := []report.Target{
		{Name: "robots.txt", Result: result.Result{Warnings: []string{"w"}}, OK: true},
	}

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, report.FormatYAML).SEORun(targets))

	var doc struct {
		OK      bool `yaml:"ok"`
		Targets []struct {
			Name     string   `yaml:"name"`
			Warnings []string `yaml:"warnings"`
		} `yaml:"targets"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.True(t, doc.OK)
	require.Len(t, doc.Targets, 1)
	assert.Equal(t, []string{"w"}, doc.Targets[0].Warnings)
}
