package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/result"
)

// SchemaBlock is the validation outcome of one structured-data record.
type SchemaBlock struct {
	Index int    `yaml:"index"`
	Type  string `yaml:"type"`
	// Checked is false for kinds the validator skips; those print no verdict.
	Checked bool          `yaml:"checked"`
	Result  result.Result `yaml:",inline"`
}

// SchemaRun prints every block followed by a separator.
func (r *Reporter) SchemaRun(blocks []SchemaBlock) error {
	if r.format == FormatYAML {
		return r.encodeYAML(struct {
			Found   int           `yaml:"found"`
			Records []SchemaBlock `yaml:"records"`
		}{Found: len(blocks), Records: blocks})
	}

	fmt.Fprintf(r.w, "\nFound %d JSON-LD scripts\n", len(blocks))

	for _, block := range blocks {
		fmt.Fprintf(r.w, "\nValidating Schema #%d:\n", block.Index)
		fmt.Fprintf(r.w, "Type: %s\n", block.Type)

		if block.Checked {
			r.printSchemaFindings(block.Result)
		}

		fmt.Fprintln(r.w, strings.Repeat("-", separatorWidth))
	}

	return nil
}

func (r *Reporter) printSchemaFindings(res result.Result) {
	if len(res.Errors) > 0 {
		fmt.Fprintln(r.w, "\nErrors:")
		r.printLines("❌ ", res.Errors)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(r.w, "\nWarnings:")
		r.printLines("⚠️ ", res.Warnings)
	}
	if res.Passed() {
		fmt.Fprintln(r.w, "✅ Schema validation passed!")
	}
}

// SchemaFailure reports an internal failure of the schema run.
func (r *Reporter) SchemaFailure(err error) error {
	if r.format == FormatYAML {
		return r.encodeYAML(map[string]string{"error": err.Error()})
	}
	fmt.Fprintf(r.w, "Error during validation: %v\n", err)
	return nil
}

func (r *Reporter) encodeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}
