// Package report renders validation results for people (text) or tools (yaml)
// and derives the process exit status.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/result"
)

// Format selects the output rendering.
type Format string

const (
	// FormatText is the human-readable default.
	FormatText Format = "text"
	// FormatYAML emits one yaml document per run.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown report format")

// separatorWidth is the width of the line printed after each schema block.
const separatorWidth = 50

// ParseFormat converts a flag or config value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Reporter writes run output to a single stream.
type Reporter struct {
	w      io.Writer
	format Format
}

// New creates a Reporter.
func New(w io.Writer, format Format) *Reporter {
	if format == "" {
		format = FormatText
	}
	return &Reporter{w: w, format: format}
}

// Target is the outcome of validating one SEO artifact.
type Target struct {
	Name    string        `yaml:"name"`
	Result  result.Result `yaml:",inline"`
	Summary string        `yaml:"summary,omitempty"`
	OK      bool          `yaml:"ok"`
}

// ExitCode is 0 when every target succeeded and 1 otherwise.
func ExitCode(targets ...Target) int {
	for _, t := range targets {
		if !t.OK {
			return 1
		}
	}
	return 0
}

// printLines writes each line prefixed by marker.
func (r *Reporter) printLines(marker string, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(r.w, "%s%s\n", marker, line)
	}
}
