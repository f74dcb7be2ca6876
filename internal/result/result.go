// Package result holds the error and warning lists produced by every validator.
package result

import "fmt"

// Result collects validation findings for one record or document.
// Errors block publication; warnings are flagged but non-blocking.
type Result struct {
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Errorf appends a formatted error.
func (r *Result) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Warnf appends a formatted warning.
func (r *Result) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends other's findings after r's, preserving order.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// HasErrors reports whether any blocking finding was recorded.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Passed reports whether the result carries neither errors nor warnings.
func (r Result) Passed() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}
