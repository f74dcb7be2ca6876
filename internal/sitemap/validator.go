package sitemap

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/result"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/urlcheck"
)

const (
	unknownLocation = "unknown"
	minPriority     = 0.0
	maxPriority     = 1.0
)

// lastModPattern accepts calendar dates only.
var lastModPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// changeFrequencies are the values allowed by the sitemaps.org protocol.
var changeFrequencies = map[string]struct{}{
	"always":  {},
	"hourly":  {},
	"daily":   {},
	"weekly":  {},
	"monthly": {},
	"yearly":  {},
	"never":   {},
}

// Report is the outcome of validating one sitemap document.
type Report struct {
	result.Result `yaml:",inline"`
	// UniqueURLs counts distinct locations; entries without a location are not counted.
	UniqueURLs int `yaml:"unique_urls"`
}

// OK is the success flag of the run.
func (r Report) OK() bool {
	return !r.HasErrors()
}

// Validator checks sitemap entries against one site domain.
type Validator struct {
	domain string
	logger logger.Interface
}

// NewValidator creates a Validator. Hosts not containing domain are flagged.
func NewValidator(domain string, log logger.Interface) *Validator {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Validator{
		domain: strings.ToLower(domain),
		logger: log.WithComponent("sitemap"),
	}
}

// Validate checks every entry in order. The seen-URL set lives only for this call.
func (v *Validator) Validate(entries []Entry) Report {
	start := time.Now()

	var report Report
	seen := make(map[string]struct{}, len(entries))

	for i := range entries {
		v.validateEntry(entries[i], seen, &report.Result)
	}

	report.UniqueURLs = len(seen)

	v.logger.WithDuration(time.Since(start)).Debug("Sitemap entries validated",
		"entries", len(entries),
		"unique_urls", report.UniqueURLs,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
	)

	return report
}

func (v *Validator) validateEntry(entry Entry, seen map[string]struct{}, res *result.Result) {
	if entry.Location != nil {
		v.validateLocation(*entry.Location, seen, res)
	}

	if entry.LastModified != nil && !lastModPattern.MatchString(*entry.LastModified) {
		res.Warnf("Invalid lastmod format for %s: %s", entry.label(), *entry.LastModified)
	}

	if entry.Priority != nil {
		validatePriority(entry.label(), *entry.Priority, res)
	}

	if entry.ChangeFrequency != nil {
		if _, ok := changeFrequencies[*entry.ChangeFrequency]; !ok {
			res.Warnf("Invalid changefreq for %s: %s", entry.label(), *entry.ChangeFrequency)
		}
	}
}

func (v *Validator) validateLocation(loc string, seen map[string]struct{}, res *result.Result) {
	if _, dup := seen[loc]; dup {
		res.Warnf("Duplicate URL found: %s", loc)
	}
	seen[loc] = struct{}{}

	check := urlcheck.Absolute(loc)
	if !check.OK() {
		res.Errorf("Invalid URL format: %s", loc)
		v.logger.Debug("Rejected sitemap location", "url", loc, "reason", check.Err.Reason.Error())
	}

	// An unparsable value has no host to compare.
	if check.URL != nil && !strings.Contains(check.Host(), v.domain) {
		res.Warnf("URL not on main domain: %s", loc)
	}
}

func validatePriority(label, raw string, res *result.Result) {
	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		res.Errorf("Invalid priority format for %s: %s", label, raw)
		return
	}

	if math.IsNaN(p) || p < minPriority || p > maxPriority {
		res.Warnf("Priority out of range for %s: %s", label, raw)
	}
}
