// Package directives validates a robots.txt crawler-directives file.
//
// Each check is an independent pattern match over the raw text; the file is
// additionally parsed with a robots.txt grammar to catch rules that would
// block the whole site.
package directives

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/temoto/robotstxt"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/result"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/urlcheck"
)

// DefaultMaxCrawlDelay is the largest Crawl-delay, in seconds, accepted without a warning.
const DefaultMaxCrawlDelay = 100

// wildcardAgent is the user-agent matched by the whole-site check.
const wildcardAgent = "*"

// grammarSkippedWarning is reported when the file cannot be parsed as robots.txt rules.
const grammarSkippedWarning = "Robots rules could not be parsed; whole-site check skipped"

// DefaultRequiredSections are the literal tokens a directives file is expected to contain.
var DefaultRequiredSections = []string{"User-agent: *", "Allow:", "Disallow:", "Sitemap:"}

var (
	sitemapPattern    = regexp.MustCompile(`Sitemap: (.*)`)
	crawlDelayPattern = regexp.MustCompile(`Crawl-delay: (\d+)`)
)

// Validator checks robots.txt content.
type Validator struct {
	requiredSections []string
	maxCrawlDelay    int
	logger           logger.Interface
}

// Option configures a Validator.
type Option func(*Validator)

// WithRequiredSections replaces the default required section tokens.
func WithRequiredSections(sections []string) Option {
	return func(v *Validator) {
		v.requiredSections = sections
	}
}

// WithMaxCrawlDelay sets the crawl-delay warning threshold.
func WithMaxCrawlDelay(seconds int) Option {
	return func(v *Validator) {
		v.maxCrawlDelay = seconds
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logger.Interface) Option {
	return func(v *Validator) {
		if log != nil {
			v.logger = log
		}
	}
}

// NewValidator creates a Validator with the default rules, adjusted by opts.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		requiredSections: DefaultRequiredSections,
		maxCrawlDelay:    DefaultMaxCrawlDelay,
		logger:           logger.NewNoOp(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithComponent("directives")
	return v
}

// Validate checks the document text.
func (v *Validator) Validate(text string) result.Result {
	var res result.Result

	v.checkSections(text, &res)
	v.checkSitemapURLs(text, &res)
	v.checkCrawlDelays(text, &res)
	v.checkGrammar(text, &res)

	return res
}

func (v *Validator) checkSections(text string, res *result.Result) {
	for _, section := range v.requiredSections {
		if !strings.Contains(text, section) {
			res.Warnf("Missing required section: %s", section)
		}
	}
}

func (v *Validator) checkSitemapURLs(text string, res *result.Result) {
	for _, match := range sitemapPattern.FindAllStringSubmatch(text, -1) {
		value := strings.TrimSpace(match[1])
		if check := urlcheck.Absolute(value); !check.OK() {
			res.Errorf("Invalid sitemap URL: %s", value)
			v.logger.Debug("Rejected sitemap reference", "url", value, "reason", check.Err.Reason.Error())
		}
	}
}

func (v *Validator) checkCrawlDelays(text string, res *result.Result) {
	for _, match := range crawlDelayPattern.FindAllStringSubmatch(text, -1) {
		delay, err := strconv.Atoi(match[1])
		if err != nil {
			// Only reachable for digit runs that overflow int.
			res.Warnf("High crawl delay value: %s", match[1])
			continue
		}
		if delay > v.maxCrawlDelay {
			res.Warnf("High crawl delay value: %d", delay)
		}
	}
}

func (v *Validator) checkGrammar(text string, res *result.Result) {
	robots, err := robotstxt.FromString(text)
	if err != nil {
		// Crawlers read an unparsable file as allow-all, so this is advisory.
		res.Warnf(grammarSkippedWarning)
		v.logger.Debug("Robots grammar parse failed", "error", err.Error())
		return
	}

	group := robots.FindGroup(wildcardAgent)
	if group != nil && !group.Test("/") {
		res.Warnf("Wildcard user-agent disallows the entire site")
	}
}
