// Package config provides configuration management for sitecheck.
// Values come from a YAML file, environment variables and flags (merged by
// viper in the cmd package) and are decoded into Config with mapstructure.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/directives"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/report"
)

// Default file locations, relative to the working directory.
const (
	DefaultHTMLPath    = "index.html"
	DefaultSitemapPath = "sitemap.xml"
	DefaultRobotsPath  = "robots.txt"
	DefaultDomain      = "bakersfieldesports.com"
)

// Settings is the raw key/value view of configuration, such as viper.AllSettings().
type Settings = map[string]any

// Config represents the application configuration.
type Config struct {
	App    AppConfig     `mapstructure:"app"`
	Logger logger.Config `mapstructure:"logger"`
	Site   SiteConfig    `mapstructure:"site"`
	Rules  RulesConfig   `mapstructure:"rules"`
	Report ReportConfig  `mapstructure:"report"`
}

// AppConfig holds application metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// SiteConfig locates the artifacts of the site under validation.
type SiteConfig struct {
	// Domain is the substring every sitemap host is expected to contain.
	Domain      string `mapstructure:"domain"`
	HTMLPath    string `mapstructure:"html_path"`
	SitemapPath string `mapstructure:"sitemap_path"`
	RobotsPath  string `mapstructure:"robots_path"`
}

// RulesConfig tunes the directives checks.
type RulesConfig struct {
	MaxCrawlDelay    int      `mapstructure:"max_crawl_delay"`
	RequiredSections []string `mapstructure:"required_sections"`
}

// ReportConfig selects the output format.
type ReportConfig struct {
	Format string `mapstructure:"format"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		App: AppConfig{
			Name:        "sitecheck",
			Version:     "1.0.0",
			Environment: "production",
		},
		Logger: logger.Config{
			Level:       logger.DefaultLevel,
			Encoding:    logger.DefaultEncoding,
			OutputPaths: append([]string(nil), logger.DefaultOutputPaths...),
		},
		Site: SiteConfig{
			Domain:      DefaultDomain,
			HTMLPath:    DefaultHTMLPath,
			SitemapPath: DefaultSitemapPath,
			RobotsPath:  DefaultRobotsPath,
		},
		Rules: RulesConfig{
			MaxCrawlDelay:    directives.DefaultMaxCrawlDelay,
			RequiredSections: append([]string(nil), directives.DefaultRequiredSections...),
		},
		Report: ReportConfig{Format: string(report.FormatText)},
	}
}

// Load decodes settings over the defaults and validates the result.
func Load(settings Settings) (*Config, error) {
	cfg := New()
	if settings == nil {
		settings = Settings{}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		// Replace default slices instead of overlaying them element by element.
		ZeroFields: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create decoder: %w", ErrConfigParseFailed, err)
	}

	if decodeErr := decoder.Decode(settings); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParseFailed, decodeErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// Validate checks the configuration for values the validators cannot work with.
func (c *Config) Validate() error {
	if c.Site.Domain == "" {
		return &ValidationError{Field: "site.domain", Value: c.Site.Domain, Reason: "must not be empty"}
	}
	if c.Rules.MaxCrawlDelay < 0 {
		return &ValidationError{Field: "rules.max_crawl_delay", Value: c.Rules.MaxCrawlDelay, Reason: "must not be negative"}
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return &ValidationError{Field: "report.format", Value: c.Report.Format, Reason: err.Error()}
	}
	return nil
}

// ReportFormat returns the parsed output format. Validate has already accepted it.
func (c *Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Report.Format)
	if err != nil {
		return report.FormatText
	}
	return f
}
