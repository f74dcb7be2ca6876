// Package seo implements the seo command, which validates the sitemap and
// robots.txt of a site and fails the process when either is invalid.
package seo

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/cmd/common"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/config"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/directives"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/extract"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/report"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/sitemap"
)

// errOpenSitemap separates a missing sitemap from a malformed one.
var errOpenSitemap = errors.New("open sitemap")

// Command creates the seo command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Validate sitemap.xml and robots.txt",
		Long: `Validates the XML sitemap (unique, well-formed, on-domain URLs, lastmod
dates, priorities) and robots.txt (required sections, sitemap references,
crawl delays). Exits non-zero if either file has errors.

Example:
  sitecheck seo --sitemap public/sitemap.xml --robots public/robots.txt --domain example.com`,
		PreRunE: bindFlags,
		RunE:    runSEO,
	}

	cmd.Flags().String("sitemap", config.DefaultSitemapPath, "sitemap file to validate")
	cmd.Flags().String("robots", config.DefaultRobotsPath, "robots.txt file to validate")
	cmd.Flags().String("domain", config.DefaultDomain, "domain every sitemap URL should belong to")

	return cmd
}

// bindFlags binds the command's flags to Viper.
func bindFlags(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlag("site.sitemap_path", cmd.Flags().Lookup("sitemap")); err != nil {
		return fmt.Errorf("failed to bind sitemap flag: %w", err)
	}
	if err := viper.BindPFlag("site.robots_path", cmd.Flags().Lookup("robots")); err != nil {
		return fmt.Errorf("failed to bind robots flag: %w", err)
	}
	if err := viper.BindPFlag("site.domain", cmd.Flags().Lookup("domain")); err != nil {
		return fmt.Errorf("failed to bind domain flag: %w", err)
	}
	return nil
}

func runSEO(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to get dependencies: %w", err)
	}
	defer func() { _ = deps.Logger.Sync() }()

	runner := NewRunner(deps.Config, deps.Logger, report.New(cmd.OutOrStdout(), deps.Config.ReportFormat()))

	targets, err := runner.Run()
	if err != nil {
		return err
	}

	if report.ExitCode(targets...) != 0 {
		return common.ErrValidationFailed
	}

	return nil
}

// Runner validates both SEO files of one site.
type Runner struct {
	cfg      *config.Config
	logger   logger.Interface
	reporter *report.Reporter
}

// NewRunner creates a Runner.
func NewRunner(cfg *config.Config, log logger.Interface, reporter *report.Reporter) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   log.WithComponent("seo"),
		reporter: reporter,
	}
}

// Run validates the sitemap then robots.txt, reports both and returns their outcomes.
// The returned error concerns writing the report only.
func (r *Runner) Run() ([]report.Target, error) {
	start := time.Now()

	targets := []report.Target{
		r.sitemapTarget(r.cfg.Site.SitemapPath),
		r.robotsTarget(r.cfg.Site.RobotsPath),
	}

	r.logger.WithDuration(time.Since(start)).Info("SEO validation complete",
		"sitemap_ok", targets[0].OK,
		"robots_ok", targets[1].OK,
	)

	if err := r.reporter.SEORun(targets); err != nil {
		return targets, fmt.Errorf("write report: %w", err)
	}

	return targets, nil
}

func (r *Runner) sitemapTarget(path string) report.Target {
	target := report.Target{Name: path}

	entries, err := readSitemap(path)
	if err != nil {
		r.logger.WithError(err).Warn("Sitemap could not be read", "path", path)
		if errors.Is(err, errOpenSitemap) {
			target.Result.Errorf("Validation failed: %v", err)
		} else {
			target.Result.Errorf("XML parsing failed: %v", err)
		}
		return target
	}

	validator := sitemap.NewValidator(r.cfg.Site.Domain, r.logger)
	rep := validator.Validate(entries)

	target.Result = rep.Result
	target.Summary = fmt.Sprintf("Found %d unique URLs in sitemap", rep.UniqueURLs)
	target.OK = rep.OK()

	return target
}

// readSitemap opens and parses the sitemap, closing the file on every path.
func readSitemap(path string) ([]sitemap.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errOpenSitemap, err)
	}
	defer f.Close()

	return extract.ParseSitemap(f)
}

func (r *Runner) robotsTarget(path string) report.Target {
	target := report.Target{Name: path}

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.WithError(err).Warn("Robots file could not be read", "path", path)
		target.Result.Errorf("Validation failed: %v", err)
		return target
	}

	validator := directives.NewValidator(
		directives.WithRequiredSections(r.cfg.Rules.RequiredSections),
		directives.WithMaxCrawlDelay(r.cfg.Rules.MaxCrawlDelay),
		directives.WithLogger(r.logger),
	)

	target.Result = validator.Validate(string(data))
	target.OK = !target.Result.HasErrors()

	return target
}
