// Package schema implements the schema command, which validates the Event and
// EventSeries JSON-LD embedded in an HTML page. Its output is advisory: findings
// never change the exit status.
package schema

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/cmd/common"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/config"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/extract"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/report"
	schemapkg "github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/schema"
)

// Command creates the schema command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Validate Event JSON-LD embedded in an HTML page",
		Long: `Extracts every application/ld+json block from an HTML page and checks
Event and EventSeries records for required fields, date order and offers.

Example:
  sitecheck schema --file public/index.html`,
		PreRunE: bindFlags,
		RunE:    runSchema,
	}

	cmd.Flags().StringP("file", "f", config.DefaultHTMLPath, "HTML page to validate")

	return cmd
}

// bindFlags binds the command's flags to Viper.
func bindFlags(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlag("site.html_path", cmd.Flags().Lookup("file")); err != nil {
		return fmt.Errorf("failed to bind file flag: %w", err)
	}
	return nil
}

func runSchema(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to get dependencies: %w", err)
	}
	defer func() { _ = deps.Logger.Sync() }()

	runner := NewRunner(deps.Logger, report.New(cmd.OutOrStdout(), deps.Config.ReportFormat()))

	return runner.Run(deps.Config.Site.HTMLPath)
}

// Runner validates one HTML page and reports the findings.
type Runner struct {
	logger   logger.Interface
	reporter *report.Reporter
}

// NewRunner creates a Runner.
func NewRunner(log logger.Interface, reporter *report.Reporter) *Runner {
	return &Runner{
		logger:   log.WithComponent("schema"),
		reporter: reporter,
	}
}

// Run validates the page at path. Failures to read or extract the page are
// reported as a summary line rather than returned; only output errors are.
func (r *Runner) Run(path string) error {
	start := time.Now()

	blocks, err := r.validateFile(path)
	if err != nil {
		r.logger.WithError(err).Error("Schema validation aborted", "path", path)
		return r.reporter.SchemaFailure(err)
	}

	r.logger.WithDuration(time.Since(start)).Info("Schema validation complete",
		"path", path,
		"records", len(blocks),
	)

	return r.reporter.SchemaRun(blocks)
}

func (r *Runner) validateFile(path string) ([]report.SchemaBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}

	records, err := extract.StructuredRecords(string(data))
	if err != nil {
		return nil, fmt.Errorf("extract structured data: %w", err)
	}

	blocks := make([]report.SchemaBlock, 0, len(records))
	for i, record := range records {
		blocks = append(blocks, report.SchemaBlock{
			Index:   i + 1,
			Type:    record.TypeName(),
			Checked: isChecked(schemapkg.KindOf(record)),
			Result:  schemapkg.Validate(record),
		})
	}

	return blocks, nil
}

// isChecked reports whether kind gets a verdict line in the report.
func isChecked(kind schemapkg.Kind) bool {
	switch kind {
	case schemapkg.KindEvent, schemapkg.KindEventSeries:
		return true
	case schemapkg.KindUnrecognized:
		return false
	default:
		return false
	}
}
