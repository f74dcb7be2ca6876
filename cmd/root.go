// Package cmd implements the sitecheck command-line interface.
// It provides the root command and the schema and seo validation subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/cmd/schema"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/cmd/seo"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/config"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/directives"
	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/report"
)

// envPrefix namespaces environment overrides, e.g. SITECHECK_SITE_DOMAIN.
const envPrefix = "SITECHECK"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug logging for all commands
	Debug bool

	// rootCmd represents the root command for the sitecheck CLI.
	rootCmd = &cobra.Command{
		Use:   "sitecheck",
		Short: "Validate structured data and SEO files before publishing",
		Long: `sitecheck validates the metadata a static site publishes: Event and
EventSeries JSON-LD embedded in HTML pages, the XML sitemap and robots.txt.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Subcommand flags are unknown to the early parse in Execute
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	_ = godotenv.Load()

	// Parse flags early so --config and --debug apply to configuration loading
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("format", string(report.FormatText), "report format (text, yaml)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitecheck version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(schema.Command())
	rootCmd.AddCommand(seo.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// The config file is optional: defaults, env and flags are enough to run.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if err := bindCommandLineFlags(); err != nil {
		return err
	}

	if err := bindAppEnvVars(); err != nil {
		return err
	}

	setupDevelopmentLogging()

	return nil
}

// bindCommandLineFlags binds persistent command-line flags to Viper.
func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	if err := viper.BindPFlag("report.format", rootCmd.PersistentFlags().Lookup("format")); err != nil {
		return fmt.Errorf("failed to bind format flag: %w", err)
	}
	return nil
}

// bindAppEnvVars binds the unprefixed environment variables shared with other services.
func bindAppEnvVars() error {
	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("app.debug", "APP_DEBUG"); err != nil {
		return fmt.Errorf("failed to bind APP_DEBUG: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	return nil
}

// setupDevelopmentLogging configures development logging settings based on environment and debug flag.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	// Development changes formatting only, never the level
	if isDev {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "sitecheck",
		"version":     "1.0.0",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "console",
		"output_paths": []string{"stderr"},
	})

	viper.SetDefault("site", map[string]any{
		"domain":       config.DefaultDomain,
		"html_path":    config.DefaultHTMLPath,
		"sitemap_path": config.DefaultSitemapPath,
		"robots_path":  config.DefaultRobotsPath,
	})

	viper.SetDefault("rules", map[string]any{
		"max_crawl_delay":   directives.DefaultMaxCrawlDelay,
		"required_sections": directives.DefaultRequiredSections,
	})

	viper.SetDefault("report", map[string]any{
		"format": string(report.FormatText),
	})
}
