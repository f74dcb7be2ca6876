// Package logger provides structured logging for sitecheck runs.
package logger

// Level represents the logging level.
type Level string

const (
	// DebugLevel logs debug messages.
	DebugLevel Level = "debug"
	// InfoLevel logs info messages.
	InfoLevel Level = "info"
	// WarnLevel logs warning messages.
	WarnLevel Level = "warn"
	// ErrorLevel logs error messages.
	ErrorLevel Level = "error"
)

// Encodings accepted by Config.Encoding.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level.
	Level Level `mapstructure:"level"`
	// Development switches to colored, human-oriented output.
	Development bool `mapstructure:"development"`
	// Encoding is either "console" or "json".
	Encoding string `mapstructure:"encoding"`
	// OutputPaths are zap sink URLs or file paths; "stderr" keeps stdout free for reports.
	OutputPaths []string `mapstructure:"output_paths"`
}
