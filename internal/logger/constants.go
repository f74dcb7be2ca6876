package logger

// Default configuration values.
const (
	// DefaultLevel is the default logging level.
	DefaultLevel = InfoLevel
	// DefaultEncoding is the default log encoding format.
	DefaultEncoding = EncodingConsole
)

// DefaultOutputPaths is the default list of sinks log output is written to.
var DefaultOutputPaths = []string{"stderr"}
