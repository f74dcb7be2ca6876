package logger_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	log, err := logger.New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNew_InvalidSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *logger.Config
		wantErr error
	}{
		{
			name:    "unknown level",
			config:  &logger.Config{Level: "verbose"},
			wantErr: logger.ErrInvalidLevel,
		},
		{
			name:    "unknown encoding",
			config:  &logger.Config{Encoding: "xml"},
			wantErr: logger.ErrInvalidEncoding,
		},
		{
			name:    "unopenable sink",
			config:  &logger.Config{OutputPaths: []string{"/nonexistent-dir/sub/log.txt"}},
			wantErr: logger.ErrInvalidOutputPath,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := logger.New(tt.config)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogger_WritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.log")
	log, err := logger.New(&logger.Config{
		Level:       logger.DebugLevel,
		Encoding:    logger.EncodingJSON,
		OutputPaths: []string{path},
	})
	require.NoError(t, err)

	log.WithComponent("sitemap").
		WithRunID("run-1").
		WithError(errors.New("boom")).
		Info("validated", "entries", 3)
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"sitemap"`)
	assert.Contains(t, string(data), `"run_id":"run-1"`)
	assert.Contains(t, string(data), `"entries":3`)
	assert.Contains(t, string(data), `"error":"boom"`)
}

func TestNoOp(t *testing.T) {
	t.Parallel()

	log := logger.NewNoOp()
	log.With("k", "v").WithComponent("c").Info("ignored")
	assert.NoError(t, log.Sync())
}

func TestLogger_ReportsCallSite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.log")
	log, err := logger.New(&logger.Config{
		Level:       logger.InfoLevel,
		Encoding:    logger.EncodingJSON,
		OutputPaths: []string{path},
	})
	require.NoError(t, err)

	log.WithComponent("schema").Error("read html failed")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"C":"logger/logger_test.go:`)
	assert.NotContains(t, string(data), `"S":`)
}
