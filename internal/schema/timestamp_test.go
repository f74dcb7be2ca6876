package schema_test

import (
	"testing"
	"time"

	"github.com/BakersfieldEsportsJon/bakersfieldesports.com/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  time.Time
	}{
		{value: "2025-01-10T18:00:00Z", want: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)},
		{value: "2025-01-10T18:00:00", want: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)},
		{value: "2025-01-10T10:00:00-08:00", want: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)},
		{value: "2025-01-10T18:00:00.250Z", want: time.Date(2025, 1, 10, 18, 0, 0, 250_000_000, time.UTC)},
		{value: "2025-01-10T18:00", want: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)},
		{value: "2025-01-10 18:00:00", want: time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)},
		{value: "2025-01-10", want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			ts := schema.ParseTimestamp("startDate", tt.value)
			require.Nil(t, ts.Err)
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestParseTimestamp_Failures(t *testing.T) {
	t.Parallel()

	ts := schema.ParseTimestamp("endDate", "10/01/2025")
	require.NotNil(t, ts.Err)
	assert.Equal(t, "endDate", ts.Err.Field)
	assert.Contains(t, ts.Err.Error(), `"10/01/2025"`)

	ts = schema.ParseTimestamp("endDate", nil)
	require.NotNil(t, ts.Err)
	assert.Contains(t, ts.Err.Error(), "expected a string")
}
