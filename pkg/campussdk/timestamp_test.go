package campussdk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestamp_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"isoformat", `"2025-01-15T09:30:00"`, time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"isoformat micros", `"2025-01-15T09:30:00.250000"`, time.Date(2025, 1, 15, 9, 30, 0, 250000000, time.UTC)},
		{"rfc3339 zulu", `"2025-01-15T09:30:00Z"`, time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 offset", `"2025-01-15T12:30:00+03:00"`, time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"space separated", `"2025-01-15 09:30:00"`, time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"space separated micros", `"2025-01-15 09:30:00.250000"`, time.Date(2025, 1, 15, 9, 30, 0, 250000000, time.UTC)},
		{"datetime-local", `"2025-01-15T09:30"`, time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"date", `"2025-01-15"`, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			require.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	t.Run("null and empty are zero", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{`null`, `""`} {
			ts := NewTimestamp(time.Now())
			require.NoError(t, json.Unmarshal([]byte(input), &ts))
			require.True(t, ts.IsZero())
		}
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		var ts Timestamp
		require.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
		require.Error(t, json.Unmarshal([]byte(`12`), &ts))
	})
}

func TestTimestamp_Marshal(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewTimestamp(time.Date(2025, 1, 15, 12, 30, 0, 0, time.FixedZone("AST", 3*3600))))
	require.NoError(t, err)
	require.Equal(t, `"2025-01-15T09:30:00"`, string(data))

	data, err = json.Marshal(NewTimestamp(time.Date(2025, 1, 15, 9, 30, 0, 1500, time.UTC)))
	require.NoError(t, err)
	require.Equal(t, `"2025-01-15T09:30:00.000001"`, string(data))

	data, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	require.Equal(t, `null`, string(data))
}
