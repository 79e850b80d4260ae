package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, y int, m time.Month, d, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return time.Date(y, m, d, hour, min, 33, 123456789, loc)
}

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantDay time.Time
	}{
		// 2025-06-02 é uma segunda-feira
		{"monday to tuesday", date(t, 2025, time.June, 2, 9, 15), date(t, 2025, time.June, 3, 14, 0)},
		{"tuesday to wednesday", date(t, 2025, time.June, 3, 16, 40), date(t, 2025, time.June, 4, 14, 0)},
		{"wednesday to thursday", date(t, 2025, time.June, 4, 23, 59), date(t, 2025, time.June, 5, 14, 0)},
		{"thursday to friday", date(t, 2025, time.June, 5, 0, 1), date(t, 2025, time.June, 6, 14, 0)},
		{"friday skips to monday", date(t, 2025, time.June, 6, 10, 0), date(t, 2025, time.June, 9, 14, 0)},
		{"saturday skips to monday", date(t, 2025, time.June, 7, 11, 30), date(t, 2025, time.June, 9, 14, 0)},
		{"sunday skips to monday", date(t, 2025, time.June, 8, 20, 0), date(t, 2025, time.June, 9, 14, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextBusinessDay(tt.now)

			want := time.Date(
				tt.wantDay.Year(), tt.wantDay.Month(), tt.wantDay.Day(),
				IntakeHour, 0, 0, 0,
				tt.now.Location(),
			)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestNextBusinessDayZeroesTimeOfDay(t *testing.T) {
	got := NextBusinessDay(date(t, 2025, time.June, 2, 18, 47))

	assert.Equal(t, IntakeHour, got.Hour())
	assert.Zero(t, got.Minute())
	assert.Zero(t, got.Second())
	assert.Zero(t, got.Nanosecond())
}

func TestNextBusinessDayKeepsLocation(t *testing.T) {
	now := date(t, 2025, time.June, 2, 8, 0)
	got := NextBusinessDay(now)

	assert.Equal(t, now.Location(), got.Location())
}
