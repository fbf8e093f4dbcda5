package plan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func placed(name, clock string, backup bool) ScheduledActivity {
	sa := ScheduledActivity{Time: clock, IsBackup: backup}
	sa.Name = name
	sa.Type = TypeFitness
	sa.DurationMinutes = 30
	if backup {
		sa.OriginalActivity = "Primary"
	}
	return sa
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:30", 0, false},
		{"09-30", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		m, ok := ParseClock(tt.clock)
		require.Equal(t, tt.ok, ok, "clock %q", tt.clock)
		require.Equal(t, tt.minutes, m, "clock %q", tt.clock)
	}
}

func TestClockHour(t *testing.T) {
	require.Equal(t, 14, ClockHour("14:45"))
	require.Equal(t, -1, ClockHour("nope"))
}

func TestScheduleAccessors(t *testing.T) {
	s := Schedule{
		"2026-03-02": {placed("B", "10:00", false), placed("A", "07:00", false)},
		"2026-03-01": {placed("C", "18:00", true)},
	}

	require.Equal(t, []string{"2026-03-01", "2026-03-02"}, s.Dates())
	require.Equal(t, 3, s.Total())
	require.Equal(t, 1, s.BackupCount())

	s.SortTimes()
	require.Equal(t, "07:00", s["2026-03-02"][0].Time)
	require.Equal(t, "10:00", s["2026-03-02"][1].Time)

	dist := s.HourDistribution()
	require.Equal(t, 1, dist[7])
	require.Equal(t, 1, dist[10])
	require.Equal(t, 1, dist[18])
}

func TestScheduleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	s := Schedule{
		"2026-03-01": {placed("Morning Run", "07:00", false), placed("Yoga", "18:00", true)},
	}

	require.NoError(t, s.Save(path))
	loaded, err := LoadSchedule(path)
	require.NoError(t, err)
	require.Equal(t, s, loaded)
}
