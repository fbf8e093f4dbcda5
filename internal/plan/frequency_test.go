package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOccurrences(t *testing.T) {
	tests := []struct {
		freq         Frequency
		occurrences  int
		intervalDays int
	}{
		{FreqDaily, 1, 1},
		{FreqTwiceDaily, 2, 1},
		{FreqThreeTimesDaily, 3, 1},
		{FreqEveryOtherDay, 1, 2},
		{FreqTwiceAWeek, 2, 7},
		{FreqThreeTimesAWeek, 3, 7},
		{FreqWeekly, 1, 7},
		{FreqBiweekly, 1, 14},
		{FreqMonthly, 1, 30},
		{FreqEvery3Months, 1, 90},
		{FreqEvery6Months, 1, 180},
		{FreqYearly, 1, 365},
	}
	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			occ, interval := tt.freq.Occurrences()
			require.Equal(t, tt.occurrences, occ)
			require.Equal(t, tt.intervalDays, interval)
		})
	}
}

func TestOccurrencesUnknownLabelFallsBackToWeekly(t *testing.T) {
	occ, interval := Frequency("Fortnightly-ish").Occurrences()
	require.Equal(t, 1, occ)
	require.Equal(t, 7, interval)
}

func TestFrequenciesCoversTable(t *testing.T) {
	require.Len(t, Frequencies(), len(frequencyTable))
	for _, f := range Frequencies() {
		_, ok := frequencyTable[f]
		require.True(t, ok, "label %q missing from table", f)
	}
}
