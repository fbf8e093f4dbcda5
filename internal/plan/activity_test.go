package plan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func validActivity() Activity {
	return Activity{
		Name:             "Strength Training",
		Type:             TypeFitness,
		Frequency:        FreqThreeTimesAWeek,
		Details:          "Session of 45 minutes. Maintain HR between 120-160 bpm",
		Facilitator:      "Personal Trainer",
		Location:         "Gym",
		Priority:         3,
		BackupActivities: []string{"Bodyweight Exercises", "Resistance Band Workout"},
		Equipment:        []string{"Weight Bench", "Dumbbells"},
		DurationMinutes:  45,
	}
}

func TestParseSessionMinutes(t *testing.T) {
	tests := []struct {
		details string
		want    int
		ok      bool
	}{
		{"Session of 45 minutes. Maintain HR between 120-160 bpm", 45, true},
		{"session of 30 minutes", 30, true},
		{"Session of 5 minutes. Take 2 pill(s)", 5, true},
		{"Take 2 pills with water", 0, false},
		{"Session of many minutes", 0, false},
		{"Session of 45", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSessionMinutes(tt.details)
		require.Equal(t, tt.ok, ok, "details %q", tt.details)
		require.Equal(t, tt.want, got, "details %q", tt.details)
	}
}

func TestDurationPrefersNumericField(t *testing.T) {
	a := validActivity()
	a.DurationMinutes = 50
	a.Details = "Session of 45 minutes"
	require.Equal(t, 50, a.Duration())
}

func TestDurationFallsBackToDetails(t *testing.T) {
	a := validActivity()
	a.DurationMinutes = 0
	a.Details = "Session of 25 minutes"
	require.Equal(t, 25, a.Duration())
}

func TestDurationDefault(t *testing.T) {
	a := validActivity()
	a.DurationMinutes = 0
	a.Details = "Take medication with food"
	require.Equal(t, DefaultDurationMinutes, a.Duration())
}

func TestBackupKeepsTypeFacilitatorDuration(t *testing.T) {
	a := validActivity()
	b := a.Backup("Bodyweight Exercises")
	require.Equal(t, "Bodyweight Exercises", b.Name)
	require.Equal(t, a.Type, b.Type)
	require.Equal(t, a.Facilitator, b.Facilitator)
	require.Equal(t, a.Duration(), b.Duration())
}

func TestBackupDropsDeclaredEquipment(t *testing.T) {
	// The declared list describes the primary. A backup needs its own gear,
	// re-inferred from the backup name.
	a := validActivity()
	require.NotEmpty(t, a.Equipment)
	require.Nil(t, a.Backup("Bodyweight Exercises").Equipment)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validActivity().Validate())

	tests := []struct {
		name   string
		mutate func(*Activity)
	}{
		{"empty name", func(a *Activity) { a.Name = "" }},
		{"unknown type", func(a *Activity) { a.Type = "gardening" }},
		{"missing frequency", func(a *Activity) { a.Frequency = "" }},
		{"missing facilitator", func(a *Activity) { a.Facilitator = "" }},
		{"zero priority", func(a *Activity) { a.Priority = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validActivity()
			tt.mutate(&a)
			require.Error(t, a.Validate())
		})
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	catalog := []Activity{validActivity()}

	require.NoError(t, SaveCatalog(catalog, path))
	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Equal(t, catalog, loaded)
}

func TestLoadCatalogRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, SaveCatalog([]Activity{}, path))

	_, err := LoadCatalog(path)
	require.ErrorContains(t, err, "empty")
}

func TestLoadCatalogRejectsInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	bad := validActivity()
	bad.Type = "unknown"
	require.NoError(t, SaveCatalog([]Activity{bad}, path))

	_, err := LoadCatalog(path)
	require.ErrorContains(t, err, "unknown type")
}
