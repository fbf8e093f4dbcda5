package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ActivityType is the closed set of activity categories the engine knows
// how to place.
type ActivityType string

const (
	TypeFitness      ActivityType = "fitness"
	TypeFood         ActivityType = "food"
	TypeMedication   ActivityType = "medication"
	TypeTherapy      ActivityType = "therapy"
	TypeConsultation ActivityType = "consultation"
)

var activityTypes = map[ActivityType]bool{
	TypeFitness:      true,
	TypeFood:         true,
	TypeMedication:   true,
	TypeTherapy:      true,
	TypeConsultation: true,
}

func (t ActivityType) Valid() bool { return activityTypes[t] }

// DefaultDurationMinutes is used when an activity carries no usable duration.
const DefaultDurationMinutes = 60

// Activity is a recurring template from the action plan catalog. The engine
// never mutates catalog entries; scheduling produces derived copies.
type Activity struct {
	Name             string       `json:"name"`
	Type             ActivityType `json:"type"`
	Frequency        Frequency    `json:"frequency"`
	Details          string       `json:"details"`
	Facilitator      string       `json:"facilitator"`
	Location         string       `json:"location"`
	Priority         int          `json:"priority"`
	BackupActivities []string     `json:"backup_activities"`
	Equipment        []string     `json:"equipment,omitempty"`
	DurationMinutes  int          `json:"duration_minutes"`
}

// Duration resolves the activity's duration in minutes. The numeric field is
// canonical; legacy records that only embed the duration in free text fall
// back to parsing "session of N minutes", then to the default.
func (a Activity) Duration() int {
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	if n, ok := ParseSessionMinutes(a.Details); ok {
		return n
	}
	return DefaultDurationMinutes
}

// ParseSessionMinutes extracts N from details text like
// "Session of 45 minutes. Maintain HR ...". Case-insensitive.
func ParseSessionMinutes(details string) (int, bool) {
	lower := strings.ToLower(details)
	_, rest, found := strings.Cut(lower, "session of ")
	if !found {
		return 0, false
	}
	numText, _, found := strings.Cut(rest, " minutes")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(numText))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Backup returns a copy of the activity with the name swapped for the given
// backup candidate. Type, facilitator, and duration carry over, since backups
// are alternates within the same type. The declared equipment list does not:
// it describes the primary, and the backup's requirement is re-inferred from
// its own name at availability-check time.
func (a Activity) Backup(name string) Activity {
	b := a
	b.Name = name
	b.Equipment = nil
	return b
}

// Validate reports the first structural problem with a catalog entry. The
// engine has no recovery path for malformed input, so loading fails fast.
func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("activity has no name")
	}
	if !a.Type.Valid() {
		return fmt.Errorf("activity %q: unknown type %q", a.Name, a.Type)
	}
	if a.Frequency == "" {
		return fmt.Errorf("activity %q: missing frequency", a.Name)
	}
	if a.Facilitator == "" {
		return fmt.Errorf("activity %q: missing facilitator", a.Name)
	}
	if a.Priority < 1 {
		return fmt.Errorf("activity %q: priority must be >= 1, got %d", a.Name, a.Priority)
	}
	return nil
}

// LoadCatalog reads and validates an activity catalog JSON document.
func LoadCatalog(path string) ([]Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var catalog []Activity
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	for i, a := range catalog {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
	}
	return catalog, nil
}

// SaveCatalog writes the catalog as indented JSON.
func SaveCatalog(catalog []Activity, path string) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
