package availability

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// Day is one resource's availability record for one calendar date.
type Day struct {
	Available      bool     `json:"available"`
	AvailableHours []string `json:"available_hours,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

// Calendar maps "YYYY-MM-DD" dates to availability records for one resource.
type Calendar map[string]Day

// DateRange is the optional explicit span carried by generated documents.
type DateRange struct {
	Start string `json:"start_date"`
	End   string `json:"end_date"`
}

// Index holds the four independently authored resource calendars. A resource
// absent from its section for a date is treated as unavailable.
type Index struct {
	Client       Calendar            `json:"client_schedule"`
	Equipment    map[string]Calendar `json:"equipment_availability"`
	Specialists  map[string]Calendar `json:"specialist_availability"`
	AlliedHealth map[string]Calendar `json:"allied_health_availability"`
	DateRange    *DateRange          `json:"date_range,omitempty"`
}

// Load reads and validates an availability document. The client section must
// be present with parseable date keys; the engine derives the plan span from
// it and cannot recover from a structurally empty document.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading availability data: %w", err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing availability data: %w", err)
	}
	if err := idx.validate(); err != nil {
		return nil, err
	}
	return &idx, nil
}

func (ix *Index) validate() error {
	if len(ix.Client) == 0 {
		return fmt.Errorf("availability data has no client_schedule section")
	}
	for date := range ix.Client {
		if _, err := time.Parse(plan.DateFormat, date); err != nil {
			return fmt.Errorf("client_schedule: bad date key %q: %w", date, err)
		}
	}
	return nil
}

// Save writes the index as indented JSON.
func (ix *Index) Save(path string) error {
	data, err := json.MarshalIndent(ix, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling availability data: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Span returns the first and last dates of the client calendar, which define
// the plan's date range.
func (ix *Index) Span() (start, end time.Time) {
	first := true
	for date := range ix.Client {
		t, err := time.Parse(plan.DateFormat, date)
		if err != nil {
			continue
		}
		if first {
			start, end = t, t
			first = false
			continue
		}
		if t.Before(start) {
			start = t
		}
		if t.After(end) {
			end = t
		}
	}
	return start, end
}

// ClientDay returns the client's record for a date. Missing dates count as
// unavailable.
func (ix *Index) ClientDay(date string) (Day, bool) {
	d, ok := ix.Client[date]
	return d, ok
}
