// Package calendar classifies plan days for rendering and exports the
// finalized schedule as an iCalendar document.
package calendar

import (
	"sort"

	"github.com/ashishakkumar/resource-allocator/internal/availability"
	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// DayStatus is the rendering classification of one plan date.
type DayStatus string

const (
	StatusScheduled               DayStatus = "Scheduled"
	StatusClientUnavailable       DayStatus = "Client Unavailable"
	StatusSpecialistUnavailable   DayStatus = "Specialist Unavailable"
	StatusAlliedHealthUnavailable DayStatus = "Allied Health Professional Unavailable"
	StatusEquipmentUnavailable    DayStatus = "Equipment Unavailable"
	StatusRestDay                 DayStatus = "Rest Day"
)

// DayReport is the classification plus its human-readable reason.
type DayReport struct {
	Status DayStatus
	Reason string
}

// Classify determines the status of a date. Precedence when multiple reasons
// apply: scheduled activities, then client unavailability, then specialist,
// allied health, and equipment gaps, and finally a rest day.
func Classify(date string, schedule plan.Schedule, idx *availability.Index) DayReport {
	if len(schedule[date]) > 0 {
		return DayReport{Status: StatusScheduled}
	}

	if day, ok := idx.Client[date]; ok && !day.Available {
		return DayReport{Status: StatusClientUnavailable, Reason: day.Reason}
	}

	if name, ok := firstUnavailable(idx.Specialists, date); ok {
		return DayReport{Status: StatusSpecialistUnavailable, Reason: name + " unavailable"}
	}
	if name, ok := firstUnavailable(idx.AlliedHealth, date); ok {
		return DayReport{Status: StatusAlliedHealthUnavailable, Reason: name + " unavailable"}
	}
	if name, ok := firstUnavailable(idx.Equipment, date); ok {
		return DayReport{Status: StatusEquipmentUnavailable, Reason: name + " unavailable"}
	}

	return DayReport{Status: StatusRestDay, Reason: "No activities scheduled for this day"}
}

// firstUnavailable scans a resource section in name order and reports the
// first resource marked unavailable on the date. Name order keeps the report
// deterministic across runs.
func firstUnavailable(section map[string]availability.Calendar, date string) (string, bool) {
	names := make([]string, 0, len(section))
	for name := range section {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if day, ok := section[name][date]; ok && !day.Available {
			return name, true
		}
	}
	return "", false
}
