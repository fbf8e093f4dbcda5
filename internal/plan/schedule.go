package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// DateFormat is the calendar-date key format used across all documents.
const DateFormat = "2006-01-02"

// ScheduledActivity is a point-in-time instantiation of an Activity, created
// only by the allocation loop and never mutated afterwards.
type ScheduledActivity struct {
	Activity
	Time             string `json:"time"`
	IsBackup         bool   `json:"is_backup"`
	OriginalActivity string `json:"original_activity,omitempty"`
}

// StartMinutes returns the scheduled start as minutes after midnight.
func (s ScheduledActivity) StartMinutes() int {
	m, _ := ParseClock(s.Time)
	return m
}

// ParseClock converts "HH:MM" to minutes after midnight.
func ParseClock(clock string) (int, bool) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(clock[:2])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(clock[3:])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ClockHour returns the hour component of "HH:MM", or -1 if malformed.
func ClockHour(clock string) int {
	m, ok := ParseClock(clock)
	if !ok {
		return -1
	}
	return m / 60
}

// Schedule maps a date ("YYYY-MM-DD") to the activities placed on it,
// ordered by time ascending once finalized.
type Schedule map[string][]ScheduledActivity

// Dates returns the schedule's dates in ascending order.
func (s Schedule) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// SortTimes orders every day's activities by start time ascending.
func (s Schedule) SortTimes() {
	for _, day := range s {
		sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })
	}
}

// Total counts all placed activity instances.
func (s Schedule) Total() int {
	n := 0
	for _, day := range s {
		n += len(day)
	}
	return n
}

// BackupCount counts placed instances that are backup substitutions.
func (s Schedule) BackupCount() int {
	n := 0
	for _, day := range s {
		for _, a := range day {
			if a.IsBackup {
				n++
			}
		}
	}
	return n
}

// HourDistribution tallies placements by start hour.
func (s Schedule) HourDistribution() map[int]int {
	dist := make(map[int]int)
	for _, day := range s {
		for _, a := range day {
			if h := ClockHour(a.Time); h >= 0 {
				dist[h]++
			}
		}
	}
	return dist
}

// Save writes the schedule document as indented JSON.
func (s Schedule) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schedule: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSchedule reads a schedule document back from disk.
func LoadSchedule(path string) (Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}
	return s, nil
}

// Conflict reports two activities whose buffered intervals overlap on a date.
type Conflict struct {
	Date      string `json:"date"`
	Activity1 string `json:"activity1"`
	Time1     string `json:"time1"`
	Duration1 int    `json:"duration1"`
	Activity2 string `json:"activity2"`
	Time2     string `json:"time2"`
}
