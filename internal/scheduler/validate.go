package scheduler

import (
	"sort"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// validateBuffer is the minimum gap required between consecutive activities.
// Distinct from the selector's 15-minute placement buffer.
const validateBuffer = 10

// Validate scans the finalized schedule for residual temporal conflicts.
// Only adjacent pairs in each day's time-sorted list are compared, so a
// long-running early activity can overlap a later one undetected when a
// short activity sits between them. That gap is a known property of this
// check, kept as-is.
func Validate(schedule plan.Schedule) []plan.Conflict {
	var conflicts []plan.Conflict

	for _, date := range schedule.Dates() {
		day := make([]plan.ScheduledActivity, len(schedule[date]))
		copy(day, schedule[date])
		sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })

		for i := 0; i+1 < len(day); i++ {
			current, next := day[i], day[i+1]
			duration := current.Duration()
			if current.StartMinutes()+duration+validateBuffer > next.StartMinutes() {
				conflicts = append(conflicts, plan.Conflict{
					Date:      date,
					Activity1: current.Name,
					Time1:     current.Time,
					Duration1: duration,
					Activity2: next.Name,
					Time2:     next.Time,
				})
			}
		}
	}

	return conflicts
}
