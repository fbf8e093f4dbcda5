package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashishakkumar/resource-allocator/internal/availability"
	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// Long-interval activities (quarterly and up) that exceed the plan span are
// still attempted once when important enough.
const (
	longIntervalDays  = 90
	importanceCutoff  = 20
	longIntervalScope = 30 // placement window, days from plan start
)

// Allocator runs a single forward greedy pass over the catalog in priority
// order. It is not a constraint solver: placed activities are never revisited,
// and an activity that cannot be placed simply yields fewer occurrences.
type Allocator struct {
	catalog  []plan.Activity
	resolver *availability.Resolver
	start    time.Time
	end      time.Time
	rng      *rand.Rand
	log      zerolog.Logger
}

// New builds an allocator over the catalog and availability index. The plan
// span is the availability document's client date range. The seed makes runs
// reproducible.
func New(catalog []plan.Activity, idx *availability.Index, seed int64, log zerolog.Logger) *Allocator {
	start, end := idx.Span()
	return &Allocator{
		catalog:  catalog,
		resolver: availability.NewResolver(idx),
		start:    start,
		end:      end,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
	}
}

// Allocate produces a fresh schedule. Each call re-runs the whole greedy
// pass; with the same inputs results differ only through the random source.
func (al *Allocator) Allocate() plan.Schedule {
	activities := make([]plan.Activity, len(al.catalog))
	copy(activities, al.catalog)
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Priority < activities[j].Priority
	})

	schedule := make(plan.Schedule)
	daysInPeriod := int(al.end.Sub(al.start).Hours()/24) + 1

	for _, activity := range activities {
		occurrences, intervalDays := activity.Frequency.Occurrences()
		totalOccurrences := (daysInPeriod / intervalDays) * occurrences

		if intervalDays > daysInPeriod {
			al.placeLongInterval(schedule, activity, intervalDays, daysInPeriod)
			continue
		}

		scheduled := 0
		for offset := 0; offset < daysInPeriod && scheduled < totalOccurrences; offset++ {
			if offset%intervalDays != 0 {
				continue
			}
			date := al.start.AddDate(0, 0, offset)

			dailyTarget := 1
			if intervalDays == 1 {
				dailyTarget = occurrences
			}
			scheduled += al.placeDay(schedule, activity, date, dailyTarget)
		}

		if scheduled < totalOccurrences {
			al.log.Debug().
				Str("activity", activity.Name).
				Int("placed", scheduled).
				Int("wanted", totalOccurrences).
				Msg("activity under-scheduled")
		}
	}

	schedule.SortTimes()
	return schedule
}

// placeLongInterval handles activities whose interval exceeds the plan span:
// quarterly-or-rarer activities with priority within the importance cutoff
// get a single attempt on a random date in the opening window. The candidate
// date itself anchors slot selection.
func (al *Allocator) placeLongInterval(schedule plan.Schedule, activity plan.Activity, intervalDays, daysInPeriod int) {
	if intervalDays < longIntervalDays || activity.Priority > importanceCutoff {
		return
	}

	window := longIntervalScope
	if daysInPeriod-1 < window {
		window = daysInPeriod - 1
	}
	date := al.start.AddDate(0, 0, al.rng.Intn(window+1))

	ok, hours := al.resolver.Resolve(date, activity)
	if !ok {
		return
	}
	dateStr := date.Format(plan.DateFormat)
	slot, ok := selectSlot(al.rng, hours, activity, schedule[dateStr])
	if !ok {
		return
	}
	schedule[dateStr] = append(schedule[dateStr], newPlacement(activity, slot))
}

// placeDay attempts up to target placements of the activity on one date:
// first the primary, then backups in declared order until the target is met
// or a backup fails. Returns the number of placements made.
func (al *Allocator) placeDay(schedule plan.Schedule, activity plan.Activity, date time.Time, target int) int {
	dateStr := date.Format(plan.DateFormat)
	placed := 0

	if ok, hours := al.resolver.Resolve(date, activity); ok {
		if slot, ok := selectSlot(al.rng, hours, activity, schedule[dateStr]); ok {
			schedule[dateStr] = append(schedule[dateStr], newPlacement(activity, slot))
			placed++
		}
	}

	for placed < target {
		backup, ok := al.findBackup(date, activity)
		if !ok {
			break
		}
		avail, hours := al.resolver.Resolve(date, backup)
		if !avail {
			break
		}
		slot, ok := selectSlot(al.rng, hours, backup, schedule[dateStr])
		if !ok {
			break
		}
		sa := newPlacement(backup, slot)
		sa.IsBackup = true
		sa.OriginalActivity = activity.Name
		schedule[dateStr] = append(schedule[dateStr], sa)
		placed++
	}

	return placed
}

// findBackup walks the declared backup list in order and returns the first
// candidate whose availability check passes. Declaration order wins over any
// notion of a "best" backup.
func (al *Allocator) findBackup(date time.Time, activity plan.Activity) (plan.Activity, bool) {
	for _, name := range activity.BackupActivities {
		candidate := activity.Backup(name)
		if ok, _ := al.resolver.Resolve(date, candidate); ok {
			return candidate, true
		}
	}
	return plan.Activity{}, false
}

func newPlacement(activity plan.Activity, slot string) plan.ScheduledActivity {
	sa := plan.ScheduledActivity{Activity: activity, Time: slot}
	sa.DurationMinutes = activity.Duration()
	return sa
}

// Build allocates, validates, and on residual conflicts retries the whole
// allocation exactly once. The retry is best effort: the randomized slot
// choice may still produce a conflicting arrangement, and the design does not
// loop further.
func (al *Allocator) Build() (plan.Schedule, []plan.Conflict) {
	schedule := al.Allocate()
	conflicts := Validate(schedule)
	if len(conflicts) > 0 {
		al.log.Warn().Int("conflicts", len(conflicts)).Msg("temporal conflicts detected, regenerating schedule")
		schedule = al.Allocate()
		conflicts = Validate(schedule)
	}
	return schedule, conflicts
}
