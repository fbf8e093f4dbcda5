// Package generator synthesizes plan inputs: a prioritized activity catalog
// and per-resource availability calendars at hourly slot granularity. It is
// an opaque data source as far as the engine is concerned; the engine only
// sees the document schemas.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ashishakkumar/resource-allocator/internal/availability"
	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Catalog produces n activities spread across the five types, shuffled and
// assigned priorities 1..n.
func (g *Generator) Catalog(n int) []plan.Activity {
	counts := map[plan.ActivityType]int{
		plan.TypeFitness:      int(float64(n) * 0.3),
		plan.TypeFood:         int(float64(n) * 0.25),
		plan.TypeMedication:   int(float64(n) * 0.2),
		plan.TypeTherapy:      int(float64(n) * 0.15),
		plan.TypeConsultation: int(float64(n) * 0.1),
	}
	types := []plan.ActivityType{
		plan.TypeFitness, plan.TypeFood, plan.TypeMedication,
		plan.TypeTherapy, plan.TypeConsultation,
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	for i := total; i < n; i++ {
		counts[types[g.rng.Intn(len(types))]]++
	}

	var catalog []plan.Activity
	for _, t := range types {
		for i := 0; i < counts[t]; i++ {
			catalog = append(catalog, g.activity(t))
		}
	}

	g.rng.Shuffle(len(catalog), func(i, j int) {
		catalog[i], catalog[j] = catalog[j], catalog[i]
	})
	for i := range catalog {
		catalog[i].Priority = i + 1
	}
	return catalog
}

func (g *Generator) activity(t plan.ActivityType) plan.Activity {
	name := choice(g.rng, activityNames[t])

	var duration int
	var details, facilitator string
	switch t {
	case plan.TypeFitness:
		duration = g.intBetween(30, 60)
		details = fmt.Sprintf("Session of %d minutes. Maintain HR between %d-%d bpm",
			duration, g.intBetween(110, 150), g.intBetween(160, 180))
		facilitator = choice(g.rng, facilitatorsByType[t])
	case plan.TypeFood:
		duration = g.intBetween(15, 30)
		details = fmt.Sprintf("Session of %d minutes. Consume %d %s",
			duration, g.intBetween(1, 4),
			choice(g.rng, []string{"serving(s)", "capsule(s)", "tablespoon(s)", "oz"}))
		facilitator = choice(g.rng, facilitatorsByType[t])
	case plan.TypeMedication:
		duration = g.intBetween(5, 10)
		details = fmt.Sprintf("Session of %d minutes. Take %d %s",
			duration, g.intBetween(1, 2),
			choice(g.rng, []string{"pill(s)", "capsule(s)", "dose(s)", "tablet(s)"}))
		facilitator = choice(g.rng, facilitatorsByType[t])
	case plan.TypeTherapy:
		duration = g.intBetween(30, 90)
		details = fmt.Sprintf("Session of %d minutes", duration)
		facilitator = choice(g.rng, facilitatorsByType[t])
	default: // consultation
		duration = g.intBetween(30, 60)
		details = fmt.Sprintf("Session of %d minutes", duration)
		facilitator = choice(g.rng, specialists)
	}

	a := plan.Activity{
		Name:            name,
		Type:            t,
		Frequency:       choice(g.rng, plan.Frequencies()),
		Details:         details,
		Facilitator:     facilitator,
		Location:        choice(g.rng, locations),
		DurationMinutes: duration,
	}
	a.BackupActivities = g.backups(t, name)
	a.Equipment = availability.RequiredEquipment(a)
	return a
}

// backups samples 1-3 alternate names of the same type.
func (g *Generator) backups(t plan.ActivityType, exclude string) []string {
	var pool []string
	for _, n := range activityNames[t] {
		if n != exclude {
			pool = append(pool, n)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	k := g.intBetween(1, 3)
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]string, k)
	copy(out, pool[:k])
	return out
}

// Availability builds all four resource calendars over the given span.
func (g *Generator) Availability(start time.Time, months int) *availability.Index {
	end := start.AddDate(0, 0, 30*months)

	idx := &availability.Index{
		Client:       make(availability.Calendar),
		Equipment:    make(map[string]availability.Calendar),
		Specialists:  make(map[string]availability.Calendar),
		AlliedHealth: make(map[string]availability.Calendar),
		DateRange: &availability.DateRange{
			Start: start.Format(plan.DateFormat),
			End:   end.Format(plan.DateFormat),
		},
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(plan.DateFormat)
		if g.rng.Float64() < 0.1 {
			idx.Client[key] = availability.Day{
				Reason: "Travel to " + choice(g.rng, travelDestinations),
			}
		} else {
			idx.Client[key] = availability.Day{
				Available:      true,
				AvailableHours: g.hourRange(g.intBetween(6, 9), g.intBetween(19, 22)),
			}
		}
	}

	for _, equipment := range equipmentNames {
		cal := make(availability.Calendar)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format(plan.DateFormat)
			if g.rng.Float64() < 0.05 {
				cal[key] = availability.Day{Reason: choice(g.rng, equipmentOutageReasons)}
			} else {
				cal[key] = availability.Day{
					Available:      true,
					AvailableHours: g.hourRange(g.intBetween(6, 10), g.intBetween(17, 22)),
				}
			}
		}
		idx.Equipment[equipment] = cal
	}

	for _, specialist := range specialists {
		idx.Specialists[specialist] = g.professionalCalendar(start, end, 0.7, 0.2, 8, 10, 16, 18)
	}
	for _, professional := range alliedHealth {
		idx.AlliedHealth[professional] = g.professionalCalendar(start, end, 0.8, 0.15, 7, 9, 16, 19)
	}

	return idx
}

// professionalCalendar models working hours with weekend gaps and occasional
// weekday absences.
func (g *Generator) professionalCalendar(start, end time.Time, weekendOff, weekdayOff float64, startLo, startHi, endLo, endHi int) availability.Calendar {
	cal := make(availability.Calendar)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(plan.DateFormat)
		weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		switch {
		case weekend && g.rng.Float64() < weekendOff:
			cal[key] = availability.Day{Reason: "Weekend - not working"}
		case !weekend && g.rng.Float64() < weekdayOff:
			cal[key] = availability.Day{Reason: choice(g.rng, absenceReasons)}
		default:
			cal[key] = availability.Day{
				Available:      true,
				AvailableHours: g.hourRange(g.intBetween(startLo, startHi), g.intBetween(endLo, endHi)),
			}
		}
	}
	return cal
}

// hourRange lists on-the-hour slots [from, to).
func (g *Generator) hourRange(from, to int) []string {
	var hours []string
	for h := from; h < to; h++ {
		hours = append(hours, fmt.Sprintf("%02d:00", h))
	}
	return hours
}

func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func choice[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.Intn(len(xs))]
}
