package availability

import (
	"strings"
	"time"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// equipmentKeywords maps activity-name keywords to the equipment the activity
// needs. Retained as a fallback for catalogs that predate the explicit
// equipment field.
var equipmentKeywords = map[plan.ActivityType][]struct {
	keywords  []string
	equipment []string
}{
	plan.TypeFitness: {
		{[]string{"strength", "weight"}, []string{"Weight Bench", "Dumbbells"}},
		{[]string{"cardio", "running"}, []string{"Treadmill"}},
		{[]string{"cycling"}, []string{"Stationary Bike"}},
		{[]string{"yoga", "pilates"}, []string{"Yoga Mat"}},
	},
	plan.TypeTherapy: {
		{[]string{"sauna"}, []string{"Sauna"}},
		{[]string{"ice bath"}, []string{"Ice Bath Tub"}},
		{[]string{"massage"}, []string{"Massage Table"}},
	},
}

// RequiredEquipment returns the equipment an activity needs: the declared
// list when present, otherwise the first keyword match for its type.
func RequiredEquipment(a plan.Activity) []string {
	if len(a.Equipment) > 0 {
		return a.Equipment
	}
	name := strings.ToLower(a.Name)
	for _, rule := range equipmentKeywords[a.Type] {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.equipment
			}
		}
	}
	return nil
}

// Resolver answers feasibility queries against a loaded Index.
type Resolver struct {
	idx *Index
}

func NewResolver(idx *Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve reports whether the activity can run on the date and, if so, the
// hours common to every constrained resource: the client, the facilitator
// when it has its own calendar, and every required equipment item. An empty
// intersection counts as unavailable.
func (r *Resolver) Resolve(date time.Time, a plan.Activity) (bool, []string) {
	dateStr := date.Format(plan.DateFormat)

	client, ok := r.idx.Client[dateStr]
	if !ok || !client.Available {
		return false, nil
	}

	var constraints [][]string

	if cal, ok := r.idx.Specialists[a.Facilitator]; ok {
		day, ok := cal[dateStr]
		if !ok || !day.Available {
			return false, nil
		}
		constraints = append(constraints, day.AvailableHours)
	} else if cal, ok := r.idx.AlliedHealth[a.Facilitator]; ok {
		day, ok := cal[dateStr]
		if !ok || !day.Available {
			return false, nil
		}
		constraints = append(constraints, day.AvailableHours)
	}

	for _, equipment := range RequiredEquipment(a) {
		cal, ok := r.idx.Equipment[equipment]
		if !ok {
			return false, nil
		}
		day, ok := cal[dateStr]
		if !ok || !day.Available {
			return false, nil
		}
		constraints = append(constraints, day.AvailableHours)
	}

	hours := intersect(client.AvailableHours, constraints)
	if len(hours) == 0 {
		return false, nil
	}
	return true, hours
}

// intersect keeps the base hours present in every constraint set, preserving
// the base ordering ("HH:MM" strings sort chronologically).
func intersect(base []string, constraints [][]string) []string {
	if len(constraints) == 0 {
		out := make([]string, len(base))
		copy(out, base)
		return out
	}

	sets := make([]map[string]bool, len(constraints))
	for i, c := range constraints {
		sets[i] = make(map[string]bool, len(c))
		for _, h := range c {
			sets[i][h] = true
		}
	}

	var out []string
outer:
	for _, h := range base {
		for _, set := range sets {
			if !set[h] {
				continue outer
			}
		}
		out = append(out, h)
	}
	return out
}
