package scheduler

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// slotBuffer is the margin marked as occupied on both sides of a placed
// activity when filtering candidate hours.
const slotBuffer = 15

// occupiedSlots marks every 15-minute-aligned timestamp covered by the
// already-placed activities on a date, including the buffer on both sides.
func occupiedSlots(booked []plan.ScheduledActivity) map[string]bool {
	occupied := make(map[string]bool)
	for _, sa := range booked {
		start, ok := plan.ParseClock(sa.Time)
		if !ok {
			continue
		}
		from := start - slotBuffer
		to := start + sa.Duration() + slotBuffer
		for m := from; m < to; m += 15 {
			if m < 0 {
				continue
			}
			occupied[fmt.Sprintf("%02d:%02d", m/60, m%60)] = true
		}
	}
	return occupied
}

// selectSlot picks a start time from the available hours, honoring what is
// already booked on the date and the activity type's time-of-day preference.
// Within the chosen eligible set the pick is uniformly random; randomness is
// policy (it avoids deterministic clustering), so the source is injected.
// Returns ok=false when no hour survives filtering.
func selectSlot(rng *rand.Rand, hours []string, a plan.Activity, booked []plan.ScheduledActivity) (string, bool) {
	if len(hours) == 0 {
		return "", false
	}

	occupied := occupiedSlots(booked)
	var filtered []string
	for _, h := range hours {
		if !occupied[h] {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) == 0 {
		return "", false
	}

	var morning, afternoon, evening []string
	for _, h := range filtered {
		switch hr := plan.ClockHour(h); {
		case hr < 12:
			morning = append(morning, h)
		case hr < 17:
			afternoon = append(afternoon, h)
		default:
			evening = append(evening, h)
		}
	}

	name := strings.ToLower(a.Name)

	switch a.Type {
	case plan.TypeFitness:
		if preferred := append(append([]string{}, morning...), evening...); len(preferred) > 0 {
			return pick(rng, preferred), true
		}

	case plan.TypeFood:
		switch {
		case strings.Contains(name, "breakfast") && len(morning) > 0:
			if early := hoursBefore(morning, 9); len(early) > 0 {
				return pick(rng, early), true
			}
			return pick(rng, morning), true
		case strings.Contains(name, "lunch") && len(afternoon) > 0:
			if midday := hoursBetween(afternoon, 11, 14); len(midday) > 0 {
				return pick(rng, midday), true
			}
			return pick(rng, afternoon), true
		case strings.Contains(name, "dinner") && len(evening) > 0:
			if early := hoursBetween(evening, 17, 20); len(early) > 0 {
				return pick(rng, early), true
			}
			return pick(rng, evening), true
		case len(morning) > 0:
			// Supplements and other food items default to the morning.
			return pick(rng, morning), true
		}

	case plan.TypeMedication:
		sleepAid := strings.Contains(name, "sleep")
		switch {
		case len(morning) > 0 && !sleepAid:
			if early := hoursBefore(morning, 9); len(early) > 0 {
				return pick(rng, early), true
			}
			return pick(rng, morning), true
		case len(evening) > 0 && sleepAid:
			if late := hoursFrom(evening, 20); len(late) > 0 {
				return pick(rng, late), true
			}
			return pick(rng, evening), true
		}

	case plan.TypeTherapy:
		if len(afternoon) > 0 {
			return pick(rng, afternoon), true
		}
		if len(morning) > 0 {
			return pick(rng, morning), true
		}

	case plan.TypeConsultation:
		if business := hoursBetween(filtered, 9, 17); len(business) > 0 {
			return pick(rng, business), true
		}
	}

	return pick(rng, filtered), true
}

func pick(rng *rand.Rand, hours []string) string {
	return hours[rng.Intn(len(hours))]
}

func hoursBefore(hours []string, hour int) []string {
	return hoursBetween(hours, 0, hour)
}

func hoursFrom(hours []string, hour int) []string {
	return hoursBetween(hours, hour, 24)
}

func hoursBetween(hours []string, from, to int) []string {
	var out []string
	for _, h := range hours {
		if hr := plan.ClockHour(h); hr >= from && hr < to {
			out = append(out, h)
		}
	}
	return out
}
