package scheduler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

func booked(clock string, minutes int) plan.ScheduledActivity {
	sa := plan.ScheduledActivity{Time: clock}
	sa.Name = "Booked"
	sa.DurationMinutes = minutes
	return sa
}

func TestOccupiedSlotsBuffersBothSides(t *testing.T) {
	occupied := occupiedSlots([]plan.ScheduledActivity{booked("08:00", 30)})

	// Buffered interval is [07:45, 08:45).
	require.True(t, occupied["07:45"])
	require.True(t, occupied["08:00"])
	require.True(t, occupied["08:30"])
	require.False(t, occupied["07:30"])
	require.False(t, occupied["08:45"])
}

func TestOccupiedSlotsClampsAtMidnight(t *testing.T) {
	occupied := occupiedSlots([]plan.ScheduledActivity{booked("00:00", 30)})
	require.True(t, occupied["00:00"])
	require.True(t, occupied["00:30"])
	require.False(t, occupied["23:45"])
}

func TestSelectSlotNeverReturnsOccupiedHour(t *testing.T) {
	hours := []string{"07:00", "08:00", "09:00", "10:00"}
	day := []plan.ScheduledActivity{booked("08:00", 30)}
	a := plan.Activity{Name: "Walk", Type: plan.TypeFitness}

	for seed := int64(0); seed < 50; seed++ {
		slot, ok := selectSlot(rand.New(rand.NewSource(seed)), hours, a, day)
		require.True(t, ok)
		require.NotEqual(t, "08:00", slot, "seed %d picked the occupied hour", seed)
	}
}

func TestSelectSlotAllOccupied(t *testing.T) {
	hours := []string{"08:00"}
	day := []plan.ScheduledActivity{booked("08:00", 30)}

	_, ok := selectSlot(rand.New(rand.NewSource(1)), hours, plan.Activity{Type: plan.TypeFitness}, day)
	require.False(t, ok)
}

func TestSelectSlotNoHours(t *testing.T) {
	_, ok := selectSlot(rand.New(rand.NewSource(1)), nil, plan.Activity{Type: plan.TypeFitness}, nil)
	require.False(t, ok)
}

func TestSelectSlotFitnessAvoidsAfternoon(t *testing.T) {
	hours := []string{"07:00", "13:00", "14:00", "19:00"}
	a := plan.Activity{Name: "Strength Training", Type: plan.TypeFitness}

	for seed := int64(0); seed < 50; seed++ {
		slot, ok := selectSlot(rand.New(rand.NewSource(seed)), hours, a, nil)
		require.True(t, ok)
		require.Contains(t, []string{"07:00", "19:00"}, slot)
	}
}

func TestSelectSlotBreakfastBeforeNine(t *testing.T) {
	hours := []string{"07:00", "08:00", "10:00", "11:00"}
	a := plan.Activity{Name: "Protein Breakfast", Type: plan.TypeFood}

	for seed := int64(0); seed < 50; seed++ {
		slot, _ := selectSlot(rand.New(rand.NewSource(seed)), hours, a, nil)
		require.Contains(t, []string{"07:00", "08:00"}, slot)
	}
}

func TestSelectSlotDinnerEarlyEvening(t *testing.T) {
	hours := []string{"08:00", "18:00", "19:00", "22:00"}
	a := plan.Activity{Name: "Light Dinner", Type: plan.TypeFood}

	for seed := int64(0); seed < 50; seed++ {
		slot, _ := selectSlot(rand.New(rand.NewSource(seed)), hours, a, nil)
		require.Contains(t, []string{"18:00", "19:00"}, slot)
	}
}

func TestSelectSlotSleepMedicationLate(t *testing.T) {
	hours := []string{"18:00", "20:00", "21:00"}
	a := plan.Activity{Name: "Sleep Aid", Type: plan.TypeMedication}

	for seed := int64(0); seed < 50; seed++ {
		slot, _ := selectSlot(rand.New(rand.NewSource(seed)), hours, a, nil)
		require.Contains(t, []string{"20:00", "21:00"}, slot)
	}
}

func TestSelectSlotTherapyPrefersAfternoon(t *testing.T) {
	hours := []string{"08:00", "14:00", "15:00", "19:00"}
	a := plan.Activity{Name: "Counseling Session", Type: plan.TypeTherapy}

	for seed := int64(0); seed < 50; seed++ {
		slot, _ := selectSlot(rand.New(rand.NewSource(seed)), hours, a, nil)
		require.Contains(t, []string{"14:00", "15:00"}, slot)
	}
}

func TestSelectSlotConsultationBusinessHours(t *testing.T) {
	hours := []string{"07:00", "10:00", "14:00", "19:00"}
	a := plan.Activity{Name: "Annual Physical Examination", Type: plan.TypeConsultation}

	for seed := int64(0); seed < 50; seed++ {
		slot, _ := selectSlot(rand.New(rand.NewSource(seed)), hours, a, nil)
		require.Contains(t, []string{"10:00", "14:00"}, slot)
	}
}

func TestSelectSlotGenericFallback(t *testing.T) {
	// A therapy activity with only evening hours falls through to the
	// generic pick rather than failing.
	hours := []string{"19:00", "20:00"}
	a := plan.Activity{Name: "Counseling Session", Type: plan.TypeTherapy}

	slot, ok := selectSlot(rand.New(rand.NewSource(1)), hours, a, nil)
	require.True(t, ok)
	require.Contains(t, hours, slot)
}
