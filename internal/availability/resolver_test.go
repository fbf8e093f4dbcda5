package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

const testDate = "2026-03-02"

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(plan.DateFormat, s)
	require.NoError(t, err)
	return d
}

func testIndex() *Index {
	return &Index{
		Client: Calendar{
			testDate: {Available: true, AvailableHours: []string{"07:00", "08:00", "09:00", "10:00", "18:00"}},
		},
		Equipment: map[string]Calendar{
			"Treadmill": {testDate: {Available: true, AvailableHours: []string{"08:00", "09:00", "18:00"}}},
			"Yoga Mat":  {testDate: {Available: true, AvailableHours: []string{"07:00"}}},
		},
		Specialists: map[string]Calendar{
			"Cardiologist": {testDate: {Available: true, AvailableHours: []string{"09:00", "10:00"}}},
		},
		AlliedHealth: map[string]Calendar{
			"Personal Trainer": {testDate: {Available: true, AvailableHours: []string{"08:00", "09:00"}}},
		},
	}
}

func TestRequiredEquipmentDeclaredListWins(t *testing.T) {
	a := plan.Activity{Name: "Strength Training", Type: plan.TypeFitness, Equipment: []string{"Kettlebell"}}
	require.Equal(t, []string{"Kettlebell"}, RequiredEquipment(a))
}

func TestRequiredEquipmentKeywordFallback(t *testing.T) {
	tests := []struct {
		name string
		typ  plan.ActivityType
		want []string
	}{
		{"Strength Training", plan.TypeFitness, []string{"Weight Bench", "Dumbbells"}},
		{"Morning Running Drill", plan.TypeFitness, []string{"Treadmill"}},
		{"Indoor Cycling", plan.TypeFitness, []string{"Stationary Bike"}},
		{"Evening Yoga", plan.TypeFitness, []string{"Yoga Mat"}},
		{"Sauna Session", plan.TypeTherapy, []string{"Sauna"}},
		{"Ice Bath Recovery", plan.TypeTherapy, []string{"Ice Bath Tub"}},
		{"Deep Tissue Massage", plan.TypeTherapy, []string{"Massage Table"}},
		{"Meditation", plan.TypeTherapy, nil},
		{"Breakfast", plan.TypeFood, nil},
	}
	for _, tt := range tests {
		a := plan.Activity{Name: tt.name, Type: tt.typ}
		require.Equal(t, tt.want, RequiredEquipment(a), "activity %q", tt.name)
	}
}

func TestResolveIntersectsAllResources(t *testing.T) {
	r := NewResolver(testIndex())
	a := plan.Activity{
		Name:        "Cardio Run",
		Type:        plan.TypeFitness,
		Facilitator: "Personal Trainer",
		Equipment:   []string{"Treadmill"},
	}

	ok, hours := r.Resolve(mustDate(t, testDate), a)
	require.True(t, ok)
	require.Equal(t, []string{"08:00", "09:00"}, hours)
}

func TestResolveHoursAreSubsetOfClient(t *testing.T) {
	idx := testIndex()
	r := NewResolver(idx)
	a := plan.Activity{Name: "Cardio Run", Type: plan.TypeFitness, Facilitator: "Personal Trainer", Equipment: []string{"Treadmill"}}

	_, hours := r.Resolve(mustDate(t, testDate), a)
	client := make(map[string]bool)
	for _, h := range idx.Client[testDate].AvailableHours {
		client[h] = true
	}
	for _, h := range hours {
		require.True(t, client[h], "hour %s not in client availability", h)
	}
}

func TestResolveClientUnavailable(t *testing.T) {
	idx := testIndex()
	idx.Client[testDate] = Day{Reason: "Travel to Rome"}
	r := NewResolver(idx)

	ok, hours := r.Resolve(mustDate(t, testDate), plan.Activity{Name: "Walk", Type: plan.TypeFitness, Facilitator: "Nobody"})
	require.False(t, ok)
	require.Nil(t, hours)
}

func TestResolveSpecialistTakesPrecedence(t *testing.T) {
	idx := testIndex()
	// Same name in both sections: the specialist calendar must win.
	idx.AlliedHealth["Cardiologist"] = Calendar{testDate: {Available: true, AvailableHours: []string{"07:00"}}}
	r := NewResolver(idx)

	a := plan.Activity{Name: "Heart Checkup", Type: plan.TypeConsultation, Facilitator: "Cardiologist"}
	ok, hours := r.Resolve(mustDate(t, testDate), a)
	require.True(t, ok)
	require.Equal(t, []string{"09:00", "10:00"}, hours)
}

func TestResolveFacilitatorUnavailable(t *testing.T) {
	idx := testIndex()
	idx.Specialists["Cardiologist"][testDate] = Day{Reason: "Conference"}
	r := NewResolver(idx)

	ok, _ := r.Resolve(mustDate(t, testDate), plan.Activity{Name: "Heart Checkup", Type: plan.TypeConsultation, Facilitator: "Cardiologist"})
	require.False(t, ok)
}

func TestResolveUntrackedFacilitatorOnlyClientGates(t *testing.T) {
	r := NewResolver(testIndex())
	a := plan.Activity{Name: "Breakfast", Type: plan.TypeFood, Facilitator: "Nutritionist Plan"}

	ok, hours := r.Resolve(mustDate(t, testDate), a)
	require.True(t, ok)
	require.Equal(t, []string{"07:00", "08:00", "09:00", "10:00", "18:00"}, hours)
}

func TestResolveEquipmentAbsentFromIndexFails(t *testing.T) {
	r := NewResolver(testIndex())
	a := plan.Activity{Name: "Rowing", Type: plan.TypeFitness, Facilitator: "Personal Trainer", Equipment: []string{"Rowing Machine"}}

	ok, _ := r.Resolve(mustDate(t, testDate), a)
	require.False(t, ok)
}

func TestResolveEmptyIntersectionFails(t *testing.T) {
	idx := testIndex()
	idx.Equipment["Treadmill"][testDate] = Day{Available: true, AvailableHours: []string{"05:00"}}
	r := NewResolver(idx)

	a := plan.Activity{Name: "Cardio Run", Type: plan.TypeFitness, Facilitator: "Personal Trainer", Equipment: []string{"Treadmill"}}
	ok, hours := r.Resolve(mustDate(t, testDate), a)
	require.False(t, ok)
	require.Nil(t, hours)
}

func TestIntersectPreservesBaseOrder(t *testing.T) {
	base := []string{"10:00", "08:00", "09:00"}
	out := intersect(base, [][]string{{"08:00", "09:00", "10:00"}})
	require.Equal(t, []string{"10:00", "08:00", "09:00"}, out)
}
