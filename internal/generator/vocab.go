package generator

import "github.com/ashishakkumar/resource-allocator/internal/plan"

// Fixed vocabularies for synthesizing realistic plan data.

var activityNames = map[plan.ActivityType][]string{
	plan.TypeFitness: {
		"High-intensity interval training", "Strength training", "Yoga", "Swimming",
		"Cycling", "Running", "Walking", "Pilates", "Tai Chi", "Eye exercises",
		"Balance training", "Flexibility training", "Core strengthening", "Cardio workout",
		"Circuit training", "Resistance band exercises", "Bodyweight exercises", "Functional training",
	},
	plan.TypeFood: {
		"Protein shake consumption", "Omega-3 supplement", "Probiotics", "Vitamin D",
		"Antioxidant-rich meal", "Anti-inflammatory diet meal", "Low-glycemic meal",
		"Mediterranean diet meal", "Intermittent fasting", "Ketogenic meal",
		"Plant-based meal", "High-fiber meal", "Low-sodium meal", "Calorie-restricted meal",
	},
	plan.TypeMedication: {
		"Blood pressure medication", "Cholesterol medication", "Thyroid medication",
		"Anti-inflammatory medication", "Sleep aid", "Vitamin B complex", "Vitamin C",
		"Magnesium supplement", "Calcium supplement", "Iron supplement",
		"Zinc supplement", "Melatonin", "Antihistamine", "Pain reliever",
	},
	plan.TypeTherapy: {
		"Sauna session", "Ice bath", "Cryotherapy", "Heat therapy", "Massage therapy",
		"Acupuncture", "Physical therapy", "Cognitive behavioral therapy",
		"Mindfulness meditation", "Deep breathing exercises", "Light therapy",
		"Hydrotherapy", "Float tank session", "Infrared therapy",
	},
	plan.TypeConsultation: {
		"Nutritionist consultation", "Personal trainer session", "Medical doctor checkup",
		"Blood test analysis", "Sleep specialist consultation", "Physical therapist consultation",
		"Mental health counseling", "Dermatologist consultation", "Ophthalmologist checkup",
		"Dentist checkup", "Endocrinologist consultation", "Cardiologist checkup",
		"Stress management counseling", "Wellness coach session",
	},
}

var facilitatorsByType = map[plan.ActivityType][]string{
	plan.TypeFitness:    {"Personal Trainer", "Self-administered", "Yoga Instructor", "Exercise Physiologist"},
	plan.TypeFood:       {"Nutritionist", "Dietitian", "Self-administered"},
	plan.TypeMedication: {"Medical Doctor", "Nurse", "Self-administered"},
	plan.TypeTherapy:    {"Massage Therapist", "Physiotherapist", "Mental Health Counselor", "Naturopath"},
	// Consultations are facilitated by a named specialist, drawn from specialists.
}

var locations = []string{
	"Home", "Gym", "Medical Clinic", "Wellness Center", "Park", "Swimming Pool",
	"Yoga Studio", "Physical Therapy Clinic", "Hospital", "Health Food Store",
	"Office", "Specialized Facility", "Community Center", "Tennis Court",
	"Track Field", "Beach", "Forest Trail", "Mountain Trail",
}

var equipmentNames = []string{
	"Treadmill", "Stationary Bike", "Rowing Machine", "Elliptical Trainer",
	"Weight Bench", "Dumbbells", "Resistance Bands", "Yoga Mat", "Foam Roller",
	"Medicine Ball", "Stability Ball", "Jump Rope", "Pull-up Bar", "Kettlebell",
	"TRX Suspension Trainer", "Sauna", "Ice Bath Tub", "Massage Table",
	"Blood Pressure Monitor", "Heart Rate Monitor", "Sleep Tracker", "Fitness Tracker",
}

var specialists = []string{
	"Dr. Smith (Cardiologist)", "Dr. Johnson (Endocrinologist)", "Dr. Williams (Neurologist)",
	"Dr. Brown (Gastroenterologist)", "Dr. Jones (Dermatologist)", "Dr. Miller (Ophthalmologist)",
	"Dr. Davis (Rheumatologist)", "Dr. Wilson (Orthopedist)", "Sarah Green (Nutritionist)",
	"Michael Taylor (Personal Trainer)", "Emma White (Physiotherapist)", "Daniel Black (Sleep Specialist)",
	"Olivia Thomas (Mental Health Counselor)", "Noah Martin (Massage Therapist)",
	"Sophia Anderson (Yoga Instructor)", "James Jackson (Exercise Physiologist)",
}

var alliedHealth = []string{
	"Emma Clark (Physiotherapist)", "John Lewis (Occupational Therapist)",
	"Jessica Moore (Dietitian)", "Ryan Thompson (Speech Therapist)",
	"Madison Harris (Podiatrist)", "Ethan Martinez (Chiropractor)",
	"Ava Robinson (Exercise Physiologist)", "William Lee (Psychologist)",
	"Sophia King (Social Worker)", "Lucas Scott (Audiologist)",
	"Mia Nelson (Art Therapist)", "Benjamin Baker (Respiratory Therapist)",
	"Charlotte Hill (Rehabilitation Counselor)", "Samuel Allen (Orthopedic Technician)",
}

var travelDestinations = []string{
	"New York", "Los Angeles", "Chicago", "Miami", "London", "Paris", "Tokyo",
	"Sydney", "Toronto", "Rome", "Barcelona", "Berlin", "Hong Kong", "Singapore",
	"Dubai", "Beijing", "Moscow", "Stockholm", "Zurich", "Vienna",
}

var equipmentOutageReasons = []string{
	"Maintenance", "In use by another client", "Not operational", "Being replaced",
}

var absenceReasons = []string{
	"Vacation", "Conference", "Other appointments", "Personal day",
}
