package plan

// Frequency is a label from the fixed scheduling vocabulary.
type Frequency string

const (
	FreqDaily           Frequency = "Daily"
	FreqTwiceDaily      Frequency = "Twice daily"
	FreqThreeTimesDaily Frequency = "Three times daily"
	FreqEveryOtherDay   Frequency = "Every other day"
	FreqTwiceAWeek      Frequency = "Twice a week"
	FreqThreeTimesAWeek Frequency = "Three times a week"
	FreqWeekly          Frequency = "Weekly"
	FreqBiweekly        Frequency = "Biweekly"
	FreqMonthly         Frequency = "Monthly"
	FreqEvery3Months    Frequency = "Every 3 months"
	FreqEvery6Months    Frequency = "Every 6 months"
	FreqYearly          Frequency = "Yearly"
)

var frequencyTable = map[Frequency]struct{ occurrences, intervalDays int }{
	FreqDaily:           {1, 1},
	FreqTwiceDaily:      {2, 1},
	FreqThreeTimesDaily: {3, 1},
	FreqEveryOtherDay:   {1, 2},
	FreqTwiceAWeek:      {2, 7},
	FreqThreeTimesAWeek: {3, 7},
	FreqWeekly:          {1, 7},
	FreqBiweekly:        {1, 14},
	FreqMonthly:         {1, 30},
	FreqEvery3Months:    {1, 90},
	FreqEvery6Months:    {1, 180},
	FreqYearly:          {1, 365},
}

// Frequencies lists all recognized labels.
func Frequencies() []Frequency {
	return []Frequency{
		FreqDaily, FreqTwiceDaily, FreqThreeTimesDaily,
		FreqEveryOtherDay, FreqTwiceAWeek, FreqThreeTimesAWeek,
		FreqWeekly, FreqBiweekly, FreqMonthly,
		FreqEvery3Months, FreqEvery6Months, FreqYearly,
	}
}

// Occurrences maps the label to (occurrences per interval, interval in days).
// Unrecognized labels deliberately fall back to weekly rather than failing.
func (f Frequency) Occurrences() (occurrences, intervalDays int) {
	if e, ok := frequencyTable[f]; ok {
		return e.occurrences, e.intervalDays
	}
	return 1, 7
}
