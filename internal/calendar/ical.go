package calendar

import (
	"fmt"
	"io"
	"time"

	ical "github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

// Export writes the schedule as an iCalendar document, one VEVENT per placed
// activity. Times are interpreted in the local timezone.
func Export(schedule plan.Schedule, w io.Writer) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//resalloc//resource-allocator//EN")

	now := time.Now()

	for _, date := range schedule.Dates() {
		for _, sa := range schedule[date] {
			start, err := time.ParseInLocation(plan.DateFormat+" 15:04", date+" "+sa.Time, time.Local)
			if err != nil {
				return fmt.Errorf("bad scheduled time %s %s: %w", date, sa.Time, err)
			}
			end := start.Add(time.Duration(sa.Duration()) * time.Minute)

			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, uuid.NewString())
			event.Props.SetDateTime(ical.PropDateTimeStamp, now)
			event.Props.SetDateTime(ical.PropDateTimeStart, start)
			event.Props.SetDateTime(ical.PropDateTimeEnd, end)
			event.Props.SetText(ical.PropSummary, summary(sa))
			if sa.Location != "" {
				event.Props.SetText(ical.PropLocation, sa.Location)
			}
			if sa.Details != "" {
				event.Props.SetText(ical.PropDescription, sa.Details)
			}
			cal.Children = append(cal.Children, event.Component)
		}
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func summary(sa plan.ScheduledActivity) string {
	if sa.IsBackup {
		return fmt.Sprintf("%s (backup for %s)", sa.Name, sa.OriginalActivity)
	}
	return sa.Name
}
