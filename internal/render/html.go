// Package render produces human-readable views of a finalized schedule: an
// HTML month-grid calendar and a styled terminal summary.
package render

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/ashishakkumar/resource-allocator/internal/availability"
	"github.com/ashishakkumar/resource-allocator/internal/calendar"
	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

type htmlActivity struct {
	Time      string
	Name      string
	Details   string
	TypeClass string
	IsBackup  bool
	Original  string
}

type htmlDay struct {
	Empty       bool
	Day         int
	Status      string
	Reason      string
	StatusClass string
	ShowStatus  bool
	Unavailable bool
	Activities  []htmlActivity
}

type htmlMonth struct {
	Title string
	Weeks [][]htmlDay
}

type htmlPage struct {
	Months []htmlMonth
}

// HTML writes a month-grid calendar covering the plan span, with per-type
// activity coloring and a status banner for days without placements.
func HTML(schedule plan.Schedule, idx *availability.Index, w io.Writer) error {
	start, end := idx.Span()
	if start.IsZero() {
		return fmt.Errorf("availability data has no dates")
	}

	var page htmlPage
	month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(last) {
		page.Months = append(page.Months, buildMonth(month, schedule, idx))
		month = month.AddDate(0, 1, 0)
	}

	tmpl, err := template.New("calendar").Parse(calendarTemplate)
	if err != nil {
		return fmt.Errorf("parsing calendar template: %w", err)
	}
	if err := tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("rendering calendar: %w", err)
	}
	return nil
}

func buildMonth(month time.Time, schedule plan.Schedule, idx *availability.Index) htmlMonth {
	m := htmlMonth{Title: month.Format("January 2006")}

	// Sunday-first grid.
	week := make([]htmlDay, 0, 7)
	for i := 0; i < int(month.Weekday()); i++ {
		week = append(week, htmlDay{Empty: true})
	}

	lastDay := month.AddDate(0, 1, -1).Day()
	for day := 1; day <= lastDay; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		week = append(week, buildDay(date, schedule, idx))
		if len(week) == 7 {
			m.Weeks = append(m.Weeks, week)
			week = make([]htmlDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, htmlDay{Empty: true})
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m
}

func buildDay(date time.Time, schedule plan.Schedule, idx *availability.Index) htmlDay {
	key := date.Format(plan.DateFormat)
	report := calendar.Classify(key, schedule, idx)

	d := htmlDay{
		Day:         date.Day(),
		Status:      string(report.Status),
		Reason:      report.Reason,
		StatusClass: statusClass(report.Status),
		ShowStatus:  report.Status != calendar.StatusScheduled,
		Unavailable: report.Status != calendar.StatusScheduled && report.Status != calendar.StatusRestDay,
	}

	for _, sa := range schedule[key] {
		d.Activities = append(d.Activities, htmlActivity{
			Time:      sa.Time,
			Name:      sa.Name,
			Details:   sa.Details,
			TypeClass: string(sa.Type),
			IsBackup:  sa.IsBackup,
			Original:  sa.OriginalActivity,
		})
	}
	return d
}

func statusClass(status calendar.DayStatus) string {
	switch status {
	case calendar.StatusClientUnavailable:
		return "travel"
	case calendar.StatusSpecialistUnavailable, calendar.StatusAlliedHealthUnavailable:
		return "facilitator-unavailable"
	case calendar.StatusEquipmentUnavailable:
		return "equipment-unavailable"
	case calendar.StatusRestDay:
		return "rest-day"
	default:
		return ""
	}
}

const calendarTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Personalized Health Plan Calendar</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        h1 { color: #333; }
        h2 { color: #0066cc; margin-top: 30px; }
        table { border-collapse: collapse; width: 100%; margin-bottom: 30px; }
        th { background-color: #0066cc; color: white; padding: 8px; text-align: center; }
        td { border: 1px solid #ddd; padding: 8px; vertical-align: top; min-height: 100px; }
        .date { font-weight: bold; margin-bottom: 5px; }
        .activity { margin-bottom: 8px; padding: 5px; border-radius: 4px; }
        .fitness { background-color: #d4f1f9; }
        .food { background-color: #e2f0cb; }
        .medication { background-color: #ffebb5; }
        .therapy { background-color: #f9d2d2; }
        .consultation { background-color: #d2d2f9; }
        .backup { font-style: italic; border-left: 3px solid #ff9900; }
        .unavailable { background-color: #f0f0f0; color: #666; }
        .travel { background-color: #ffe6cc; padding: 5px; margin-bottom: 8px; border-radius: 4px; }
        .facilitator-unavailable { background-color: #d2e7f9; padding: 5px; margin-bottom: 8px; border-radius: 4px; }
        .equipment-unavailable { background-color: #e7f9d2; padding: 5px; margin-bottom: 8px; border-radius: 4px; }
        .rest-day { background-color: #f5f5f5; padding: 5px; margin-bottom: 8px; border-radius: 4px; }
        .legend { margin-top: 20px; padding: 10px; border: 1px solid #ddd; margin-bottom: 20px; }
        .legend-item { display: inline-block; margin: 5px 15px; }
        .legend-color { display: inline-block; width: 20px; height: 20px; margin-right: 5px; vertical-align: middle; }
    </style>
</head>
<body>
    <h1>Personalized Health Plan Calendar</h1>

    <div class="legend">
        <h3>Activity Types</h3>
        <div class="legend-item"><span class="legend-color" style="background-color: #d4f1f9;"></span> Fitness</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #e2f0cb;"></span> Food</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #ffebb5;"></span> Medication</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #f9d2d2;"></span> Therapy</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #d2d2f9;"></span> Consultation</div>
        <div class="legend-item"><span class="legend-color" style="border-left: 3px solid #ff9900; padding-left: 17px;"></span> Backup activity</div>

        <h3>Day Status</h3>
        <div class="legend-item"><span class="legend-color" style="background-color: #ffe6cc;"></span> Client Travel / Unavailable</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #d2e7f9;"></span> Facilitator Unavailable</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #e7f9d2;"></span> Equipment Unavailable</div>
        <div class="legend-item"><span class="legend-color" style="background-color: #f5f5f5;"></span> Rest Day</div>
    </div>
{{range .Months}}
    <h2>{{.Title}}</h2>
    <table>
        <tr><th>Sunday</th><th>Monday</th><th>Tuesday</th><th>Wednesday</th><th>Thursday</th><th>Friday</th><th>Saturday</th></tr>
{{range .Weeks}}        <tr>
{{range .}}{{if .Empty}}            <td></td>
{{else}}            <td{{if .Unavailable}} class="unavailable"{{end}}><div class="date">{{.Day}}</div>
{{if .ShowStatus}}                <div class="{{.StatusClass}}"><strong>{{.Status}}:</strong> {{.Reason}}</div>
{{end}}{{range .Activities}}                <div class="activity {{.TypeClass}}{{if .IsBackup}} backup{{end}}"><strong>{{.Time}}</strong>: {{.Name}}{{if .IsBackup}} <em>(backup for {{.Original}})</em>{{end}}<br><small>{{.Details}}</small></div>
{{end}}            </td>
{{end}}{{end}}        </tr>
{{end}}    </table>
{{end}}
</body>
</html>
`
