package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

var (
	dateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	backupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// Text writes the schedule as a styled day-by-day listing.
func Text(schedule plan.Schedule) string {
	var b strings.Builder
	for _, date := range schedule.Dates() {
		b.WriteString(dateStyle.Render(date))
		b.WriteString("\n")
		for _, sa := range schedule[date] {
			line := fmt.Sprintf("  %s  %s (%dmin)", timeStyle.Render(sa.Time), sa.Name, sa.Duration())
			if sa.IsBackup {
				line += "  " + backupStyle.Render("backup for "+sa.OriginalActivity)
			}
			b.WriteString(line)
			b.WriteString("\n")
			b.WriteString(detailStyle.Render("        " + sa.Details))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Conflicts formats the validator's findings for the terminal.
func Conflicts(conflicts []plan.Conflict) string {
	if len(conflicts) == 0 {
		return "No temporal conflicts detected.\n"
	}
	var b strings.Builder
	b.WriteString(conflictStyle.Render(fmt.Sprintf("%d temporal conflicts detected:", len(conflicts))))
	b.WriteString("\n")
	for _, c := range conflicts {
		fmt.Fprintf(&b, "  %s: %s (%s, %dmin) overlaps with %s (%s)\n",
			c.Date, c.Activity1, c.Time1, c.Duration1, c.Activity2, c.Time2)
	}
	return b.String()
}
