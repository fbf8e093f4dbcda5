// Package tui provides an interactive terminal browser over a finalized
// schedule document.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashishakkumar/resource-allocator/internal/plan"
)

type viewState int

const (
	listView viewState = iota
	dayView
)

type dayItem struct {
	date  string
	count int
}

func (d dayItem) Title() string { return d.date }

func (d dayItem) Description() string {
	if d.count == 1 {
		return "1 activity"
	}
	return fmt.Sprintf("%d activities", d.count)
}

func (d dayItem) FilterValue() string { return d.date }

// Browser lets the user page through scheduled days and drill into one.
type Browser struct {
	schedule plan.Schedule
	list     list.Model
	state    viewState
	selected string
}

func NewBrowser(schedule plan.Schedule) *Browser {
	items := make([]list.Item, 0, len(schedule))
	for _, date := range schedule.Dates() {
		items = append(items, dayItem{date: date, count: len(schedule[date])})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Personalized schedule"

	return &Browser{schedule: schedule, list: l, state: listView}
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, msg.Height-2)
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return b, tea.Quit
		case "enter":
			if b.state == listView {
				if item, ok := b.list.SelectedItem().(dayItem); ok {
					b.selected = item.date
					b.state = dayView
				}
				return b, nil
			}
		case "esc":
			if b.state == dayView {
				b.state = listView
				return b, nil
			}
		}
	}

	if b.state == listView {
		var cmd tea.Cmd
		b.list, cmd = b.list.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *Browser) View() string {
	if b.state == listView {
		return b.list.View()
	}
	return b.dayDetail()
}

func (b *Browser) dayDetail() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render(b.selected))
	content.WriteString("\n")

	for _, sa := range b.schedule[b.selected] {
		content.WriteString(fmt.Sprintf("%s  %s (%dmin)\n", timeStyle.Render(sa.Time), sa.Name, sa.Duration()))
		if sa.IsBackup {
			content.WriteString("       " + backupStyle.Render("backup for "+sa.OriginalActivity) + "\n")
		}
		content.WriteString(dimStyle.Render("       "+sa.Details) + "\n")
	}

	return boxStyle.Render(content.String()) + helpStyle.Render("\nesc: back • q: quit")
}
