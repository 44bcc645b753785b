package bell

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/belfry-dev/belfry/internal/timeutil"
	"github.com/belfry-dev/belfry/trigger"
)

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F5F5F5")).
			Padding(1, 4)

	nextBellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD866")).
			Padding(0, 4)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7A7A7A")).
			Padding(0, 4)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A9DC76")).
			Padding(1, 4)

	helpStyle = lipgloss.NewStyle().Padding(1, 4)
)

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString("\n")
	s.WriteString(clockStyle.Render(timeutil.FormatClock(m.now, m.showSeconds)))
	s.WriteString("\n")

	next := "🔔 --:--"
	if bell, ok := trigger.NextBell(m.sched.Sorted(), m.now); ok {
		next = "🔔 " + bell.Time.String()
	}

	s.WriteString(nextBellStyle.Render(next))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render(m.sched.Label))
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.testChime,
		defaultKeymap.copyLink,
		defaultKeymap.toggleSeconds,
		defaultKeymap.quit,
	})))

	return s.String()
}
