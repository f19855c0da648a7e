package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/pkg/client"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

// -- messages --

type dashClassesMsg struct {
	classes []domain.Class
	err     error
}

type dashStatsMsg struct {
	classID string
	stats   *domain.AttendanceStats
	err     error
}

// -- model --

type dashboardModel struct {
	client   *client.Client
	classes  []domain.Class
	selected int // index into classes
	stats    *domain.AttendanceStats
	err      string
	loading  bool
	width    int
	height   int
}

func newDashboardModel(c *client.Client) dashboardModel {
	return dashboardModel{client: c}
}

func (m dashboardModel) Init() tea.Cmd {
	m.loading = true
	return m.loadClasses()
}

func (m dashboardModel) loadClasses() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		classes, err := c.ListClasses(context.Background())
		return dashClassesMsg{classes: classes, err: err}
	}
}

func (m dashboardModel) loadStats() tea.Cmd {
	if len(m.classes) == 0 {
		return nil
	}
	c := m.client
	classID := m.classes[m.selected].ID
	return func() tea.Msg {
		stats, err := c.AttendanceStats(context.Background(), classID, "")
		return dashStatsMsg{classID: classID, stats: stats, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case dashClassesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.classes = msg.classes
		m.err = ""
		if m.selected >= len(m.classes) {
			m.selected = 0
		}
		return m, m.loadStats()

	case dashStatsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.err = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "c", "right", "l":
			if len(m.classes) > 1 {
				m.selected = (m.selected + 1) % len(m.classes)
				m.loading = true
				return m, m.loadStats()
			}
		case "r":
			m.loading = true
			return m, m.loadClasses()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + selectedStyle.Render("Today") + "  " + dimStyle.Render(today()) + "\n")

	if len(m.classes) > 0 {
		cls := m.classes[m.selected]
		b.WriteString(" " + accentStyle.Render(cls.Name+" "+cls.Section) +
			dimStyle.Render(fmt.Sprintf("  (%d/%d, c to switch)", m.selected+1, len(m.classes))) + "\n\n")
	} else {
		b.WriteString("\n")
	}

	if m.loading && m.stats == nil {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if m.stats == nil {
		b.WriteString(" " + dimStyle.Render("no classes yet") + "\n")
		return b.String()
	}

	s := m.stats
	total := s.TotalStudents
	type line struct {
		status domain.AttendanceStatus
		label  string
		count  int
	}
	for _, ln := range []line{
		{domain.StatusPresent, "present", s.PresentToday},
		{domain.StatusAbsent, "absent", s.AbsentToday},
		{domain.StatusLate, "late", s.LateToday},
		{domain.StatusHalfDay, "half-day", s.HalfDayToday},
		{domain.StatusLeave, "leave", s.LeaveToday},
	} {
		width := 20
		filled := 0
		if total > 0 {
			filled = ln.count * width / total
		}
		bar := StatusStyle(ln.status).Render(strings.Repeat("█", filled)) +
			metaStyle.Render(strings.Repeat("░", width-filled))
		b.WriteString(fmt.Sprintf(" %-10s %s %3d\n", ln.label, bar, ln.count))
	}

	b.WriteString("\n " + normalStyle.Render(fmt.Sprintf("%d students", total)) +
		dimStyle.Render("  ·  ") +
		pctStyle(s.AttendancePercentage).Render(fmt.Sprintf("%.1f%% attendance", s.AttendancePercentage)) + "\n")

	return b.String()
}

func (m dashboardModel) helpKeys() string {
	return helpEntry("c", "class") + "  " + helpEntry("r", "refresh")
}
