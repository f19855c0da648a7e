package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/internal/browser"
	"github.com/rollcall-app/rollcall/internal/export"
	"github.com/rollcall-app/rollcall/pkg/client"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

type reportPeriod int

const (
	periodDaily reportPeriod = iota
	periodWeekly
	periodMonthly
)

func (p reportPeriod) String() string {
	switch p {
	case periodWeekly:
		return "weekly"
	case periodMonthly:
		return "monthly"
	default:
		return "daily"
	}
}

// -- messages --

type reportLoadedMsg struct {
	rows []domain.ReportRow
	err  error
}

type reportExportedMsg struct {
	path string
	err  error
}

type reportCopiedMsg struct {
	err error
}

// -- model --

type reportsModel struct {
	client    *client.Client
	exportDir string
	classes   []domain.Class
	classIdx  int
	period    reportPeriod
	rows      []domain.ReportRow
	flash     string // transient export/copy confirmation
	err       string
	loading   bool
	width     int
	height    int
}

func newReportsModel(c *client.Client, exportDir string) reportsModel {
	return reportsModel{client: c, exportDir: exportDir}
}

func (m reportsModel) Init() tea.Cmd {
	return m.load()
}

func (m reportsModel) classID() string {
	if len(m.classes) == 0 {
		return ""
	}
	return m.classes[m.classIdx].ID
}

func (m reportsModel) load() tea.Cmd {
	c := m.client
	classID := m.classID()
	period := m.period
	return func() tea.Msg {
		var rows []domain.ReportRow
		var err error
		now := time.Now()
		switch period {
		case periodWeekly:
			start := now.AddDate(0, 0, -6).Format("2006-01-02")
			rows, err = c.WeeklyReport(context.Background(), classID, start)
		case periodMonthly:
			rows, err = c.MonthlyReport(context.Background(), classID, now.Format("2006-01"))
		default:
			rows, err = c.DailyReport(context.Background(), classID, now.Format("2006-01-02"))
		}
		return reportLoadedMsg{rows: rows, err: err}
	}
}

func (m reportsModel) exportFile() tea.Cmd {
	rows := m.rows
	name := fmt.Sprintf("report-%s-%s.csv", m.period, today())
	path := filepath.Join(m.exportDir, name)
	return func() tea.Msg {
		if err := export.WriteReportFile(path, rows); err != nil {
			return reportExportedMsg{err: err}
		}
		browser.Open(path) //nolint:errcheck // best-effort open
		return reportExportedMsg{path: path}
	}
}

func (m reportsModel) copyCSV() tea.Cmd {
	rows := m.rows
	return func() tea.Msg {
		data, err := export.ReportCSV(rows)
		if err == nil {
			err = clipboard.WriteAll(data)
		}
		return reportCopiedMsg{err: err}
	}
}

func (m reportsModel) Update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case dashClassesMsg:
		if msg.err == nil {
			m.classes = msg.classes
			if m.classIdx >= len(m.classes) {
				m.classIdx = 0
			}
		}

	case reportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.rows = msg.rows
			m.err = ""
		}

	case reportExportedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.flash = "saved " + msg.path
		}

	case reportCopiedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.flash = "copied CSV to clipboard"
		}

	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "t":
			m.period = (m.period + 1) % 3
			m.loading = true
			return m, m.load()
		case "c":
			if len(m.classes) > 1 {
				m.classIdx = (m.classIdx + 1) % len(m.classes)
				m.loading = true
				return m, m.load()
			}
		case "e":
			if len(m.rows) > 0 {
				return m, m.exportFile()
			}
		case "y":
			if len(m.rows) > 0 {
				return m, m.copyCSV()
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m reportsModel) View() string {
	var b strings.Builder

	title := "Reports"
	if len(m.classes) > 0 {
		cls := m.classes[m.classIdx]
		title += "  " + cls.Name + " " + cls.Section
	}
	b.WriteString("\n " + selectedStyle.Render(title) + "  " + accentStyle.Render(m.period.String()) + "\n\n")

	if m.loading && len(m.rows) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	if len(m.rows) == 0 {
		b.WriteString(" " + dimStyle.Render("no report rows for this period") + "\n")
		return b.String()
	}

	header := fmt.Sprintf(" %-24s %5s %4s %4s %4s %4s %4s %7s",
		"student", "days", "P", "A", "L", "H", "Lv", "%")
	b.WriteString(metaStyle.Render(header) + "\n")

	for _, row := range m.rows {
		b.WriteString(fmt.Sprintf(" %-24s %5d %4d %4d %4d %4d %4d %s\n",
			truncStr(row.StudentName, 24),
			row.TotalDays,
			row.PresentDays,
			row.AbsentDays,
			row.LateDays,
			row.HalfDays,
			row.LeaveDays,
			pctStyle(row.AttendancePercentage).Render(fmt.Sprintf("%6.1f%%", row.AttendancePercentage))))
	}

	if m.flash != "" {
		b.WriteString("\n " + okStyle.Render(m.flash) + "\n")
	}

	return b.String()
}

func (m reportsModel) helpKeys() string {
	return helpEntry("t", "period") + "  " + helpEntry("c", "class") + "  " + helpEntry("e", "export") + "  " + helpEntry("y", "copy") + "  " + helpEntry("r", "refresh")
}
