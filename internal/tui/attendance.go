package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/pkg/client"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

// statusKeys maps marking keystrokes to statuses.
var statusKeys = map[string]domain.AttendanceStatus{
	"p": domain.StatusPresent,
	"a": domain.StatusAbsent,
	"l": domain.StatusLate,
	"f": domain.StatusHalfDay,
	"v": domain.StatusLeave,
}

// -- messages --

type rosterLoadedMsg struct {
	students []domain.Student
	records  []domain.AttendanceRecord
	err      error
}

type markedMsg struct {
	rec *domain.AttendanceRecord
	err error
}

// -- model --

type attendanceModel struct {
	client   *client.Client
	classes  []domain.Class
	classIdx int
	students []domain.Student
	marks    map[string]domain.AttendanceStatus // studentID -> today's status
	cursor   int
	err      string
	loading  bool
	width    int
	height   int
}

func newAttendanceModel(c *client.Client) attendanceModel {
	return attendanceModel{client: c, marks: map[string]domain.AttendanceStatus{}}
}

func (m attendanceModel) Init() tea.Cmd {
	return m.load()
}

func (m attendanceModel) classID() string {
	if len(m.classes) == 0 {
		return ""
	}
	return m.classes[m.classIdx].ID
}

// load fetches the roster for the selected class plus today's records.
func (m attendanceModel) load() tea.Cmd {
	c := m.client
	classID := m.classID()
	return func() tea.Msg {
		students, err := c.ListStudents(context.Background(), classID)
		if err != nil {
			return rosterLoadedMsg{err: err}
		}
		records, err := c.ListAttendance(context.Background(), "", today())
		if err != nil {
			return rosterLoadedMsg{err: err}
		}
		return rosterLoadedMsg{students: students, records: records}
	}
}

func (m attendanceModel) mark(status domain.AttendanceStatus) tea.Cmd {
	if m.cursor >= len(m.students) {
		return nil
	}
	c := m.client
	req := client.MarkAttendanceRequest{
		StudentID: m.students[m.cursor].ID,
		Date:      today(),
		Status:    status,
	}
	return func() tea.Msg {
		rec, err := c.MarkAttendance(context.Background(), req)
		return markedMsg{rec: rec, err: err}
	}
}

func (m attendanceModel) Update(msg tea.Msg) (attendanceModel, tea.Cmd) {
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

	case rosterLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.students = msg.students
		if m.cursor >= len(m.students) {
			m.cursor = 0
		}
		m.marks = map[string]domain.AttendanceStatus{}
		for _, rec := range msg.records {
			m.marks[rec.StudentID] = rec.Status
		}

	case markedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		m.marks[msg.rec.StudentID] = msg.rec.Status
		// Advance so a class can be marked top to bottom with status keys.
		if m.cursor < len(m.students)-1 {
			m.cursor++
		}

	case tea.KeyMsg:
		if status, ok := statusKeys[msg.String()]; ok {
			return m, m.mark(status)
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.students)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "c":
			if len(m.classes) > 1 {
				m.classIdx = (m.classIdx + 1) % len(m.classes)
				m.cursor = 0
				m.loading = true
				return m, m.load()
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m attendanceModel) View() string {
	var b strings.Builder

	title := "Mark attendance"
	if len(m.classes) > 0 {
		cls := m.classes[m.classIdx]
		title += "  " + cls.Name + " " + cls.Section
	}
	b.WriteString("\n " + selectedStyle.Render(title) + "  " + dimStyle.Render(today()) + "\n\n")

	if m.loading && len(m.students) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
	}
	if len(m.students) == 0 {
		b.WriteString(" " + dimStyle.Render("no students in this class") + "\n")
		return b.String()
	}

	marked := 0
	for i, st := range m.students {
		cursor := " "
		name := normalStyle.Render(fmt.Sprintf("%-24s", truncStr(st.Name, 24)))
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			name = selectedStyle.Render(fmt.Sprintf("%-24s", truncStr(st.Name, 24)))
		}
		badge := inputPlaceholderStyle.Render("[unmarked]")
		if status, ok := m.marks[st.ID]; ok {
			badge = StatusBadge(status)
			marked++
		}
		roll := metaStyle.Render(fmt.Sprintf("#%-4s", st.RollNumber))
		b.WriteString(fmt.Sprintf(" %s %s %s %s\n", cursor, roll, name, badge))
	}

	b.WriteString("\n " + dimStyle.Render(fmt.Sprintf("%d/%d marked", marked, len(m.students))) + "\n")
	b.WriteString(" " + metaStyle.Render("p present · a absent · l late · f half-day · v leave") + "\n")

	return b.String()
}

func (m attendanceModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("p/a/l/f/v", "mark") + "  " + helpEntry("c", "class") + "  " + helpEntry("r", "refresh")
}
