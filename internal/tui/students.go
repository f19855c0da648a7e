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

type studentsLoadedMsg struct {
	students []domain.Student
	err      error
}

type studentStatsMsg struct {
	studentID string
	stats     *domain.StudentAttendanceStats
	err       error
}

type studentDeletedMsg struct {
	err error
}

// -- model --

type studentsModel struct {
	client   *client.Client
	students []domain.Student
	classes  []domain.Class
	cursor    int
	classIdx  int // 0 = all classes, else classes[classIdx-1]
	searching bool
	search    string
	detail    bool
	stats    *domain.StudentAttendanceStats
	err      string
	loading  bool
	width    int
	height   int
}

func newStudentsModel(c *client.Client) studentsModel {
	return studentsModel{client: c}
}

func (m studentsModel) Init() tea.Cmd {
	return m.load()
}

func (m studentsModel) classFilter() string {
	if m.classIdx == 0 || m.classIdx > len(m.classes) {
		return ""
	}
	return m.classes[m.classIdx-1].ID
}

func (m studentsModel) load() tea.Cmd {
	c := m.client
	classID := m.classFilter()
	return func() tea.Msg {
		students, err := c.ListStudents(context.Background(), classID)
		return studentsLoadedMsg{students: students, err: err}
	}
}

func (m studentsModel) loadStats() tea.Cmd {
	visible := m.visible()
	if m.cursor >= len(visible) {
		return nil
	}
	c := m.client
	id := visible[m.cursor].ID
	return func() tea.Msg {
		stats, err := c.StudentAttendanceStats(context.Background(), id)
		return studentStatsMsg{studentID: id, stats: stats, err: err}
	}
}

func (m studentsModel) Update(msg tea.Msg) (studentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case dashClassesMsg:
		// The App shares the class list so the filter can cycle.
		if msg.err == nil {
			m.classes = msg.classes
		}

	case studentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.students = msg.students
			m.err = ""
			if m.cursor >= len(m.students) {
				m.cursor = 0
			}
		}

	case studentStatsMsg:
		if msg.err == nil {
			m.stats = msg.stats
		}

	case studentDeletedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// visible filters the roster by the search needle, case-insensitive on
// name and roll number.
func (m studentsModel) visible() []domain.Student {
	if m.search == "" {
		return m.students
	}
	needle := strings.ToLower(m.search)
	var out []domain.Student
	for _, st := range m.students {
		if strings.Contains(strings.ToLower(st.Name), needle) ||
			strings.Contains(strings.ToLower(st.RollNumber), needle) {
			out = append(out, st)
		}
	}
	return out
}

func (m studentsModel) handleKey(msg tea.KeyMsg) (studentsModel, tea.Cmd) {
	if m.detail {
		switch msg.String() {
		case "esc", "enter":
			m.detail = false
			m.stats = nil
		}
		return m, nil
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search = ""
		case "enter":
			m.searching = false
		default:
			m.search = editRune(m.search, msg.String())
			m.cursor = 0
		}
		return m, nil
	}

	visible := m.visible()
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.searching = true
		m.search = ""
		m.cursor = 0
	case "c":
		if len(m.classes) > 0 {
			m.classIdx = (m.classIdx + 1) % (len(m.classes) + 1)
			m.cursor = 0
			m.loading = true
			return m, m.load()
		}
	case "enter":
		if len(visible) > 0 {
			m.detail = true
			return m, m.loadStats()
		}
	case "d":
		if len(visible) > 0 && m.cursor < len(visible) {
			c := m.client
			id := visible[m.cursor].ID
			return m, func() tea.Msg {
				return studentDeletedMsg{err: c.DeleteStudent(context.Background(), id)}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m studentsModel) className(id string) string {
	for _, c := range m.classes {
		if c.ID == id {
			return c.Name + " " + c.Section
		}
	}
	return id
}

func (m studentsModel) View() string {
	if m.detail {
		return m.detailView()
	}

	var b strings.Builder

	filter := "all classes"
	if id := m.classFilter(); id != "" {
		filter = m.className(id)
	}
	b.WriteString("\n " + selectedStyle.Render("Students") + "  " + dimStyle.Render(filter))
	if m.searching || m.search != "" {
		b.WriteString("  " + inputPromptStyle.Render("/") + normalStyle.Render(m.search))
		if m.searching {
			b.WriteString(accentStyle.Render("█"))
		}
	}
	b.WriteString("\n\n")

	if m.loading && len(m.students) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
		return b.String()
	}
	visible := m.visible()
	if len(visible) == 0 {
		if m.search != "" {
			b.WriteString(" " + dimStyle.Render("no students match \""+m.search+"\"") + "\n")
		} else {
			b.WriteString(" " + dimStyle.Render("no students in this class") + "\n")
		}
		return b.String()
	}

	for i, st := range visible {
		cursor := " "
		name := normalStyle.Render(fmt.Sprintf("%-24s", truncStr(st.Name, 24)))
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			name = selectedStyle.Render(fmt.Sprintf("%-24s", truncStr(st.Name, 24)))
		}
		roll := metaStyle.Render(fmt.Sprintf("#%-4s", st.RollNumber))
		cls := dimStyle.Render(m.className(st.Class))
		b.WriteString(fmt.Sprintf(" %s %s %s  %s\n", cursor, roll, name, cls))
	}

	return b.String()
}

func (m studentsModel) detailView() string {
	var b strings.Builder
	visible := m.visible()
	if m.cursor >= len(visible) {
		return "\n " + dimStyle.Render("no student selected") + "\n"
	}
	st := visible[m.cursor]

	b.WriteString("\n " + selectedStyle.Render(st.Name) + "  " + metaStyle.Render("#"+st.RollNumber) + "\n\n")
	b.WriteString(" " + dimStyle.Render("class:") + " " + normalStyle.Render(m.className(st.Class)) + "\n")
	if st.Email != "" {
		b.WriteString(" " + dimStyle.Render("email:") + " " + normalStyle.Render(st.Email) + "\n")
	}
	if st.Phone != "" {
		b.WriteString(" " + dimStyle.Render("phone:") + " " + normalStyle.Render(st.Phone) + "\n")
	}
	if !st.CreatedAt.IsZero() {
		b.WriteString(" " + dimStyle.Render("added:") + " " + metaStyle.Render(formatTime(st.CreatedAt)) + "\n")
	}

	if m.stats != nil {
		s := m.stats
		b.WriteString("\n " + selectedStyle.Render("Attendance") + "\n")
		b.WriteString(fmt.Sprintf("   %s %d   %s %d   %s %d   %s %d   %s %d\n",
			StatusStyle(domain.StatusPresent).Render("present"), s.PresentDays,
			StatusStyle(domain.StatusAbsent).Render("absent"), s.AbsentDays,
			StatusStyle(domain.StatusLate).Render("late"), s.LateDays,
			StatusStyle(domain.StatusHalfDay).Render("half-day"), s.HalfDays,
			StatusStyle(domain.StatusLeave).Render("leave"), s.LeaveDays))
		b.WriteString("   " + pctStyle(s.AttendancePercentage).Render(fmt.Sprintf("%.1f%%", s.AttendancePercentage)) +
			dimStyle.Render(fmt.Sprintf(" over %d days", s.TotalDays)) + "\n")
	} else {
		b.WriteString("\n " + dimStyle.Render("loading attendance...") + "\n")
	}

	return b.String()
}

func (m studentsModel) helpKeys() string {
	if m.detail {
		return helpEntry("esc", "back")
	}
	if m.searching {
		return helpEntry("enter", "done") + "  " + helpEntry("esc", "clear")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("c", "class") + "  " + helpEntry("enter", "detail") + "  " + helpEntry("d", "delete") + "  " + helpEntry("r", "refresh")
}
