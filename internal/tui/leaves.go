package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/pkg/client"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

// leaveFilterOrder is the cycle order for the status filter.
var leaveFilterOrder = []domain.LeaveStatus{"", domain.LeavePending, domain.LeaveApproved, domain.LeaveRejected}

// -- messages --

type leavesLoadedMsg struct {
	leaves []domain.LeaveApplication
	err    error
}

type leaveDecidedMsg struct {
	err error
}

type leaveAppliedMsg struct {
	err error
}

// -- model --

type leavesModel struct {
	client      *client.Client
	leaves      []domain.LeaveApplication
	students    map[string]string // studentID -> name
	roster      []domain.Student  // ordered, for the apply form picker
	cursor      int
	filterCycle int
	canDecide   bool // staff only

	applying   bool
	formIdx    int // index into roster
	formStart  string
	formEnd    string
	formReason string
	formFocus  int // 0 student, 1 start, 2 end, 3 reason

	err     string
	loading bool
	width   int
	height  int
}

func newLeavesModel(c *client.Client) leavesModel {
	return leavesModel{client: c, students: map[string]string{}}
}

func (m leavesModel) Init() tea.Cmd {
	return m.load()
}

func (m leavesModel) filter() domain.LeaveStatus {
	return leaveFilterOrder[m.filterCycle]
}

func (m leavesModel) load() tea.Cmd {
	c := m.client
	status := m.filter()
	return func() tea.Msg {
		leaves, err := c.ListLeaves(context.Background(), status)
		return leavesLoadedMsg{leaves: leaves, err: err}
	}
}

func (m leavesModel) decide(approve bool) tea.Cmd {
	if !m.canDecide || m.cursor >= len(m.leaves) {
		return nil
	}
	c := m.client
	id := m.leaves[m.cursor].ID
	return func() tea.Msg {
		var err error
		if approve {
			_, err = c.ApproveLeave(context.Background(), id)
		} else {
			_, err = c.RejectLeave(context.Background(), id)
		}
		return leaveDecidedMsg{err: err}
	}
}

func (m leavesModel) Update(msg tea.Msg) (leavesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case studentsLoadedMsg:
		// Shared by the App so leave rows can show names instead of IDs.
		if msg.err == nil {
			m.roster = msg.students
			for _, st := range msg.students {
				m.students[st.ID] = st.Name
			}
			if m.formIdx >= len(m.roster) {
				m.formIdx = 0
			}
		}

	case leaveAppliedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.applying = false
		m.formStart, m.formEnd, m.formReason = "", "", ""
		m.formFocus = 0
		m.loading = true
		return m, m.load()

	case leavesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.leaves = msg.leaves
			m.err = ""
			if m.cursor >= len(m.leaves) {
				m.cursor = 0
			}
		}

	case leaveDecidedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		if m.applying {
			return m.handleFormKey(msg)
		}
		switch msg.String() {
		case "n":
			if len(m.roster) > 0 {
				m.applying = true
				m.err = ""
			}
		case "j", "down":
			if m.cursor < len(m.leaves)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "s":
			m.filterCycle = (m.filterCycle + 1) % len(leaveFilterOrder)
			m.cursor = 0
			m.loading = true
			return m, m.load()
		case "a":
			return m, m.decide(true)
		case "x":
			return m, m.decide(false)
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m leavesModel) handleFormKey(msg tea.KeyMsg) (leavesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.applying = false
		m.formStart, m.formEnd, m.formReason = "", "", ""
		m.formFocus = 0
		m.err = ""
	case "tab", "down":
		m.formFocus = (m.formFocus + 1) % 4
	case "shift+tab", "up":
		m.formFocus = (m.formFocus + 3) % 4
	case "left", "h":
		if m.formFocus == 0 && len(m.roster) > 0 {
			m.formIdx = (m.formIdx + len(m.roster) - 1) % len(m.roster)
		} else if m.formFocus != 0 {
			return m.editFormField(msg)
		}
	case "right", "l":
		if m.formFocus == 0 && len(m.roster) > 0 {
			m.formIdx = (m.formIdx + 1) % len(m.roster)
		} else if m.formFocus != 0 {
			return m.editFormField(msg)
		}
	case "enter":
		if m.formFocus < 3 {
			m.formFocus++
			return m, nil
		}
		return m.submitLeave()
	default:
		return m.editFormField(msg)
	}
	return m, nil
}

func (m leavesModel) editFormField(msg tea.KeyMsg) (leavesModel, tea.Cmd) {
	switch m.formFocus {
	case 1:
		m.formStart = editRune(m.formStart, msg.String())
	case 2:
		m.formEnd = editRune(m.formEnd, msg.String())
	case 3:
		m.formReason = editRune(m.formReason, msg.String())
	}
	return m, nil
}

func (m leavesModel) submitLeave() (leavesModel, tea.Cmd) {
	if m.formIdx >= len(m.roster) {
		return m, nil
	}
	if strings.TrimSpace(m.formStart) == "" || strings.TrimSpace(m.formEnd) == "" {
		m.err = "start and end dates are required"
		return m, nil
	}
	if strings.TrimSpace(m.formReason) == "" {
		m.err = "a reason is required"
		return m, nil
	}
	c := m.client
	req := client.LeaveRequest{
		StudentID: m.roster[m.formIdx].ID,
		StartDate: strings.TrimSpace(m.formStart),
		EndDate:   strings.TrimSpace(m.formEnd),
		Reason:    strings.TrimSpace(m.formReason),
	}
	m.err = ""
	return m, func() tea.Msg {
		_, err := c.ApplyLeave(context.Background(), req)
		return leaveAppliedMsg{err: err}
	}
}

func (m leavesModel) studentName(id string) string {
	if name, ok := m.students[id]; ok {
		return name
	}
	return id
}

func (m leavesModel) View() string {
	var b strings.Builder

	filter := "all"
	if f := m.filter(); f != "" {
		filter = string(f)
	}
	b.WriteString("\n " + selectedStyle.Render("Leave applications") + "  " + dimStyle.Render(filter) + "\n\n")

	if m.applying {
		return b.String() + m.formView()
	}

	if m.loading && len(m.leaves) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
	}
	if len(m.leaves) == 0 {
		b.WriteString(" " + dimStyle.Render("no leave applications") + "\n")
		return b.String()
	}

	for i, app := range m.leaves {
		cursor := " "
		name := normalStyle.Render(fmt.Sprintf("%-20s", truncStr(m.studentName(app.StudentID), 20)))
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			name = selectedStyle.Render(fmt.Sprintf("%-20s", truncStr(m.studentName(app.StudentID), 20)))
		}
		dates := dimStyle.Render(app.StartDate + " → " + app.EndDate)
		status := LeaveStyle(app.Status).Render("[" + string(app.Status) + "]")
		reason := metaStyle.Render(truncStr(app.Reason, 30))
		b.WriteString(fmt.Sprintf(" %s %s %s %s  %s\n", cursor, name, dates, status, reason))
	}

	return b.String()
}

func (m leavesModel) formView() string {
	var b strings.Builder

	b.WriteString(" " + normalStyle.Render("Apply for leave") + "\n\n")

	student := "(no students)"
	if m.formIdx < len(m.roster) {
		student = m.roster[m.formIdx].Name
	}
	label := "student:"
	if m.formFocus == 0 {
		b.WriteString(" " + inputPromptStyle.Render(label) + " " + selectedStyle.Render(student) + dimStyle.Render("  h/l to change") + "\n")
	} else {
		b.WriteString(" " + metaStyle.Render(label) + " " + normalStyle.Render(student) + "\n")
	}
	b.WriteString(renderField("start:  ", m.formStart, "2026-09-02", m.formFocus == 1, false) + "\n")
	b.WriteString(renderField("end:    ", m.formEnd, "2026-09-04", m.formFocus == 2, false) + "\n")
	b.WriteString(renderField("reason: ", m.formReason, "family function", m.formFocus == 3, false) + "\n")

	if m.err != "" {
		b.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	}
	return b.String()
}

func (m leavesModel) helpKeys() string {
	if m.applying {
		return helpEntry("tab", "next field") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("esc", "cancel")
	}
	keys := helpEntry("j/k", "nav") + "  " + helpEntry("s", "filter") + "  " + helpEntry("n", "apply")
	if m.canDecide {
		keys += "  " + helpEntry("a", "approve") + "  " + helpEntry("x", "reject")
	}
	return keys + "  " + helpEntry("r", "refresh")
}
