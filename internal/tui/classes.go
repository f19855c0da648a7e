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

type classesLoadedMsg struct {
	classes []domain.Class
	err     error
}

type classSavedMsg struct {
	err error
}

// -- model --

type classesModel struct {
	client  *client.Client
	classes []domain.Class
	cursor  int

	creating    bool
	formName    string
	formSection string
	formFocus   int // 0 = name, 1 = section

	err     string
	loading bool
	width   int
	height  int
}

func newClassesModel(c *client.Client) classesModel {
	return classesModel{client: c}
}

func (m classesModel) Init() tea.Cmd {
	return m.load()
}

func (m classesModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		classes, err := c.ListClasses(context.Background())
		return classesLoadedMsg{classes: classes, err: err}
	}
}

func (m classesModel) Update(msg tea.Msg) (classesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case classesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.classes = msg.classes
			m.err = ""
			if m.cursor >= len(m.classes) {
				m.cursor = 0
			}
		}

	case classSavedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.creating = false
		m.formName = ""
		m.formSection = ""
		m.formFocus = 0
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m classesModel) handleKey(msg tea.KeyMsg) (classesModel, tea.Cmd) {
	if m.creating {
		switch msg.String() {
		case "esc":
			m.creating = false
			m.err = ""
		case "tab":
			m.formFocus = (m.formFocus + 1) % 2
		case "enter":
			if m.formFocus == 0 {
				m.formFocus = 1
				return m, nil
			}
			name := strings.TrimSpace(m.formName)
			if name == "" {
				m.err = "class name is required"
				return m, nil
			}
			c := m.client
			req := client.ClassRequest{Name: name, Section: strings.TrimSpace(m.formSection)}
			return m, func() tea.Msg {
				_, err := c.CreateClass(context.Background(), req)
				return classSavedMsg{err: err}
			}
		default:
			if m.formFocus == 0 {
				m.formName = editRune(m.formName, msg.String())
			} else {
				m.formSection = editRune(m.formSection, msg.String())
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.classes)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n":
		m.creating = true
		m.err = ""
	case "d":
		if len(m.classes) > 0 && m.cursor < len(m.classes) {
			c := m.client
			id := m.classes[m.cursor].ID
			return m, func() tea.Msg {
				return classSavedMsg{err: c.DeleteClass(context.Background(), id)}
			}
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m classesModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + selectedStyle.Render("Classes") + "\n\n")

	if m.creating {
		b.WriteString(renderField("name:   ", m.formName, "Grade 8", m.formFocus == 0, false) + "\n")
		b.WriteString(renderField("section:", m.formSection, "A", m.formFocus == 1, false) + "\n\n")
		if m.err != "" {
			b.WriteString(" " + errorStyle.Render(m.err) + "\n")
		} else {
			b.WriteString(" " + metaStyle.Render("enter to save, esc to cancel") + "\n")
		}
		return b.String()
	}

	if m.loading && len(m.classes) == 0 {
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}
	if m.err != "" {
		b.WriteString(" " + errorStyle.Render("error: "+m.err) + "\n")
	}
	if len(m.classes) == 0 {
		b.WriteString(" " + dimStyle.Render("no classes yet — press n to create one") + "\n")
		return b.String()
	}

	for i, cls := range m.classes {
		cursor := " "
		name := normalStyle.Render(fmt.Sprintf("%-20s", cls.Name+" "+cls.Section))
		if i == m.cursor {
			cursor = accentStyle.Render("▸")
			name = selectedStyle.Render(fmt.Sprintf("%-20s", cls.Name+" "+cls.Section))
		}
		b.WriteString(fmt.Sprintf(" %s %s\n", cursor, name))
	}

	return b.String()
}

func (m classesModel) helpKeys() string {
	if m.creating {
		return helpEntry("tab", "next field") + "  " + helpEntry("enter", "save") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("n", "new") + "  " + helpEntry("d", "delete") + "  " + helpEntry("r", "refresh")
}
