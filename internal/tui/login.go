package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/internal/auth"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

// -- messages --

// loginDoneMsg carries the outcome of a login attempt up to the App.
type loginDoneMsg struct {
	user domain.User
	err  error
}

// -- model --

const (
	fieldEmail = iota
	fieldPassword
)

type loginModel struct {
	svc        *auth.Service
	email      string
	password   string
	focus      int
	submitting bool
	err        string
	width      int
	height     int
}

func newLoginModel(svc *auth.Service) loginModel {
	return loginModel{svc: svc}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	email := strings.TrimSpace(m.email)
	if email == "" || m.password == "" {
		m.err = "email and password are required"
		return m, nil
	}
	m.submitting = true
	m.err = ""
	svc := m.svc
	password := m.password
	return m, func() tea.Msg {
		user, err := svc.Login(context.Background(), email, password)
		return loginDoneMsg{user: user, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err.Error()
			m.password = ""
			m.focus = fieldPassword
		} else {
			m.email = ""
			m.password = ""
			m.err = ""
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % 2
		case "shift+tab", "up":
			m.focus = (m.focus + 1) % 2
		case "enter":
			if m.focus == fieldEmail {
				m.focus = fieldPassword
				return m, nil
			}
			return m.submit()
		default:
			if m.focus == fieldEmail {
				m.email = editRune(m.email, msg.String())
			} else {
				m.password = editRune(m.password, msg.String())
			}
		}
	}
	return m, nil
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + selectedStyle.Render("Sign in") + "\n\n")
	b.WriteString(renderField("email:   ", m.email, "you@school.com", m.focus == fieldEmail, false) + "\n")
	b.WriteString(renderField("password:", m.password, "password", m.focus == fieldPassword, true) + "\n\n")

	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("signing in...") + "\n")
	case m.err != "":
		b.WriteString(" " + errorStyle.Render(m.err) + "\n")
	default:
		b.WriteString(" " + metaStyle.Render("works offline: demo accounts use password \"password123\"") + "\n")
	}

	return b.String()
}

func (m loginModel) helpKeys() string {
	return helpEntry("tab", "next field") + "  " + helpEntry("enter", "sign in") + "  " + helpEntry("ctrl+c", "quit")
}
