// Package tui is the interactive attendance console. Screens are bubbletea
// sub-models; the App routes messages, enforces route authorization, and
// owns global chrome (banner, tabs, help bar).
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rollcall-app/rollcall/internal/auth"
	"github.com/rollcall-app/rollcall/internal/guard"
	"github.com/rollcall-app/rollcall/internal/session"
	"github.com/rollcall-app/rollcall/pkg/client"
	"github.com/rollcall-app/rollcall/pkg/domain"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewStudents
	viewAttendance
	viewClasses
	viewLeaves
	viewReports
)

// viewRoutes maps screens to the routes the guard knows.
var viewRoutes = map[view]string{
	viewLogin:      guard.RouteLogin,
	viewDashboard:  guard.RouteDashboard,
	viewStudents:   guard.RouteStudents,
	viewAttendance: guard.RouteAttendance,
	viewClasses:    guard.RouteClasses,
	viewLeaves:     guard.RouteLeaves,
	viewReports:    guard.RouteReports,
}

// SessionExpiredMsg is sent from outside the TUI when the API gateway
// tears down the session after a 401.
type SessionExpiredMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client *client.Client
	store  *session.Store
	svc    *auth.Service

	view       view
	login      loginModel
	dashboard  dashboardModel
	students   studentsModel
	attendance attendanceModel
	classes    classesModel
	leaves     leavesModel
	reports    reportsModel

	me       *domain.User
	denied   string // transient authorization flash
	helpOpen bool
	width    int
	height   int
	frame    int // banner shimmer animation frame
}

// NewApp creates the TUI application. exportDir is where report CSVs land.
func NewApp(c *client.Client, store *session.Store, svc *auth.Service, exportDir string) App {
	a := App{
		client:     c,
		store:      store,
		svc:        svc,
		login:      newLoginModel(svc),
		dashboard:  newDashboardModel(c),
		students:   newStudentsModel(c),
		attendance: newAttendanceModel(c),
		classes:    newClassesModel(c),
		leaves:     newLeavesModel(c),
		reports:    newReportsModel(c, exportDir),
	}
	if snap := store.Snapshot(); snap.IsAuthenticated() {
		a.me = snap.Identity
		a.view = viewDashboard
		a.leaves.canDecide = staffRole(snap.Identity.Role)
	}
	return a
}

func staffRole(r domain.Role) bool {
	return r == domain.RoleAdmin || r == domain.RoleTeacher
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd()}
	if a.view != viewLogin {
		cmds = append(cmds, a.dashboard.Init())
	}
	return tea.Batch(cmds...)
}

// navigate asks the guard before switching screens. A login redirect drops
// the user at the sign-in form; an unauthorized redirect flashes the denial
// and stays put.
func (a App) navigate(target view) (App, tea.Cmd) {
	decision := guard.AuthorizeRoute(a.store.Snapshot(), viewRoutes[target])
	if !decision.Allowed {
		if decision.Redirect == guard.RouteLogin {
			a.view = viewLogin
			a.me = nil
			return a, nil
		}
		a.denied = "your role cannot open that screen"
		return a, nil
	}
	if a.view == target {
		return a, nil
	}
	a.view = target
	a.denied = ""
	switch target {
	case viewDashboard:
		return a, a.dashboard.Init()
	case viewStudents:
		return a, a.students.Init()
	case viewAttendance:
		return a, a.attendance.Init()
	case viewClasses:
		return a, a.classes.Init()
	case viewLeaves:
		return a, a.leaves.Init()
	case viewReports:
		return a, a.reports.Init()
	}
	return a, nil
}

func (a App) logout() (App, tea.Cmd) {
	a.svc.Logout()
	a.me = nil
	a.view = viewLogin
	a.login = newLoginModel(a.svc)
	a.leaves.canDecide = false
	return a, nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.login, _ = a.login.Update(bodyMsg)
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.students, _ = a.students.Update(bodyMsg)
		a.attendance, _ = a.attendance.Update(bodyMsg)
		a.classes, _ = a.classes.Update(bodyMsg)
		a.leaves, _ = a.leaves.Update(bodyMsg)
		a.reports, _ = a.reports.Update(bodyMsg)

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case SessionExpiredMsg:
		a.me = nil
		a.view = viewLogin
		a.login = newLoginModel(a.svc)
		a.login.err = "session expired, sign in again"
		return a, nil

	case loginDoneMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		if msg.err == nil {
			me := msg.user
			a.me = &me
			a.leaves.canDecide = staffRole(me.Role)
			a.view = viewDashboard
			return a, tea.Batch(cmd, a.dashboard.Init())
		}
		return a, cmd

	case dashClassesMsg:
		// The dashboard owns class loading; every screen that filters by
		// class shares the result.
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.Update(msg)
		a.students, _ = a.students.Update(msg)
		a.attendance, _ = a.attendance.Update(msg)
		a.reports, _ = a.reports.Update(msg)
		return a, cmd

	case studentsLoadedMsg:
		// Leaves shows student names from the roster.
		var cmd tea.Cmd
		a.students, cmd = a.students.Update(msg)
		a.leaves, _ = a.leaves.Update(msg)
		a.attendance, _ = a.attendance.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.isEditing() {
			switch msg.String() {
			case "h":
				a.helpOpen = true
				return a, nil
			case "q":
				return a, tea.Quit
			case "o":
				if a.view != viewLogin {
					return a.logout()
				}
			case "1":
				return a.navigate(viewDashboard)
			case "2":
				return a.navigate(viewStudents)
			case "3":
				return a.navigate(viewAttendance)
			case "4":
				return a.navigate(viewClasses)
			case "5":
				return a.navigate(viewLeaves)
			case "6":
				return a.navigate(viewReports)
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewStudents:
		a.students, cmd = a.students.Update(msg)
	case viewAttendance:
		a.attendance, cmd = a.attendance.Update(msg)
	case viewClasses:
		a.classes, cmd = a.classes.Update(msg)
	case viewLeaves:
		a.leaves, cmd = a.leaves.Update(msg)
	case viewReports:
		a.reports, cmd = a.reports.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	switch a.view {
	case viewLogin:
		return true
	case viewClasses:
		return a.classes.creating
	case viewStudents:
		return a.students.searching
	case viewLeaves:
		return a.leaves.applying
	}
	return false
}

func (a App) View() string {
	// Header: centered shimmer banner + identity line
	logo := renderShimmerLogo(a.frame)
	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	identity := ""
	if a.me != nil {
		identity = normalStyle.Render(a.me.Name) + dimStyle.Render(" · ") + RoleStyle(a.me.Role).Render(string(a.me.Role))
	}
	if identity != "" {
		idWidth := lipgloss.Width(identity)
		idPad := (a.width - idWidth) / 2
		if idPad < 0 {
			idPad = 0
		}
		header += "\n" + strings.Repeat(" ", idPad) + identity
	} else {
		header += "\n"
	}

	// Tab bar, hidden on the login screen
	tabBar := ""
	if a.view != viewLogin {
		type tabEntry struct {
			key  string
			name string
			v    view
		}
		tabs := []tabEntry{
			{"1", "Dashboard", viewDashboard},
			{"2", "Students", viewStudents},
			{"3", "Attendance", viewAttendance},
			{"4", "Classes", viewClasses},
			{"5", "Leaves", viewLeaves},
			{"6", "Reports", viewReports},
		}
		colWidth := a.width / len(tabs)
		var sb strings.Builder
		for _, t := range tabs {
			var label string
			if t.v == a.view {
				label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
			} else {
				label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
			}
			labelWidth := lipgloss.Width(label)
			leftPad := (colWidth - labelWidth) / 2
			if leftPad < 0 {
				leftPad = 0
			}
			rightPad := colWidth - labelWidth - leftPad
			if rightPad < 0 {
				rightPad = 0
			}
			sb.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
		}
		tabBar = sb.String()
	}

	// Body + help line
	var body, help string
	switch a.view {
	case viewLogin:
		body = a.login.View()
		help = " " + a.login.helpKeys()
	case viewDashboard:
		body = a.dashboard.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.dashboard.helpKeys() + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewStudents:
		body = a.students.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.students.helpKeys() + "  " + helpEntry("q", "quit")
	case viewAttendance:
		body = a.attendance.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.attendance.helpKeys() + "  " + helpEntry("q", "quit")
	case viewClasses:
		body = a.classes.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.classes.helpKeys() + "  " + helpEntry("q", "quit")
	case viewLeaves:
		body = a.leaves.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.leaves.helpKeys() + "  " + helpEntry("q", "quit")
	case viewReports:
		body = a.reports.View()
		help = " " + helpEntry("1-6", "tabs") + "  " + a.reports.helpKeys() + "  " + helpEntry("q", "quit")
	}

	if a.denied != "" {
		body += "\n " + errorStyle.Render(a.denied) + "\n"
	}

	if a.helpOpen {
		body = helpView()
		help = " " + helpEntry("esc", "close") + "  " + helpEntry("q", "quit")
	}

	// Chrome budget: header(2) + tabs(1) + help(1) = 4 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar, body, help)
}
