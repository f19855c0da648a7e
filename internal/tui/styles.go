package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

// Shimmer animation for the ROLLCALL banner.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "R O L L C A L L" as a flowing wave of light,
// deep slate (#1a2a3a) to sky blue (#4aa8de).
func renderShimmerLogo(frame int) string {
	const text = "ROLLCALL"
	n := len(text)

	var out string
	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Deep:   (26, 42, 58)   #1a2a3a
		// Bright: (74, 168, 222) #4aa8de
		r := clampByte(26 + b*(74-26))
		g := clampByte(42 + b*(168-42))
		bl := clampByte(58 + b*(222-58))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4aa8de"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#43e88c"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0944a"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4aa8de")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Attendance status colors — one per status, used for rows, badges
	// and the dashboard summary.
	statusColors = map[domain.AttendanceStatus]lipgloss.Color{
		domain.StatusPresent: lipgloss.Color("#43e88c"),
		domain.StatusAbsent:  lipgloss.Color("#e06060"),
		domain.StatusLate:    lipgloss.Color("#f0944a"),
		domain.StatusHalfDay: lipgloss.Color("#3ecce4"),
		domain.StatusLeave:   lipgloss.Color("#c084e0"),
	}

	// Role colors
	roleColors = map[domain.Role]lipgloss.Color{
		domain.RoleAdmin:   lipgloss.Color("#d4a844"),
		domain.RoleTeacher: lipgloss.Color("#4aa8de"),
		domain.RoleStudent: lipgloss.Color("#43e88c"),
	}

	// Leave status colors
	leaveColors = map[domain.LeaveStatus]lipgloss.Color{
		domain.LeavePending:  lipgloss.Color("#f0944a"),
		domain.LeaveApproved: lipgloss.Color("#43e88c"),
		domain.LeaveRejected: lipgloss.Color("#e06060"),
	}
)

// StatusStyle returns a style colored for the given attendance status.
func StatusStyle(s domain.AttendanceStatus) lipgloss.Style {
	if c, ok := statusColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
}

// StatusBadge returns a short colored badge for a status, e.g. "[present]".
func StatusBadge(s domain.AttendanceStatus) string {
	return StatusStyle(s).Render("[" + string(s) + "]")
}

// RoleStyle returns a bold style colored for the given role.
func RoleStyle(r domain.Role) lipgloss.Style {
	if c, ok := roleColors[r]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
}

// LeaveStyle returns a style colored for the given leave status.
func LeaveStyle(s domain.LeaveStatus) lipgloss.Style {
	if c, ok := leaveColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
}

// pctStyle colors an attendance percentage: green above 90, amber above 75,
// red below.
func pctStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 90:
		return okStyle
	case pct >= 75:
		return warnStyle
	default:
		return errorStyle
	}
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpView renders the help overlay.
func helpView() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4aa8de")).
		Bold(true).
		Render("R O L L C A L L")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	commands := []struct{ cmd, desc string }{
		{"rollcall", "Open the attendance console (interactive TUI)"},
		{"rollcall login", "Sign in from the terminal"},
		{"rollcall logout", "Clear your session"},
		{"rollcall demo", "Run the bundled demo backend"},
		{"rollcall --version", "Show version"},
	}

	keys := []struct{ key, desc string }{
		{"1-6", "switch screens"},
		{"j/k", "move cursor"},
		{"r", "refresh the current screen"},
		{"o", "sign out"},
		{"h", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Keys"))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", k.key)), descStyle.Render(k.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", descStyle.Render("Demo accounts: admin@school.com / teacher@school.com / student@school.com, password \"password123\""))
	return b.String()
}
