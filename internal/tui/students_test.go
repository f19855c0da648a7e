package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

func newTestStudentsModel() studentsModel {
	m := newStudentsModel(nil)
	m.width = 80
	m.height = 30
	m, _ = m.Update(dashClassesMsg{classes: testClasses()})
	m, _ = m.Update(studentsLoadedMsg{students: testRoster()})
	return m
}

func TestStudentsRendersList(t *testing.T) {
	m := newTestStudentsModel()

	view := m.View()
	for _, name := range []string{"Aarav Sharma", "Bianca Torres", "Chen Wei"} {
		if !strings.Contains(view, name) {
			t.Errorf("expected %q in list, got:\n%s", name, view)
		}
	}
	if !strings.Contains(view, "Grade 6 A") {
		t.Errorf("expected class name resolved from id, got:\n%s", view)
	}
}

func TestStudentsClassFilterCycles(t *testing.T) {
	m := newTestStudentsModel()
	if m.classFilter() != "" {
		t.Fatalf("filter = %q, want all", m.classFilter())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.classFilter() != "c1" {
		t.Fatalf("filter = %q, want c1", m.classFilter())
	}
	if cmd == nil {
		t.Fatal("expected reload after filter change")
	}

	// Cycle through c2 and back to all.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if m.classFilter() != "" {
		t.Fatalf("filter = %q, want all after full cycle", m.classFilter())
	}
}

func TestStudentsSearchFilters(t *testing.T) {
	m := newTestStudentsModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.searching {
		t.Fatal("expected / to start a search")
	}
	for _, r := range "bianca" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	vis := m.visible()
	if len(vis) != 1 || vis[0].Name != "Bianca Torres" {
		t.Fatalf("visible = %v, want only Bianca Torres", vis)
	}
	view := m.View()
	if strings.Contains(view, "Aarav Sharma") {
		t.Errorf("expected filtered-out students hidden, got:\n%s", view)
	}

	// Esc clears the needle and restores the full roster.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching || m.search != "" {
		t.Fatal("expected esc to clear the search")
	}
	if len(m.visible()) != 3 {
		t.Fatalf("visible = %d students, want 3", len(m.visible()))
	}
}

func TestStudentsSearchByRollNumber(t *testing.T) {
	m := newTestStudentsModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})

	vis := m.visible()
	if len(vis) != 1 || vis[0].ID != "s3" {
		t.Fatalf("visible = %v, want the roll-number match", vis)
	}
	if strings.Contains(m.View(), "no students match") {
		t.Errorf("unexpected empty state:\n%s", m.View())
	}
}

func TestStudentsDetailView(t *testing.T) {
	m := newTestStudentsModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatal("expected detail view")
	}
	m, _ = m.Update(studentStatsMsg{studentID: "s1", stats: &domain.StudentAttendanceStats{
		TotalDays: 10, PresentDays: 9, AbsentDays: 1, AttendancePercentage: 90.0,
	}})

	view := m.View()
	if !strings.Contains(view, "Aarav Sharma") {
		t.Errorf("expected student name, got:\n%s", view)
	}
	if !strings.Contains(view, "90.0%") {
		t.Errorf("expected percentage, got:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail {
		t.Fatal("expected detail closed on esc")
	}
}

func TestStudentsDeleteEmitsCommand(t *testing.T) {
	m := newTestStudentsModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if cmd == nil {
		t.Fatal("expected delete command")
	}
}

func TestStudentsEmptyState(t *testing.T) {
	m := newStudentsModel(nil)
	m, _ = m.Update(studentsLoadedMsg{students: nil})
	if !strings.Contains(m.View(), "no students") {
		t.Errorf("expected empty state, got:\n%s", m.View())
	}
}
