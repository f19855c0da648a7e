package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

func testRoster() []domain.Student {
	return []domain.Student{
		{ID: "s1", Name: "Aarav Sharma", RollNumber: "1", Class: "c1"},
		{ID: "s2", Name: "Bianca Torres", RollNumber: "2", Class: "c1"},
		{ID: "s3", Name: "Chen Wei", RollNumber: "3", Class: "c1"},
	}
}

func newTestAttendanceModel() attendanceModel {
	m := newAttendanceModel(nil)
	m.width = 80
	m.height = 30
	m, _ = m.Update(rosterLoadedMsg{
		students: testRoster(),
		records: []domain.AttendanceRecord{
			{ID: "r1", StudentID: "s1", Status: domain.StatusPresent},
		},
	})
	return m
}

func TestRosterRendersMarks(t *testing.T) {
	m := newTestAttendanceModel()

	view := m.View()
	if !strings.Contains(view, "Aarav Sharma") {
		t.Errorf("expected roster names, got:\n%s", view)
	}
	if !strings.Contains(view, "[present]") {
		t.Errorf("expected present badge, got:\n%s", view)
	}
	if !strings.Contains(view, "[unmarked]") {
		t.Errorf("expected unmarked badge, got:\n%s", view)
	}
	if !strings.Contains(view, "1/3 marked") {
		t.Errorf("expected marked count, got:\n%s", view)
	}
}

func TestStatusKeysEmitMarkCommand(t *testing.T) {
	m := newTestAttendanceModel()

	for _, key := range []string{"p", "a", "l", "f", "v"} {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		if cmd == nil {
			t.Errorf("key %q: expected a mark command", key)
		}
	}
}

func TestMarkAdvancesCursor(t *testing.T) {
	m := newTestAttendanceModel()
	if m.cursor != 0 {
		t.Fatalf("cursor = %d", m.cursor)
	}

	m, _ = m.Update(markedMsg{rec: &domain.AttendanceRecord{StudentID: "s1", Status: domain.StatusAbsent}})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1 after marking", m.cursor)
	}
	if m.marks["s1"] != domain.StatusAbsent {
		t.Fatalf("mark = %q, want absent", m.marks["s1"])
	}
}

func TestMarkErrorShown(t *testing.T) {
	m := newTestAttendanceModel()
	m, _ = m.Update(markedMsg{err: errFake})
	if m.err == "" {
		t.Fatal("expected error recorded")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("expected error in view, got:\n%s", m.View())
	}
}

func TestRemarkReplacesBadge(t *testing.T) {
	m := newTestAttendanceModel()

	m, _ = m.Update(markedMsg{rec: &domain.AttendanceRecord{StudentID: "s1", Status: domain.StatusLate}})
	view := m.View()
	if !strings.Contains(view, "[late]") {
		t.Errorf("expected late badge after re-mark, got:\n%s", view)
	}
	if strings.Contains(view, "[present]") {
		t.Errorf("present badge should be replaced, got:\n%s", view)
	}
}
