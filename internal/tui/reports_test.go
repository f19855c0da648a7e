package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

func testReportRows() []domain.ReportRow {
	return []domain.ReportRow{
		{StudentName: "Aarav Sharma", RollNumber: "1", TotalDays: 7, PresentDays: 6, LateDays: 1, AttendancePercentage: 100.0},
		{StudentName: "Bianca Torres", RollNumber: "2", TotalDays: 7, PresentDays: 5, AbsentDays: 2, AttendancePercentage: 71.4},
	}
}

func newTestReportsModel(t *testing.T) reportsModel {
	m := newReportsModel(nil, t.TempDir())
	m.width = 80
	m, _ = m.Update(dashClassesMsg{classes: testClasses()})
	m, _ = m.Update(reportLoadedMsg{rows: testReportRows()})
	return m
}

func TestReportsRendersRows(t *testing.T) {
	m := newTestReportsModel(t)

	view := m.View()
	if !strings.Contains(view, "Aarav Sharma") {
		t.Errorf("expected student row, got:\n%s", view)
	}
	if !strings.Contains(view, "71.4%") {
		t.Errorf("expected percentage, got:\n%s", view)
	}
	if !strings.Contains(view, "daily") {
		t.Errorf("expected period in title, got:\n%s", view)
	}
}

func TestReportsPeriodCycles(t *testing.T) {
	m := newTestReportsModel(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.period != periodWeekly {
		t.Fatalf("period = %v, want weekly", m.period)
	}
	if cmd == nil {
		t.Fatal("expected reload after period change")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.period != periodMonthly {
		t.Fatalf("period = %v, want monthly", m.period)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.period != periodDaily {
		t.Fatalf("period = %v, want daily after full cycle", m.period)
	}
}

func TestReportsExportWritesFile(t *testing.T) {
	m := newTestReportsModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if cmd == nil {
		t.Fatal("expected export command")
	}
	msg := cmd()
	exported, ok := msg.(reportExportedMsg)
	if !ok {
		t.Fatalf("msg = %T, want reportExportedMsg", msg)
	}
	if exported.err != nil {
		t.Fatalf("export: %v", exported.err)
	}
	if exported.path == "" {
		t.Fatal("expected export path")
	}
}

func TestReportsExportNeedsRows(t *testing.T) {
	m := newReportsModel(nil, t.TempDir())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if cmd != nil {
		t.Fatal("expected no export command without rows")
	}
}

func TestReportsFlashShown(t *testing.T) {
	m := newTestReportsModel(t)
	m, _ = m.Update(reportCopiedMsg{})
	if !strings.Contains(m.View(), "copied CSV") {
		t.Errorf("expected copy confirmation, got:\n%s", m.View())
	}
}
