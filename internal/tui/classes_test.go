package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestClassesModel() classesModel {
	m := newClassesModel(nil)
	m.width = 80
	m, _ = m.Update(classesLoadedMsg{classes: testClasses()})
	return m
}

func TestClassesRendersList(t *testing.T) {
	m := newTestClassesModel()
	view := m.View()
	if !strings.Contains(view, "Grade 6 A") || !strings.Contains(view, "Grade 7 B") {
		t.Errorf("expected class rows, got:\n%s", view)
	}
}

func TestClassesCreateForm(t *testing.T) {
	m := newTestClassesModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if !m.creating {
		t.Fatal("expected create form open")
	}

	for _, r := range "Grade 8" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("C")})

	if m.formName != "Grade 8" || m.formSection != "C" {
		t.Fatalf("form = %q / %q", m.formName, m.formSection)
	}

	m.formFocus = 1
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command")
	}
}

func TestClassesCreateRequiresName(t *testing.T) {
	m := newTestClassesModel()
	m.creating = true
	m.formFocus = 1

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no save command without a name")
	}
	if m.err == "" {
		t.Fatal("expected validation error")
	}
}

func TestClassesEscCancelsForm(t *testing.T) {
	m := newTestClassesModel()
	m.creating = true
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.creating {
		t.Fatal("expected form closed on esc")
	}
}

func TestClassesSavedReloads(t *testing.T) {
	m := newTestClassesModel()
	m.creating = true
	m.formName = "Grade 8"

	m, cmd := m.Update(classSavedMsg{})
	if m.creating {
		t.Fatal("expected form closed after save")
	}
	if m.formName != "" {
		t.Fatal("expected form reset after save")
	}
	if cmd == nil {
		t.Fatal("expected reload after save")
	}
}
