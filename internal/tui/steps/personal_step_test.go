package steps

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/efocats/efowizard/internal/tui"
	"github.com/efocats/efowizard/internal/wizard"
)

func TestPersonalStep_TabSwitchesField(t *testing.T) {
	m := wizard.NewMachine()
	s := NewPersonalStep(tui.NewStyleSet(tui.DarkTheme))
	s.Init(m)

	if s.Focused() != wizard.FieldName {
		t.Fatalf("expected name focused, got %s", s.Focused())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyTab}, m)
	if s.Focused() != wizard.FieldEmail {
		t.Fatalf("expected email focused, got %s", s.Focused())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyShiftTab}, m)
	if s.Focused() != wizard.FieldName {
		t.Fatalf("expected name focused again, got %s", s.Focused())
	}
}

func TestPersonalStep_InitRestoresValues(t *testing.T) {
	m := wizard.NewMachine()
	m.Update(wizard.FieldName, "山田")
	s := NewPersonalStep(tui.NewStyleSet(tui.DarkTheme))
	s.Init(m)

	if s.Focused() != wizard.FieldEmail {
		t.Errorf("expected focus on the empty email field, got %s", s.Focused())
	}
	if s.inputs[0].Value() != "山田" {
		t.Errorf("name not restored: %q", s.inputs[0].Value())
	}
}

func TestPersonalStep_EnterRequestsNext(t *testing.T) {
	m := wizard.NewMachine()
	s := NewPersonalStep(tui.NewStyleSet(tui.DarkTheme))
	s.Init(m)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tui.StepNextMsg); !ok {
		t.Error("expected StepNextMsg")
	}
	if m.Step() != wizard.StepPersonal {
		t.Error("step must not move the machine itself")
	}
}
