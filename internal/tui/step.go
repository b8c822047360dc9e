package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/efocats/efowizard/internal/wizard"
)

// Step handles input for one wizard step. Steps write field changes
// straight to the Controller and request transitions with StepNextMsg or
// StepBackMsg; only the WizardModel moves between steps.
type Step interface {
	// Init syncs the step's widgets from the record when it becomes active.
	Init(c wizard.Controller) tea.Cmd
	// Update handles a message while the step is active.
	Update(msg tea.Msg, c wizard.Controller) (Step, tea.Cmd)
}

// PersonalStep renders the free-text fields of the first step.
type PersonalStep interface {
	Step
	View(f wizard.PersonalFields, width int) string
}

// ChoiceStep renders a single choice out of a fixed option list.
type ChoiceStep interface {
	Step
	View(selected string, options []string, width int) string
}

// StepSet is the presentation for each of the three steps.
type StepSet struct {
	Personal PersonalStep
	Area     ChoiceStep
	Plan     ChoiceStep
}

func (s *StepSet) active(id wizard.StepID) Step {
	switch id {
	case wizard.StepPersonal:
		return s.Personal
	case wizard.StepArea:
		return s.Area
	case wizard.StepPlan:
		return s.Plan
	}
	return nil
}

func (s *StepSet) replace(id wizard.StepID, st Step) {
	switch id {
	case wizard.StepPersonal:
		if p, ok := st.(PersonalStep); ok {
			s.Personal = p
		}
	case wizard.StepArea:
		if c, ok := st.(ChoiceStep); ok {
			s.Area = c
		}
	case wizard.StepPlan:
		if c, ok := st.(ChoiceStep); ok {
			s.Plan = c
		}
	}
}
